package ecs_test

import (
	"testing"

	"github.com/plus3/ecscore/ecs"
	"github.com/stretchr/testify/assert"
)

func TestArchetypeIdentityIsShapeExact(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())

	a := world.Spawn(ecs.Bundle2(Position{X: 1}, Velocity{DX: 1}))
	b := world.Spawn(ecs.Bundle2(Velocity{DX: 2}, Position{X: 2}))
	c := world.Spawn(ecs.Bundle1(Position{X: 3}))

	refA, _ := world.Entity(a)
	refB, _ := world.Entity(b)
	refC, _ := world.Entity(c)

	posA, _ := ecs.GetFromRef[Position](refA)
	posB, _ := ecs.GetFromRef[Position](refB)
	defer posA.Release()
	defer posB.Release()

	assert.Equal(t, float32(1), posA.Get().X)
	assert.Equal(t, float32(2), posB.Get().X)

	_, err := ecs.GetFromRef[Velocity](refC)
	assert.ErrorIs(t, err, ecs.ErrComponentNotFound)
}

func TestArchetypeSwapRemoveKeepsRowsDense(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())

	e1 := world.Spawn(ecs.Bundle1(Position{X: 1}))
	e2 := world.Spawn(ecs.Bundle1(Position{X: 2}))
	e3 := world.Spawn(ecs.Bundle1(Position{X: 3}))

	assert.NoError(t, world.Despawn(e2))

	count := 0
	for range world.Iter() {
		count++
	}
	assert.Equal(t, 2, count)

	pos1, err := ecs.GetComponent[Position](world, e1)
	assert.NoError(t, err)
	assert.Equal(t, float32(1), pos1.Get().X)
	pos1.Release()

	pos3, err := ecs.GetComponent[Position](world, e3)
	assert.NoError(t, err)
	assert.Equal(t, float32(3), pos3.Get().X)
	pos3.Release()
}
