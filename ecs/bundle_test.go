package ecs_test

import (
	"testing"

	"github.com/plus3/ecscore/ecs"
	"github.com/stretchr/testify/assert"
)

func TestBundleOrderDoesNotAffectArchetype(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())

	a := world.Spawn(ecs.Bundle2(Position{X: 1}, Velocity{DX: 1}))
	b := world.Spawn(ecs.Bundle2(Velocity{DX: 2}, Position{X: 2}))

	refA, err := world.Entity(a)
	assert.NoError(t, err)
	refB, err := world.Entity(b)
	assert.NoError(t, err)

	posA, err := ecs.GetFromRef[Position](refA)
	assert.NoError(t, err)
	assert.Equal(t, float32(1), posA.Get().X)
	posA.Release()

	posB, err := ecs.GetFromRef[Position](refB)
	assert.NoError(t, err)
	assert.Equal(t, float32(2), posB.Get().X)
	posB.Release()
}

func TestEntityBuilderDuplicateComponentPanics(t *testing.T) {
	assert.Panics(t, func() {
		ecs.NewEntityBuilder().
			Add(Position{X: 1}).
			Add(Position{X: 2}).
			Build()
	})
}

func TestEntityBuilderBuildsArbitraryShape(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())

	bundle := ecs.NewEntityBuilder().
		Add(Position{X: 1, Y: 2}).
		Add(Velocity{DX: 3, DY: 4}).
		Add(Name{Value: "builder"}).
		Build()

	e := world.Spawn(bundle)

	name, err := ecs.GetComponent[Name](world, e)
	assert.NoError(t, err)
	assert.Equal(t, "builder", name.Get().Value)
	name.Release()
}

func TestBundleZeroSpawnsEmptyEntity(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())
	e := world.Spawn(ecs.Bundle0())

	assert.True(t, world.Contains(e))
	assert.Panics(t, func() {
		ecs.GetComponent[Position](world, e)
	})
}
