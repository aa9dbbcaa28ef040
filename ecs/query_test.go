package ecs_test

import (
	"testing"

	"github.com/plus3/ecscore/ecs"
	"github.com/stretchr/testify/assert"
)

type moving struct {
	Pos *Position `ecs:"mut"`
	Vel *Velocity
}

func TestQueryIteratesMatchingEntitiesOnly(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())

	both := world.Spawn(ecs.Bundle2(Position{X: 1}, Velocity{DX: 1}))
	_ = world.Spawn(ecs.Bundle1(Position{X: 2}))

	q := ecs.NewQuery[moving](world)

	seen := map[ecs.Entity]bool{}
	for e, m := range q.Iter() {
		seen[e] = true
		m.Pos.X += m.Vel.DX
	}

	assert.Len(t, seen, 1)
	assert.True(t, seen[both])

	pos, err := ecs.GetComponent[Position](world, both)
	assert.NoError(t, err)
	assert.Equal(t, float32(2), pos.Get().X)
	pos.Release()
}

type withOptionalName struct {
	Pos  *Position
	Name *Name `ecs:"optional"`
}

func TestQueryOptionalFieldIsNilWhenAbsent(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())

	withName := world.Spawn(ecs.Bundle2(Position{X: 1}, Name{Value: "a"}))
	withoutName := world.Spawn(ecs.Bundle1(Position{X: 2}))

	q := ecs.NewQuery[withOptionalName](world)

	results := map[ecs.Entity]*withOptionalName{}
	for e, v := range q.Iter() {
		cp := v
		results[e] = &cp
	}

	assert.NotNil(t, results[withName].Name)
	assert.Equal(t, "a", results[withName].Name.Value)
	assert.Nil(t, results[withoutName].Name)
}

func TestQueryDuplicateComponentTypePanics(t *testing.T) {
	type bad struct {
		A *Position
		B *Position
	}
	assert.Panics(t, func() {
		ecs.NewQuery[bad](ecs.NewWorld(newTestRegistry()))
	})
}

func TestQueryValuesIteratesWithoutEntity(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())
	world.Spawn(ecs.Bundle1(Position{X: 1}))
	world.Spawn(ecs.Bundle1(Position{X: 2}))

	type justPos struct {
		Pos *Position
	}
	q := ecs.NewQuery[justPos](world)

	var total float32
	for v := range q.Values() {
		total += v.Pos.X
	}
	assert.Equal(t, float32(3), total)
}
