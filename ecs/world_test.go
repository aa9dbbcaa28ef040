package ecs_test

import (
	"testing"

	"github.com/plus3/ecscore/ecs"
	"github.com/stretchr/testify/assert"
)

func TestGetComponent(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())
	e := world.Spawn(ecs.Bundle2(Position{X: 1, Y: 2}, Velocity{DX: 1}))

	ref, err := ecs.GetComponent[Position](world, e)
	assert.NoError(t, err)
	assert.Equal(t, Position{X: 1, Y: 2}, *ref.Get())
	ref.Release()
}

func TestGetComponentMissingPanics(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())
	e := world.Spawn(ecs.Bundle1(Position{X: 1}))

	assert.Panics(t, func() {
		ecs.GetComponent[Velocity](world, e)
	})
}

func TestGetComponentDespawnedEntity(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())
	e := world.Spawn(ecs.Bundle1(Position{X: 1}))
	assert.NoError(t, world.Despawn(e))

	_, err := ecs.GetComponent[Position](world, e)
	assert.ErrorIs(t, err, ecs.ErrNoSuchEntity)
}

func TestInsertComponentMovesArchetype(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())
	e := world.Spawn(ecs.Bundle1(Position{X: 1, Y: 2}))

	err := ecs.InsertComponent(world, e, Velocity{DX: 5, DY: 6})
	assert.NoError(t, err)

	pos, err := ecs.GetComponent[Position](world, e)
	assert.NoError(t, err)
	assert.Equal(t, Position{X: 1, Y: 2}, *pos.Get())
	pos.Release()

	vel, err := ecs.GetComponent[Velocity](world, e)
	assert.NoError(t, err)
	assert.Equal(t, Velocity{DX: 5, DY: 6}, *vel.Get())
	vel.Release()
}

func TestInsertComponentInPlaceOverwrites(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())
	e := world.Spawn(ecs.Bundle1(Position{X: 1, Y: 2}))

	err := ecs.InsertComponent(world, e, Position{X: 9, Y: 9})
	assert.NoError(t, err)

	pos, err := ecs.GetComponent[Position](world, e)
	assert.NoError(t, err)
	assert.Equal(t, Position{X: 9, Y: 9}, *pos.Get())
	pos.Release()
}

func TestRemoveComponentReturnsLastValue(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())
	e := world.Spawn(ecs.Bundle2(Position{X: 1}, Velocity{DX: 7}))

	removed, err := ecs.RemoveComponent[Velocity](world, e)
	assert.NoError(t, err)
	assert.Equal(t, Velocity{DX: 7}, removed)

	assert.Panics(t, func() {
		ecs.GetComponent[Velocity](world, e)
	})

	pos, err := ecs.GetComponent[Position](world, e)
	assert.NoError(t, err)
	assert.Equal(t, Position{X: 1}, *pos.Get())
	pos.Release()
}

func TestDespawnCompactsArchetypeWithoutDisturbingOtherRows(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())

	a := world.Spawn(ecs.Bundle1(Position{X: 1}))
	b := world.Spawn(ecs.Bundle1(Position{X: 2}))
	c := world.Spawn(ecs.Bundle1(Position{X: 3}))

	assert.NoError(t, world.Despawn(a))

	for e, want := range map[ecs.Entity]float32{b: 2, c: 3} {
		ref, err := ecs.GetComponent[Position](world, e)
		assert.NoError(t, err)
		assert.Equal(t, want, ref.Get().X)
		ref.Release()
	}
}

func TestIterVisitsEveryLiveEntityOnce(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())

	want := map[ecs.Entity]bool{}
	want[world.Spawn(ecs.Bundle1(Position{X: 1}))] = false
	want[world.Spawn(ecs.Bundle2(Position{X: 2}, Velocity{DX: 1}))] = false
	want[world.Spawn(ecs.Bundle0())] = false

	for e := range world.Iter() {
		_, ok := want[e]
		assert.True(t, ok, "unexpected entity in Iter")
		assert.False(t, want[e], "entity visited twice")
		want[e] = true
	}
	for e, seen := range want {
		assert.True(t, seen, "entity %v never visited", e)
	}
}
