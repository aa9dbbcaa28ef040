package ecs_test

import (
	"testing"

	"github.com/plus3/ecscore/ecs"
	"github.com/stretchr/testify/assert"
)

func TestSpawnReturnsDistinctEntities(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())

	a := world.Spawn(ecs.Bundle1(Position{X: 1}))
	b := world.Spawn(ecs.Bundle1(Position{X: 2}))

	assert.NotEqual(t, a, b)
	assert.True(t, world.Contains(a))
	assert.True(t, world.Contains(b))
}

func TestDespawnInvalidatesHandle(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())

	e := world.Spawn(ecs.Bundle1(Position{X: 1}))
	assert.True(t, world.Contains(e))

	err := world.Despawn(e)
	assert.NoError(t, err)
	assert.False(t, world.Contains(e))

	err = world.Despawn(e)
	assert.ErrorIs(t, err, ecs.ErrNoSuchEntity)
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())

	first := world.Spawn(ecs.Bundle1(Position{X: 1}))
	assert.NoError(t, world.Despawn(first))

	second := world.Spawn(ecs.Bundle1(Position{X: 2}))

	assert.Equal(t, first.ID(), second.ID())
	assert.NotEqual(t, first.Generation(), second.Generation())

	// The stale handle must never be mistaken for the new entity.
	assert.False(t, world.Contains(first))
	assert.True(t, world.Contains(second))
}

func TestEntityRefTracksLiveEntity(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())
	e := world.Spawn(ecs.Bundle1(Position{X: 3}))

	ref, err := world.Entity(e)
	assert.NoError(t, err)
	assert.Equal(t, e, ref.Entity())

	pos, err := ecs.GetFromRef[Position](ref)
	assert.NoError(t, err)
	assert.Equal(t, float32(3), pos.Get().X)
	pos.Release()
}
