package ecs_test

import (
	"testing"

	"github.com/plus3/ecscore/ecs"
	"github.com/stretchr/testify/assert"
)

func TestBorrowSharedAllowsMultipleReaders(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())
	e := world.Spawn(ecs.Bundle1(Position{X: 1}))

	first, err := ecs.GetComponent[Position](world, e)
	assert.NoError(t, err)
	second, err := ecs.GetComponent[Position](world, e)
	assert.NoError(t, err)

	first.Release()
	second.Release()
}

func TestBorrowExclusiveRejectsConcurrentShared(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())
	e := world.Spawn(ecs.Bundle1(Position{X: 1}))

	mut, err := ecs.GetComponentMut[Position](world, e)
	assert.NoError(t, err)

	assert.Panics(t, func() {
		_, _ = ecs.GetComponent[Position](world, e)
	})

	mut.Release()

	shared, err := ecs.GetComponent[Position](world, e)
	assert.NoError(t, err)
	shared.Release()
}

func TestBorrowExclusiveRejectsSecondExclusive(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())
	e := world.Spawn(ecs.Bundle1(Position{X: 1}))

	mut, err := ecs.GetComponentMut[Position](world, e)
	assert.NoError(t, err)

	assert.Panics(t, func() {
		_, _ = ecs.GetComponentMut[Position](world, e)
	})

	mut.Release()
}

func TestBorrowReleaseWithoutAcquirePanics(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())
	e := world.Spawn(ecs.Bundle1(Position{X: 1}))

	ref, err := ecs.GetComponent[Position](world, e)
	assert.NoError(t, err)

	ref.Release()
	assert.Panics(t, func() {
		ref.Release()
	})
}
