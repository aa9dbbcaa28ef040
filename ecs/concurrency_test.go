package ecs_test

import (
	"testing"

	"github.com/plus3/ecscore/ecs"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentSharedQueryReads exercises BorrowState under real goroutine
// contention: many readers iterating the same query concurrently must never
// trip the exclusive-conflict panic, since none of them ever asks for a
// mutable accessor.
func TestConcurrentSharedQueryReads(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())
	for i := 0; i < 100; i++ {
		world.Spawn(ecs.Bundle2(Position{X: float32(i)}, Velocity{DX: 1}))
	}

	type readOnly struct {
		Pos *Position
		Vel *Velocity
	}

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			q := ecs.NewQuery[readOnly](world)
			sum := float32(0)
			for _, v := range q.Iter() {
				sum += v.Pos.X + v.Vel.DX
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}

// TestConcurrentGetComponentSharedReaders exercises the single-entity
// GetComponent path concurrently, matching TestConcurrentSharedQueryReads
// but through the ad-hoc accessor instead of a Query sweep.
func TestConcurrentGetComponentSharedReaders(t *testing.T) {
	world := ecs.NewWorld(newTestRegistry())
	e := world.Spawn(ecs.Bundle1(Position{X: 5}))

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			ref, err := ecs.GetComponent[Position](world, e)
			if err != nil {
				return err
			}
			_ = ref.Get().X
			ref.Release()
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}
