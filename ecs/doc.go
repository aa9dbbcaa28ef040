/*
Package ecs provides an archetypal entity-component store.

It keeps entities that share an identical set of component types in
contiguous, per-component column storage so that bulk iteration over a
component shape is cache-friendly, while random access to a single entity's
components stays constant time. Safety for concurrent ad-hoc access and
query iteration is enforced at runtime by a per-component-type borrow
counter, not by the Go type system.

Core Concepts:

  - Entity: a generationally-tagged handle returned by Spawn.
  - Component: any Go value registered with a ComponentRegistry.
  - Archetype: the unique set of entities sharing an exact component-type set.
  - Bundle: a sorted, duplicate-free set of components used to spawn or insert.
  - Query: an iterator over every entity whose archetype contains a requested
    set of component types.

Basic Usage:

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)

	world := ecs.NewWorld(registry)

	e := world.Spawn(ecs.Bundle2(Position{X: 1}, Velocity{DX: 1}))
	_ = e

	type Moving struct {
		Pos *Position `ecs:"mut"`
		Vel *Velocity
	}

	q := ecs.NewQuery[Moving](world)
	for entity, m := range q.Iter() {
		m.Pos.X += m.Vel.DX
		_ = entity
	}

A field tagged `ecs:"optional"` matches entities that lack that component
(the field is filled with nil); a field tagged `ecs:"mut"` requests an
exclusive rather than shared borrow of that component for the duration of
the sweep.

Scheduling, parallel query execution, change detection, and serialization
are deliberately outside this package's scope; see cmd/ecsgen and
cmd/ecsinspect for standalone tooling built on top of it.
*/
package ecs
