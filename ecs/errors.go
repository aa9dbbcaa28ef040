package ecs

import "errors"

// ErrNoSuchEntity is returned whenever an operation is given an Entity that
// is not currently alive — either its slot was never spawned, its
// generation is stale, or it has since been despawned.
var ErrNoSuchEntity = errors.New("ecs: no such entity")

// ErrComponentNotFound is returned by the shape-agnostic accessors —
// GetFromRef, GetMutFromRef, and the diagnostic ComponentPointer — when an
// entity is alive but its archetype does not carry the requested component
// type. The typed accessors (GetComponent, GetComponentMut, RemoveComponent)
// never return it: a missing component there is a query-shape programming
// error and panics instead.
var ErrComponentNotFound = errors.New("ecs: entity does not have component")
