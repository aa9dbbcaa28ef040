package main

import (
	"fmt"
	"math/rand"

	"github.com/plus3/ecscore/ecs"
)

// The component types below exist only to give ecsinspect something to
// look at. A real caller would register its own application component
// types on the world it hands to the viewers in this package instead.

type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Health struct {
	Current, Max int32
}

type Name struct {
	Value string
}

type Tag struct{}

func registerDemoComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Name](registry)
	ecs.RegisterComponent[Tag](registry)
}

// seedDemoWorld spawns a handful of entities across several archetype shapes
// so the viewer windows have something nontrivial to render on startup.
func seedDemoWorld(w *ecs.World, count int) {
	for i := 0; i < count; i++ {
		pos := Position{X: rand.Float32() * 100, Y: rand.Float32() * 100}
		name := Name{Value: fmt.Sprintf("entity-%d", i)}

		switch i % 4 {
		case 0:
			w.Spawn(ecs.Bundle2(pos, name))
		case 1:
			w.Spawn(ecs.Bundle3(pos, Velocity{DX: rand.Float32() - 0.5, DY: rand.Float32() - 0.5}, name))
		case 2:
			w.Spawn(ecs.Bundle4(pos, Health{Current: 80, Max: 100}, name, Tag{}))
		default:
			w.Spawn(ecs.Bundle1(pos))
		}
	}
}
