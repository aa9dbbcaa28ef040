// Command ecsinspect is a standalone ebiten+Dear ImGui window for
// inspecting a live ecs.World: its archetypes, entities, components, and
// BorrowState. It seeds a small demo World on startup since this store
// keeps no files and has no persisted state to load; point it at a
// purpose-built World by replacing seedDemoWorld's call site with your own
// registry and spawns.
package main

import (
	"flag"
	"log"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ecscore/ecs"
)

func main() {
	entityCount := flag.Int("entities", 256, "number of demo entities to seed the inspected world with")
	flag.Parse()

	registry := ecs.NewComponentRegistry()
	registerDemoComponents(registry)

	world := ecs.NewWorld(registry)
	seedDemoWorld(world, *entityCount)

	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("ecsinspect", 1280, 800)
	imgui.CurrentIO().SetIniFilename("")

	log.Printf("ecsinspect: watching a world with %d demo entities", *entityCount)

	if err := ebiten.RunGame(newGame(world, backend)); err != nil {
		log.Fatal(err)
	}
}
