package main

import (
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ecscore/ecs"
)

// game implements ebiten.Game and drives the ImGui frame around a fixed set
// of diagnostic windows over a single World. Adapted from the teacher's
// Game in ecs/debugui/ebiten/example_test.go: the teacher drives ImGui
// rendering through a Scheduler executing an ImguiSystem over entities
// tagged with ImguiItem, which assumes the scheduling/commands machinery
// spec.md puts out of scope. Since this store has no scheduler, game here
// calls each viewer directly from Update instead of going through a
// component-driven render queue.
type game struct {
	world        *ecs.World
	imguiBackend *ebitenbackend.EbitenBackend

	archetypes *archetypeViewer
	entities   *entityBrowser
	components *componentInspector
	borrows    *borrowViewer
	queries    *queryDebugger
	perf       *performanceStats

	lastFrame time.Time
}

func newGame(w *ecs.World, backend *ebitenbackend.EbitenBackend) *game {
	return &game{
		world:        w,
		imguiBackend: backend,
		archetypes:   newArchetypeViewer(),
		entities:     newEntityBrowser(100),
		components:   &componentInspector{},
		borrows:      &borrowViewer{},
		queries:      newQueryDebugger(),
		perf:         newPerformanceStats(120),
		lastFrame:    time.Now(),
	}
}

func (g *game) Update() error {
	now := time.Now()
	delta := float32(now.Sub(g.lastFrame).Seconds())
	g.lastFrame = now

	g.imguiBackend.BeginFrame()

	if clicked := g.archetypes.Render(g.world); clicked != nil {
		g.entities.SetArchetypeFilter(*clicked)
	}
	g.entities.Render(g.world)
	g.components.Render(g.world, g.entities.Selected())
	g.borrows.Render(g.world)
	g.queries.Render(g.world)
	g.perf.Render(g.world, delta)

	g.imguiBackend.EndFrame()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.imguiBackend.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
