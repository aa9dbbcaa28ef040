package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecscore/ecs"
)

// performanceStats tracks a rolling frame-time history and renders it
// alongside a world-wide entity/archetype/column summary. Adapted from the
// teacher's PerformanceStatsComponent and FrameTimer; Storage.CollectStats
// has no equivalent here since World has no singleton concept, so the
// summary is computed directly from World.Archetypes() each frame.
type performanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func newPerformanceStats(historyFrames int) *performanceStats {
	return &performanceStats{historyFrames: historyFrames, frameHistory: make([]float32, historyFrames)}
}

func (p *performanceStats) Render(w *ecs.World, deltaTime float32) {
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	p.frameHistory[p.frameIndex] = deltaTime * 1000.0
	p.frameIndex = (p.frameIndex + 1) % p.historyFrames

	archetypes := w.Archetypes()
	totalEntities := 0
	totalColumns := 0
	for _, arch := range archetypes {
		totalEntities += arch.Len()
		totalColumns += len(arch.Types())
	}

	imgui.Text(fmt.Sprintf("Total Entities: %d", totalEntities))
	imgui.Text(fmt.Sprintf("Archetypes: %d", len(archetypes)))
	imgui.Text(fmt.Sprintf("Registered Component Types: %d", len(w.Registry().Types())))
	imgui.Text(fmt.Sprintf("Live Columns: %d", totalColumns))

	var avg float32
	for _, ft := range p.frameHistory {
		avg += ft
	}
	avg /= float32(p.historyFrames)

	fps := float32(0)
	if avg > 0 {
		fps = 1000.0 / avg
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &p.frameHistory[0], int32(len(p.frameHistory)))

	if imgui.TreeNodeStr("Archetype Breakdown") {
		const flags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ArchStatsTable", 3, flags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Index")
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, arch := range archetypes {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("#%d", arch.Index()))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", len(arch.Types())))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.Len()))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
