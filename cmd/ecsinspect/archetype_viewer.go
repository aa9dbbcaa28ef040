package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecscore/ecs"
)

// archetypeRow is one cached, display-ready summary of an ecs.Archetype.
type archetypeRow struct {
	index          int
	componentTypes []string
	entityCount    int
	componentCount int
}

// archetypeViewer lists every archetype currently registered with a World,
// sortable by any column, with a bar showing relative entity counts.
// Adapted from the teacher's ArchetypeViewerComponent, with the caching
// keyed off World.Archetypes() instead of Storage.GetArchetypes() and
// Archetype.Index() instead of the teacher's hashed Archetype.ID().
type archetypeViewer struct {
	rows          []archetypeRow
	lastCount     int
	sortColumn    int
	sortAscending bool

	selected *int
}

func newArchetypeViewer() *archetypeViewer {
	return &archetypeViewer{sortColumn: 3, lastCount: -1}
}

// Render draws the Archetypes window and returns the index of the
// archetype the user clicked this frame, if any.
func (v *archetypeViewer) Render(w *ecs.World) *int {
	if !imgui.BeginV("Archetypes", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return nil
	}

	v.rebuildIfNeeded(w)

	maxEntities := 0
	for _, r := range v.rows {
		if r.entityCount > maxEntities {
			maxEntities = r.entityCount
		}
	}

	var clicked *int
	const flags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ArchetypeTable", 4, flags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Index")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Comp Count")
		imgui.TableSetupColumn("Entity Count")
		imgui.TableHeadersRow()

		if specs := imgui.TableGetSortSpecs(); specs.SpecsDirty() && specs.SpecsCount() > 0 {
			spec := specs.Specs()
			v.sortColumn = int(spec.ColumnIndex())
			v.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			v.sort()
			specs.SetSpecsDirty(false)
		}

		for _, row := range v.rows {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := v.selected != nil && *v.selected == row.index
			if imgui.SelectableBoolV(fmt.Sprintf("#%d", row.index), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				idx := row.index
				clicked = &idx
				v.selected = &idx
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.componentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.componentCount))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.entityCount))

			if maxEntities > 0 {
				barWidth := float32(row.entityCount) / float32(maxEntities) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
	return clicked
}

func (v *archetypeViewer) rebuildIfNeeded(w *ecs.World) {
	archetypes := w.Archetypes()
	if v.lastCount == len(archetypes) {
		v.updateCounts(archetypes)
		return
	}

	v.lastCount = len(archetypes)
	v.rows = make([]archetypeRow, 0, len(archetypes))
	for _, arch := range archetypes {
		v.rows = append(v.rows, archetypeRow{
			index:          arch.Index(),
			componentTypes: typeNames(arch),
			entityCount:    arch.Len(),
			componentCount: len(arch.Types()),
		})
	}
	v.sort()
}

func (v *archetypeViewer) updateCounts(archetypes []*ecs.Archetype) {
	byIndex := make(map[int]*ecs.Archetype, len(archetypes))
	for _, arch := range archetypes {
		byIndex[arch.Index()] = arch
	}
	for i := range v.rows {
		if arch, ok := byIndex[v.rows[i].index]; ok {
			v.rows[i].entityCount = arch.Len()
		}
	}
	if v.sortColumn == 3 {
		v.sort()
	}
}

func (v *archetypeViewer) sort() {
	sort.Slice(v.rows, func(i, j int) bool {
		a, b := v.rows[i], v.rows[j]
		var less bool
		switch v.sortColumn {
		case 0:
			less = a.index < b.index
		case 1:
			less = strings.Join(a.componentTypes, ",") < strings.Join(b.componentTypes, ",")
		case 2:
			less = a.componentCount < b.componentCount
		default:
			less = a.entityCount < b.entityCount
		}
		if !v.sortAscending {
			return !less
		}
		return less
	})
}

func typeNames(arch *ecs.Archetype) []string {
	types := arch.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.GoType.String()
	}
	return names
}
