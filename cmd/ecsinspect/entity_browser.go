package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecscore/ecs"
)

type entityRow struct {
	entity         ecs.Entity
	archetypeIndex int
	componentTypes []string
	componentCount int
}

// entityBrowser lists every live entity across every archetype, with a text
// filter and an archetype filter driven by archetypeViewer's click-through.
// Adapted from the teacher's EntityBrowserComponent; World has no holes to
// skip within an archetype (every row below Archetype.Len() is live), so
// rebuildIfNeeded here is a flat double loop instead of the teacher's
// hole-tolerant archetype.Iter().
type entityBrowser struct {
	rows          []entityRow
	lastCount     int
	sortColumn    int
	sortAscending bool

	filterText         string
	filterArchetype    *int
	selected           ecs.Entity
	maxEntitiesPerPage int
	currentPage        int
}

func newEntityBrowser(perPage int) *entityBrowser {
	return &entityBrowser{lastCount: -1, sortAscending: true, maxEntitiesPerPage: perPage}
}

func (b *entityBrowser) Render(w *ecs.World) {
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	b.rebuildIfNeeded(w)

	imgui.InputTextWithHint("##search", "Search...", &b.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		b.filterText = ""
		b.filterArchetype = nil
	}

	filtered := b.filtered()

	const flags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, flags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Archetype")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		if specs := imgui.TableGetSortSpecs(); specs.SpecsDirty() && specs.SpecsCount() > 0 {
			spec := specs.Specs()
			b.sortColumn = int(spec.ColumnIndex())
			b.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			b.sort()
			specs.SetSpecsDirty(false)
		}

		start := b.currentPage * b.maxEntitiesPerPage
		end := start + b.maxEntitiesPerPage
		if end > len(filtered) {
			end = len(filtered)
		}

		for i := start; i < end; i++ {
			row := filtered[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := b.selected == row.entity
			if imgui.SelectableBoolV(row.entity.String(), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				b.selected = row.entity
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("#%d", row.archetypeIndex))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.componentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.componentCount))
		}

		imgui.EndTable()
	}

	if len(filtered) > b.maxEntitiesPerPage {
		totalPages := (len(filtered) + b.maxEntitiesPerPage - 1) / b.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", b.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && b.currentPage > 0 {
			b.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && b.currentPage < totalPages-1 {
			b.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

// SetArchetypeFilter is called by game.go when archetypeViewer reports a
// click, matching the teacher's cross-window filter handoff.
func (b *entityBrowser) SetArchetypeFilter(index int) {
	b.filterArchetype = &index
}

func (b *entityBrowser) Selected() ecs.Entity { return b.selected }

func (b *entityBrowser) rebuildIfNeeded(w *ecs.World) {
	archetypes := w.Archetypes()
	total := 0
	for _, a := range archetypes {
		total += a.Len()
	}
	if b.lastCount == total {
		return
	}
	b.lastCount = total

	b.rows = make([]entityRow, 0, total)
	for _, arch := range archetypes {
		names := typeNames(arch)
		for row := 0; row < arch.Len(); row++ {
			b.rows = append(b.rows, entityRow{
				entity:         arch.EntityAt(row),
				archetypeIndex: arch.Index(),
				componentTypes: names,
				componentCount: len(names),
			})
		}
	}
	b.sort()
}

func (b *entityBrowser) sort() {
	sort.Slice(b.rows, func(i, j int) bool {
		a, c := b.rows[i], b.rows[j]
		var less bool
		switch b.sortColumn {
		case 1:
			less = a.archetypeIndex < c.archetypeIndex
		case 2:
			less = strings.Join(a.componentTypes, ",") < strings.Join(c.componentTypes, ",")
		case 3:
			less = a.componentCount < c.componentCount
		default:
			less = a.entity.ID() < c.entity.ID()
		}
		if !b.sortAscending {
			return !less
		}
		return less
	})
}

func (b *entityBrowser) filtered() []entityRow {
	if b.filterText == "" && b.filterArchetype == nil {
		return b.rows
	}

	out := make([]entityRow, 0, len(b.rows))
	needle := strings.ToLower(b.filterText)
	for _, row := range b.rows {
		if b.filterArchetype != nil && row.archetypeIndex != *b.filterArchetype {
			continue
		}
		if b.filterText != "" {
			idStr := fmt.Sprintf("%d", row.entity.ID())
			archStr := fmt.Sprintf("#%d", row.archetypeIndex)
			compStr := strings.ToLower(strings.Join(row.componentTypes, " "))
			if !strings.Contains(idStr, needle) &&
				!strings.Contains(archStr, needle) &&
				!strings.Contains(compStr, needle) {
				continue
			}
		}
		out = append(out, row)
	}
	return out
}
