package main

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecscore/ecs"
)

// queryDebugger lets the user pick a set of component types by name and
// shows which archetypes (and how many entities) match all of them.
// Adapted from the teacher's QueryDebuggerComponent. ecs.Query[T]
// (generalized from the teacher's View[T]) needs T fixed at
// compile time, so it cannot express an ad-hoc, runtime-chosen type set the
// way this window does; matching is instead done directly over
// Archetype.Types(), exactly as the teacher's debugger already did under
// the hood via Storage.GetArchetypes.
type queryDebugger struct {
	known        []string
	lastCount    int
	selectedType map[string]bool
}

func newQueryDebugger() *queryDebugger {
	return &queryDebugger{lastCount: -1, selectedType: make(map[string]bool)}
}

func (q *queryDebugger) Render(w *ecs.World) {
	if !imgui.BeginV("Query Debugger", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	q.rebuildIfNeeded(w)

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		q.selectedType = make(map[string]bool)
	}

	for _, name := range q.known {
		selected := q.selectedType[name]
		if imgui.Checkbox(name, &selected) {
			if selected {
				q.selectedType[name] = true
			} else {
				delete(q.selectedType, name)
			}
		}
	}

	imgui.Separator()

	byName := make(map[string]reflect.Type)
	for _, arch := range w.Archetypes() {
		for _, t := range arch.Types() {
			byName[t.GoType.String()] = t.GoType
		}
	}

	var required []reflect.Type
	for name := range q.selectedType {
		if t, ok := byName[name]; ok {
			required = append(required, t)
		}
	}

	if len(required) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	matching := matchingArchetypes(w, required)
	totalEntities := 0
	for _, arch := range matching {
		totalEntities += arch.Len()
	}

	imgui.Text(fmt.Sprintf("Matching Archetypes: %d", len(matching)))
	imgui.Text(fmt.Sprintf("Matching Entities: %d", totalEntities))

	if imgui.TreeNodeStr("Archetype Details") {
		const flags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("QueryArchTable", 3, flags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Index")
			imgui.TableSetupColumn("All Components")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, arch := range matching {
				imgui.TableNextRow()
				imgui.TableSetColumnIndex(0)
				imgui.Text(fmt.Sprintf("#%d", arch.Index()))
				imgui.TableSetColumnIndex(1)
				imgui.Text(fmt.Sprintf("%v", typeNames(arch)))
				imgui.TableSetColumnIndex(2)
				imgui.Text(fmt.Sprintf("%d", arch.Len()))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (q *queryDebugger) rebuildIfNeeded(w *ecs.World) {
	archetypes := w.Archetypes()
	if q.lastCount == len(archetypes) {
		return
	}
	q.lastCount = len(archetypes)

	seen := make(map[string]bool)
	for _, arch := range archetypes {
		for _, name := range typeNames(arch) {
			seen[name] = true
		}
	}

	q.known = make([]string, 0, len(seen))
	for name := range seen {
		q.known = append(q.known, name)
	}
	sort.Strings(q.known)
}

func matchingArchetypes(w *ecs.World, required []reflect.Type) []*ecs.Archetype {
	var out []*ecs.Archetype
	for _, arch := range w.Archetypes() {
		if archetypeHasAll(arch, required) {
			out = append(out, arch)
		}
	}
	return out
}

func archetypeHasAll(arch *ecs.Archetype, required []reflect.Type) bool {
	present := make(map[reflect.Type]bool)
	for _, t := range arch.Types() {
		present[t.GoType] = true
	}
	for _, t := range required {
		if !present[t] {
			return false
		}
	}
	return true
}
