package main

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecscore/ecs"
)

// borrowViewer has no teacher equivalent — plus3-ooftn performs no aliasing
// checks at all, so its debug UI has nothing like this window. It exists
// because spec.md's BorrowState has no analogue in the teacher's Storage,
// and a diagnostic tool for this store is incomplete without a way to see
// which component types are currently borrowed and how.
type borrowViewer struct{}

func (b *borrowViewer) Render(w *ecs.World) {
	if !imgui.BeginV("Borrow State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	types := w.Registry().Types()
	sort.Slice(types, func(i, j int) bool { return types[i].GoType.String() < types[j].GoType.String() })

	const flags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("BorrowTable", 2, flags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Component Type")
		imgui.TableSetupColumn("State")
		imgui.TableHeadersRow()

		for _, info := range types {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(info.GoType.String())

			imgui.TableNextColumn()
			value, registered := w.Borrows().State(info.Key)
			switch {
			case !registered:
				imgui.TextColored(imgui.NewVec4(0.6, 0.6, 0.6, 1.0), "unregistered")
			case value == 0:
				imgui.Text("unborrowed")
			case value < 0:
				imgui.TextColored(imgui.NewVec4(0.9, 0.3, 0.2, 1.0), "exclusive")
			default:
				imgui.TextColored(imgui.NewVec4(0.2, 0.7, 0.3, 1.0), fmt.Sprintf("%d shared", value))
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}
