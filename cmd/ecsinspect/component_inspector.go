package main

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ecscore/ecs"
)

// componentInspector renders every component of one selected entity,
// editable field-by-field via reflection. Adapted from the teacher's
// ComponentInspectorComponent: the teacher fetches a boxed copy through
// Storage.GetComponent and must write edits back explicitly; here
// World.ComponentPointer hands back a live pointer into the archetype
// column directly, so reflect.NewAt(...).Elem() is addressable and edits
// apply in place with no write-back call needed.
type componentInspector struct{}

func (ci *componentInspector) Render(w *ecs.World, selected ecs.Entity) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if selected.IsZero() || !w.Contains(selected) {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	ref, err := w.Entity(selected)
	if err != nil {
		imgui.Text(fmt.Sprintf("%s: %v", selected, err))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %s", selected))
	imgui.Separator()

	arch := entityArchetype(w, ref.Entity())
	if arch == nil {
		imgui.End()
		return
	}

	for _, info := range arch.Types() {
		ptr, gotInfo, err := w.ComponentPointer(selected, info.Key)
		if err != nil {
			continue
		}

		if imgui.TreeNodeStr(gotInfo.GoType.String()) {
			val := reflect.NewAt(gotInfo.GoType, ptr).Elem()
			ci.renderStruct(val)
			imgui.TreePop()
		}
		_ = ptr
	}

	imgui.End()
}

func (ci *componentInspector) renderStruct(val reflect.Value) {
	if val.Kind() != reflect.Struct {
		imgui.Text(fmt.Sprintf("%v", val.Interface()))
		return
	}

	for _, field := range globalFieldCache.Fields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		ci.renderField(field.Name, fieldVal)
	}
}

func (ci *componentInspector) renderField(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() && v >= 0 {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			(&componentInspector{}).renderStruct(val)
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

func entityArchetype(w *ecs.World, e ecs.Entity) *ecs.Archetype {
	for _, arch := range w.Archetypes() {
		for row := 0; row < arch.Len(); row++ {
			if arch.EntityAt(row) == e {
				return arch
			}
		}
	}
	return nil
}
