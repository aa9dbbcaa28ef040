package ecs

import "reflect"

// builderEntry pairs a component's TypeInfo with its dynamically-typed
// value, for EntityBuilder's staged construction.
type builderEntry struct {
	info  TypeInfo
	value any
}

// EntityBuilder assembles a Bundle one component at a time when the
// component count or shape isn't known until runtime — the dynamic
// counterpart to the fixed-arity BundleN constructors. It has no teacher
// equivalent; its staged, deferred-until-Build() shape is modeled on
// commands.go's buffer-then-apply style in the teacher.
type EntityBuilder struct {
	entries []builderEntry
}

// NewEntityBuilder returns an empty builder.
func NewEntityBuilder() *EntityBuilder {
	return &EntityBuilder{}
}

// Add stages component value v, whose dynamic type becomes one of the
// resulting Bundle's component types. Add returns the receiver so calls
// can be chained.
func (b *EntityBuilder) Add(v any) *EntityBuilder {
	t := reflect.TypeOf(v)
	if t == nil {
		panic("ecs: EntityBuilder.Add requires a concrete, non-nil value")
	}
	info := TypeInfo{Key: typeKeyFor(t), GoType: t, Size: t.Size(), Align: uintptr(t.Align())}
	b.entries = append(b.entries, builderEntry{info: info, value: v})
	return b
}

// Build canonicalizes the staged entries and returns the resulting Bundle.
// It panics if two staged values share a component type.
func (b *EntityBuilder) Build() Bundle {
	infos := make([]TypeInfo, len(b.entries))
	for i, e := range b.entries {
		infos[i] = e.info
	}
	sorted := canonicalizeBundleTypes(infos)

	byKey := make(map[TypeKey]any, len(b.entries))
	for _, e := range b.entries {
		byKey[e.info.Key] = e.value
	}

	values := make([]any, len(sorted))
	for i, info := range sorted {
		values[i] = byKey[info.Key]
	}

	return &dynamicBundle{infos: sorted, values: values}
}

// dynamicBundle is the Bundle produced by EntityBuilder.Build.
type dynamicBundle struct {
	infos  []TypeInfo
	values []any
}

func (d *dynamicBundle) TypeKeys() []TypeKey   { return bundleKeys(d.infos) }
func (d *dynamicBundle) TypeInfos() []TypeInfo { return d.infos }

func (d *dynamicBundle) Store(a *Archetype, row int) {
	for i, info := range d.infos {
		a.putDynamic(row, info.Key, d.values[i])
	}
}
