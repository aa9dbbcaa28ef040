package ecs

import (
	"fmt"
	"sort"
)

// Bundle is a sorted, duplicate-free set of component values used to Spawn
// an entity or Insert components into an existing one. Implementations are
// generated by the fixed-arity BundleN constructors in bundle_tuples.go and
// bundle_tuples_gen.go, or
// built dynamically with EntityBuilder for shapes with more components than
// any fixed arity covers.
type Bundle interface {
	// TypeKeys returns the bundle's component types' keys, sorted
	// ascending.
	TypeKeys() []TypeKey
	// TypeInfos returns the bundle's component types' full descriptors, in
	// the same order as TypeKeys.
	TypeInfos() []TypeInfo
	// Store writes every component value into row of archetype a, which
	// must have exactly this bundle's shape.
	Store(a *Archetype, row int)
}

// canonicalizeBundleTypes sorts infos by TypeKey and panics if two entries
// share a key, matching view.go's Spawn sort-then-validate approach in the
// teacher.
func canonicalizeBundleTypes(infos []TypeInfo) []TypeInfo {
	sorted := append([]TypeInfo(nil), infos...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Key == sorted[i-1].Key {
			panic(fmt.Sprintf("ecs: duplicate component type %s in bundle", sorted[i].GoType))
		}
	}
	return sorted
}

func bundleKeys(infos []TypeInfo) []TypeKey {
	keys := make([]TypeKey, len(infos))
	for i, info := range infos {
		keys[i] = info.Key
	}
	return keys
}
