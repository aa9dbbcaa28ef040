package ecs

import (
	"reflect"
	"sync"
	"sync/atomic"
	"unsafe"
)

// TypeKey is a process-unique identifier for a component type. It is
// assigned the first time any component type is registered or otherwise
// named (via a Bundle, Query, or EntityBuilder.Add) and stays stable for
// the remainder of the process's lifetime.
type TypeKey uint64

// TypeInfo is the runtime descriptor of a component type: its identity key,
// its size and alignment (for diagnostics — see archetype.go for why a
// managed-memory column doesn't need these to allocate), and the reflected
// Go type used in panic messages and tooling.
type TypeInfo struct {
	Key    TypeKey
	GoType reflect.Type
	Size   uintptr
	Align  uintptr
}

var (
	typeKeyMu   sync.Mutex
	typeKeyByGo = map[reflect.Type]TypeKey{}
	nextTypeKey atomic.Uint64
)

// typeKeyFor returns the stable TypeKey for a reflect.Type, assigning a new
// one on first sight. Ordering of assignment has no semantic meaning beyond
// totality and stability within the process, per spec.
func typeKeyFor(t reflect.Type) TypeKey {
	typeKeyMu.Lock()
	defer typeKeyMu.Unlock()
	if k, ok := typeKeyByGo[t]; ok {
		return k
	}
	k := TypeKey(nextTypeKey.Add(1))
	typeKeyByGo[t] = k
	return k
}

// typeInfoOf computes the TypeInfo for a component type T. T must be a
// concrete, non-interface type.
func typeInfoOf[T any]() TypeInfo {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		panic("ecs: component type must be a concrete, non-interface type")
	}
	return TypeInfo{
		Key:    typeKeyFor(t),
		GoType: t,
		Size:   unsafe.Sizeof(zero),
		Align:  unsafe.Alignof(zero),
	}
}
