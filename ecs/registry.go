package ecs

import (
	"fmt"
	"reflect"
	"sync"
)

// columnFactory builds a fresh, empty column for the component type it was
// captured for.
type columnFactory func() column

// ComponentRegistry maps component types to the TypeInfo and column
// factory an Archetype needs to allocate storage for them. A World holds
// exactly one ComponentRegistry, shared by every Archetype it creates.
type ComponentRegistry struct {
	mu        sync.RWMutex
	factories map[TypeKey]columnFactory
	infos     map[TypeKey]TypeInfo
}

// NewComponentRegistry returns an empty registry ready for RegisterComponent
// calls.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[TypeKey]columnFactory),
		infos:     make(map[TypeKey]TypeInfo),
	}
}

// RegisterComponent records T as a usable component type and returns its
// TypeInfo. Calling it more than once for the same T is a no-op beyond the
// first call and returns the same TypeInfo both times.
func RegisterComponent[T any](r *ComponentRegistry) TypeInfo {
	info := typeInfoOf[T]()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[info.Key]; ok {
		return r.infos[info.Key]
	}
	r.factories[info.Key] = func() column { return newGenericColumn[T](info) }
	r.infos[info.Key] = info
	return info
}

func (r *ComponentRegistry) factoryFor(key TypeKey) (columnFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[key]
	return f, ok
}

func (r *ComponentRegistry) infoFor(key TypeKey) (TypeInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.infos[key]
	return info, ok
}

// Types returns every TypeInfo registered so far, in no particular order.
// It exists for diagnostic tooling (see cmd/ecsinspect) and should not be
// used to drive application logic, which should name its component types
// directly.
func (r *ComponentRegistry) Types() []TypeInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]TypeInfo, 0, len(r.infos))
	for _, info := range r.infos {
		out = append(out, info)
	}
	return out
}

// infoForGoType resolves a reflect.Type (as found on a Query struct's
// pointer field, dereferenced) to the TypeInfo it was registered with. It
// panics if the type was never passed to RegisterComponent on this
// registry, since a Query naming an unregistered component could never
// match any archetype.
func (r *ComponentRegistry) infoForGoType(t reflect.Type) TypeInfo {
	key := typeKeyFor(t)
	info, ok := r.infoFor(key)
	if !ok {
		panic(fmt.Sprintf("ecs: component type %s was never registered", t))
	}
	return info
}
