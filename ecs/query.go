package ecs

import (
	"fmt"
	"iter"
	"reflect"
	"unsafe"
)

// queryField describes one pointer field of a Query's result struct: which
// component type it names, whether it is required or optional, and whether
// it needs an exclusive (mutable) or shared borrow.
type queryField struct {
	info      TypeInfo
	optional  bool
	exclusive bool
	offset    uintptr
}

// Query is a cached, repeatable iteration plan over every entity whose
// archetype satisfies T's shape. T must be a struct whose fields are all
// pointers to component types; a field tagged `ecs:"optional"` is matched
// even when the archetype lacks that component (it is filled with nil
// instead), and a field tagged `ecs:"mut"` requests an exclusive borrow
// instead of the default shared one. This generalizes the teacher's
// View[T], which only ever acquires components read-only and has no borrow
// concept at all, to the full Read/Write/OptionRead/OptionWrite accessor
// vocabulary via struct tags instead of four separate generic types.
type Query[T any] struct {
	world  *World
	fields []queryField
}

// NewQuery builds a Query for struct type T against world. It panics if T
// is not a struct, if any field is not a pointer, or if a field's ecs tag
// is neither empty, "optional", "mut", nor "optional,mut" (in either
// order).
func NewQuery[T any](w *World) *Query[T] {
	var zero T
	structType := reflect.TypeOf(zero)
	if structType == nil || structType.Kind() != reflect.Struct {
		panic("ecs: Query type parameter must be a struct")
	}

	fields := make([]queryField, 0, structType.NumField())
	seen := make(map[TypeKey]bool, structType.NumField())

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("ecs: Query struct fields must be pointer types")
		}

		optional, exclusive := parseQueryTag(field.Tag.Get("ecs"))

		info := w.registry.infoForGoType(field.Type.Elem())
		if seen[info.Key] {
			panic(fmt.Sprintf("ecs: duplicate component type %s in query struct", info.GoType))
		}
		seen[info.Key] = true

		fields = append(fields, queryField{
			info:      info,
			optional:  optional,
			exclusive: exclusive,
			offset:    field.Offset,
		})
	}

	return &Query[T]{world: w, fields: fields}
}

func parseQueryTag(tag string) (optional, exclusive bool) {
	if tag == "" {
		return false, false
	}
	switch tag {
	case "optional":
		return true, false
	case "mut":
		return false, true
	case "optional,mut", "mut,optional":
		return true, true
	default:
		panic(fmt.Sprintf("ecs: invalid ecs tag value %q", tag))
	}
}

func (q *Query[T]) matches(a *Archetype) bool {
	for _, f := range q.fields {
		if f.optional {
			continue
		}
		if !a.HasType(f.info.Key) {
			return false
		}
	}
	return true
}

// acquiredBorrow records a borrow this query took out on an archetype so it
// can be symmetrically released.
type acquiredBorrow struct {
	info      TypeInfo
	exclusive bool
}

func (q *Query[T]) acquire(a *Archetype) []acquiredBorrow {
	acquired := make([]acquiredBorrow, 0, len(q.fields))
	for _, f := range q.fields {
		if !a.HasType(f.info.Key) {
			continue
		}
		if f.exclusive {
			q.world.borrows.AcquireExclusive(f.info)
		} else {
			q.world.borrows.AcquireShared(f.info)
		}
		acquired = append(acquired, acquiredBorrow{info: f.info, exclusive: f.exclusive})
	}
	return acquired
}

func (q *Query[T]) release(acquired []acquiredBorrow) {
	for _, b := range acquired {
		if b.exclusive {
			q.world.borrows.ReleaseExclusive(b.info)
		} else {
			q.world.borrows.ReleaseShared(b.info)
		}
	}
}

// Iter returns a single-pass iterator over every matching entity and its
// populated accessor struct. Borrows are held for the duration of each
// archetype's sweep and released before moving to the next archetype, so a
// consumer that mutates entities across archetype boundaries never
// self-deadlocks.
func (q *Query[T]) Iter() iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		for _, a := range q.world.archetypes {
			if a.Len() == 0 || !q.matches(a) {
				continue
			}

			acquired := q.acquire(a)
			cont := q.sweep(a, yield)
			q.release(acquired)
			if !cont {
				return
			}
		}
	}
}

func (q *Query[T]) sweep(a *Archetype, yield func(Entity, T) bool) bool {
	var result T
	resultPtr := unsafe.Pointer(&result)

	colIdx := make([]int, len(q.fields))
	for i, f := range q.fields {
		idx, ok := a.columnIndexForKey(f.info.Key)
		if !ok {
			colIdx[i] = -1
		} else {
			colIdx[i] = idx
		}
	}

	for row := 0; row < a.Len(); row++ {
		for i, f := range q.fields {
			fieldPtr := unsafe.Pointer(uintptr(resultPtr) + f.offset)
			if colIdx[i] == -1 {
				*(*unsafe.Pointer)(fieldPtr) = nil
				continue
			}
			*(*unsafe.Pointer)(fieldPtr) = a.columns[colIdx[i]].elemPointer(row)
		}
		if !yield(a.EntityAt(row), result) {
			return false
		}
	}
	return true
}

// Values returns an iterator over just the populated accessor structs,
// without entity identity.
func (q *Query[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e, v := range q.Iter() {
			_ = e
			if !yield(v) {
				return
			}
		}
	}
}
