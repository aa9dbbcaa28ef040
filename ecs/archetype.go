package ecs

import (
	"fmt"
	"unsafe"
)

// Archetype is the columnar storage for every entity that shares one exact
// component-type set. Rows are dense and swap-compacted: row indices below
// Len() always hold a live entity, with no holes to skip during iteration.
//
// The spec describes a column as a raw aligned byte buffer the caller
// indexes by hand. That design assumes manual memory management; under a
// garbage collector it would hide component-typed pointers from the GC
// inside an opaque []byte, which is unsound the moment a component holds a
// pointer, slice, map, or interface field. Each column here is instead a
// genericColumn[T] — a real []T slice — type-erased to the column interface
// only at the Archetype boundary, so the GC always sees T's true layout.
type Archetype struct {
	index   int
	types   []TypeInfo
	columns []column

	entities []Entity
	borrows  *BorrowState
}

func newArchetype(index int, types []TypeInfo, registry *ComponentRegistry, borrows *BorrowState) *Archetype {
	columns := make([]column, len(types))
	for i, info := range types {
		factory, ok := registry.factoryFor(info.Key)
		if !ok {
			panic(fmt.Sprintf("ecs: component type %s was never registered", info.GoType))
		}
		columns[i] = factory()
		borrows.Ensure(info.Key)
	}
	return &Archetype{index: index, types: types, columns: columns, borrows: borrows}
}

// Index returns this archetype's stable position in World's archetype
// table.
func (a *Archetype) Index() int { return a.index }

// Types returns the archetype's component-type set, sorted by TypeKey.
func (a *Archetype) Types() []TypeInfo { return a.types }

// Len returns the number of live entities currently stored in this
// archetype.
func (a *Archetype) Len() int { return len(a.entities) }

// EntityAt returns the entity occupying row.
func (a *Archetype) EntityAt(row int) Entity { return a.entities[row] }

func (a *Archetype) typeKeys() []TypeKey {
	keys := make([]TypeKey, len(a.types))
	for i, t := range a.types {
		keys[i] = t.Key
	}
	return keys
}

// HasType reports whether this archetype's shape includes key.
func (a *Archetype) HasType(key TypeKey) bool {
	_, ok := a.columnIndexForKey(key)
	return ok
}

func (a *Archetype) columnIndexForKey(key TypeKey) (int, bool) {
	for i, t := range a.types {
		if t.Key == key {
			return i, true
		}
	}
	return -1, false
}

// allocate appends a new row for e, growing every column by one zero-valued
// slot, and returns the row index.
func (a *Archetype) allocate(e Entity) int {
	row := len(a.entities)
	a.entities = append(a.entities, e)
	for _, c := range a.columns {
		c.push()
	}
	return row
}

// remove swap-removes row. If a different row was moved into row's place to
// keep storage dense, it returns that relocated entity and true so the
// caller can patch its metadata; otherwise it returns the zero Entity and
// false.
func (a *Archetype) remove(row int) (moved Entity, ok bool) {
	last := len(a.entities) - 1
	for _, c := range a.columns {
		c.swapRemove(row)
	}
	if row != last {
		moved = a.entities[last]
		ok = true
	}
	a.entities[row] = a.entities[last]
	a.entities = a.entities[:last]
	return moved, ok
}

// moveOverlapInto allocates a row for e in dst and copies every column this
// archetype shares with dst from srcRow into the new row. It returns the new
// row. Columns present in dst but absent here are left at their zero value
// for the caller to fill; the caller is expected to remove srcRow from a
// afterward.
func (a *Archetype) moveOverlapInto(dst *Archetype, srcRow int, e Entity) int {
	dstRow := dst.allocate(e)
	for i, t := range a.types {
		dstIdx, ok := dst.columnIndexForKey(t.Key)
		if !ok {
			continue
		}
		dst.columns[dstIdx].copyRowFrom(a.columns[i], srcRow, dstRow)
	}
	return dstRow
}

// putDynamic writes v (dynamically typed) into row's cell for component key.
// It panics if key is not part of this archetype's shape.
func (a *Archetype) putDynamic(row int, key TypeKey, v any) {
	idx, ok := a.columnIndexForKey(key)
	if !ok {
		panic(fmt.Sprintf("ecs: archetype has no column for type key %d", key))
	}
	a.columns[idx].setFromAny(row, v)
}

// PutComponent writes v into row's cell for component type T. T must be
// part of a's shape.
func PutComponent[T any](a *Archetype, row int, v T) {
	info := typeInfoOf[T]()
	idx, ok := a.columnIndexForKey(info.Key)
	if !ok {
		panic(fmt.Sprintf("ecs: archetype has no column for type %s", info.GoType))
	}
	a.columns[idx].(*genericColumn[T]).set(row, v)
}

// fetchComponent returns a pointer to row's T cell, or (nil, false) if T is
// not part of a's shape.
func fetchComponent[T any](a *Archetype, row int) (*T, bool) {
	info := typeInfoOf[T]()
	idx, ok := a.columnIndexForKey(info.Key)
	if !ok {
		return nil, false
	}
	return a.columns[idx].(*genericColumn[T]).get(row), true
}

// componentPointer returns an untyped pointer to row's cell for key and the
// TypeInfo describing it, or (nil, TypeInfo{}, false) if key is not part of
// a's shape. It exists only for generic diagnostic tooling (see
// cmd/ecsinspect) that must display and edit arbitrary component types via
// reflection, since it cannot name T at compile time the way
// fetchComponent's callers can. It bypasses BorrowState entirely; callers
// outside single-threaded debug tooling must not use it.
func (a *Archetype) componentPointer(row int, key TypeKey) (unsafe.Pointer, TypeInfo, bool) {
	idx, ok := a.columnIndexForKey(key)
	if !ok {
		return nil, TypeInfo{}, false
	}
	return a.columns[idx].elemPointer(row), a.types[idx], true
}
