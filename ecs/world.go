package ecs

import (
	"fmt"
	"iter"
	"unsafe"
)

// entityMeta is the per-slot bookkeeping World keeps for every entity ID it
// has ever issued: which generation currently owns the slot, whether it is
// alive, and if so where its components live.
type entityMeta struct {
	generation uint32
	alive      bool
	archetype  int
	row        int
}

// World owns every entity and archetype in one ECS instance. It holds no
// internal mutex: like the teacher's Storage, structural mutation (Spawn,
// Despawn, component insert/remove) is the caller's responsibility to
// serialize, while non-structural access (Get, Iter, Query) may run
// concurrently across goroutines, guarded only by BorrowState.
type World struct {
	registry *ComponentRegistry
	borrows  *BorrowState

	entities []entityMeta
	free     []uint32
	retired  int

	archetypes []*Archetype
	index      *archetypeIndex
}

// NewWorld returns an empty World backed by registry. registry may be
// shared by multiple worlds; TypeKey assignment is process-global, but each
// World's ComponentRegistry determines which types it accepts.
func NewWorld(registry *ComponentRegistry) *World {
	w := &World{
		registry: registry,
		borrows:  NewBorrowState(),
		index:    newArchetypeIndex(),
	}
	w.getOrCreateArchetype(nil)
	return w
}

// getOrCreateArchetype returns the archetype for exactly this set of
// component types (order-independent), creating it if this is the first
// time this shape has been seen.
func (w *World) getOrCreateArchetype(infos []TypeInfo) *Archetype {
	sorted := canonicalizeBundleTypes(infos)
	keys := bundleKeys(sorted)

	if idx, ok := w.index.find(keys, w.archetypes); ok {
		return w.archetypes[idx]
	}

	archIdx := len(w.archetypes)
	arch := newArchetype(archIdx, sorted, w.registry, w.borrows)
	w.archetypes = append(w.archetypes, arch)
	w.index.insert(keys, archIdx)
	return arch
}

// Archetypes returns every archetype currently registered with w, in
// creation order. It is intended for diagnostic tooling (see cmd/ecsinspect)
// and should not be used to bypass Query/GetComponent borrow tracking.
func (w *World) Archetypes() []*Archetype {
	out := make([]*Archetype, len(w.archetypes))
	copy(out, w.archetypes)
	return out
}

// Registry returns the ComponentRegistry w was constructed with, for
// diagnostic tooling (see cmd/ecsinspect) that needs to enumerate every
// component type known to w.
func (w *World) Registry() *ComponentRegistry { return w.registry }

// Borrows returns w's BorrowState, for diagnostic tooling (see
// cmd/ecsinspect) that needs to display current borrow pressure per
// component type. Acquiring or releasing borrows directly against the
// returned state, outside GetComponent/GetComponentMut/Query, voids the
// aliasing guarantee the rest of this package provides.
func (w *World) Borrows() *BorrowState { return w.borrows }

// ComponentPointer returns an untyped pointer to e's cell for component key,
// along with the TypeInfo describing it. It exists for generic diagnostic
// tooling (see cmd/ecsinspect) that displays and edits arbitrary component
// types via reflection and so cannot use the typed GetComponent/
// GetComponentMut accessors. It does not take a borrow; callers outside
// single-threaded debug tooling must not use it.
func (w *World) ComponentPointer(e Entity, key TypeKey) (unsafe.Pointer, TypeInfo, error) {
	meta, ok := w.metaFor(e)
	if !ok {
		return nil, TypeInfo{}, ErrNoSuchEntity
	}
	arch := w.archetypes[meta.archetype]
	ptr, info, ok := arch.componentPointer(meta.row, key)
	if !ok {
		return nil, TypeInfo{}, ErrComponentNotFound
	}
	return ptr, info, nil
}

// Spawn creates a new entity holding bundle's components and returns its
// handle.
func (w *World) Spawn(bundle Bundle) Entity {
	arch := w.getOrCreateArchetype(bundle.TypeInfos())

	var id uint32
	var meta *entityMeta
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
		meta = &w.entities[id]
	} else {
		id = uint32(len(w.entities))
		w.entities = append(w.entities, entityMeta{})
		meta = &w.entities[id]
	}

	meta.alive = true
	e := Entity{id: id, generation: meta.generation}

	row := arch.allocate(e)
	bundle.Store(arch, row)

	meta.archetype = arch.index
	meta.row = row
	return e
}

func (w *World) metaFor(e Entity) (*entityMeta, bool) {
	if int(e.id) >= len(w.entities) {
		return nil, false
	}
	meta := &w.entities[e.id]
	if !meta.alive || meta.generation != e.generation {
		return nil, false
	}
	return meta, true
}

// Contains reports whether e refers to a currently live entity.
func (w *World) Contains(e Entity) bool {
	_, ok := w.metaFor(e)
	return ok
}

// Despawn removes e and all of its components. It returns ErrNoSuchEntity
// if e is not currently alive.
func (w *World) Despawn(e Entity) error {
	meta, ok := w.metaFor(e)
	if !ok {
		return ErrNoSuchEntity
	}

	arch := w.archetypes[meta.archetype]
	moved, hadMove := arch.remove(meta.row)
	if hadMove {
		w.entities[moved.id].row = meta.row
	}

	meta.alive = false
	// Retire the slot on generation wraparound rather than risk a new
	// entity colliding with a stale handle that still names this ID.
	meta.generation++
	if meta.generation == 0 {
		w.retired++
		return nil
	}
	w.free = append(w.free, e.id)
	return nil
}

// Entity returns an EntityRef for e, for lazy per-component access. It
// returns ErrNoSuchEntity if e is not currently alive.
func (w *World) Entity(e Entity) (*EntityRef, error) {
	if !w.Contains(e) {
		return nil, ErrNoSuchEntity
	}
	return &EntityRef{world: w, entity: e}, nil
}

// Iter returns an iterator over every live entity and its EntityRef, across
// every archetype.
func (w *World) Iter() iter.Seq2[Entity, *EntityRef] {
	return func(yield func(Entity, *EntityRef) bool) {
		for _, arch := range w.archetypes {
			for row := 0; row < arch.Len(); row++ {
				e := arch.EntityAt(row)
				if !yield(e, &EntityRef{world: w, entity: e}) {
					return
				}
			}
		}
	}
}

// lookupComponent resolves e's live meta and fetches a pointer to its T
// component without panicking when the component is absent. It is the
// shared core of both the direct typed accessors below, which turn a
// missing component into a panic, and the EntityRef accessors in
// entityref.go, which report it as ErrComponentNotFound instead — looking
// up an entity's component by type is a query-shape decision the caller
// made at compile time; asking an EntityRef for a type it turns out not to
// carry is an ordinary, expected outcome of not knowing its shape ahead of
// time.
func lookupComponent[T any](w *World, e Entity) (*T, bool, error) {
	meta, ok := w.metaFor(e)
	if !ok {
		return nil, false, ErrNoSuchEntity
	}
	arch := w.archetypes[meta.archetype]
	ptr, ok := fetchComponent[T](arch, meta.row)
	return ptr, ok, nil
}

func missingComponentMessage[T any](e Entity) string {
	return fmt.Sprintf("ecs: entity %s has no component %s", e, typeInfoOf[T]().GoType)
}

// GetComponent returns a shared guard over e's T component. The caller must
// call Release when done; holding it prevents any exclusive borrow of T
// until released. It returns ErrNoSuchEntity if e is not alive, and panics
// if e is alive but its archetype does not carry T — missing components on
// a typed accessor are a query-shape error, not a recoverable lookup
// failure.
func GetComponent[T any](w *World, e Entity) (*Ref[T], error) {
	ptr, ok, err := lookupComponent[T](w, e)
	if err != nil {
		return nil, err
	}
	if !ok {
		panic(missingComponentMessage[T](e))
	}
	info := typeInfoOf[T]()
	w.borrows.AcquireShared(info)
	return &Ref[T]{ptr: ptr, release: func() { w.borrows.ReleaseShared(info) }}, nil
}

// GetComponentMut returns an exclusive guard over e's T component. Its
// error/panic behavior mirrors GetComponent.
func GetComponentMut[T any](w *World, e Entity) (*RefMut[T], error) {
	ptr, ok, err := lookupComponent[T](w, e)
	if err != nil {
		return nil, err
	}
	if !ok {
		panic(missingComponentMessage[T](e))
	}
	info := typeInfoOf[T]()
	w.borrows.AcquireExclusive(info)
	return &RefMut[T]{ptr: ptr, release: func() { w.borrows.ReleaseExclusive(info) }}, nil
}

// InsertComponent adds or overwrites e's T component with v. If e's
// archetype already has a T column, the value is overwritten in place
// (the old value is explicitly zeroed first, matching every other column
// mutation's drop discipline). Otherwise e is moved to the archetype for
// its old shape plus T, and every shared column is relocated.
func InsertComponent[T any](w *World, e Entity, v T) error {
	meta, ok := w.metaFor(e)
	if !ok {
		return ErrNoSuchEntity
	}
	arch := w.archetypes[meta.archetype]
	info := typeInfoOf[T]()

	if idx, ok := arch.columnIndexForKey(info.Key); ok {
		col := arch.columns[idx].(*genericColumn[T])
		var zero T
		col.set(meta.row, zero)
		col.set(meta.row, v)
		return nil
	}

	newTypes := append(append([]TypeInfo(nil), arch.Types()...), info)
	dst := w.getOrCreateArchetype(newTypes)

	dstRow := arch.moveOverlapInto(dst, meta.row, e)
	PutComponent(dst, dstRow, v)

	moved, hadMove := arch.remove(meta.row)
	if hadMove {
		w.entities[moved.id].row = meta.row
	}

	meta.archetype = dst.index
	meta.row = dstRow
	return nil
}

// RemoveComponent removes e's T component and returns its last value. It
// returns ErrNoSuchEntity if e is not alive, and panics if e is alive but
// its archetype does not carry T — a missing component on a typed remove
// is a programming error, not a recoverable lookup failure.
func RemoveComponent[T any](w *World, e Entity) (T, error) {
	var zero T
	meta, ok := w.metaFor(e)
	if !ok {
		return zero, ErrNoSuchEntity
	}
	arch := w.archetypes[meta.archetype]
	info := typeInfoOf[T]()

	ptr, ok := fetchComponent[T](arch, meta.row)
	if !ok {
		panic(missingComponentMessage[T](e))
	}
	taken := *ptr

	remaining := make([]TypeInfo, 0, len(arch.Types())-1)
	for _, t := range arch.Types() {
		if t.Key != info.Key {
			remaining = append(remaining, t)
		}
	}
	dst := w.getOrCreateArchetype(remaining)

	dstRow := arch.moveOverlapInto(dst, meta.row, e)

	moved, hadMove := arch.remove(meta.row)
	if hadMove {
		w.entities[moved.id].row = meta.row
	}

	meta.archetype = dst.index
	meta.row = dstRow
	return taken, nil
}
