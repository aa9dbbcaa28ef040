package ecs

// EntityRef is a lazy handle to a single live entity's components, handed
// out by World.Entity and World.Iter. It re-resolves the entity's current
// archetype and row on every access, so it stays valid across structural
// mutation of other entities (but not across the referenced entity's own
// despawn, at which point GetFromRef and GetMutFromRef return
// ErrNoSuchEntity).
type EntityRef struct {
	world  *World
	entity Entity
}

// Entity returns the handle this ref was built from.
func (r *EntityRef) Entity() Entity { return r.entity }

// GetFromRef returns a shared guard over r's T component. Unlike
// GetComponent, it returns ErrComponentNotFound rather than panicking when
// r's entity doesn't carry T: a ref handed out by iteration or World.Entity
// doesn't know its own shape ahead of time, so "does this entity have a T"
// is an ordinary query here, not a call-site type error.
func GetFromRef[T any](r *EntityRef) (*Ref[T], error) {
	ptr, ok, err := lookupComponent[T](r.world, r.entity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrComponentNotFound
	}
	info := typeInfoOf[T]()
	r.world.borrows.AcquireShared(info)
	return &Ref[T]{ptr: ptr, release: func() { r.world.borrows.ReleaseShared(info) }}, nil
}

// GetMutFromRef returns an exclusive guard over r's T component. Its
// error behavior mirrors GetFromRef.
func GetMutFromRef[T any](r *EntityRef) (*RefMut[T], error) {
	ptr, ok, err := lookupComponent[T](r.world, r.entity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrComponentNotFound
	}
	info := typeInfoOf[T]()
	r.world.borrows.AcquireExclusive(info)
	return &RefMut[T]{ptr: ptr, release: func() { r.world.borrows.ReleaseExclusive(info) }}, nil
}
