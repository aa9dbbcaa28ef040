package ecs

import "github.com/kamstrup/intmap"

// archetypeIndex maps a sorted TypeKey set to the single archetype owning
// that exact shape. The teacher's storage.go keys archetypes directly by a
// 32-bit type-set hash (map[uint32]*Archetype), which silently merges two
// distinct type sets that happen to collide. This index instead buckets by
// hash and resolves collisions with an exact slice comparison, so
// archetype identity always matches shape identity exactly.
type archetypeIndex struct {
	buckets *intmap.Map[uint64, []int]
}

func newArchetypeIndex() *archetypeIndex {
	return &archetypeIndex{buckets: intmap.New[uint64, []int](64)}
}

// hashTypeKeys computes an FNV-1a style hash over a sorted TypeKey slice.
// Collisions are expected and handled by find's exact comparison; this only
// needs to distribute well, not be collision-free.
func hashTypeKeys(keys []TypeKey) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for _, k := range keys {
		for shift := 0; shift < 64; shift += 8 {
			h ^= (uint64(k) >> shift) & 0xff
			h *= prime64
		}
	}
	return h
}

func sameTypeKeys(a, b []TypeKey) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// find returns the index into archetypes of the archetype whose shape is
// exactly keys (already sorted), if one has been registered.
func (idx *archetypeIndex) find(keys []TypeKey, archetypes []*Archetype) (int, bool) {
	bucket, ok := idx.buckets.Get(hashTypeKeys(keys))
	if !ok {
		return 0, false
	}
	for _, archIdx := range bucket {
		if sameTypeKeys(archetypes[archIdx].typeKeys(), keys) {
			return archIdx, true
		}
	}
	return 0, false
}

// insert records that the archetype at archetypes[archetypeIdx] owns keys.
func (idx *archetypeIndex) insert(keys []TypeKey, archetypeIdx int) {
	h := hashTypeKeys(keys)
	bucket, _ := idx.buckets.Get(h)
	bucket = append(bucket, archetypeIdx)
	idx.buckets.Put(h, bucket)
}
