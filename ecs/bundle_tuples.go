package ecs

//go:generate go run ../cmd/ecsgen -min 9 -max 15 -out bundle_tuples_gen.go

// bundle0..bundle8 are hand-written fixed-arity Bundle implementations.
// cmd/ecsgen produces bundle_tuples_gen.go for arities 9 through 15 in the
// same shape; these nine are kept hand-written because they are the
// overwhelming common case and hand-written code is easier to read than
// generated code for a reader skimming the package.

type bundle0 struct{}

// Bundle0 returns an empty Bundle, used to spawn an entity with no
// components.
func Bundle0() Bundle { return bundle0{} }

func (bundle0) TypeKeys() []TypeKey   { return nil }
func (bundle0) TypeInfos() []TypeInfo { return nil }
func (bundle0) Store(a *Archetype, row int) {}

type bundle1[T1 any] struct {
	infos []TypeInfo
	v1    T1
}

// Bundle1 returns a Bundle holding a single component value.
func Bundle1[T1 any](v1 T1) Bundle {
	infos := canonicalizeBundleTypes([]TypeInfo{typeInfoOf[T1]()})
	return bundle1[T1]{infos: infos, v1: v1}
}

func (b bundle1[T1]) TypeKeys() []TypeKey   { return bundleKeys(b.infos) }
func (b bundle1[T1]) TypeInfos() []TypeInfo { return b.infos }
func (b bundle1[T1]) Store(a *Archetype, row int) {
	PutComponent(a, row, b.v1)
}

type bundle2[T1, T2 any] struct {
	infos  []TypeInfo
	v1     T1
	v2     T2
}

// Bundle2 returns a Bundle holding two component values of distinct types.
func Bundle2[T1, T2 any](v1 T1, v2 T2) Bundle {
	infos := canonicalizeBundleTypes([]TypeInfo{typeInfoOf[T1](), typeInfoOf[T2]()})
	return bundle2[T1, T2]{infos: infos, v1: v1, v2: v2}
}

func (b bundle2[T1, T2]) TypeKeys() []TypeKey   { return bundleKeys(b.infos) }
func (b bundle2[T1, T2]) TypeInfos() []TypeInfo { return b.infos }
func (b bundle2[T1, T2]) Store(a *Archetype, row int) {
	PutComponent(a, row, b.v1)
	PutComponent(a, row, b.v2)
}

type bundle3[T1, T2, T3 any] struct {
	infos []TypeInfo
	v1    T1
	v2    T2
	v3    T3
}

// Bundle3 returns a Bundle holding three component values of distinct
// types.
func Bundle3[T1, T2, T3 any](v1 T1, v2 T2, v3 T3) Bundle {
	infos := canonicalizeBundleTypes([]TypeInfo{typeInfoOf[T1](), typeInfoOf[T2](), typeInfoOf[T3]()})
	return bundle3[T1, T2, T3]{infos: infos, v1: v1, v2: v2, v3: v3}
}

func (b bundle3[T1, T2, T3]) TypeKeys() []TypeKey   { return bundleKeys(b.infos) }
func (b bundle3[T1, T2, T3]) TypeInfos() []TypeInfo { return b.infos }
func (b bundle3[T1, T2, T3]) Store(a *Archetype, row int) {
	PutComponent(a, row, b.v1)
	PutComponent(a, row, b.v2)
	PutComponent(a, row, b.v3)
}

type bundle4[T1, T2, T3, T4 any] struct {
	infos []TypeInfo
	v1    T1
	v2    T2
	v3    T3
	v4    T4
}

// Bundle4 returns a Bundle holding four component values of distinct types.
func Bundle4[T1, T2, T3, T4 any](v1 T1, v2 T2, v3 T3, v4 T4) Bundle {
	infos := canonicalizeBundleTypes([]TypeInfo{typeInfoOf[T1](), typeInfoOf[T2](), typeInfoOf[T3](), typeInfoOf[T4]()})
	return bundle4[T1, T2, T3, T4]{infos: infos, v1: v1, v2: v2, v3: v3, v4: v4}
}

func (b bundle4[T1, T2, T3, T4]) TypeKeys() []TypeKey   { return bundleKeys(b.infos) }
func (b bundle4[T1, T2, T3, T4]) TypeInfos() []TypeInfo { return b.infos }
func (b bundle4[T1, T2, T3, T4]) Store(a *Archetype, row int) {
	PutComponent(a, row, b.v1)
	PutComponent(a, row, b.v2)
	PutComponent(a, row, b.v3)
	PutComponent(a, row, b.v4)
}

type bundle5[T1, T2, T3, T4, T5 any] struct {
	infos []TypeInfo
	v1    T1
	v2    T2
	v3    T3
	v4    T4
	v5    T5
}

// Bundle5 returns a Bundle holding five component values of distinct types.
func Bundle5[T1, T2, T3, T4, T5 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) Bundle {
	infos := canonicalizeBundleTypes([]TypeInfo{
		typeInfoOf[T1](), typeInfoOf[T2](), typeInfoOf[T3](), typeInfoOf[T4](), typeInfoOf[T5](),
	})
	return bundle5[T1, T2, T3, T4, T5]{infos: infos, v1: v1, v2: v2, v3: v3, v4: v4, v5: v5}
}

func (b bundle5[T1, T2, T3, T4, T5]) TypeKeys() []TypeKey   { return bundleKeys(b.infos) }
func (b bundle5[T1, T2, T3, T4, T5]) TypeInfos() []TypeInfo { return b.infos }
func (b bundle5[T1, T2, T3, T4, T5]) Store(a *Archetype, row int) {
	PutComponent(a, row, b.v1)
	PutComponent(a, row, b.v2)
	PutComponent(a, row, b.v3)
	PutComponent(a, row, b.v4)
	PutComponent(a, row, b.v5)
}

type bundle6[T1, T2, T3, T4, T5, T6 any] struct {
	infos []TypeInfo
	v1    T1
	v2    T2
	v3    T3
	v4    T4
	v5    T5
	v6    T6
}

// Bundle6 returns a Bundle holding six component values of distinct types.
func Bundle6[T1, T2, T3, T4, T5, T6 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) Bundle {
	infos := canonicalizeBundleTypes([]TypeInfo{
		typeInfoOf[T1](), typeInfoOf[T2](), typeInfoOf[T3](), typeInfoOf[T4](), typeInfoOf[T5](), typeInfoOf[T6](),
	})
	return bundle6[T1, T2, T3, T4, T5, T6]{infos: infos, v1: v1, v2: v2, v3: v3, v4: v4, v5: v5, v6: v6}
}

func (b bundle6[T1, T2, T3, T4, T5, T6]) TypeKeys() []TypeKey   { return bundleKeys(b.infos) }
func (b bundle6[T1, T2, T3, T4, T5, T6]) TypeInfos() []TypeInfo { return b.infos }
func (b bundle6[T1, T2, T3, T4, T5, T6]) Store(a *Archetype, row int) {
	PutComponent(a, row, b.v1)
	PutComponent(a, row, b.v2)
	PutComponent(a, row, b.v3)
	PutComponent(a, row, b.v4)
	PutComponent(a, row, b.v5)
	PutComponent(a, row, b.v6)
}

type bundle7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	infos []TypeInfo
	v1    T1
	v2    T2
	v3    T3
	v4    T4
	v5    T5
	v6    T6
	v7    T7
}

// Bundle7 returns a Bundle holding seven component values of distinct
// types.
func Bundle7[T1, T2, T3, T4, T5, T6, T7 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7) Bundle {
	infos := canonicalizeBundleTypes([]TypeInfo{
		typeInfoOf[T1](), typeInfoOf[T2](), typeInfoOf[T3](), typeInfoOf[T4](),
		typeInfoOf[T5](), typeInfoOf[T6](), typeInfoOf[T7](),
	})
	return bundle7[T1, T2, T3, T4, T5, T6, T7]{infos: infos, v1: v1, v2: v2, v3: v3, v4: v4, v5: v5, v6: v6, v7: v7}
}

func (b bundle7[T1, T2, T3, T4, T5, T6, T7]) TypeKeys() []TypeKey   { return bundleKeys(b.infos) }
func (b bundle7[T1, T2, T3, T4, T5, T6, T7]) TypeInfos() []TypeInfo { return b.infos }
func (b bundle7[T1, T2, T3, T4, T5, T6, T7]) Store(a *Archetype, row int) {
	PutComponent(a, row, b.v1)
	PutComponent(a, row, b.v2)
	PutComponent(a, row, b.v3)
	PutComponent(a, row, b.v4)
	PutComponent(a, row, b.v5)
	PutComponent(a, row, b.v6)
	PutComponent(a, row, b.v7)
}

type bundle8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	infos []TypeInfo
	v1    T1
	v2    T2
	v3    T3
	v4    T4
	v5    T5
	v6    T6
	v7    T7
	v8    T8
}

// Bundle8 returns a Bundle holding eight component values of distinct
// types.
func Bundle8[T1, T2, T3, T4, T5, T6, T7, T8 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8) Bundle {
	infos := canonicalizeBundleTypes([]TypeInfo{
		typeInfoOf[T1](), typeInfoOf[T2](), typeInfoOf[T3](), typeInfoOf[T4](),
		typeInfoOf[T5](), typeInfoOf[T6](), typeInfoOf[T7](), typeInfoOf[T8](),
	})
	return bundle8[T1, T2, T3, T4, T5, T6, T7, T8]{
		infos: infos, v1: v1, v2: v2, v3: v3, v4: v4, v5: v5, v6: v6, v7: v7, v8: v8,
	}
}

func (b bundle8[T1, T2, T3, T4, T5, T6, T7, T8]) TypeKeys() []TypeKey   { return bundleKeys(b.infos) }
func (b bundle8[T1, T2, T3, T4, T5, T6, T7, T8]) TypeInfos() []TypeInfo { return b.infos }
func (b bundle8[T1, T2, T3, T4, T5, T6, T7, T8]) Store(a *Archetype, row int) {
	PutComponent(a, row, b.v1)
	PutComponent(a, row, b.v2)
	PutComponent(a, row, b.v3)
	PutComponent(a, row, b.v4)
	PutComponent(a, row, b.v5)
	PutComponent(a, row, b.v6)
	PutComponent(a, row, b.v7)
	PutComponent(a, row, b.v8)
}
