package warehouse

import "reflect"

// componentMeta is the static, per-component-type record ComponentStorage
// keeps once a layout is built: where its sparse set lives, and — for
// components declared inside a group family — which groups an insert or a
// removal of this component can possibly affect.
type componentMeta struct {
	storageIndex int
	familyID     int // -1 for a component outside any family
	localBit     int // position within the family's local storage-slot bit space
	insertRange  groupRange
	deleteRange  groupRange
}

// ComponentStorage owns every component sparse set plus the group metadata
// describing how they're co-sorted. It has no notion of
// entity allocation or change-tick bookkeeping beyond what callers hand it;
// World (world.go) composes this with EntityAllocator and a tickClock.
type ComponentStorage struct {
	groups   []groupLevel
	families []groupFamily
	sets     []anySparseSet
	borrows  []borrowState
	typeMeta map[reflect.Type]*componentMeta
}

// NewComponentStorage builds the group skeleton described by layout:
// storage slots, group levels and their include/exclude masks, all sized
// and ordered per the families layout declares. Every component type the
// layout names still needs a matching RegisterComponent call before it can
// be used, since a reflect.Type alone isn't enough to construct the typed
// ComponentSparseSet[T] behind it.
func NewComponentStorage(layout *GroupLayout) (*ComponentStorage, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}

	s := &ComponentStorage{typeMeta: map[reflect.Type]*componentMeta{}}

	storageCounter := 0
	groupCounter := 0

	for fi, fam := range layout.families {
		familyStorageStart := storageCounter
		familyGroupStart := groupCounter

		prevArity := 0
		for li, lvl := range fam.levels {
			arity := len(lvl.types)

			s.groups = append(s.groups, groupLevel{
				metadata: groupMetadata{
					storageStart: familyStorageStart,
					storageEnd:   familyStorageStart + arity,
					includeMask:  includeQueryMask(arity),
					excludeMask:  excludeQueryMask(prevArity, arity),
				},
			})

			introGroupIndex := familyGroupStart + li
			for bi, t := range lvl.types[prevArity:] {
				s.typeMeta[t] = &componentMeta{
					storageIndex: storageCounter,
					familyID:     fi,
					localBit:     prevArity + bi,
					insertRange:  groupRange{familyID: fi, start: introGroupIndex, end: familyGroupStart + len(fam.levels)},
					deleteRange:  groupRange{familyID: fi, start: introGroupIndex, end: familyGroupStart + len(fam.levels)},
				}
				storageCounter++
			}

			prevArity = arity
			groupCounter++
		}

		s.families = append(s.families, groupFamily{
			familyID:     fi,
			groupStart:   familyGroupStart,
			groupEnd:     groupCounter,
			storageStart: familyStorageStart,
			totalArity:   prevArity,
		})
	}

	s.sets = make([]anySparseSet, storageCounter)
	s.borrows = make([]borrowState, storageCounter)
	return s, nil
}

func (s *ComponentStorage) meta(t reflect.Type) *componentMeta {
	m, ok := s.typeMeta[t]
	if !ok {
		panicMissingComponent(t.String())
	}
	return m
}

// RegisterComponent binds T's typed sparse set into storage. Types declared
// in the layout must be registered before use; types never mentioned in any
// family are registered here on first use as plain, ungrouped sparse sets.
func RegisterComponent[T any](s *ComponentStorage) {
	t := componentType[T]()
	m, ok := s.typeMeta[t]
	if !ok {
		m = &componentMeta{storageIndex: len(s.sets), familyID: -1}
		s.typeMeta[t] = m
		s.sets = append(s.sets, nil)
		s.borrows = append(s.borrows, borrowState{})
	}
	if s.sets[m.storageIndex] == nil {
		s.sets[m.storageIndex] = NewComponentSparseSet[T]()
	}
}

func getSet[T any](s *ComponentStorage) (*ComponentSparseSet[T], *componentMeta) {
	t := componentType[T]()
	m := s.meta(t)
	set, ok := s.sets[m.storageIndex].(*ComponentSparseSet[T])
	if !ok {
		panicMissingComponent(t.String())
	}
	return set, m
}

// Insert adds or overwrites entity's T component, running the group pass
// for T's family (if any) afterward so a promotion sees the new slot
// filled. It returns the previous value and whether one existed.
func Insert[T any](s *ComponentStorage, e Entity, value T, tick Tick) (T, bool) {
	set, m := getSet[T](s)
	old, existed := set.Insert(e, value, tick)
	if m.familyID >= 0 {
		runGroupPass(s.sets, s.groups, []groupRange{m.insertRange}, e)
	}
	return old, existed
}

// Remove demotes entity out of every group T's removal can affect, then
// removes its T component, returning the removed value.
func Remove[T any](s *ComponentStorage, e Entity) (T, bool) {
	set, m := getSet[T](s)
	if !set.Contains(e) {
		var zero T
		return zero, false
	}
	if m.familyID >= 0 {
		runUngroupPass(s.sets, s.groups, []groupRange{m.deleteRange}, e)
	}
	return set.Remove(e)
}

// Has reports whether entity currently carries a T component.
func Has[T any](s *ComponentStorage, e Entity) bool {
	set, _ := getSet[T](s)
	return set.Contains(e)
}

// affectedInsertRanges merges the insert ranges of every family-bound meta
// in metas into the minimal set of per-family groupRanges, so a bundle
// insert spanning several families runs exactly one pass per family
// instead of one per component.
func affectedInsertRanges(metas ...*componentMeta) []groupRange {
	var ranges []groupRange
	for _, m := range metas {
		if m.familyID < 0 {
			continue
		}
		ranges = mergeGroupRange(ranges, m.insertRange)
	}
	return ranges
}

func affectedDeleteRanges(metas ...*componentMeta) []groupRange {
	var ranges []groupRange
	for _, m := range metas {
		if m.familyID < 0 {
			continue
		}
		ranges = mergeGroupRange(ranges, m.deleteRange)
	}
	return ranges
}

// Groups exposes the storage's group metadata slice. External callers
// composing a query out of Cursor1/ForEach2../Get2../Slice2.. need it to
// resolve a dense iteration window; they never need to name groupLevel's
// type, only pass this value straight through.
func (s *ComponentStorage) Groups() []groupLevel {
	return s.groups
}

// DeleteAll removes every component entity carries, demoting it out of
// every group of every family first. Used when an entity is
// destroyed.
func (s *ComponentStorage) DeleteAll(e Entity) {
	runUngroupAll(s.sets, s.groups, s.families, e)
	for _, set := range s.sets {
		if set == nil {
			continue
		}
		set.SwapDelete(e)
	}
}

// BorrowShared attempts a shared (read) borrow of T's storage.
func BorrowShared[T any](s *ComponentStorage) bool {
	_, m := getSet[T](s)
	return s.borrows[m.storageIndex].tryBorrowShared()
}

// ReleaseShared releases a shared borrow taken by BorrowShared[T].
func ReleaseShared[T any](s *ComponentStorage) {
	_, m := getSet[T](s)
	s.borrows[m.storageIndex].releaseShared()
}

// BorrowExclusive attempts the sole exclusive (write) borrow of T's storage.
func BorrowExclusive[T any](s *ComponentStorage) bool {
	_, m := getSet[T](s)
	return s.borrows[m.storageIndex].tryBorrowExclusive()
}

// ReleaseExclusive releases an exclusive borrow taken by BorrowExclusive[T].
func ReleaseExclusive[T any](s *ComponentStorage) {
	_, m := getSet[T](s)
	s.borrows[m.storageIndex].releaseExclusive()
}
