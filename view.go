package warehouse

// Comp is a borrow-checked shared (read-only) view over one component
// type's sparse set (grounded on the source's Comp<T> wrapping an
// AtomicRef). Obtain one with GetComp and always pair it with Release.
type Comp[T any] struct {
	storage *ComponentStorage
	set     *ComponentSparseSet[T]
	meta    *componentMeta
}

// CompMut is the exclusive (read-write) counterpart of Comp.
type CompMut[T any] struct {
	storage *ComponentStorage
	set     *ComponentSparseSet[T]
	meta    *componentMeta
}

// GetComp takes a shared borrow of T's storage and returns a view over it.
// A conflicting outstanding exclusive borrow is a contract violation
// (BorrowConflict halts rather than silently corrupting group invariants,
// spec.md §7), so it panics instead of returning false.
func GetComp[T any](s *ComponentStorage) (Comp[T], bool) {
	t := componentType[T]()
	set, m := getSet[T](s)
	if !s.borrows[m.storageIndex].tryBorrowShared() {
		panicBorrowConflict(t.String())
	}
	return Comp[T]{storage: s, set: set, meta: m}, true
}

// GetCompMut takes the exclusive borrow of T's storage, panicking on a
// conflicting outstanding borrow for the same reason GetComp does.
func GetCompMut[T any](s *ComponentStorage) (CompMut[T], bool) {
	t := componentType[T]()
	set, m := getSet[T](s)
	if !s.borrows[m.storageIndex].tryBorrowExclusive() {
		panicBorrowConflict(t.String())
	}
	return CompMut[T]{storage: s, set: set, meta: m}, true
}

// Release gives up the shared borrow c was holding.
func (c Comp[T]) Release() {
	c.storage.borrows[c.meta.storageIndex].releaseShared()
}

// Release gives up the exclusive borrow c was holding.
func (c CompMut[T]) Release() {
	c.storage.borrows[c.meta.storageIndex].releaseExclusive()
}

// Get returns entity's T value, or nil if entity doesn't carry one.
func (c Comp[T]) Get(e Entity) (*T, bool) { return c.set.Get(e) }

// Get returns entity's T value, or nil if entity doesn't carry one.
func (c CompMut[T]) Get(e Entity) (*T, bool) { return c.set.Get(e) }

// GetMut returns entity's T value and stamps its Changed tick, or nil if
// entity doesn't carry one (any mutable access marks Changed).
func (c CompMut[T]) GetMut(e Entity, currentTick Tick) (*T, bool) {
	v, ok := c.set.Get(e)
	if !ok {
		return nil, false
	}
	ticks, _ := c.set.GetTicks(e)
	ticks.Changed = currentTick
	return v, true
}

// Contains reports whether entity carries a T component.
func (c Comp[T]) Contains(e Entity) bool { return c.set.Contains(e) }

// Contains reports whether entity carries a T component.
func (c CompMut[T]) Contains(e Entity) bool { return c.set.Contains(e) }

// Len returns the number of entities currently carrying T.
func (c Comp[T]) Len() int { return c.set.Len() }

// Len returns the number of entities currently carrying T.
func (c CompMut[T]) Len() int { return c.set.Len() }

// Slice exposes the dense data array, valid for dense iteration driven by a
// query's group window.
func (c Comp[T]) Slice() []T { return c.set.DataSlice() }

// Slice exposes the dense data array, valid for dense iteration driven by a
// query's group window.
func (c CompMut[T]) Slice() []T { return c.set.DataSlice() }

// GroupInfo returns the short-lived handle identifying which group family
// (if any) this view belongs to and which storage slot it claims.
// §4.E). The zero value (valid == false) means T is ungrouped.
func (c Comp[T]) GroupInfo() GroupInfo {
	if c.meta.familyID < 0 {
		return GroupInfo{}
	}
	return newGroupInfo(c.meta.familyID, c.meta.deleteRange.start, c.meta.localBit)
}

// GroupInfo returns the short-lived handle identifying which group family
// (if any) this view belongs to and which storage slot it claims.
func (c CompMut[T]) GroupInfo() GroupInfo {
	if c.meta.familyID < 0 {
		return GroupInfo{}
	}
	return newGroupInfo(c.meta.familyID, c.meta.deleteRange.start, c.meta.localBit)
}
