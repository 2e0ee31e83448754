package warehouse

import "iter"

// excluder is the minimal view surface a Without() argument needs: enough
// to resolve a group window on the dense path, and a direct membership
// test for the sparse fallback path. Comp[T] satisfies this for any T.
type excluder interface {
	Contains(Entity) bool
	GroupInfo() GroupInfo
}

// queryWindow computes the dense iteration range [lo, hi) that exactly
// satisfies include (and, if exclude != nil, excludes it), or ok == false
// if no group boundary lines up with the request and sparse iteration must
// be used instead.
func queryWindow(groups []groupLevel, include GroupInfo, exclude excluder) (lo, hi int, ok bool) {
	if exclude != nil {
		gLen, prevLen, ok := excludeGroupRange(include, exclude.GroupInfo(), groups)
		return gLen, prevLen, ok
	}
	hi, ok = groupLen(include, groups)
	return 0, hi, ok
}

// Cursor1 iterates every entity carrying a T component, honoring an
// optional exclude view and change filter, choosing a dense group-window
// walk when the views line up with a group boundary and falling back to a
// plain sparse walk of T's own dense array otherwise (grounded on the
// source's cursor.go, which already iterates via Go 1.23's range-over-func
// iter package).
func Cursor1[T any](view Comp[T], exclude excluder, filter ChangeFilter, groups []groupLevel) iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		lo, hi, dense := queryWindow(groups, view.GroupInfo(), exclude)
		if dense {
			for i := lo; i < hi; i++ {
				if !filter.matches(view.set.ticks[i]) {
					continue
				}
				if !yield(view.set.EntityAt(i), &view.set.data[i]) {
					return
				}
			}
			return
		}

		for i := 0; i < view.Len(); i++ {
			e := view.set.EntityAt(i)
			if exclude != nil && exclude.Contains(e) {
				continue
			}
			if !filter.matches(view.set.ticks[i]) {
				continue
			}
			if !yield(e, &view.set.data[i]) {
				return
			}
		}
	}
}

// ForEach2 invokes fn for every entity carrying both A and B, skipping any
// entity present in exclude and any pair that fails filterA/filterB. It
// walks a shared dense prefix when a and b's GroupInfo combine onto an
// exact group boundary, and falls back to driving iteration off whichever
// of a or b's dense array is shorter otherwise (mirrors the "pick the
// smallest set to drive iteration" sparse-fallback idiom).
func ForEach2[A, B any](a Comp[A], b Comp[B], exclude excluder, filterA, filterB ChangeFilter, groups []groupLevel, fn func(Entity, *A, *B)) {
	if combined, ok := a.GroupInfo().Combine(b.GroupInfo()); ok {
		if lo, hi, dense := queryWindow(groups, combined, exclude); dense {
			for i := lo; i < hi; i++ {
				if !filterA.matches(a.set.ticks[i]) || !filterB.matches(b.set.ticks[i]) {
					continue
				}
				fn(a.set.EntityAt(i), &a.set.data[i], &b.set.data[i])
			}
			return
		}
	}

	if a.Len() <= b.Len() {
		for i := 0; i < a.Len(); i++ {
			e := a.set.EntityAt(i)
			bv, ok := b.Get(e)
			if !ok || (exclude != nil && exclude.Contains(e)) {
				continue
			}
			if !filterA.matches(a.set.ticks[i]) {
				continue
			}
			if bt, ok := b.set.GetTicks(e); ok && !filterB.matches(*bt) {
				continue
			}
			fn(e, &a.set.data[i], bv)
		}
		return
	}

	for i := 0; i < b.Len(); i++ {
		e := b.set.EntityAt(i)
		av, ok := a.Get(e)
		if !ok || (exclude != nil && exclude.Contains(e)) {
			continue
		}
		if !filterB.matches(b.set.ticks[i]) {
			continue
		}
		if at, ok := a.set.GetTicks(e); ok && !filterA.matches(*at) {
			continue
		}
		fn(e, av, &b.set.data[i])
	}
}

// ForEach3 invokes fn for every entity carrying A, B and C, following the
// same dense/sparse strategy as ForEach2 with A driving the sparse
// fallback (A is always the narrowest caller-ordered filter in practice;
// callers that want a different driver reorder their arguments).
func ForEach3[A, B, C any](a Comp[A], b Comp[B], c Comp[C], exclude excluder, fA, fB, fC ChangeFilter, groups []groupLevel, fn func(Entity, *A, *B, *C)) {
	if ab, ok := a.GroupInfo().Combine(b.GroupInfo()); ok {
		if abc, ok2 := ab.Combine(c.GroupInfo()); ok2 {
			if lo, hi, dense := queryWindow(groups, abc, exclude); dense {
				for i := lo; i < hi; i++ {
					if !fA.matches(a.set.ticks[i]) || !fB.matches(b.set.ticks[i]) || !fC.matches(c.set.ticks[i]) {
						continue
					}
					fn(a.set.EntityAt(i), &a.set.data[i], &b.set.data[i], &c.set.data[i])
				}
				return
			}
		}
	}

	for i := 0; i < a.Len(); i++ {
		e := a.set.EntityAt(i)
		if exclude != nil && exclude.Contains(e) {
			continue
		}
		bv, ok := b.Get(e)
		if !ok {
			continue
		}
		cv, ok := c.Get(e)
		if !ok {
			continue
		}
		if !fA.matches(a.set.ticks[i]) {
			continue
		}
		if bt, ok := b.set.GetTicks(e); ok && !fB.matches(*bt) {
			continue
		}
		if ct, ok := c.set.GetTicks(e); ok && !fC.matches(*ct) {
			continue
		}
		fn(e, &a.set.data[i], bv, cv)
	}
}

// Get1 checks exclude, then returns entity's T value (source's Query::get,
// restricted to a single base view).
func Get1[T any](view Comp[T], exclude excluder, e Entity) (*T, bool) {
	if exclude != nil && exclude.Contains(e) {
		return nil, false
	}
	return view.Get(e)
}

// Get2 checks exclude, then fetches both base views' slots for entity.
func Get2[A, B any](a Comp[A], b Comp[B], exclude excluder, e Entity) (*A, *B, bool) {
	if exclude != nil && exclude.Contains(e) {
		return nil, nil, false
	}
	av, ok := a.Get(e)
	if !ok {
		return nil, nil, false
	}
	bv, ok := b.Get(e)
	if !ok {
		return nil, nil, false
	}
	return av, bv, true
}

// Get3 checks exclude, then fetches all three base views' slots for entity.
func Get3[A, B, C any](a Comp[A], b Comp[B], c Comp[C], exclude excluder, e Entity) (*A, *B, *C, bool) {
	if exclude != nil && exclude.Contains(e) {
		return nil, nil, nil, false
	}
	av, ok := a.Get(e)
	if !ok {
		return nil, nil, nil, false
	}
	bv, ok := b.Get(e)
	if !ok {
		return nil, nil, nil, false
	}
	cv, ok := c.Get(e)
	if !ok {
		return nil, nil, nil, false
	}
	return av, bv, cv, true
}

// Slice1 returns the parallel entity/data slices over [lo, hi), valid only
// when lo, hi came from a fully grouped query window (Cursor1/ForEach.. when
// they chose the dense path, or groupLen/excludeGroupRange directly).
func Slice1[T any](view Comp[T], lo, hi int) ([]Entity, []T) {
	set := view.set
	return set.entities[lo:hi], set.data[lo:hi]
}

// Slice2 returns the parallel entity/data slices over [lo, hi) for a
// dense-grouped two-view query.
func Slice2[A, B any](a Comp[A], b Comp[B], lo, hi int) ([]Entity, []A, []B) {
	return a.set.entities[lo:hi], a.set.data[lo:hi], b.set.data[lo:hi]
}

// Slice3 returns the parallel entity/data slices over [lo, hi) for a
// dense-grouped three-view query.
func Slice3[A, B, C any](a Comp[A], b Comp[B], c Comp[C], lo, hi int) ([]Entity, []A, []B, []C) {
	return a.set.entities[lo:hi], a.set.data[lo:hi], b.set.data[lo:hi], c.set.data[lo:hi]
}

// ForEach4 invokes fn for every entity carrying A, B, C and D.
func ForEach4[A, B, C, D any](a Comp[A], b Comp[B], c Comp[C], d Comp[D], exclude excluder, fA, fB, fC, fD ChangeFilter, groups []groupLevel, fn func(Entity, *A, *B, *C, *D)) {
	if ab, ok := a.GroupInfo().Combine(b.GroupInfo()); ok {
		if abc, ok2 := ab.Combine(c.GroupInfo()); ok2 {
			if abcd, ok3 := abc.Combine(d.GroupInfo()); ok3 {
				if lo, hi, dense := queryWindow(groups, abcd, exclude); dense {
					for i := lo; i < hi; i++ {
						if !fA.matches(a.set.ticks[i]) || !fB.matches(b.set.ticks[i]) || !fC.matches(c.set.ticks[i]) || !fD.matches(d.set.ticks[i]) {
							continue
						}
						fn(a.set.EntityAt(i), &a.set.data[i], &b.set.data[i], &c.set.data[i], &d.set.data[i])
					}
					return
				}
			}
		}
	}

	for i := 0; i < a.Len(); i++ {
		e := a.set.EntityAt(i)
		if exclude != nil && exclude.Contains(e) {
			continue
		}
		bv, ok := b.Get(e)
		if !ok {
			continue
		}
		cv, ok := c.Get(e)
		if !ok {
			continue
		}
		dv, ok := d.Get(e)
		if !ok {
			continue
		}
		if !fA.matches(a.set.ticks[i]) {
			continue
		}
		if bt, ok := b.set.GetTicks(e); ok && !fB.matches(*bt) {
			continue
		}
		if ct, ok := c.set.GetTicks(e); ok && !fC.matches(*ct) {
			continue
		}
		if dt, ok := d.set.GetTicks(e); ok && !fD.matches(*dt) {
			continue
		}
		fn(e, &a.set.data[i], bv, cv, dv)
	}
}
