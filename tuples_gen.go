package warehouse

// This file implements multi-component insert/remove as a single combined
// group pass: a tuple of components can span more than one
// family, and each affected family must run its group/ungroup pass exactly
// once, not once per component. Arities 1 through 8 are hand-written here
// the way the source's component_storage.rs generates its ComponentSet
// impls per tuple arity, since Go generics can't express a variadic
// heterogeneous tuple.

// InsertBundle1 is equivalent to Insert; provided for symmetry with the
// higher arities.
func InsertBundle1[A any](s *ComponentStorage, e Entity, a A, tick Tick) {
	Insert(s, e, a, tick)
}

// RemoveBundle1 is equivalent to Remove; provided for symmetry with the
// higher arities.
func RemoveBundle1[A any](s *ComponentStorage, e Entity) {
	Remove[A](s, e)
}

// InsertBundle2 inserts A and B, then runs one combined group pass across
// both of their families.
func InsertBundle2[A, B any](s *ComponentStorage, e Entity, a A, b B, tick Tick) {
	setA, metaA := getSet[A](s)
	setB, metaB := getSet[B](s)
	setA.Insert(e, a, tick)
	setB.Insert(e, b, tick)
	runGroupPass(s.sets, s.groups, affectedInsertRanges(metaA, metaB), e)
}

// RemoveBundle2 runs one combined ungroup pass across A and B's families,
// then removes both components.
func RemoveBundle2[A, B any](s *ComponentStorage, e Entity) {
	setA, metaA := getSet[A](s)
	setB, metaB := getSet[B](s)
	runUngroupPass(s.sets, s.groups, affectedDeleteRanges(metaA, metaB), e)
	setA.Remove(e)
	setB.Remove(e)
}

// InsertBundle3 inserts A, B and C, then runs one combined group pass.
func InsertBundle3[A, B, C any](s *ComponentStorage, e Entity, a A, b B, c C, tick Tick) {
	setA, metaA := getSet[A](s)
	setB, metaB := getSet[B](s)
	setC, metaC := getSet[C](s)
	setA.Insert(e, a, tick)
	setB.Insert(e, b, tick)
	setC.Insert(e, c, tick)
	runGroupPass(s.sets, s.groups, affectedInsertRanges(metaA, metaB, metaC), e)
}

// RemoveBundle3 runs one combined ungroup pass, then removes A, B and C.
func RemoveBundle3[A, B, C any](s *ComponentStorage, e Entity) {
	setA, metaA := getSet[A](s)
	setB, metaB := getSet[B](s)
	setC, metaC := getSet[C](s)
	runUngroupPass(s.sets, s.groups, affectedDeleteRanges(metaA, metaB, metaC), e)
	setA.Remove(e)
	setB.Remove(e)
	setC.Remove(e)
}

// InsertBundle4 inserts A, B, C and D, then runs one combined group pass.
func InsertBundle4[A, B, C, D any](s *ComponentStorage, e Entity, a A, b B, c C, d D, tick Tick) {
	setA, metaA := getSet[A](s)
	setB, metaB := getSet[B](s)
	setC, metaC := getSet[C](s)
	setD, metaD := getSet[D](s)
	setA.Insert(e, a, tick)
	setB.Insert(e, b, tick)
	setC.Insert(e, c, tick)
	setD.Insert(e, d, tick)
	runGroupPass(s.sets, s.groups, affectedInsertRanges(metaA, metaB, metaC, metaD), e)
}

// RemoveBundle4 runs one combined ungroup pass, then removes A, B, C and D.
func RemoveBundle4[A, B, C, D any](s *ComponentStorage, e Entity) {
	setA, metaA := getSet[A](s)
	setB, metaB := getSet[B](s)
	setC, metaC := getSet[C](s)
	setD, metaD := getSet[D](s)
	runUngroupPass(s.sets, s.groups, affectedDeleteRanges(metaA, metaB, metaC, metaD), e)
	setA.Remove(e)
	setB.Remove(e)
	setC.Remove(e)
	setD.Remove(e)
}

// InsertBundle5 inserts A through E, then runs one combined group pass.
func InsertBundle5[A, B, C, D, E any](s *ComponentStorage, e Entity, a A, b B, c C, d D, ev E, tick Tick) {
	setA, metaA := getSet[A](s)
	setB, metaB := getSet[B](s)
	setC, metaC := getSet[C](s)
	setD, metaD := getSet[D](s)
	setE, metaE := getSet[E](s)
	setA.Insert(e, a, tick)
	setB.Insert(e, b, tick)
	setC.Insert(e, c, tick)
	setD.Insert(e, d, tick)
	setE.Insert(e, ev, tick)
	runGroupPass(s.sets, s.groups, affectedInsertRanges(metaA, metaB, metaC, metaD, metaE), e)
}

// RemoveBundle5 runs one combined ungroup pass, then removes A through E.
func RemoveBundle5[A, B, C, D, E any](s *ComponentStorage, e Entity) {
	setA, metaA := getSet[A](s)
	setB, metaB := getSet[B](s)
	setC, metaC := getSet[C](s)
	setD, metaD := getSet[D](s)
	setE, metaE := getSet[E](s)
	runUngroupPass(s.sets, s.groups, affectedDeleteRanges(metaA, metaB, metaC, metaD, metaE), e)
	setA.Remove(e)
	setB.Remove(e)
	setC.Remove(e)
	setD.Remove(e)
	setE.Remove(e)
}

// InsertBundle6 inserts A through F, then runs one combined group pass.
func InsertBundle6[A, B, C, D, E, F any](s *ComponentStorage, e Entity, a A, b B, c C, d D, ev E, f F, tick Tick) {
	setA, metaA := getSet[A](s)
	setB, metaB := getSet[B](s)
	setC, metaC := getSet[C](s)
	setD, metaD := getSet[D](s)
	setE, metaE := getSet[E](s)
	setF, metaF := getSet[F](s)
	setA.Insert(e, a, tick)
	setB.Insert(e, b, tick)
	setC.Insert(e, c, tick)
	setD.Insert(e, d, tick)
	setE.Insert(e, ev, tick)
	setF.Insert(e, f, tick)
	runGroupPass(s.sets, s.groups, affectedInsertRanges(metaA, metaB, metaC, metaD, metaE, metaF), e)
}

// RemoveBundle6 runs one combined ungroup pass, then removes A through F.
func RemoveBundle6[A, B, C, D, E, F any](s *ComponentStorage, e Entity) {
	setA, metaA := getSet[A](s)
	setB, metaB := getSet[B](s)
	setC, metaC := getSet[C](s)
	setD, metaD := getSet[D](s)
	setE, metaE := getSet[E](s)
	setF, metaF := getSet[F](s)
	runUngroupPass(s.sets, s.groups, affectedDeleteRanges(metaA, metaB, metaC, metaD, metaE, metaF), e)
	setA.Remove(e)
	setB.Remove(e)
	setC.Remove(e)
	setD.Remove(e)
	setE.Remove(e)
	setF.Remove(e)
}

// InsertBundle7 inserts A through G, then runs one combined group pass.
func InsertBundle7[A, B, C, D, E, F, G any](s *ComponentStorage, e Entity, a A, b B, c C, d D, ev E, f F, g G, tick Tick) {
	setA, metaA := getSet[A](s)
	setB, metaB := getSet[B](s)
	setC, metaC := getSet[C](s)
	setD, metaD := getSet[D](s)
	setE, metaE := getSet[E](s)
	setF, metaF := getSet[F](s)
	setG, metaG := getSet[G](s)
	setA.Insert(e, a, tick)
	setB.Insert(e, b, tick)
	setC.Insert(e, c, tick)
	setD.Insert(e, d, tick)
	setE.Insert(e, ev, tick)
	setF.Insert(e, f, tick)
	setG.Insert(e, g, tick)
	runGroupPass(s.sets, s.groups, affectedInsertRanges(metaA, metaB, metaC, metaD, metaE, metaF, metaG), e)
}

// RemoveBundle7 runs one combined ungroup pass, then removes A through G.
func RemoveBundle7[A, B, C, D, E, F, G any](s *ComponentStorage, e Entity) {
	setA, metaA := getSet[A](s)
	setB, metaB := getSet[B](s)
	setC, metaC := getSet[C](s)
	setD, metaD := getSet[D](s)
	setE, metaE := getSet[E](s)
	setF, metaF := getSet[F](s)
	setG, metaG := getSet[G](s)
	runUngroupPass(s.sets, s.groups, affectedDeleteRanges(metaA, metaB, metaC, metaD, metaE, metaF, metaG), e)
	setA.Remove(e)
	setB.Remove(e)
	setC.Remove(e)
	setD.Remove(e)
	setE.Remove(e)
	setF.Remove(e)
	setG.Remove(e)
}

// InsertBundle8 inserts A through H, then runs one combined group pass.
func InsertBundle8[A, B, C, D, E, F, G, H any](s *ComponentStorage, e Entity, a A, b B, c C, d D, ev E, f F, g G, h H, tick Tick) {
	setA, metaA := getSet[A](s)
	setB, metaB := getSet[B](s)
	setC, metaC := getSet[C](s)
	setD, metaD := getSet[D](s)
	setE, metaE := getSet[E](s)
	setF, metaF := getSet[F](s)
	setG, metaG := getSet[G](s)
	setH, metaH := getSet[H](s)
	setA.Insert(e, a, tick)
	setB.Insert(e, b, tick)
	setC.Insert(e, c, tick)
	setD.Insert(e, d, tick)
	setE.Insert(e, ev, tick)
	setF.Insert(e, f, tick)
	setG.Insert(e, g, tick)
	setH.Insert(e, h, tick)
	runGroupPass(s.sets, s.groups, affectedInsertRanges(metaA, metaB, metaC, metaD, metaE, metaF, metaG, metaH), e)
}

// RemoveBundle8 runs one combined ungroup pass, then removes A through H.
func RemoveBundle8[A, B, C, D, E, F, G, H any](s *ComponentStorage, e Entity) {
	setA, metaA := getSet[A](s)
	setB, metaB := getSet[B](s)
	setC, metaC := getSet[C](s)
	setD, metaD := getSet[D](s)
	setE, metaE := getSet[E](s)
	setF, metaF := getSet[F](s)
	setG, metaG := getSet[G](s)
	setH, metaH := getSet[H](s)
	runUngroupPass(s.sets, s.groups, affectedDeleteRanges(metaA, metaB, metaC, metaD, metaE, metaF, metaG, metaH), e)
	setA.Remove(e)
	setB.Remove(e)
	setC.Remove(e)
	setD.Remove(e)
	setE.Remove(e)
	setF.Remove(e)
	setG.Remove(e)
	setH.Remove(e)
}
