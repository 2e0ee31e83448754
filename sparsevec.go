package warehouse

// sparseSlot is a single entry of a SparseVec: the dense index an entity's
// index currently maps to, plus the generation it was inserted with so a
// stale lookup (index reused by a different entity) reads as absent.
type sparseSlot struct {
	dense      uint32
	generation uint32
	occupied   bool
}

// SparseVec maps an entity's Index to a dense-array position, amortized
// O(1) for every operation. It is the bottom layer every component sparse
// set is built on.
type SparseVec struct {
	slots []sparseSlot
}

// NewSparseVec creates an empty SparseVec.
func NewSparseVec() *SparseVec {
	return &SparseVec{slots: make([]sparseSlot, 0, Config.initialSparseCapacity)}
}

func (s *SparseVec) growTo(index uint32) {
	if int(index) < len(s.slots) {
		return
	}
	newLen := index + 1
	if cap(s.slots) >= int(newLen) {
		s.slots = s.slots[:newLen]
		return
	}
	grown := make([]sparseSlot, newLen, max(int(newLen), 2*cap(s.slots)))
	copy(grown, s.slots)
	s.slots = grown
}

// Insert records that entity index maps to dense index, stamped with
// generation.
func (s *SparseVec) Insert(index uint32, dense uint32, generation uint32) {
	s.growTo(index)
	s.slots[index] = sparseSlot{dense: dense, generation: generation, occupied: true}
}

// Get returns the dense index for index if it is occupied and the stored
// generation matches, otherwise (_, false).
func (s *SparseVec) Get(index uint32, generation uint32) (uint32, bool) {
	if int(index) >= len(s.slots) {
		return 0, false
	}
	slot := s.slots[index]
	if !slot.occupied || slot.generation != generation {
		return 0, false
	}
	return slot.dense, true
}

// GetAny returns the dense index regardless of generation, used internally
// by the group engine which already holds a live Entity and only needs the
// position, not a staleness check.
func (s *SparseVec) GetAny(index uint32) (uint32, bool) {
	if int(index) >= len(s.slots) {
		return 0, false
	}
	slot := s.slots[index]
	return slot.dense, slot.occupied
}

// Contains reports whether entity is present with a matching generation.
func (s *SparseVec) Contains(e Entity) bool {
	_, ok := s.Get(e.Index, e.Generation)
	return ok
}

// Remove clears the slot for index, returning the dense index it held.
func (s *SparseVec) Remove(index uint32) (uint32, bool) {
	if int(index) >= len(s.slots) {
		return 0, false
	}
	slot := s.slots[index]
	if !slot.occupied {
		return 0, false
	}
	s.slots[index] = sparseSlot{}
	return slot.dense, true
}

// SetDense updates the dense index stored for an already-occupied index,
// without touching its generation. Used when a swap moves an entity to a
// new dense position.
func (s *SparseVec) SetDense(index uint32, dense uint32) {
	if int(index) < len(s.slots) {
		s.slots[index].dense = dense
	}
}
