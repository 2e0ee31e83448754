package warehouse

import "sync/atomic"

// borrowState packs the runtime-checked borrow discipline described by
// many shared readers, or exactly one exclusive writer, for a
// single component sparse set. The corpus has no direct Go analogue of
// Rust's AtomicRefCell (registry/storages.rs wraps every SparseSet<T> in
// one), so this is a small hand-built atomic counter: 0 means free, a
// positive count is that many shared borrows, -1 means one exclusive
// borrow.
type borrowState struct {
	state int32
}

const borrowExclusive = -1

// tryBorrowShared attempts to add one shared borrow, failing if the cell is
// currently exclusively borrowed.
func (b *borrowState) tryBorrowShared() bool {
	for {
		cur := atomic.LoadInt32(&b.state)
		if cur == borrowExclusive {
			return false
		}
		if atomic.CompareAndSwapInt32(&b.state, cur, cur+1) {
			return true
		}
	}
}

// releaseShared removes one shared borrow.
func (b *borrowState) releaseShared() {
	atomic.AddInt32(&b.state, -1)
}

// tryBorrowExclusive attempts to take the sole exclusive borrow, failing if
// any borrow (shared or exclusive) is already outstanding.
func (b *borrowState) tryBorrowExclusive() bool {
	return atomic.CompareAndSwapInt32(&b.state, 0, borrowExclusive)
}

// releaseExclusive releases the exclusive borrow.
func (b *borrowState) releaseExclusive() {
	atomic.StoreInt32(&b.state, 0)
}
