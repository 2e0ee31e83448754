package warehouse

import "github.com/TheBitDrifter/mask"

// World is the single handle callers create and carry around: entity
// allocation, every component's sparse set and group metadata, the change
// tick clock, and the lock bit used to defer structural mutation during
// active iteration.
type World struct {
	entities *EntityAllocator
	storage  *ComponentStorage
	clock    *tickClock
	locks    mask.Mask256
	queue    []worldOperation
}

// NewWorld builds a World over the given group layout.
func NewWorld(layout *GroupLayout) (*World, error) {
	storage, err := NewComponentStorage(layout)
	if err != nil {
		return nil, err
	}
	return &World{
		entities: NewEntityAllocator(),
		storage:  storage,
		clock:    newTickClock(),
	}, nil
}

// Storage exposes the underlying ComponentStorage, used by the
// package-level Insert/Remove/GetComp helpers that operate on it directly.
func (w *World) Storage() *ComponentStorage { return w.storage }

// Tick returns the world's current change tick.
func (w *World) Tick() Tick { return w.clock.Now() }

// Advance moves the world's change tick forward by one.
// Callers run this once per frame/system pass, after which a freshly
// recorded ChangeFilter's LastSystemTick should be set to the tick
// returned just before this call.
func (w *World) Advance() error { return w.clock.Advance() }

// NewEntity allocates a fresh entity with no components.
func (w *World) NewEntity() Entity { return w.entities.Allocate() }

// IsAlive reports whether e refers to a live entity (matching generation).
func (w *World) IsAlive(e Entity) bool { return w.entities.IsAlive(e) }

// Destroy frees e and removes every component it carried. If the world is
// currently locked the destruction is deferred to the operation queue.
func (w *World) Destroy(e Entity) error {
	if !w.entities.IsAlive(e) {
		return NoSuchEntityError{Entity: e}
	}
	if w.Locked() {
		w.queue = append(w.queue, destroyEntityOperation{entity: e})
		return nil
	}
	w.storage.DeleteAll(e)
	w.entities.Free(e)
	return nil
}

// Locked reports whether any lock bit is currently held, mirroring the
// source's storage.Locked().
func (w *World) Locked() bool {
	return !w.locks.IsEmpty()
}

// AddLock marks bit locked, preventing immediate structural mutation until
// every lock bit is released (concurrent queries must not
// restructure storage underneath an in-flight dense iteration).
func (w *World) AddLock(bit uint32) {
	w.locks.Mark(bit)
}

// RemoveLock releases bit. Once every lock bit is released, every queued
// operation runs in FIFO order.
func (w *World) RemoveLock(bit uint32) {
	w.locks.Unmark(bit)
	if w.locks.IsEmpty() {
		w.drainQueue()
	}
}

func (w *World) drainQueue() {
	pending := w.queue
	w.queue = nil
	for _, op := range pending {
		op.apply(w)
	}
}

// worldOperation is a deferred structural mutation queued while the world
// is locked (grounded on the source's operation_queue.go).
type worldOperation interface {
	apply(w *World)
}

type destroyEntityOperation struct {
	entity Entity
}

func (op destroyEntityOperation) apply(w *World) {
	_ = w.Destroy(op.entity)
}

// insertOperation defers a single-component insert until the world
// unlocks.
type insertOperation[T any] struct {
	entity Entity
	value  T
}

func (op insertOperation[T]) apply(w *World) {
	Insert(w.storage, op.entity, op.value, w.clock.Now())
}

// removeOperation defers a single-component removal until the world
// unlocks.
type removeOperation[T any] struct {
	entity Entity
}

func (op removeOperation[T]) apply(w *World) {
	Remove[T](w.storage, op.entity)
}

// EnqueueInsert inserts entity's T component immediately if the world is
// unlocked, or defers it to run once every lock is released.
func EnqueueInsert[T any](w *World, e Entity, value T) {
	if w.Locked() {
		w.queue = append(w.queue, insertOperation[T]{entity: e, value: value})
		return
	}
	Insert(w.storage, e, value, w.clock.Now())
}

// EnqueueRemove removes entity's T component immediately if the world is
// unlocked, or defers it to run once every lock is released.
func EnqueueRemove[T any](w *World, e Entity) {
	if w.Locked() {
		w.queue = append(w.queue, removeOperation[T]{entity: e})
		return
	}
	Remove[T](w.storage, e)
}
