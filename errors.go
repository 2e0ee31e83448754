package warehouse

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
)

// NoSuchEntityError is returned whenever an operation is given an entity id
// that is unknown or stale (its generation has moved on). Recoverable by
// design: callers are expected to check and handle it.
type NoSuchEntityError struct {
	Entity Entity
}

func (e NoSuchEntityError) Error() string {
	return fmt.Sprintf("no such entity: %v", e.Entity)
}

// LayoutConflictError is raised at GroupLayout construction when a
// component type is reused across families, or a family's arities are not
// strictly increasing.
type LayoutConflictError struct {
	Reason string
}

func (e LayoutConflictError) Error() string {
	return fmt.Sprintf("group layout conflict: %s", e.Reason)
}

// BorrowConflictError is surfaced at the borrow call when a sparse set is
// already borrowed in a way that is incompatible with the requested
// borrow (shared-while-exclusive, or a second exclusive borrow).
type BorrowConflictError struct {
	ComponentName string
}

func (e BorrowConflictError) Error() string {
	return fmt.Sprintf("borrow conflict on component %q: already exclusively or incompatibly borrowed", e.ComponentName)
}

// missingComponentError backs the MissingComponent panic: referring to an
// unregistered component type is a programmer error, not a recoverable
// condition, so it is never returned as a value.
type missingComponentError struct {
	ComponentName string
}

func (e missingComponentError) Error() string {
	return fmt.Sprintf("component %q was not registered", e.ComponentName)
}

// panicMissingComponent halts the program for a contract violation, tracing
// the error the same way the teacher's code does for its own invariant
// violations (entity.go's SetParent/entry errors).
func panicMissingComponent(name string) {
	panic(bark.AddTrace(missingComponentError{ComponentName: name}))
}

// panicBorrowConflict halts the program for a contract violation at borrow
// time (a BorrowConflict halts rather than silently corrupting group
// invariants).
func panicBorrowConflict(name string) {
	panic(bark.AddTrace(BorrowConflictError{ComponentName: name}))
}
