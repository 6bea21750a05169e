package gc

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfMemory indicates that bump allocation would exceed the heap's
	// reserved bound. Recoverable: the caller can collect and retry.
	ErrOutOfMemory = errors.New("gc: heap exhausted")

	// ErrBadLayout indicates a layout whose reference slots don't fit
	// inside the declared payload size.
	ErrBadLayout = errors.New("gc: invalid layout")

	// ErrDoubleFree indicates a release of a block that is already free.
	ErrDoubleFree = errors.New("gc: double free")

	// ErrListCorruption indicates an allocated block was found on the free
	// list, or the reverse.
	ErrListCorruption = errors.New("gc: corrupted block list")

	// ErrBadRef indicates a reference that does not resolve to a live
	// block: either never carved from this heap, or traced after the
	// block it named was released.
	ErrBadRef = errors.New("gc: bad reference")

	// ErrRootsNotDrained indicates the root stack was not empty after a
	// completed collection cycle.
	ErrRootsNotDrained = errors.New("gc: root stack not drained after collection")
)

// FatalError reports an unrecoverable fault: a client logic error such as a
// double free, or a corrupted internal invariant. The heap cannot be trusted
// afterward, so it is raised as a panic rather than returned.
type FatalError struct {
	Op  string // operation that detected the fault
	Ref Ref    // offending reference, NullRef when not applicable
	Err error
}

func (e *FatalError) Error() string {
	if e.Ref == NullRef {
		return fmt.Sprintf("gc: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gc: %s: %v (ref 0x%x)", e.Op, e.Err, uint64(e.Ref))
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// fatal raises an unrecoverable fault.
func fatal(op string, ref Ref, err error) {
	panic(&FatalError{Op: op, Ref: ref, Err: err})
}
