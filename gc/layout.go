package gc

import (
	"fmt"

	"github.com/IQ01660/garbage-collector/internal/format"
)

// Layout describes where embedded references live within an object's
// payload. Layouts are consumed read-only and are typically shared by many
// objects; the heap never mutates one, and a layout must outlive every
// object allocated with it.
type Layout struct {
	// Size is the total payload size in bytes.
	Size uint64

	// PtrOffsets lists the byte offsets of the reference slots, each
	// measured from the start of the payload and addressing an 8-byte
	// little-endian Ref value.
	PtrOffsets []uint64
}

// validate checks that every reference slot fits inside the payload.
func (l *Layout) validate() error {
	if l == nil {
		return fmt.Errorf("%w: nil layout", ErrBadLayout)
	}
	for _, off := range l.PtrOffsets {
		if off > l.Size || l.Size-off < format.RefSize {
			return fmt.Errorf("%w: slot at offset %d exceeds payload size %d", ErrBadLayout, off, l.Size)
		}
	}
	return nil
}
