package format

import "encoding/binary"

// Reference-slot encoding.
//
// Objects store references to other objects in fixed 8-byte slots within
// their payload, little-endian. encoding/binary is used rather than unsafe:
// the compiler inlines LittleEndian calls and the bounds checks catch bad
// layout offsets instead of corrupting the heap.

// RefSize is the width of a single reference slot in bytes.
const RefSize = 8

// PutRef writes a reference value into the slot at off.
func PutRef(b []byte, off uint64, v uint64) {
	binary.LittleEndian.PutUint64(b[off:off+RefSize], v)
}

// ReadRef reads the reference value from the slot at off.
func ReadRef(b []byte, off uint64) uint64 {
	return binary.LittleEndian.Uint64(b[off : off+RefSize])
}
