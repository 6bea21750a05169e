package format

// Alignment utilities for heap payloads.
// Every payload handed to a client starts on a 16-byte boundary.

const (
	// PayloadAlignment is the boundary every payload must start on.
	PayloadAlignment = 16

	payloadAlignmentMask = PayloadAlignment - 1
)

// Align16 returns n aligned up to the next 16-byte boundary.
//
// Example:
//
//	Align16(1)  = 16
//	Align16(16) = 16
//	Align16(17) = 32
func Align16(n uint64) uint64 {
	return (n + payloadAlignmentMask) &^ payloadAlignmentMask
}

// Pad16 returns the number of bytes needed to bring n up to the next
// 16-byte boundary. Zero when n is already aligned, never a full 16.
func Pad16(n uint64) uint64 {
	return Align16(n) - n
}
