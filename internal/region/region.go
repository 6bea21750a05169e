// Package region reserves the contiguous span of virtual memory that backs a
// heap and tracks its bump-allocation frontier.
//
// The span is anonymous (not file-backed), read/write, and reserved once for
// the lifetime of the owning heap. Reservation is cheap on platforms that
// overcommit: pages are committed only as they are touched, so a
// multi-gigabyte default costs nothing up front.
package region

import "fmt"

// Guard is the number of bytes reserved at the start of the span. No payload
// is ever carved there, so offset 0 is free to act as the null reference.
const Guard = 16

// Region is a reserved span with a monotonically advancing frontier.
// start ≤ frontier ≤ end always holds (offsets are relative, start is 0).
type Region struct {
	data     []byte
	frontier uint64
}

// Reserve maps a new anonymous span of the given size.
func Reserve(size uint64) (*Region, error) {
	if size <= Guard {
		return nil, fmt.Errorf("region: size %d too small (minimum %d)", size, Guard+1)
	}
	data, err := reserve(size)
	if err != nil {
		return nil, err
	}
	return &Region{data: data, frontier: Guard}, nil
}

// Bytes returns the whole reserved span.
func (r *Region) Bytes() []byte {
	return r.data
}

// Size returns the reserved span length in bytes.
func (r *Region) Size() uint64 {
	return uint64(len(r.data))
}

// Frontier returns the offset of the next unused byte.
func (r *Region) Frontier() uint64 {
	return r.frontier
}

// Carve advances the frontier past pad alignment bytes plus an n-byte span
// and returns the span's offset. When the span would extend past the end of
// the region, Carve reports failure and leaves the frontier unchanged so a
// later, smaller request can still succeed.
func (r *Region) Carve(pad, n uint64) (uint64, bool) {
	off := r.frontier + pad
	if off < r.frontier || off > r.Size() || n > r.Size()-off {
		return 0, false
	}
	r.frontier = off + n
	return off, true
}

// Slice returns the n bytes at off. The caller must pass offsets previously
// returned by Carve.
func (r *Region) Slice(off, n uint64) []byte {
	return r.data[off : off+n]
}
