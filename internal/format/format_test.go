package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlign16(t *testing.T) {
	assert.Equal(t, uint64(0), Align16(0))
	assert.Equal(t, uint64(16), Align16(1))
	assert.Equal(t, uint64(16), Align16(16))
	assert.Equal(t, uint64(32), Align16(17))
}

func TestPad16_NeverAFullStride(t *testing.T) {
	for n := uint64(0); n < 64; n++ {
		pad := Pad16(n)
		assert.Less(t, pad, uint64(16), "pad for %d must be 0..15", n)
		assert.Zero(t, (n+pad)%16)
	}
}

func TestRefRoundTrip(t *testing.T) {
	b := make([]byte, 24)
	PutRef(b, 8, 0xDEADBEEFCAFE)
	assert.Equal(t, uint64(0xDEADBEEFCAFE), ReadRef(b, 8))
	assert.Equal(t, uint64(0), ReadRef(b, 16), "neighboring slot untouched")
}
