//go:build linux || darwin

package region

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// reserve maps an anonymous, private, read/write span. Nothing is committed
// until the bytes are touched.
func reserve(size uint64) ([]byte, error) {
	data, err := unix.Mmap(
		-1,
		0,
		int(size),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON,
	)
	if err != nil {
		return nil, fmt.Errorf("region: mmap failed: %w", err)
	}
	return data, nil
}
