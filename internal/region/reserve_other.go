//go:build !linux && !darwin

package region

// reserve allocates the span from the Go heap on platforms where the mmap
// path isn't wired up. The whole span is committed immediately, so callers
// on these platforms should configure a modest heap size.
func reserve(size uint64) ([]byte, error) {
	return make([]byte, size), nil
}
