//go:build !(linux || freebsd || darwin)

package alloc

// mapAnon falls back to the Go heap on platforms without anonymous mappings.
func mapAnon(size int) ([]byte, func() error, error) {
	return make([]byte, size), func() error { return nil }, nil
}
