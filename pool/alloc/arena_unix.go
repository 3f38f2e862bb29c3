//go:build linux || freebsd || darwin

package alloc

import "golang.org/x/sys/unix"

// mapAnon reserves size bytes of anonymous, private memory outside the Go
// heap. The returned release func unmaps the region.
func mapAnon(size int) ([]byte, func() error, error) {
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	buf, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	return buf, func() error { return unix.Munmap(buf) }, nil
}
