package alloc

import "unsafe"

// arena is one contiguous backing region subdivided into fixed-size slots.
// Slot identity is the slot's offset; strategies track free/used state by
// index and derive addresses on demand, never the other way around.
type arena struct {
	buf      []byte
	slotSize uintptr
	release  func() error // set for mapped regions, nil for heap-backed
}

func newArena(slotSize uintptr, capacity int, mapped bool) (*arena, error) {
	size := int(slotSize) * capacity
	if mapped {
		buf, release, err := mapAnon(size)
		if err != nil {
			return nil, err
		}
		return &arena{buf: buf, slotSize: slotSize, release: release}, nil
	}
	return &arena{buf: make([]byte, size), slotSize: slotSize}, nil
}

// slot returns the address of slot i.
func (a *arena) slot(i int) unsafe.Pointer {
	return unsafe.Pointer(&a.buf[uintptr(i)*a.slotSize])
}

// index maps an address previously returned by slot back to its slot number.
// Addresses outside the arena are the caller's contract violation and are
// not detected here.
func (a *arena) index(p unsafe.Pointer) int {
	base := uintptr(unsafe.Pointer(&a.buf[0]))
	return int((uintptr(p) - base) / a.slotSize)
}

// contains reports whether p lies inside the arena. Used by tests only; the
// allocation paths never range-check.
func (a *arena) contains(p unsafe.Pointer) bool {
	base := uintptr(unsafe.Pointer(&a.buf[0]))
	return uintptr(p) >= base && uintptr(p) < base+uintptr(len(a.buf))
}

func (a *arena) close() error {
	var err error
	if a.release != nil {
		err = a.release()
		a.release = nil
	}
	a.buf = nil
	return err
}
