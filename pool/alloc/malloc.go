package alloc

import "unsafe"

// MallocStrategy passes every request straight to the Go heap. It has no
// capacity ceiling and no occupancy tracking - the runtime owns that
// concern. It is the behavioral baseline the fixed strategies are measured
// against.
type MallocStrategy struct {
	objectSize uintptr

	// live keeps issued regions reachable until they are deallocated.
	// Without it the runtime could reclaim storage still held by a caller.
	live  map[uintptr][]byte
	stats Stats
}

// NewMalloc creates a Go-heap passthrough strategy for objects of the given size.
func NewMalloc(objectSize uintptr) (*MallocStrategy, error) {
	if objectSize == 0 {
		return nil, ErrBadObjectSize
	}
	return &MallocStrategy{
		objectSize: objectSize,
		live:       make(map[uintptr][]byte),
	}, nil
}

// Allocate obtains one object-sized region from the Go heap.
func (m *MallocStrategy) Allocate() (unsafe.Pointer, error) {
	m.stats.AllocCalls++
	buf := make([]byte, m.objectSize)
	p := unsafe.Pointer(&buf[0])
	m.live[uintptr(p)] = buf
	return p, nil
}

// Deallocate releases the region back to the runtime by dropping the last
// reference to it.
func (m *MallocStrategy) Deallocate(p unsafe.Pointer) {
	m.stats.FreeCalls++
	delete(m.live, uintptr(p))
}

// Capacity returns 0: the strategy is unbounded.
func (m *MallocStrategy) Capacity() int { return 0 }

// Live reports the number of outstanding allocations.
func (m *MallocStrategy) Live() int { return len(m.live) }

// Stats returns operation counters.
func (m *MallocStrategy) Stats() Stats { return m.stats }

// Close drops all outstanding regions.
func (m *MallocStrategy) Close() error {
	m.live = nil
	return nil
}

// Compile-time interface check
var _ Strategy = (*MallocStrategy)(nil)
