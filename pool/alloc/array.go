package alloc

import "unsafe"

// ArrayStrategy tracks a fixed arena of N slots through an occupancy table.
// Allocation scans the table in slot order for the first free slot, so it is
// O(N) worst case; deallocation derives the slot index from the address in
// O(1). The simplest fixed strategy and the reference for the others.
type ArrayStrategy struct {
	mem      *arena
	used     []bool
	capacity int
	live     int
	stats    Stats
}

// NewArray creates an array-backed strategy with the given fixed capacity.
func NewArray(objectSize uintptr, capacity int, opts ...Option) (*ArrayStrategy, error) {
	mem, err := buildArena(objectSize, capacity, opts)
	if err != nil {
		return nil, err
	}
	return &ArrayStrategy{
		mem:      mem,
		used:     make([]bool, capacity),
		capacity: capacity,
	}, nil
}

// Allocate returns the first free slot in slot order.
func (a *ArrayStrategy) Allocate() (unsafe.Pointer, error) {
	a.stats.AllocCalls++
	for i := range a.used {
		if !a.used[i] {
			a.used[i] = true
			a.live++
			return a.mem.slot(i), nil
		}
	}
	return nil, ErrOutOfMemory
}

// Deallocate marks the slot holding p free. The slot index is derived from
// p's offset into the arena; addresses outside it are the caller's contract
// violation and are not validated.
func (a *ArrayStrategy) Deallocate(p unsafe.Pointer) {
	a.stats.FreeCalls++
	a.used[a.mem.index(p)] = false
	a.live--
}

// Capacity returns the fixed slot count.
func (a *ArrayStrategy) Capacity() int { return a.capacity }

// Live reports the number of outstanding allocations.
func (a *ArrayStrategy) Live() int { return a.live }

// Stats returns operation counters.
func (a *ArrayStrategy) Stats() Stats { return a.stats }

// Close releases the backing arena.
func (a *ArrayStrategy) Close() error {
	a.used = nil
	return a.mem.close()
}

// Compile-time interface check
var _ Strategy = (*ArrayStrategy)(nil)
