package alloc

import (
	"container/heap"
	"unsafe"
)

// Occupancy tags for heap entries. Free sorts above used so a free entry,
// when one exists, is always at the root.
const (
	slotUsed = 0
	slotFree = 1
)

// slotEntry pairs an occupancy tag with a slot address.
type slotEntry struct {
	state int
	addr  unsafe.Pointer
}

// entryHeap implements heap.Interface as a max-heap keyed on occupancy tag.
type entryHeap []slotEntry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return h[i].state > h[j].state }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(slotEntry)) //nolint:errcheck // heap.Interface contract guarantees type
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[0 : n-1]
	return e
}

// HeapStrategy tracks a fixed arena of N slots through a binary max-heap of
// occupancy-tagged entries. Slot selection and return are O(log N) heap
// operations instead of the array strategy's O(N) scan - heap-based resource
// scheduling rather than an asymptotic necessity at small N.
type HeapStrategy struct {
	mem       *arena
	entries   entryHeap
	available int
	capacity  int
	stats     Stats
}

// NewHeap creates a heap-backed strategy with the given fixed capacity. All
// N entries start free, addresses assigned in slot order, then heapified.
func NewHeap(objectSize uintptr, capacity int, opts ...Option) (*HeapStrategy, error) {
	mem, err := buildArena(objectSize, capacity, opts)
	if err != nil {
		return nil, err
	}
	h := &HeapStrategy{
		mem:       mem,
		entries:   make(entryHeap, capacity),
		available: capacity,
		capacity:  capacity,
	}
	for i := 0; i < capacity; i++ {
		h.entries[i] = slotEntry{state: slotFree, addr: mem.slot(i)}
	}
	heap.Init(&h.entries)
	return h, nil
}

// Allocate pops the root entry. An entry leaves the heap while its slot is
// in use, so the live prefix holds exactly the free slots.
func (h *HeapStrategy) Allocate() (unsafe.Pointer, error) {
	h.stats.AllocCalls++
	if h.available <= 0 {
		return nil, ErrOutOfMemory
	}
	e := heap.Pop(&h.entries).(slotEntry) //nolint:errcheck // heap of slotEntry only
	h.available--
	return e.addr, nil
}

// Deallocate appends a free-tagged entry carrying p and restores heap order
// by sift-up. A nil address or a free count already at capacity is ignored.
func (h *HeapStrategy) Deallocate(p unsafe.Pointer) {
	h.stats.FreeCalls++
	if p == nil || h.available >= h.capacity {
		return
	}
	heap.Push(&h.entries, slotEntry{state: slotFree, addr: p})
	h.available++
}

// Capacity returns the fixed slot count.
func (h *HeapStrategy) Capacity() int { return h.capacity }

// Live reports the number of outstanding allocations.
func (h *HeapStrategy) Live() int { return h.capacity - h.available }

// Available reports the number of free entries currently in the heap.
func (h *HeapStrategy) Available() int { return h.available }

// Stats returns operation counters.
func (h *HeapStrategy) Stats() Stats { return h.stats }

// Close releases the backing arena.
func (h *HeapStrategy) Close() error {
	h.entries = nil
	return h.mem.close()
}

// Compile-time interface check
var _ Strategy = (*HeapStrategy)(nil)
