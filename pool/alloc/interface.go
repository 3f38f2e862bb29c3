package alloc

import "unsafe"

// Strategy defines the contract every allocation strategy implements.
//
// Implementations:
//   - MallocStrategy: Go-heap passthrough, unbounded
//   - ArrayStrategy:  occupancy-table scan over a fixed arena
//   - HeapStrategy:   max-heap slot selection over a fixed arena
//   - StackStrategy:  LIFO free-stack plus bump watermark over a fixed arena
//   - BlockStrategy:  growing singly-linked free-list of chunks
//
// A strategy serves exactly one object size. Callers are written against
// this interface so the strategy can be selected at construction time.
type Strategy interface {
	// Allocate returns storage for exactly one object of the bound size,
	// or ErrOutOfMemory when no slot is available.
	Allocate() (unsafe.Pointer, error)

	// Deallocate returns a previously allocated, not-yet-freed region to
	// the free set. Passing any other address is undefined.
	Deallocate(p unsafe.Pointer)

	// Capacity reports the fixed slot count, or 0 for unbounded strategies.
	Capacity() int

	// Live reports the number of currently outstanding allocations.
	Live() int

	// Stats returns operation counters for instrumentation and tests.
	Stats() Stats

	// Close releases the strategy's backing storage. The strategy must not
	// be used afterwards.
	Close() error
}

// Stats holds per-strategy operation counters.
type Stats struct {
	AllocCalls int   // total Allocate() calls
	FreeCalls  int   // total Deallocate() calls
	GrowCalls  int   // block growth events (block strategy only)
	GrowBytes  int64 // total bytes obtained through growth
}
