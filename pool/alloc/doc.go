// Package alloc provides interchangeable fixed-size allocation strategies
// for single, uniform object types.
//
// # Overview
//
// Every strategy serves exactly one object size, chosen at construction, and
// hands out raw storage one object at a time. The strategies differ only in
// how they track free slots:
//
//   - MallocStrategy: passthrough to the Go heap; unbounded, no bookkeeping.
//   - ArrayStrategy:  fixed arena of N slots with an occupancy table; O(N)
//     first-free scan.
//   - HeapStrategy:   fixed arena of N slots tracked through a binary
//     max-heap keyed on occupancy, giving O(log N) slot selection.
//   - StackStrategy:  fixed arena of N slots; a LIFO stack of freed slots
//     plus a never-used watermark, giving O(1) operations.
//   - BlockStrategy:  a singly-linked free-list of chunks carved in batches
//     ("blocks") from the Go heap on demand; capacity grows instead of being
//     fixed.
//
// # Strategy Interface
//
// The core abstraction is the Strategy interface:
//
//	s, err := alloc.NewStack(unsafe.Sizeof(order{}), 128)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	p, err := s.Allocate()
//	if err != nil {
//	    return err // alloc.ErrOutOfMemory when every slot is live
//	}
//	// ... use the storage ...
//	s.Deallocate(p)
//
// Callers are written against Strategy, never against a concrete type, so a
// strategy can be swapped by changing one constructor call.
//
// # Backing Storage
//
// Fixed-capacity strategies own a single contiguous arena sized
// objectSize × capacity for their entire lifetime; it is never reallocated
// and slot identity is the offset within it. The arena normally lives on the
// Go heap; WithMmap requests an anonymous mapping outside the heap on
// platforms that support it. BlockStrategy instead owns a growing set of
// independently allocated blocks, released only by Close.
//
// # Contract
//
// Allocate either returns storage for exactly one object or fails with
// ErrOutOfMemory; it never partially succeeds. Deallocate of an address that
// was not returned by Allocate on the same strategy instance, or that is
// already free, is undefined - the strategies do not validate addresses,
// mirroring the minimal-overhead intent of fixed-size allocators.
//
// # Thread Safety
//
// Strategy instances are not thread-safe. Callers must serialize access to
// each instance externally.
package alloc
