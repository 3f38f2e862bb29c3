package alloc

import "unsafe"

// StackStrategy tracks a fixed arena of N slots with two structures: a
// monotonically advancing watermark of slots ever carved, and a LIFO stack
// of freed addresses. Allocation pops the stack when it is non-empty and
// bumps the watermark otherwise, so both operations are O(1). The
// most-recently-freed slot is reused first; no other reuse order is kept.
type StackStrategy struct {
	mem       *arena
	freed     []unsafe.Pointer
	allocated int // watermark: slots ever carved from the arena
	capacity  int
	stats     Stats
}

// NewStack creates a stack-backed strategy with the given fixed capacity.
func NewStack(objectSize uintptr, capacity int, opts ...Option) (*StackStrategy, error) {
	mem, err := buildArena(objectSize, capacity, opts)
	if err != nil {
		return nil, err
	}
	return &StackStrategy{
		mem:      mem,
		freed:    make([]unsafe.Pointer, 0, capacity),
		capacity: capacity,
	}, nil
}

// Allocate reuses the most recently freed slot, or carves the next
// never-used slot while any remain.
func (s *StackStrategy) Allocate() (unsafe.Pointer, error) {
	s.stats.AllocCalls++
	if n := len(s.freed); n > 0 {
		p := s.freed[n-1]
		s.freed = s.freed[:n-1]
		return p, nil
	}
	if s.allocated < s.capacity {
		p := s.mem.slot(s.allocated)
		s.allocated++
		return p, nil
	}
	return nil, ErrOutOfMemory
}

// Deallocate pushes p onto the freed stack.
func (s *StackStrategy) Deallocate(p unsafe.Pointer) {
	s.stats.FreeCalls++
	s.freed = append(s.freed, p)
}

// Capacity returns the fixed slot count.
func (s *StackStrategy) Capacity() int { return s.capacity }

// Live reports the number of outstanding allocations.
func (s *StackStrategy) Live() int { return s.allocated - len(s.freed) }

// Stats returns operation counters.
func (s *StackStrategy) Stats() Stats { return s.stats }

// Close releases the backing arena.
func (s *StackStrategy) Close() error {
	s.freed = nil
	return s.mem.close()
}

// Compile-time interface check
var _ Strategy = (*StackStrategy)(nil)
