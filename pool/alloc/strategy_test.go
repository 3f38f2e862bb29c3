package alloc

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFixedStrategies_CapacityBound verifies that after N allocations with
// no frees, the (N+1)-th allocation fails with ErrOutOfMemory.
func TestFixedStrategies_CapacityBound(t *testing.T) {
	const capacity = 8

	for _, fs := range fixedStrategies() {
		t.Run(fs.name, func(t *testing.T) {
			s, err := fs.make(capacity)
			require.NoError(t, err)
			defer s.Close()

			for i := 0; i < capacity; i++ {
				mustAllocate(t, s)
			}
			assert.Equal(t, capacity, s.Live())

			_, err = s.Allocate()
			require.ErrorIs(t, err, ErrOutOfMemory, "allocation %d should exhaust the strategy", capacity+1)
			assert.Equal(t, capacity, s.Live(), "failed allocation must not change bookkeeping")
		})
	}
}

// TestStrategies_NoDoubleIssue verifies that no address is handed out twice
// while it is live.
func TestStrategies_NoDoubleIssue(t *testing.T) {
	const capacity = 16

	for _, fs := range allStrategies() {
		t.Run(fs.name, func(t *testing.T) {
			s, err := fs.make(capacity)
			require.NoError(t, err)
			defer s.Close()

			seen := make(map[uintptr]bool, capacity)
			for i := 0; i < capacity; i++ {
				p := mustAllocate(t, s)
				require.False(t, seen[uintptr(p)], "address %#x issued twice", uintptr(p))
				seen[uintptr(p)] = true
			}
		})
	}
}

// TestStrategies_ReuseAfterFree verifies that a freed slot is immediately
// eligible for reuse and the live count is unchanged across the pair.
func TestStrategies_ReuseAfterFree(t *testing.T) {
	const capacity = 4

	for _, fs := range allStrategies() {
		t.Run(fs.name, func(t *testing.T) {
			s, err := fs.make(capacity)
			require.NoError(t, err)
			defer s.Close()

			var last unsafe.Pointer
			for i := 0; i < capacity; i++ {
				last = mustAllocate(t, s)
			}
			liveBefore := s.Live()

			s.Deallocate(last)
			p := mustAllocate(t, s)
			assert.Equal(t, liveBefore, s.Live(), "live count should be unchanged across free+alloc")

			// Fixed strategies must hand the freed slot back rather than
			// failing; malloc is free to return fresh storage.
			if s.Capacity() > 0 {
				assert.Equal(t, last, p, "freed slot should be reusable")
			}
		})
	}
}

// TestStrategies_WriteThroughStorage verifies issued storage is distinct and
// writable: values written through one slot never show up in another.
func TestStrategies_WriteThroughStorage(t *testing.T) {
	const capacity = 8

	for _, fs := range allStrategies() {
		t.Run(fs.name, func(t *testing.T) {
			s, err := fs.make(capacity)
			require.NoError(t, err)
			defer s.Close()

			ptrs := make([]*payload, capacity)
			for i := range ptrs {
				ptrs[i] = (*payload)(mustAllocate(t, s))
				ptrs[i].a = uint64(i)
				ptrs[i].b = uint64(i) * 100
			}
			for i, obj := range ptrs {
				assert.Equal(t, uint64(i), obj.a)
				assert.Equal(t, uint64(i)*100, obj.b)
			}
		})
	}
}

// TestArrayStrategy_ExhaustFreeRetry walks the capacity-5 scenario: fill,
// observe exhaustion, free one slot, and retry successfully.
func TestArrayStrategy_ExhaustFreeRetry(t *testing.T) {
	s, err := NewArray(payloadSize, 5)
	require.NoError(t, err)
	defer s.Close()

	ptrs := make([]unsafe.Pointer, 5)
	seen := make(map[uintptr]bool)
	for i := range ptrs {
		ptrs[i] = mustAllocate(t, s)
		require.False(t, seen[uintptr(ptrs[i])], "addresses must be distinct")
		seen[uintptr(ptrs[i])] = true
	}

	_, err = s.Allocate()
	require.ErrorIs(t, err, ErrOutOfMemory)

	s.Deallocate(ptrs[2])
	p, err := s.Allocate()
	require.NoError(t, err, "retry after a free should succeed")
	assert.Equal(t, ptrs[2], p, "the freed slot should be the one returned")
}

// TestArrayStrategy_FirstFreeOrder verifies the linear scan picks the lowest
// free slot.
func TestArrayStrategy_FirstFreeOrder(t *testing.T) {
	s, err := NewArray(payloadSize, 4)
	require.NoError(t, err)
	defer s.Close()

	ptrs := make([]unsafe.Pointer, 4)
	for i := range ptrs {
		ptrs[i] = mustAllocate(t, s)
	}

	// Free slots 3 and 1; the scan must hand back slot 1 first.
	s.Deallocate(ptrs[3])
	s.Deallocate(ptrs[1])

	assert.Equal(t, ptrs[1], mustAllocate(t, s))
	assert.Equal(t, ptrs[3], mustAllocate(t, s))
}

// TestStrategies_ConstructionErrors verifies constructor parameter checks.
func TestStrategies_ConstructionErrors(t *testing.T) {
	_, err := NewMalloc(0)
	assert.ErrorIs(t, err, ErrBadObjectSize)

	_, err = NewArray(0, 8)
	assert.ErrorIs(t, err, ErrBadObjectSize)

	_, err = NewArray(payloadSize, 0)
	assert.ErrorIs(t, err, ErrBadCapacity)

	_, err = NewHeap(payloadSize, -1)
	assert.ErrorIs(t, err, ErrBadCapacity)

	_, err = NewStack(payloadSize, 0)
	assert.ErrorIs(t, err, ErrBadCapacity)

	_, err = NewBlock(payloadSize, 0)
	assert.ErrorIs(t, err, ErrBadCapacity)
}

// TestStrategies_StatsCounters verifies the operation counters advance.
func TestStrategies_StatsCounters(t *testing.T) {
	for _, fs := range allStrategies() {
		t.Run(fs.name, func(t *testing.T) {
			s, err := fs.make(8)
			require.NoError(t, err)
			defer s.Close()

			p := mustAllocate(t, s)
			mustAllocate(t, s)
			s.Deallocate(p)

			st := s.Stats()
			assert.Equal(t, 2, st.AllocCalls)
			assert.Equal(t, 1, st.FreeCalls)
		})
	}
}

// TestStrategies_ErrorsAreDistinct guards against sentinel aliasing.
func TestStrategies_ErrorsAreDistinct(t *testing.T) {
	sentinels := []error{ErrOutOfMemory, ErrChunkTooSmall, ErrBadObjectSize, ErrBadCapacity}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}
