package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBlockStrategy_GrowthOnDemand verifies chunksPerBlock+1 allocations
// trigger exactly two growth events and all succeed.
func TestBlockStrategy_GrowthOnDemand(t *testing.T) {
	const chunksPerBlock = 4

	s, err := NewBlock(payloadSize, chunksPerBlock)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, 0, s.Carved(), "no storage before the first allocation")

	for i := 0; i < chunksPerBlock+1; i++ {
		mustAllocate(t, s)
	}

	st := s.Stats()
	assert.Equal(t, 2, st.GrowCalls, "one block for the first %d chunks, one for the next", chunksPerBlock)
	assert.Equal(t, 2*chunksPerBlock, s.Carved())
	assert.Equal(t, int64(2*chunksPerBlock)*int64(payloadSize), st.GrowBytes)
}

// TestBlockStrategy_ChunkLinkTooSmall verifies an object smaller than a
// free-list link is rejected at construction.
func TestBlockStrategy_ChunkLinkTooSmall(t *testing.T) {
	_, err := NewBlock(1, 4)
	require.ErrorIs(t, err, ErrChunkTooSmall)

	// Exactly link-sized objects are the smallest representable chunk.
	s, err := NewBlock(linkSize, 4)
	require.NoError(t, err)
	defer s.Close()
	mustAllocate(t, s)
}

// TestBlockStrategy_FreeListFront verifies deallocation pushes to the list
// head, so the next allocation returns the most recently freed chunk.
func TestBlockStrategy_FreeListFront(t *testing.T) {
	s, err := NewBlock(payloadSize, 8)
	require.NoError(t, err)
	defer s.Close()

	a := mustAllocate(t, s)
	b := mustAllocate(t, s)

	s.Deallocate(a)
	s.Deallocate(b)

	assert.Equal(t, b, mustAllocate(t, s))
	assert.Equal(t, a, mustAllocate(t, s))
}

// TestBlockStrategy_ChunksComeFromDistinctBlocks verifies addresses across a
// growth boundary never collide and churn within one block reuses chunks.
func TestBlockStrategy_ChunksComeFromDistinctBlocks(t *testing.T) {
	const chunksPerBlock = 4

	s, err := NewBlock(payloadSize, chunksPerBlock)
	require.NoError(t, err)
	defer s.Close()

	seen := make(map[uintptr]bool)
	ptrs := make([]unsafe.Pointer, 0, 3*chunksPerBlock)
	for i := 0; i < 3*chunksPerBlock; i++ {
		p := mustAllocate(t, s)
		require.False(t, seen[uintptr(p)], "chunk issued twice while live")
		seen[uintptr(p)] = true
		ptrs = append(ptrs, p)
	}
	assert.Equal(t, 3, s.Stats().GrowCalls)

	// Return everything and drain the list again: no further growth.
	for _, p := range ptrs {
		s.Deallocate(p)
	}
	assert.Equal(t, 0, s.Live())
	for i := 0; i < 3*chunksPerBlock; i++ {
		mustAllocate(t, s)
	}
	assert.Equal(t, 3, s.Stats().GrowCalls, "reuse must not grow")
}

// TestBlockStrategy_IssuedChunkIsWritable verifies a caller may overwrite
// the whole chunk, including the word that held the free-list link.
func TestBlockStrategy_IssuedChunkIsWritable(t *testing.T) {
	s, err := NewBlock(payloadSize, 2)
	require.NoError(t, err)
	defer s.Close()

	p := (*payload)(mustAllocate(t, s))
	q := (*payload)(mustAllocate(t, s))
	p.a, p.b = 1, 2
	q.a, q.b = 3, 4

	// Clobbering p's first word must not disturb the allocator: the link is
	// only meaningful while the chunk is free.
	next := mustAllocate(t, s)
	assert.NotEqual(t, unsafe.Pointer(p), next)
	assert.NotEqual(t, unsafe.Pointer(q), next)
	assert.Equal(t, uint64(1), p.a)
	assert.Equal(t, uint64(3), q.a)
}
