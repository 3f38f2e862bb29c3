package alloc

import (
	"fmt"
	"os"
	"unsafe"
)

// Runtime debug flag for growth tracing - controlled by POOL_LOG_ALLOC env var.
var logAlloc = os.Getenv("POOL_LOG_ALLOC") != ""

// linkSize is the storage a free chunk needs for its embedded free-list link.
const linkSize = unsafe.Sizeof(uintptr(0))

// BlockStrategy keeps a singly-linked free-list of fixed-size chunks. Chunks
// are carved in batches of chunksPerBlock from the Go heap whenever the list
// runs dry, so capacity grows on demand instead of being fixed at
// construction. The link lives in the first pointer-sized word of each free
// chunk; once a chunk is issued its whole storage belongs to the caller.
//
// Blocks are owned until Close and individual chunks are never returned to
// the runtime, trading unreclaimed peak memory for O(1) operations and
// unbounded growth.
type BlockStrategy struct {
	objectSize     uintptr
	chunksPerBlock int

	head   unsafe.Pointer // free-list head, nil when the list is empty
	blocks [][]byte       // ownership set, released only by Close
	live   int
	stats  Stats
}

// NewBlock creates a block-backed strategy carving chunksPerBlock chunks per
// growth. Fails with ErrChunkTooSmall when the object size cannot hold a
// free-list link.
func NewBlock(objectSize uintptr, chunksPerBlock int) (*BlockStrategy, error) {
	if objectSize == 0 {
		return nil, ErrBadObjectSize
	}
	if objectSize < linkSize {
		return nil, ErrChunkTooSmall
	}
	if chunksPerBlock <= 0 {
		return nil, ErrBadCapacity
	}
	return &BlockStrategy{
		objectSize:     objectSize,
		chunksPerBlock: chunksPerBlock,
	}, nil
}

// Allocate pops the free-list head, growing by one block first when the
// list is empty. Growth is the only path that touches the Go heap.
func (b *BlockStrategy) Allocate() (unsafe.Pointer, error) {
	b.stats.AllocCalls++
	if b.head == nil {
		b.grow()
	}
	p := b.head
	b.head = nextChunk(p)
	b.live++
	return p, nil
}

// Deallocate pushes p to the front of the free-list.
func (b *BlockStrategy) Deallocate(p unsafe.Pointer) {
	b.stats.FreeCalls++
	setNextChunk(p, b.head)
	b.head = p
	b.live--
}

// grow carves one new block into chunksPerBlock linked chunks and makes the
// block's first chunk the new list head. The last chunk links to the old
// head, which is nil whenever grow runs.
func (b *BlockStrategy) grow() {
	blockSize := b.objectSize * uintptr(b.chunksPerBlock)
	block := make([]byte, blockSize)
	b.blocks = append(b.blocks, block)
	b.stats.GrowCalls++
	b.stats.GrowBytes += int64(blockSize)

	if logAlloc {
		fmt.Fprintf(os.Stderr, "[ALLOC] grow: block %d (%d chunks × %d bytes)\n",
			len(b.blocks), b.chunksPerBlock, b.objectSize)
	}

	for i := b.chunksPerBlock - 1; i >= 0; i-- {
		c := unsafe.Pointer(&block[uintptr(i)*b.objectSize])
		setNextChunk(c, b.head)
		b.head = c
	}
}

// Capacity returns 0: the strategy grows without a fixed ceiling.
func (b *BlockStrategy) Capacity() int { return 0 }

// Carved reports the total number of chunks obtained from the heap so far.
func (b *BlockStrategy) Carved() int { return len(b.blocks) * b.chunksPerBlock }

// Live reports the number of outstanding allocations.
func (b *BlockStrategy) Live() int { return b.live }

// Stats returns operation counters.
func (b *BlockStrategy) Stats() Stats { return b.stats }

// Close releases every block. Outstanding chunks become invalid.
func (b *BlockStrategy) Close() error {
	b.head = nil
	b.blocks = nil
	return nil
}

func nextChunk(p unsafe.Pointer) unsafe.Pointer {
	return *(*unsafe.Pointer)(p)
}

func setNextChunk(p, next unsafe.Pointer) {
	*(*unsafe.Pointer)(p) = next
}

// Compile-time interface check
var _ Strategy = (*BlockStrategy)(nil)
