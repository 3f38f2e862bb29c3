package alloc

import "errors"

var (
	// ErrOutOfMemory indicates that every slot of a fixed-capacity strategy
	// is live and no further allocation can be satisfied.
	ErrOutOfMemory = errors.New("alloc: no free slot available")

	// ErrChunkTooSmall indicates a block strategy bound to an object size
	// smaller than a free-list link; the link is embedded in unused chunk
	// storage and needs at least a pointer-sized chunk.
	ErrChunkTooSmall = errors.New("alloc: object size smaller than a free-list link")

	// ErrBadObjectSize indicates a strategy constructed for a zero-sized object.
	ErrBadObjectSize = errors.New("alloc: object size must be positive")

	// ErrBadCapacity indicates a fixed-capacity strategy constructed with a
	// non-positive capacity, or a block strategy with no chunks per block.
	ErrBadCapacity = errors.New("alloc: capacity must be positive")
)
