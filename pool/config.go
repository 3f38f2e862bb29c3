package pool

import (
	"fmt"
	"unsafe"

	"github.com/tmacsg/memory-pool/pool/alloc"
)

// Kind selects a concrete allocation strategy at construction time.
type Kind int

const (
	KindMalloc Kind = iota // Go-heap passthrough, unbounded
	KindArray              // occupancy-table scan, fixed capacity
	KindHeap               // max-heap slot selection, fixed capacity
	KindStack              // LIFO free-stack plus watermark, fixed capacity
	KindBlock              // linked free-list of chunks, grows on demand
)

var kindNames = map[Kind]string{
	KindMalloc: "malloc",
	KindArray:  "array",
	KindHeap:   "heap",
	KindStack:  "stack",
	KindBlock:  "block",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a strategy name ("malloc", "array", "heap", "stack",
// "block") to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("pool: unknown strategy %q", name)
}

// Config holds the construction-time parameters of a strategy.
type Config struct {
	Kind           Kind
	Capacity       int  // fixed strategies; ignored by malloc and block
	ChunksPerBlock int  // block strategy only
	Mmap           bool // back fixed arenas with an anonymous mapping
}

// NewStrategy constructs the configured strategy for objects of the given
// size. Strategy selection is a configuration decision, not a compile-time
// one.
func NewStrategy(objectSize uintptr, cfg Config) (alloc.Strategy, error) {
	var opts []alloc.Option
	if cfg.Mmap {
		opts = append(opts, alloc.WithMmap())
	}
	switch cfg.Kind {
	case KindMalloc:
		return alloc.NewMalloc(objectSize)
	case KindArray:
		return alloc.NewArray(objectSize, cfg.Capacity, opts...)
	case KindHeap:
		return alloc.NewHeap(objectSize, cfg.Capacity, opts...)
	case KindStack:
		return alloc.NewStack(objectSize, cfg.Capacity, opts...)
	case KindBlock:
		return alloc.NewBlock(objectSize, cfg.ChunksPerBlock)
	default:
		return nil, fmt.Errorf("pool: unknown strategy kind %d", int(cfg.Kind))
	}
}

// For constructs a pool for T with the configured strategy, sizing the
// strategy from the type itself.
func For[T any](cfg Config) (*Pool[T], error) {
	var zero T
	s, err := NewStrategy(unsafe.Sizeof(zero), cfg)
	if err != nil {
		return nil, err
	}
	return New[T](s), nil
}
