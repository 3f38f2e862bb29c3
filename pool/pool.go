package pool

import (
	"errors"
	"unsafe"

	"github.com/tmacsg/memory-pool/pool/alloc"
)

// ErrSizeMismatch indicates an allocation request whose size differs from
// the bound type's size - typically an attempt to allocate an array of
// objects through a single-object pool.
var ErrSizeMismatch = errors.New("pool: requested size does not match the bound type")

// Pool adapts one allocation strategy to one client type T. It has no state
// of its own beyond the strategy it owns exclusively.
type Pool[T any] struct {
	strategy alloc.Strategy
}

// New binds a strategy to type T. The strategy must have been constructed
// for unsafe.Sizeof(T); New trusts the caller on that, use For to construct
// both sides consistently.
func New[T any](s alloc.Strategy) *Pool[T] {
	return &Pool[T]{strategy: s}
}

// Allocate returns storage for exactly one T. Requests for any other size
// fail with ErrSizeMismatch before reaching the strategy.
func (p *Pool[T]) Allocate(size uintptr) (unsafe.Pointer, error) {
	var zero T
	if size != unsafe.Sizeof(zero) {
		return nil, ErrSizeMismatch
	}
	return p.strategy.Allocate()
}

// Deallocate returns storage obtained from Allocate to the bound strategy.
func (p *Pool[T]) Deallocate(ptr unsafe.Pointer) {
	p.strategy.Deallocate(ptr)
}

// New allocates one T from the bound strategy and returns it zeroed.
func (p *Pool[T]) New() (*T, error) {
	var zero T
	raw, err := p.Allocate(unsafe.Sizeof(zero))
	if err != nil {
		return nil, err
	}
	t := (*T)(raw)
	*t = zero // slots are reused, previous contents must not leak through
	return t, nil
}

// Free returns an object obtained from New to the bound strategy.
func (p *Pool[T]) Free(t *T) {
	p.Deallocate(unsafe.Pointer(t))
}

// Strategy exposes the bound strategy for introspection.
func (p *Pool[T]) Strategy() alloc.Strategy { return p.strategy }

// Close releases the bound strategy's backing storage.
func (p *Pool[T]) Close() error { return p.strategy.Close() }
