// Package pool binds one allocation strategy to one client type.
//
// A Pool is the only surface a client type interacts with: it validates that
// each request matches the bound type's size and forwards allocation and
// deallocation to the strategy it owns. The typed New/Free pair is the
// everyday entry point; the raw Allocate/Deallocate pair exists for callers
// that manage storage themselves.
//
//	p, err := pool.For[order](pool.Config{Kind: pool.KindBlock, ChunksPerBlock: 64})
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	o, err := p.New()
//	if err != nil {
//	    return err
//	}
//	// ... use o ...
//	p.Free(o)
//
// One pool serves one type. The original pattern of a type-scoped static
// pool becomes an explicitly constructed, explicitly owned Pool value held
// wherever the program keeps per-type shared state; construct it before
// first use and Close it after last use.
package pool
