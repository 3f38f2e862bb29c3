package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// payload is the sample object tests allocate: two words, like a typical
// small pooled record.
type payload struct {
	a uint64
	b uint64
}

var payloadSize = unsafe.Sizeof(payload{})

// fixedStrategy pairs a strategy name with a capacity-taking constructor,
// for conformance tests that run against every fixed-capacity strategy.
type fixedStrategy struct {
	name string
	make func(capacity int) (Strategy, error)
}

func fixedStrategies() []fixedStrategy {
	return []fixedStrategy{
		{"array", func(n int) (Strategy, error) { return NewArray(payloadSize, n) }},
		{"heap", func(n int) (Strategy, error) { return NewHeap(payloadSize, n) }},
		{"stack", func(n int) (Strategy, error) { return NewStack(payloadSize, n) }},
	}
}

// allStrategies adds the unbounded strategies to the fixed set. Capacity is
// a sizing hint for the bounded ones and ignored by the rest.
func allStrategies() []fixedStrategy {
	return append(fixedStrategies(),
		fixedStrategy{"malloc", func(int) (Strategy, error) { return NewMalloc(payloadSize) }},
		fixedStrategy{"block", func(n int) (Strategy, error) { return NewBlock(payloadSize, n) }},
	)
}

// mustAllocate allocates one slot and fails the test on error.
func mustAllocate(t *testing.T, s Strategy) unsafe.Pointer {
	t.Helper()
	p, err := s.Allocate()
	require.NoError(t, err, "Allocate should succeed")
	require.NotNil(t, p, "Allocate should return storage")
	return p
}
