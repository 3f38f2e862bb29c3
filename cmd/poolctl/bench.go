package main

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/tmacsg/memory-pool/pool"
)

var benchOps int

func init() {
	cmd := newBenchCmd()
	cmd.Flags().IntVar(&benchOps, "ops", 1_000_000, "Allocate/free pairs per strategy")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Rough per-operation timing for every strategy",
		Long: `The bench command runs the same allocate/free churn against each
strategy and reports nanoseconds per pair. Numbers are indicative only; use
the package benchmarks for anything rigorous.

Example:
  poolctl bench --capacity 1024 --ops 500000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
}

func runBench() error {
	kinds := []pool.Kind{pool.KindMalloc, pool.KindArray, pool.KindHeap, pool.KindStack, pool.KindBlock}

	for _, kind := range kinds {
		cfg := pool.Config{
			Kind:           kind,
			Capacity:       capacity,
			ChunksPerBlock: chunks,
			Mmap:           useMmap,
		}
		elapsed, err := benchKind(cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
		printInfo("%-8s %8.1f ns/op\n", kind, float64(elapsed.Nanoseconds())/float64(benchOps))
	}
	return nil
}

// benchKind times benchOps allocate/free pairs against half-full storage,
// the steady state a pooled workload lives in.
func benchKind(cfg pool.Config) (time.Duration, error) {
	p, err := pool.For[sample](cfg)
	if err != nil {
		return 0, err
	}
	defer p.Close()

	warm := capacity / 2
	if warm < 1 {
		warm = 1
	}
	live := make([]unsafe.Pointer, 0, warm)
	for i := 0; i < warm; i++ {
		raw, allocErr := p.Allocate(unsafe.Sizeof(sample{}))
		if allocErr != nil {
			return 0, allocErr
		}
		live = append(live, raw)
	}

	start := time.Now()
	for i := 0; i < benchOps; i++ {
		idx := i % len(live)
		p.Deallocate(live[idx])
		raw, allocErr := p.Allocate(unsafe.Sizeof(sample{}))
		if allocErr != nil {
			return 0, allocErr
		}
		live[idx] = raw
	}
	return time.Since(start), nil
}
