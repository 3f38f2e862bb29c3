package main

import (
	"fmt"
	"unsafe"

	"github.com/spf13/cobra"

	"github.com/tmacsg/memory-pool/cmd/poolctl/logger"
	"github.com/tmacsg/memory-pool/pool"
)

var (
	demoObjects int
	demoIters   int
)

// sample is the demo client type: a couple of fields, like the small
// records these pools exist for.
type sample struct {
	a int32
	b int32
}

func init() {
	cmd := newDemoCmd()
	cmd.Flags().IntVarP(&demoObjects, "objects", "n", 5, "Objects per iteration")
	cmd.Flags().IntVarP(&demoIters, "iterations", "i", 1, "Create/destroy iterations")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run create/destroy cycles through a strategy",
		Long: `The demo command builds one pool for a sample object type, then
repeatedly creates and destroys batches of objects through it.

Example:
  poolctl demo --strategy block --chunks-per-block 4 --objects 5
  poolctl demo --strategy array --capacity 64 -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pool.For[sample](cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	printInfo("strategy=%s objects=%d iterations=%d\n", cfg.Kind, demoObjects, demoIters)

	for iter := 0; iter < demoIters; iter++ {
		objs := make([]*sample, demoObjects)
		for i := range objs {
			obj, newErr := p.New()
			if newErr != nil {
				return fmt.Errorf("iteration %d, object %d: %w", iter, i, newErr)
			}
			obj.a = int32(i)
			obj.b = -int32(i)
			objs[i] = obj
			logger.L.Debug("constructed", "iter", iter, "index", i,
				"addr", fmt.Sprintf("%#x", uintptr(unsafe.Pointer(obj))))
		}
		for i, obj := range objs {
			p.Free(obj)
			logger.L.Debug("destroyed", "iter", iter, "index", i)
		}
	}

	st := p.Strategy().Stats()
	printInfo("allocations=%d frees=%d grows=%d live=%d\n",
		st.AllocCalls, st.FreeCalls, st.GrowCalls, p.Strategy().Live())
	return nil
}

// buildConfig maps the global flags onto a pool configuration.
func buildConfig() (pool.Config, error) {
	kind, err := pool.ParseKind(strategy)
	if err != nil {
		return pool.Config{}, err
	}
	return pool.Config{
		Kind:           kind,
		Capacity:       capacity,
		ChunksPerBlock: chunks,
		Mmap:           useMmap,
	}, nil
}
