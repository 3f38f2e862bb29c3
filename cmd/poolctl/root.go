package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tmacsg/memory-pool/cmd/poolctl/logger"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	strategy string
	capacity int
	chunks   int
	useMmap  bool
)

var rootCmd = &cobra.Command{
	Use:   "poolctl",
	Short: "Exercise and compare fixed-size allocation strategies",
	Long: `poolctl drives the memory-pool allocation strategies through
create/destroy workloads. It exists to demonstrate the strategy contract and
to give a rough feel for the cost of each strategy; it is a caller of the
library, not part of it.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logger.Options{Enabled: verbose})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().
		StringVarP(&strategy, "strategy", "s", "block", "Strategy: malloc, array, heap, stack, block")
	rootCmd.PersistentFlags().
		IntVarP(&capacity, "capacity", "c", 64, "Slot capacity for fixed strategies")
	rootCmd.PersistentFlags().
		IntVar(&chunks, "chunks-per-block", 4, "Chunks carved per block (block strategy)")
	rootCmd.PersistentFlags().
		BoolVar(&useMmap, "mmap", false, "Back fixed arenas with an anonymous mapping")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	execute()
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
