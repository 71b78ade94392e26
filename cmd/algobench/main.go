// Command algobench benchmarks the custom sort and search algorithms over
// synthetic bike-share trip data and writes a diffable text report.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/citybike/algobench/internal/term"
)

var flags struct {
	configPath string
	sizes      []int
	trials     int
	seed       int64
	algorithms []string
	keyField   string
	direction  string
	search     bool
	pace       float64
	outPath    string
}

var rootCmd = &cobra.Command{
	Use:   "algobench",
	Short: "Benchmark custom sort/search algorithms against the standard library",
	Long: `algobench times the custom merge, quicksort and insertion sorts (and the
linear/binary searches) against the standard library baseline over
reproducible synthetic trip data, then writes a stable text report
suitable for diffing between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "YAML config file (flags override it)")
	f.IntSliceVar(&flags.sizes, "sizes", []int{100, 1000, 10000}, "input sizes to benchmark")
	f.IntVar(&flags.trials, "trials", 5, "timed executions per (algorithm, size) cell")
	f.Int64Var(&flags.seed, "seed", 42, "seed for input-set generation")
	f.StringSliceVar(&flags.algorithms, "algorithms", []string{"merge", "quicksort", "baseline"},
		"sort algorithms to benchmark (merge, quicksort, insertion, baseline)")
	f.StringVar(&flags.keyField, "key-field", "duration_minutes", "trip field to sort and search by")
	f.StringVar(&flags.direction, "direction", "asc", "sort direction: asc or desc")
	f.BoolVar(&flags.search, "search", false, "also benchmark linear vs binary search")
	f.Float64Var(&flags.pace, "pace", 0, "max timed trials per second (0 = unpaced)")
	f.StringVar(&flags.outPath, "out", "search_sort_benchmarks.txt", "report file path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		term.Printf(term.Red, "algobench: %v\n", err)
		os.Exit(1)
	}
}
