package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/citybike/algobench/internal/term"
)

// Cell aggregates the trials of one (algorithm, size) combination. A
// non-nil Err marks the cell as failed; its numeric fields are then zero.
type Cell struct {
	Algorithm   string
	Size        int
	Trials      int
	Mean        time.Duration
	Min         time.Duration
	Max         time.Duration
	Comparisons int64
	Err         error
}

// aggregate fills the summary statistics from per-trial durations. Mean and
// min are both reported: min is the less noise-sensitive of the two.
func (c *Cell) aggregate(elapsed []time.Duration) {
	c.Trials = len(elapsed)
	if len(elapsed) == 0 {
		return
	}

	var sum time.Duration
	c.Min, c.Max = elapsed[0], elapsed[0]
	for _, d := range elapsed {
		sum += d
		if d < c.Min {
			c.Min = d
		}
		if d > c.Max {
			c.Max = d
		}
	}
	c.Mean = sum / time.Duration(len(elapsed))
}

// Report is the aggregated outcome of one harness run. It is created by
// Run and never mutated afterwards: rows are grouped by size ascending,
// then by algorithm in the order the run was configured with, so two runs
// with the same configuration emit byte-identical layouts.
type Report struct {
	Seed       int64
	TrialCount int
	Sizes      []int
	Algorithms []string
	Sort       []Cell
	Search     []Cell
}

// WriteText emits the report as the plain-text benchmark artifact. The
// layout is a pure function of the report: stable column order, stable row
// order, diffable across runs with identical configuration.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "search & sort benchmarks\n")
	fmt.Fprintf(&b, "seed=%d trials=%d\n\n", r.Seed, r.TrialCount)

	b.WriteString("=== sorting ===\n")
	writeCellSection(&b, r.Sort)

	if len(r.Search) > 0 {
		b.WriteString("\n=== searching ===\n")
		writeCellSection(&b, r.Search)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeCellSection(b *strings.Builder, cells []Cell) {
	fmt.Fprintf(b, "%-10s %-12s %-7s %-12s %-12s %-12s %s\n",
		"size", "algorithm", "trials", "mean", "min", "max", "comparisons")
	for _, c := range cells {
		if c.Err != nil {
			fmt.Fprintf(b, "%-10d %-12s FAILED: %s\n", c.Size, c.Algorithm, firstLine(c.Err.Error()))
			continue
		}
		fmt.Fprintf(b, "%-10d %-12s %-7d %-12s %-12s %-12s %d\n",
			c.Size, c.Algorithm, c.Trials,
			term.FormatDuration(c.Mean),
			term.FormatDuration(c.Min),
			term.FormatDuration(c.Max),
			c.Comparisons)
	}
}

// RenderTable renders the sort results as a comparison table for the
// terminal, ranking algorithms within each size group by their minimum
// elapsed time.
func (r *Report) RenderTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("Size", "Algorithm", "Trials", "Mean", "Min", "Comparisons", "vs Fastest")

	for _, size := range r.Sizes {
		fastest := r.fastestMin(size)
		for _, c := range r.Sort {
			if c.Size != size {
				continue
			}
			if c.Err != nil {
				_ = table.Append(
					term.FormatNumber(c.Size), c.Algorithm, "-", "FAILED", "-", "-",
					firstLine(c.Err.Error()))
				continue
			}
			_ = table.Append(
				term.FormatNumber(c.Size),
				c.Algorithm,
				fmt.Sprintf("%d", c.Trials),
				term.FormatDuration(c.Mean),
				term.FormatDuration(c.Min),
				term.FormatNumber(int(c.Comparisons)),
				vsFastest(c.Min, fastest),
			)
		}
	}

	return table.Render()
}

// fastestMin returns the smallest successful Min within a size group, or 0
// when every cell in the group failed.
func (r *Report) fastestMin(size int) time.Duration {
	var fastest time.Duration
	for _, c := range r.Sort {
		if c.Size != size || c.Err != nil {
			continue
		}
		if fastest == 0 || c.Min < fastest {
			fastest = c.Min
		}
	}
	return fastest
}

func vsFastest(min, fastest time.Duration) string {
	if fastest == 0 || min == fastest {
		return "fastest"
	}
	return fmt.Sprintf("%.2fx", float64(min)/float64(fastest))
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
