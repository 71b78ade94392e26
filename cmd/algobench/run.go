package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/citybike/algobench/algo"
	"github.com/citybike/algobench/bench"
	"github.com/citybike/algobench/internal/term"
	"github.com/citybike/algobench/trips"
)

func run(cmd *cobra.Command) error {
	if flags.configPath != "" {
		if err := loadFileConfig(cmd, flags.configPath); err != nil {
			return err
		}
	}

	dir, err := algo.ParseDirection(flags.direction)
	if err != nil {
		return err
	}
	cmp, err := trips.Comparator(flags.keyField, dir)
	if err != nil {
		return err
	}

	opts := []bench.Option{
		bench.WithSizes(flags.sizes...),
		bench.WithTrials(flags.trials),
		bench.WithSeed(flags.seed),
		bench.WithAlgorithms(flags.algorithms...),
	}
	if flags.search {
		opts = append(opts, bench.WithSearchBenchmarks())
	}
	if flags.pace > 0 {
		opts = append(opts, bench.WithTrialPacing(flags.pace))
	}

	var bar *progressbar.ProgressBar
	opts = append(opts, bench.WithTrialHook(func(r bench.TrialResult) {
		if bar == nil {
			return
		}
		bar.Describe(fmt.Sprintf("Testing: %s (n=%s)", r.Algorithm, term.FormatNumber(r.Size)))
		_ = bar.Add(1)
	}))

	h, err := bench.New(trips.Generate, cmp, opts...)
	if err != nil {
		return err
	}

	printHeader()
	term.Printf(term.Bold, "key=%s direction=%s seed=%d trials=%d\n\n",
		flags.keyField, dir, flags.seed, flags.trials)

	bar = makeProgressBar(h.TotalTrials())

	report, err := h.Run(context.Background())
	if err != nil {
		return err
	}
	_ = bar.Finish()
	fmt.Println()

	if err := report.RenderTable(os.Stdout); err != nil {
		return err
	}

	out, err := os.Create(flags.outPath)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer out.Close()
	if err := report.WriteText(out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Println()
	term.Printf(term.Green, "Saved: %s\n", flags.outPath)
	return nil
}

func printHeader() {
	term.Println(term.Bold, "╔════════════════════════════════════════════════════════════╗")
	term.Printf(term.Bold, "║       %-52s ║\n", "Search & Sort Algorithm Benchmark")
	term.Println(term.Bold, "╚════════════════════════════════════════════════════════════╝")
	fmt.Println()
}

func makeProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Running trials"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
