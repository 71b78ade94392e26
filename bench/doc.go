// Package bench drives the sort and search algorithms over reproducible
// input sets and aggregates timing results into a report.
//
// The harness is configured with functional options, generates one input
// set per configured size from a seeded random source (reused across every
// algorithm at that size, so each algorithm sees identical input), runs a
// fixed number of timed trials per (algorithm, size) cell, and records mean
// and minimum elapsed time per cell. Trials run strictly sequentially so
// timings are not skewed by CPU contention; only input-set generation,
// which sits outside the timed region, runs concurrently.
//
// A panicking algorithm fails its cell, not the run: the failure is
// recorded and the harness continues with the remaining cells.
//
//	cmp, _ := trips.Comparator("duration_minutes", algo.Ascending)
//	h, err := bench.New(trips.Generate, cmp,
//	    bench.WithSizes(100, 1000),
//	    bench.WithTrials(3),
//	    bench.WithSeed(42),
//	)
//	report, err := h.Run(ctx)
//	_ = report.WriteText(os.Stdout)
package bench
