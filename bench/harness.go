package bench

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/citybike/algobench/algo"
)

// TrialResult is one timed execution of one algorithm on one input set.
type TrialResult struct {
	Algorithm   string
	Size        int
	Trial       int
	Elapsed     time.Duration
	Comparisons int64
	Err         error
}

// Harness runs the configured algorithms over shared input sets and
// collects timing results. Build one with New, run it with Run. A harness
// runs its trials sequentially on the calling goroutine.
type Harness[T any] struct {
	cfg *config
	gen Generator[T]
	cmp algo.Comparator[T]

	// resolveSort is a seam for tests that need an algorithm to fail.
	resolveSort func(tag string) (algo.SortFunc[T], error)
}

// New builds a harness over the given input generator and comparator.
// Every configuration problem (empty algorithm list, non-positive size or
// trial count, unknown tag) surfaces here as a ConfigurationError, before
// any trial can run.
func New[T any](gen Generator[T], cmp algo.Comparator[T], opts ...Option) (*Harness[T], error) {
	if gen == nil {
		return nil, algo.NewConfigurationError("generator", "must not be nil")
	}
	if cmp == nil {
		return nil, algo.NewConfigurationError("comparator", "must not be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Report rows are grouped by size ascending regardless of the order
	// sizes were configured in.
	slices.Sort(cfg.sizes)

	return &Harness[T]{
		cfg:         cfg,
		gen:         gen,
		cmp:         cmp,
		resolveSort: algo.SortByName[T],
	}, nil
}

// TotalTrials reports how many trial callbacks a full Run delivers. Useful
// for sizing progress bars.
func (h *Harness[T]) TotalTrials() int { return h.cfg.totalTrials() }

// Run executes the full benchmark: generate input sets, time every
// (algorithm, size) cell for the configured trial count, optionally time
// the searches, and aggregate everything into an immutable report.
//
// The context is only consulted between trials (for pacing and
// cancellation); a trial that has started always runs to completion.
func (h *Harness[T]) Run(ctx context.Context) (*Report, error) {
	sets, err := h.inputSets()
	if err != nil {
		return nil, err
	}

	report := &Report{
		Seed:       h.cfg.seed,
		TrialCount: h.cfg.trials,
		Sizes:      slices.Clone(h.cfg.sizes),
		Algorithms: slices.Clone(h.cfg.algorithms),
	}

	for i, size := range h.cfg.sizes {
		for _, tag := range h.cfg.algorithms {
			cell, err := h.runSortCell(ctx, tag, size, sets[i])
			if err != nil {
				return nil, err
			}
			report.Sort = append(report.Sort, cell)
		}
	}

	if h.cfg.search {
		if err := h.runSearches(ctx, report, sets); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// runSortCell times one algorithm on one input set. A panicking algorithm
// fails the cell; only context or pacing errors abort the run.
func (h *Harness[T]) runSortCell(ctx context.Context, tag string, size int, set []T) (Cell, error) {
	cell := Cell{Algorithm: tag, Size: size}

	sortFn, err := h.resolveSort(tag)
	if err != nil {
		// Tags were validated up front; a miss here means the test seam
		// swapped the resolver, and still fails only this cell.
		cell.Err = err
		return cell, nil
	}

	counter := algo.NewCounter(h.cmp)
	elapsed := make([]time.Duration, 0, h.cfg.trials)

	for trial := 0; trial < h.cfg.trials; trial++ {
		if err := h.pace(ctx); err != nil {
			return cell, err
		}

		counter.Reset()
		start := h.cfg.clock.Now()
		_, trialErr := runSafely(sortFn, set, counter.Compare)
		d := h.cfg.clock.Now().Sub(start)

		result := TrialResult{
			Algorithm:   tag,
			Size:        size,
			Trial:       trial,
			Elapsed:     d,
			Comparisons: counter.Count(),
		}

		if trialErr != nil {
			result.Err = &AlgorithmFailure{Algorithm: tag, Size: size, Trial: trial, Err: trialErr}
			h.notify(result)
			cell.Err = result.Err
			return cell, nil
		}

		h.notify(result)
		elapsed = append(elapsed, d)
		if trial == 0 {
			cell.Comparisons = counter.Count()
		}
	}

	cell.aggregate(elapsed)
	return cell, nil
}

// runSearches times linear vs binary search for the median record of each
// input set, after sorting the set once (outside any timed region) with
// the stable sort.
func (h *Harness[T]) runSearches(ctx context.Context, report *Report, sets [][]T) error {
	for i, size := range h.cfg.sizes {
		sorted := algo.MergeSort(sets[i], h.cmp)
		target := sorted[len(sorted)/2]

		for _, tag := range algo.SearchAlgorithms() {
			searchFn, err := algo.SearchByName[T](tag)
			if err != nil {
				return err
			}

			cell := Cell{Algorithm: tag, Size: size}
			counter := algo.NewCounter(h.cmp)
			elapsed := make([]time.Duration, 0, h.cfg.trials)

			for trial := 0; trial < h.cfg.trials; trial++ {
				if err := h.pace(ctx); err != nil {
					return err
				}

				counter.Reset()
				start := h.cfg.clock.Now()
				idx := searchFn(sorted, target, counter.Compare)
				d := h.cfg.clock.Now().Sub(start)

				result := TrialResult{
					Algorithm:   tag,
					Size:        size,
					Trial:       trial,
					Elapsed:     d,
					Comparisons: counter.Count(),
				}
				if idx == algo.NotFound {
					result.Err = &AlgorithmFailure{
						Algorithm: tag, Size: size, Trial: trial,
						Err: fmt.Errorf("median record not found"),
					}
					h.notify(result)
					cell.Err = result.Err
					break
				}

				h.notify(result)
				elapsed = append(elapsed, d)
				if trial == 0 {
					cell.Comparisons = counter.Count()
				}
			}

			if cell.Err == nil {
				cell.aggregate(elapsed)
			}
			report.Search = append(report.Search, cell)
		}
	}
	return nil
}

// pace waits out the configured trial rate limit, if any, and checks for
// cancellation. Runs strictly before the clock starts.
func (h *Harness[T]) pace(ctx context.Context) error {
	if h.cfg.limiter != nil {
		return h.cfg.limiter.Wait(ctx)
	}
	return ctx.Err()
}

func (h *Harness[T]) notify(result TrialResult) {
	if h.cfg.onTrial != nil {
		h.cfg.onTrial(result)
	}
}

// runSafely executes one sort call, converting a panic into an error with
// the captured stack so one broken algorithm cannot take down the run.
func runSafely[T any](fn algo.SortFunc[T], seq []T, cmp algo.Comparator[T]) (out []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("algorithm panic: %v\nstack trace:\n%s", r, buf[:n])
		}
	}()
	return fn(seq, cmp), nil
}
