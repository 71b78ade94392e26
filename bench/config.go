package bench

import (
	"slices"

	"golang.org/x/time/rate"

	"github.com/citybike/algobench/algo"
)

// DefaultMaxInputSize bounds accepted sizes so a typo in the configuration
// cannot start a runaway trial. Override with WithMaxInputSize.
const DefaultMaxInputSize = 1_000_000

// Option is a functional option for configuring the harness.
type Option func(*config)

type config struct {
	sizes        []int
	trials       int
	seed         int64
	algorithms   []string
	search       bool
	maxInputSize int
	limiter      *rate.Limiter
	clock        Clock
	onTrial      func(TrialResult)
}

func defaultConfig() *config {
	return &config{
		sizes:        []int{100, 1000, 10000},
		trials:       5,
		seed:         42,
		algorithms:   []string{algo.SortMerge, algo.SortQuick, algo.SortBaseline},
		maxInputSize: DefaultMaxInputSize,
		clock:        systemClock{},
	}
}

// WithSizes sets the input sizes to benchmark. Each size gets one input set
// shared by every algorithm.
func WithSizes(sizes ...int) Option {
	return func(cfg *config) {
		cfg.sizes = slices.Clone(sizes)
	}
}

// WithTrials sets how many timed executions run per (algorithm, size) cell.
func WithTrials(n int) Option {
	return func(cfg *config) {
		cfg.trials = n
	}
}

// WithSeed sets the seed for input-set generation. The same seed and sizes
// always produce identical input sets.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.seed = seed
	}
}

// WithAlgorithms selects the sort algorithms to benchmark, in report order.
// Tags must come from algo.SortAlgorithms.
func WithAlgorithms(tags ...string) Option {
	return func(cfg *config) {
		cfg.algorithms = slices.Clone(tags)
	}
}

// WithSearchBenchmarks also benchmarks linear vs binary search on each
// sorted input set, looking up the median record.
func WithSearchBenchmarks() Option {
	return func(cfg *config) {
		cfg.search = true
	}
}

// WithMaxInputSize overrides the safeguard bound on accepted sizes.
func WithMaxInputSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxInputSize = n
		}
	}
}

// WithTrialPacing caps timed trials at the given rate. Pacing happens
// before the clock starts, so it gives the CPU settle time between trials
// without polluting the measurements.
func WithTrialPacing(trialsPerSecond float64) Option {
	return func(cfg *config) {
		if trialsPerSecond > 0 {
			cfg.limiter = rate.NewLimiter(rate.Limit(trialsPerSecond), 1)
		}
	}
}

// WithClock replaces the trial time source. Intended for tests.
func WithClock(c Clock) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.clock = c
		}
	}
}

// WithTrialHook registers a callback invoked after every completed trial,
// including failed ones. Used by the CLI to drive a progress bar. The hook
// runs on the harness goroutine and adds to measured wall time between
// trials, never inside a timed region.
func WithTrialHook(fn func(TrialResult)) Option {
	return func(cfg *config) {
		cfg.onTrial = fn
	}
}

// validate surfaces every configuration problem before a single trial runs.
func (cfg *config) validate() error {
	if len(cfg.sizes) == 0 {
		return algo.NewConfigurationError("sizes", "at least one input size is required")
	}
	seen := make(map[int]bool, len(cfg.sizes))
	for _, n := range cfg.sizes {
		if n <= 0 {
			return algo.NewConfigurationError("sizes", "sizes must be positive, got %d", n)
		}
		if n > cfg.maxInputSize {
			return algo.NewConfigurationError("sizes",
				"size %d exceeds the maximum input size %d", n, cfg.maxInputSize)
		}
		if seen[n] {
			return algo.NewConfigurationError("sizes", "duplicate size %d", n)
		}
		seen[n] = true
	}

	if cfg.trials <= 0 {
		return algo.NewConfigurationError("trial_count", "must be positive, got %d", cfg.trials)
	}

	if len(cfg.algorithms) == 0 {
		return algo.NewConfigurationError("algorithms", "at least one algorithm is required")
	}
	for _, tag := range cfg.algorithms {
		if !slices.Contains(algo.SortAlgorithms(), tag) {
			return algo.NewConfigurationError("algorithms", "unknown sort algorithm %q", tag)
		}
	}
	return nil
}

// totalTrials is the number of trial callbacks a full run will deliver.
func (cfg *config) totalTrials() int {
	n := len(cfg.sizes) * len(cfg.algorithms) * cfg.trials
	if cfg.search {
		n += len(cfg.sizes) * len(algo.SearchAlgorithms()) * cfg.trials
	}
	return n
}
