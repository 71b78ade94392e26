package bench

import (
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Generator produces a benchmark input set of the requested size from the
// given random source. It must be deterministic in the source: identical
// rng state, identical records.
type Generator[T any] func(n int, rng *rand.Rand) []T

// inputSets builds one input set per configured size. Each set gets its own
// random source derived from the run seed and the size, so the sets come
// out identical no matter which order (or goroutine) generates them.
// Generation is setup work outside every timed region, so running it
// concurrently cannot bias the measurements.
func (h *Harness[T]) inputSets() ([][]T, error) {
	sets := make([][]T, len(h.cfg.sizes))

	var g errgroup.Group
	for i, n := range h.cfg.sizes {
		i, n := i, n
		g.Go(func() error {
			rng := rand.New(rand.NewSource(h.cfg.seed + int64(n)))
			sets[i] = h.gen(n, rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}
