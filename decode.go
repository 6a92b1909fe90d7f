package brkga

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Decoder maps a chromosome to a fitness scalar, lower is better. Decode
// may mutate chromosome in place; the engine observes and carries forward
// any such mutation. Decode must be safe to call concurrently from
// multiple goroutines on distinct chromosome slices whenever the engine
// is configured with more than one decode thread.
type Decoder interface {
	Decode(chromosome []float64) (float64, error)
}

// decodeRange invokes decoder.Decode(pop.slot(i)) for every i in [lo,hi)
// and records the result via pop.recordFitness, using up to maxThreads
// goroutines in flight at once. Each i is visited exactly once; no
// ordering is guaranteed among them. When maxThreads is 1 the group never
// runs more than one goroutine concurrently, so decoders need not be
// thread-safe in that configuration (mirroring spec.md's T=1 contract).
//
// Grounded on tomhoffer-darwinium's GeneticAlgorithmExecutor.RefreshFitness,
// which evaluates a population's fitness the same way: an errgroup capped
// with SetLimit, one goroutine per index, first error cancels the rest.
func decodeRange(ctx context.Context, pop *population, lo, hi int, decoder Decoder, maxThreads int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxThreads)

	for i := lo; i < hi; i++ {
		i := i
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			f, err := decoder.Decode(pop.slot(i))
			if err != nil {
				return fmt.Errorf("brkga: decode chromosome at slot %d: %w", i, err)
			}
			pop.recordFitness(i, f)
			return nil
		})
	}

	return g.Wait()
}
