package brkga

import (
	"context"
	"fmt"
)

// RNG supplies the uniform deviates the engine consumes. It is mutated
// only by the engine's owner goroutine, never by decode workers.
type RNG interface {
	// Uniform01 returns a uniformly distributed real in [0,1).
	Uniform01() float64
	// UniformInt returns a uniformly distributed integer in [0,n], n < 2^32.
	UniformInt(n uint32) uint32
}

// PopulationShare expresses the elite or mutant tier size of a population,
// either as a fraction of p in (0,1] or as an absolute count. The
// canonical representation used internally is always a count (spec.md §3).
type PopulationShare struct {
	fraction float64
	count    int
	isCount  bool
}

// Frac builds a PopulationShare from a fraction of the population size.
func Frac(f float64) PopulationShare {
	return PopulationShare{fraction: f}
}

// Count builds a PopulationShare from an absolute individual count.
func Count(n int) PopulationShare {
	return PopulationShare{count: n, isCount: true}
}

func (s PopulationShare) resolve(p int) int {
	if s.isCount {
		return s.count
	}
	return int(s.fraction * float64(p))
}

// Option configures optional Engine hyperparameters beyond the required
// n, p, rhoe, decoder and rng arguments to New.
type Option func(*engineConfig)

type engineConfig struct {
	k          int
	maxThreads int
}

// WithPopulations sets K, the number of independent coevolving
// populations. Defaults to 1.
func WithPopulations(k int) Option {
	return func(c *engineConfig) { c.k = k }
}

// WithMaxThreads sets T, the maximum number of worker goroutines used to
// decode a generation's new chromosomes concurrently. Defaults to 1.
func WithMaxThreads(t int) Option {
	return func(c *engineConfig) { c.maxThreads = t }
}

// Engine holds K independent populations and orchestrates initialization,
// one-generation evolution, elite migration, full reset, and
// best-across-all queries. An Engine is not safe for concurrent use: all
// methods must be called from a single owner goroutine (only the decode
// phase internally fans out across worker goroutines and rejoins before
// returning).
type Engine struct {
	n, p, pe, pm int
	rhoe         float64
	k            int
	maxThreads   int

	decoder Decoder
	rng     RNG

	current  []*population
	previous []*population
}

// New constructs an Engine. n is the chromosome length, p the population
// size, pe and pm the elite and mutant tier sizes (as fractions or
// counts), rhoe the elite-inheritance probability, decoder and rng the
// required external collaborators. Hyperparameter violations are
// returned as configuration errors and the Engine is not constructed.
func New(n, p int, pe, pm PopulationShare, rhoe float64, decoder Decoder, rng RNG, opts ...Option) (*Engine, error) {
	cfg := engineConfig{k: 1, maxThreads: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	if n < 1 {
		return nil, ErrChromosomeLength
	}
	if p < 1 {
		return nil, ErrPopulationSize
	}
	peCount := pe.resolve(p)
	pmCount := pm.resolve(p)
	if peCount < 1 || peCount > p {
		return nil, ErrEliteSize
	}
	if pmCount < 0 || pmCount > p {
		return nil, ErrMutantSize
	}
	if peCount+pmCount > p {
		return nil, ErrEliteMutantExceed
	}
	if cfg.k < 1 {
		return nil, ErrPopulationCount
	}
	if cfg.maxThreads < 1 {
		return nil, ErrMaxThreads
	}
	if decoder == nil {
		return nil, ErrNilDecoder
	}
	if rng == nil {
		return nil, ErrNilRNG
	}

	eng := &Engine{
		n:          n,
		p:          p,
		pe:         peCount,
		pm:         pmCount,
		rhoe:       rhoe,
		k:          cfg.k,
		maxThreads: cfg.maxThreads,
		decoder:    decoder,
		rng:        rng,
		current:    make([]*population, cfg.k),
		previous:   make([]*population, cfg.k),
	}

	for i := 0; i < cfg.k; i++ {
		eng.current[i] = newPopulation(n, p)
		if err := eng.initialize(i); err != nil {
			return nil, err
		}
		eng.previous[i] = eng.current[i].clone()
	}

	return eng, nil
}

// initialize fills population i with fresh random keys, decodes it, and
// sorts its rank. The RNG is consumed serially, slot by slot, allele by
// allele, so reproducibility depends only on the RNG sequence.
func (eng *Engine) initialize(i int) error {
	pop := eng.current[i]
	for j := 0; j < eng.p; j++ {
		row := pop.slot(j)
		for a := 0; a < eng.n; a++ {
			row[a] = eng.rng.Uniform01()
		}
	}

	if err := decodeRange(context.Background(), pop, 0, eng.p, eng.decoder, eng.maxThreads); err != nil {
		return err
	}

	pop.sortRank()
	return nil
}

// Reset reinitializes all K populations with brand new random keys,
// consuming the RNG for populations 0..K-1 in order.
func (eng *Engine) Reset() error {
	for i := 0; i < eng.k; i++ {
		if err := eng.initialize(i); err != nil {
			return err
		}
	}
	return nil
}

// Evolve runs generations generations of evolution on every population.
// Each generation reads from current[k], writes into previous[k]'s
// buffer, then swaps the two so current[k] references the new
// generation. generations must be >= 1.
func (eng *Engine) Evolve(generations int) error {
	if generations < 1 {
		return ErrInvalidGenerations
	}

	for g := 0; g < generations; g++ {
		for k := 0; k < eng.k; k++ {
			if err := eng.evolveOne(eng.current[k], eng.previous[k]); err != nil {
				return err
			}
			eng.current[k], eng.previous[k] = eng.previous[k], eng.current[k]
		}
	}
	return nil
}

// evolveOne performs one evolution step: elite carry-over, crossover
// offspring, mutants, parallel decode of the non-elite tier, then sort.
func (eng *Engine) evolveOne(src, dst *population) error {
	i := 0

	// Elite carry-over: fitness is propagated without re-decoding.
	for ; i < eng.pe; i++ {
		parent, err := src.chromosomeAt(i)
		if err != nil {
			return err
		}
		copy(dst.slot(i), parent)
		srcFitness, err := src.fitnessAt(i)
		if err != nil {
			return err
		}
		dst.recordFitness(i, srcFitness)
	}

	// Crossover offspring: biased uniform crossover between an elite and
	// a non-elite parent sampled from the sorted rank of src.
	for ; i < eng.p-eng.pm; i++ {
		eliteIdx := int(eng.rng.UniformInt(uint32(eng.pe - 1)))
		nonEliteIdx := eng.pe + int(eng.rng.UniformInt(uint32(eng.p-eng.pe-1)))

		eliteParent, err := src.chromosomeAt(eliteIdx)
		if err != nil {
			return err
		}
		nonEliteParent, err := src.chromosomeAt(nonEliteIdx)
		if err != nil {
			return err
		}

		child := dst.slot(i)
		for a := 0; a < eng.n; a++ {
			if eng.rng.Uniform01() < eng.rhoe {
				child[a] = eliteParent[a]
			} else {
				child[a] = nonEliteParent[a]
			}
		}
	}

	// Mutants: fresh random keys, bypassing crossover.
	for ; i < eng.p; i++ {
		row := dst.slot(i)
		for a := 0; a < eng.n; a++ {
			row[a] = eng.rng.Uniform01()
		}
	}

	if err := decodeRange(context.Background(), dst, eng.pe, eng.p, eng.decoder, eng.maxThreads); err != nil {
		return err
	}

	dst.sortRank()
	return nil
}

// BestFitness returns the minimum fitness across all K populations.
func (eng *Engine) BestFitness() float64 {
	best := eng.current[0].bestFitness()
	for i := 1; i < eng.k; i++ {
		if f := eng.current[i].bestFitness(); f < best {
			best = f
		}
	}
	return best
}

// BestChromosome returns the chromosome achieving BestFitness. On ties
// across populations, the lowest population index wins.
func (eng *Engine) BestChromosome() ([]float64, error) {
	bestK := 0
	best := eng.current[0].bestFitness()
	for i := 1; i < eng.k; i++ {
		if f := eng.current[i].bestFitness(); f < best {
			best = f
			bestK = i
		}
	}
	return eng.current[bestK].chromosomeAt(0)
}

// populationView is a read-only view over one of the engine's
// populations, returned by Population so external callers cannot reach
// the privileged mutators used internally by Evolve/Reset/ExchangeElite.
type populationView struct {
	pop *population
}

func (v populationView) SizeN() int                            { return v.pop.sizeN() }
func (v populationView) SizeP() int                            { return v.pop.sizeP() }
func (v populationView) FitnessAt(i int) (float64, error)       { return v.pop.fitnessAt(i) }
func (v populationView) BestFitness() float64                  { return v.pop.bestFitness() }
func (v populationView) ChromosomeAt(i int) ([]float64, error) { return v.pop.chromosomeAt(i) }

// Population returns a read-only view of population k, for reporting.
func (eng *Engine) Population(k int) (populationView, error) {
	if k < 0 || k >= eng.k {
		return populationView{}, fmt.Errorf("%w: population index %d (K=%d)", ErrIndexOutOfRange, k, eng.k)
	}
	return populationView{pop: eng.current[k]}, nil
}

// N returns the chromosome length.
func (eng *Engine) N() int { return eng.n }

// P returns the population size.
func (eng *Engine) P() int { return eng.p }

// Pe returns the elite-set size.
func (eng *Engine) Pe() int { return eng.pe }

// Pm returns the mutant-set size.
func (eng *Engine) Pm() int { return eng.pm }

// Po returns the size of the crossover tier, p - pe - pm.
func (eng *Engine) Po() int { return eng.p - eng.pe - eng.pm }

// RhoE returns the elite-inheritance probability.
func (eng *Engine) RhoE() float64 { return eng.rhoe }

// K returns the number of independent populations.
func (eng *Engine) K() int { return eng.k }

// MaxThreads returns the maximum number of decode worker goroutines.
func (eng *Engine) MaxThreads() int { return eng.maxThreads }
