package brkga

import (
	"fmt"
	"sort"
)

// rankEntry pairs a fitness value with the physical slot that produced it.
// rank is kept sorted ascending by (fitness, slot) so rank[0] is always
// the best individual in the population.
type rankEntry struct {
	fitness float64
	slot    int
}

// population holds storage for p chromosomes of length n and a sorted
// fitness index over them. Its fields are unexported so that only code in
// package brkga (the Engine) can mutate storage or rank; everything else
// gets the read-only accessor methods below. This collapses the C++
// origin's Population/BRKGA friendship into a single Go package, per
// SPEC_FULL.md's package-layout notes.
type population struct {
	n, p    int
	storage [][]float64
	rank    []rankEntry
}

// newPopulation allocates storage for p chromosomes of length n, all
// zero-valued, and a rank of length p. Contents are undefined until the
// engine fills them; sortRank must run before any accessor is meaningful.
func newPopulation(n, p int) *population {
	storage := make([][]float64, p)
	for i := range storage {
		storage[i] = make([]float64, n)
	}
	return &population{
		n:       n,
		p:       p,
		storage: storage,
		rank:    make([]rankEntry, p),
	}
}

// clone makes an independent deep copy: a new storage matrix and a new
// rank slice, so writes to the clone never alias the original. This is
// how previous[k] is seeded from current[k] at construction time (see
// SPEC_FULL.md EXPANSION-FEATURES on copy-construction).
func (pop *population) clone() *population {
	out := &population{
		n:       pop.n,
		p:       pop.p,
		storage: make([][]float64, pop.p),
		rank:    make([]rankEntry, pop.p),
	}
	for i := range pop.storage {
		row := make([]float64, pop.n)
		copy(row, pop.storage[i])
		out.storage[i] = row
	}
	copy(out.rank, pop.rank)
	return out
}

// sizeN returns the chromosome length.
func (pop *population) sizeN() int { return pop.n }

// sizeP returns the population size.
func (pop *population) sizeP() int { return pop.p }

// fitnessAt returns the fitness of the i-th best chromosome, i in [0,p).
func (pop *population) fitnessAt(i int) (float64, error) {
	if i < 0 || i >= pop.p {
		return 0, fmt.Errorf("%w: fitness index %d (p=%d)", ErrIndexOutOfRange, i, pop.p)
	}
	return pop.rank[i].fitness, nil
}

// bestFitness returns fitnessAt(0).
func (pop *population) bestFitness() float64 {
	return pop.rank[0].fitness
}

// chromosomeAt returns the i-th best chromosome, i in [0,p). The returned
// slice is owned by the population; callers must not mutate it.
func (pop *population) chromosomeAt(i int) ([]float64, error) {
	if i < 0 || i >= pop.p {
		return nil, fmt.Errorf("%w: chromosome index %d (p=%d)", ErrIndexOutOfRange, i, pop.p)
	}
	return pop.storage[pop.rank[i].slot], nil
}

// slot returns a mutable reference to physical slot j, engine-internal.
func (pop *population) slot(j int) []float64 {
	return pop.storage[j]
}

// recordFitness sets rank[j] := (f, j). Called exactly once per slot per
// generation, before sortRank. Leaves rank unsorted.
func (pop *population) recordFitness(j int, f float64) {
	pop.rank[j] = rankEntry{fitness: f, slot: j}
}

// sortRank sorts rank ascending by (fitness, slot), restoring invariant R1.
func (pop *population) sortRank() {
	sort.Slice(pop.rank, func(i, j int) bool {
		a, b := pop.rank[i], pop.rank[j]
		if a.fitness != b.fitness {
			return a.fitness < b.fitness
		}
		return a.slot < b.slot
	})
}

// IsRepeated reports whether two chromosomes are allele-wise identical. It
// plays no role in Evolve, Reset, or ExchangeElite — it is exposed purely
// as a convenience for callers who want to measure population diversity,
// mirroring the private isRepeated helper declared (but never called) by
// the original BRKGA.h.
func IsRepeated(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
