// Package brkga implements the core of a Biased Random-Key Genetic
// Algorithm: a reusable black-box optimizer for combinatorial minimization
// problems where candidate solutions are encoded as fixed-length vectors of
// random keys in [0,1) and a user-supplied Decoder maps each vector to a
// fitness value.
//
// The package owns population storage and its sorted fitness ranking,
// generational evolution via elitism, biased crossover and mutant
// injection, parallel decoding across worker goroutines, and periodic
// elite migration across K independent populations. Decoder
// implementations, random-number generators beyond the default in the
// rng subpackage, and command-line drivers are intentionally out of
// scope; see the examples and cmd directories for demonstrations built on
// top of this package.
//
// Basic usage:
//
//	eng, err := brkga.New(n, p, brkga.Frac(0.2), brkga.Frac(0.1), rhoe,
//	    decoder, rngSource,
//	    brkga.WithPopulations(1),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := eng.Evolve(100); err != nil {
//	    log.Fatal(err)
//	}
//	best, _ := eng.BestChromosome()
package brkga
