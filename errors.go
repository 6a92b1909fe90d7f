package brkga

import "errors"

// Configuration errors, returned by New and never recovered from: the
// engine is not constructed when one of these is returned.
var (
	ErrChromosomeLength  = errors.New("brkga: chromosome length n must be >= 1")
	ErrPopulationSize    = errors.New("brkga: population size p must be >= 1")
	ErrEliteSize         = errors.New("brkga: elite set size pe must be between 1 and p")
	ErrMutantSize        = errors.New("brkga: mutant set size pm must be between 0 and p")
	ErrEliteMutantExceed = errors.New("brkga: pe + pm must not exceed p")
	ErrPopulationCount   = errors.New("brkga: number of populations K must be >= 1")
	ErrMaxThreads        = errors.New("brkga: max decode threads must be >= 1")
	ErrNilDecoder        = errors.New("brkga: decoder must not be nil")
	ErrNilRNG            = errors.New("brkga: rng must not be nil")
)

// Call-time errors.
var (
	ErrInvalidGenerations = errors.New("brkga: generations must be >= 1")
	ErrInvalidMigration   = errors.New("brkga: migration requires K >= 2 and 1 <= M*(K-1) < p")
	ErrIndexOutOfRange    = errors.New("brkga: index out of range")
)
