package brkga

import (
	"errors"
	"testing"
)

// buildManualEngine constructs an Engine whose populations are populated and
// sorted by hand, bypassing New/decode, so migration can be tested in
// isolation against known fitness values.
func buildManualEngine(t *testing.T, k, p, n int) *Engine {
	t.Helper()
	eng := &Engine{
		n: n, p: p, pe: 1, pm: 0, rhoe: 0.7,
		k: k, maxThreads: 1,
		decoder: sumWeightsDecoder{},
		current: make([]*population, k),
	}
	for i := 0; i < k; i++ {
		eng.current[i] = newPopulation(n, p)
	}
	return eng
}

// fillPopulation sets every allele of slot j to fitnesses[j] itself, so a
// migrated chromosome's contents are trivially traceable back to the
// fitness value it carried.
func fillPopulation(pop *population, fitnesses []float64) {
	for j, f := range fitnesses {
		row := pop.slot(j)
		for a := range row {
			row[a] = f
		}
		pop.recordFitness(j, f)
	}
	pop.sortRank()
}

func TestExchangeEliteRejectsSinglePopulation(t *testing.T) {
	eng := buildManualEngine(t, 1, 4, 2)
	fillPopulation(eng.current[0], []float64{1, 2, 3, 4})
	if err := eng.ExchangeElite(1); !errors.Is(err, ErrInvalidMigration) {
		t.Errorf("expected ErrInvalidMigration for K=1, got %v", err)
	}
}

func TestExchangeEliteRejectsTooManyMigrants(t *testing.T) {
	eng := buildManualEngine(t, 2, 4, 2)
	fillPopulation(eng.current[0], []float64{1, 2, 3, 4})
	fillPopulation(eng.current[1], []float64{5, 6, 7, 8})
	// m*(K-1) = 4*1 = 4 >= p=4: rejected.
	if err := eng.ExchangeElite(4); !errors.Is(err, ErrInvalidMigration) {
		t.Errorf("expected ErrInvalidMigration for oversized migration, got %v", err)
	}
}

func TestExchangeEliteOverwritesWorstSlotsWithBestOfOthers(t *testing.T) {
	eng := buildManualEngine(t, 2, 4, 2)
	fillPopulation(eng.current[0], []float64{10, 20, 30, 40})
	fillPopulation(eng.current[1], []float64{1, 2, 3, 4})

	if err := eng.ExchangeElite(1); err != nil {
		t.Fatalf("ExchangeElite: %v", err)
	}

	// Population 0's worst individual (fitness 40) is replaced by
	// population 1's best (fitness 1); population 0's best three survive.
	view0, err := eng.Population(0)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := view0.FitnessAt(0); got != 1 {
		t.Errorf("population 0 best fitness after migration = %v, want 1 (migrated in)", got)
	}
	if got := view0.BestFitness(); got != 1 {
		t.Errorf("BestFitness() = %v, want 1", got)
	}

	// Population 1's worst (fitness 4) is replaced by population 0's best
	// pre-migration value (10).
	view1, err := eng.Population(1)
	if err != nil {
		t.Fatal(err)
	}
	found10 := false
	for i := 0; i < view1.SizeP(); i++ {
		f, _ := view1.FitnessAt(i)
		if f == 10 {
			found10 = true
		}
		if f == 4 {
			t.Errorf("population 1 still contains pre-migration worst fitness 4")
		}
	}
	if !found10 {
		t.Error("population 1 did not receive population 0's best fitness 10")
	}
}

func TestExchangeEliteSymmetricBothDirections(t *testing.T) {
	eng := buildManualEngine(t, 2, 5, 1)
	fillPopulation(eng.current[0], []float64{1, 2, 3, 4, 5})
	fillPopulation(eng.current[1], []float64{6, 7, 8, 9, 10})

	if err := eng.ExchangeElite(2); err != nil {
		t.Fatalf("ExchangeElite: %v", err)
	}

	view0, _ := eng.Population(0)
	view1, _ := eng.Population(1)

	// Population 0 (already the global best tier) keeps fitness 1 as its
	// best: its own elites were never worse than what migrates in.
	if got := view0.BestFitness(); got != 1 {
		t.Errorf("population 0 best fitness = %v, want 1", got)
	}
	// Population 1 receives population 0's two best (1 and 2) into its
	// worst two slots, so its new best is population 0's elite, 1.
	if got := view1.BestFitness(); got != 1 {
		t.Errorf("population 1 best fitness after symmetric migration = %v, want 1", got)
	}
}

func TestExchangeEliteOnlyOverwritesFitnessNotSlotIndexBookkeeping(t *testing.T) {
	// Regression test for the migration design decision: rank[dest].slot is
	// never rewritten by ExchangeElite, only rank[dest].fitness and the
	// chromosome storage at the slot the rank entry already points to.
	eng := buildManualEngine(t, 2, 3, 1)
	fillPopulation(eng.current[0], []float64{1, 2, 3})
	fillPopulation(eng.current[1], []float64{4, 5, 6})

	destSlotBefore := eng.current[0].rank[2].slot

	if err := eng.ExchangeElite(1); err != nil {
		t.Fatalf("ExchangeElite: %v", err)
	}

	// The physical slot that was the worst before migration must now carry
	// the migrated-in chromosome's values, proving storage was written via
	// the slot index the rank entry held, not some other index.
	migratedChrom := eng.current[0].storage[destSlotBefore]
	if migratedChrom[0] != 4 {
		t.Errorf("slot %d was not overwritten with migrated chromosome: got %v, want [4]", destSlotBefore, migratedChrom)
	}
}

func TestExchangeEliteRePopulationsSortedAfterMigration(t *testing.T) {
	eng := buildManualEngine(t, 3, 6, 1)
	fillPopulation(eng.current[0], []float64{1, 2, 3, 4, 5, 6})
	fillPopulation(eng.current[1], []float64{7, 8, 9, 10, 11, 12})
	fillPopulation(eng.current[2], []float64{13, 14, 15, 16, 17, 18})

	if err := eng.ExchangeElite(1); err != nil {
		t.Fatalf("ExchangeElite: %v", err)
	}

	for k := 0; k < 3; k++ {
		view, err := eng.Population(k)
		if err != nil {
			t.Fatal(err)
		}
		assertSorted(t, view)
	}
}
