package brkga

// ExchangeElite migrates the M best chromosomes of every other population
// into each population's worst slots. Requires K >= 2 and
// 1 <= M*(K-1) < p. Reads are staged into temporary buffers before any
// writes happen, so the copy is correct even if a future refactor makes
// populations share underlying storage (today they never do — each
// population owns its own distinct storage).
func (eng *Engine) ExchangeElite(m int) error {
	if eng.k < 2 || m < 1 || m*(eng.k-1) >= eng.p {
		return ErrInvalidMigration
	}

	type incoming struct {
		chromosome []float64
		fitness    float64
	}

	// Stage every incoming elite for every destination population before
	// mutating anything.
	staged := make([][]incoming, eng.k)
	for i := 0; i < eng.k; i++ {
		var batch []incoming
		for j := 0; j < eng.k; j++ {
			if j == i {
				continue
			}
			for mm := 0; mm < m; mm++ {
				chrom, err := eng.current[j].chromosomeAt(mm)
				if err != nil {
					return err
				}
				fit, err := eng.current[j].fitnessAt(mm)
				if err != nil {
					return err
				}
				cp := make([]float64, len(chrom))
				copy(cp, chrom)
				batch = append(batch, incoming{chromosome: cp, fitness: fit})
			}
		}
		staged[i] = batch
	}

	for i := 0; i < eng.k; i++ {
		dest := eng.p - 1
		for _, in := range staged[i] {
			slotIdx := eng.current[i].rank[dest].slot
			copy(eng.current[i].storage[slotIdx], in.chromosome)
			eng.current[i].rank[dest].fitness = in.fitness
			dest--
		}
	}

	for i := 0; i < eng.k; i++ {
		eng.current[i].sortRank()
	}

	return nil
}
