// Command brkga-demo runs the BRKGA core against the bundled TSP demo
// decoder. It exists to exercise brkga.Engine end to end, the same role
// kerneldump-MLGeneticAlgorithm/cmd/ga/main.go plays for its ga package.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/rfrancotoso/brkgaAPI"
	"github.com/rfrancotoso/brkgaAPI/config"
	"github.com/rfrancotoso/brkgaAPI/examples/tsp"
	"github.com/rfrancotoso/brkgaAPI/rng"
)

func main() {
	instancePath := flag.String("instance", "", "path to a CSV instance file (name,x,y rows)")
	configPath := flag.String("config", "", "path to a TOML hyperparameter file (optional)")
	generations := flag.Int("generations", 200, "number of generations to evolve")
	flag.Parse()

	if *instancePath == "" {
		log.Fatal("brkga-demo: -instance is required")
	}

	instance, err := tsp.LoadInstance(*instancePath)
	if err != nil {
		log.Fatalf("brkga-demo: %v", err)
	}

	params, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("brkga-demo: %v", err)
	}
	params.N = len(instance.Cities)

	decoder := tsp.NewDecoder(instance)
	source := rng.New(params.Seed)

	eng, err := brkga.New(
		params.N, params.P,
		brkga.Frac(params.EliteFrac), brkga.Frac(params.MutantFrac),
		params.RhoE, decoder, source,
		brkga.WithPopulations(params.K),
		brkga.WithMaxThreads(params.MaxThreads),
	)
	if err != nil {
		log.Fatalf("brkga-demo: %v", err)
	}

	fmt.Printf("evolving %d cities, p=%d, generations=%d\n", params.N, params.P, *generations)

	for gen := 0; gen < *generations; gen++ {
		if err := eng.Evolve(1); err != nil {
			log.Fatalf("brkga-demo: generation %d: %v", gen, err)
		}
		if gen%20 == 0 || gen == *generations-1 {
			fmt.Printf("generation %d: best tour length = %.2f\n", gen, eng.BestFitness())
		}
	}

	best, err := eng.BestChromosome()
	if err != nil {
		log.Fatalf("brkga-demo: %v", err)
	}
	fmt.Printf("final best tour length = %.2f (chromosome length %d)\n", eng.BestFitness(), len(best))
}
