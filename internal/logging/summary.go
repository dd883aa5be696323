package logging

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"loanopt/internal/ga"
	"loanopt/internal/loan"
)

// GenerationSummary holds per-generation statistics
type GenerationSummary struct {
	Generation    int       `json:"generation"`
	BestFitness   float64   `json:"best_fitness"`
	MeanFitness   float64   `json:"mean_fitness"`
	StdDevFitness float64   `json:"stddev_fitness"`
	WorstFitness  float64   `json:"worst_fitness"`
	BestTotalPaid float64   `json:"best_total_paid"`
	BestMonthly   float64   `json:"best_monthly"`
	BestPayments  []float64 `json:"best_payments"`
	Feasible      int       `json:"feasible"`
	Population    int       `json:"population"`
}

// Summarize computes statistics over an evaluated population
func Summarize(gen int, genomes []ga.Genome, plan loan.Plan) GenerationSummary {
	s := GenerationSummary{Generation: gen, Population: len(genomes)}
	if len(genomes) == 0 {
		return s
	}

	fitness := make([]float64, 0, len(genomes))
	for _, g := range genomes {
		if !g.Evaluated() {
			continue
		}
		fitness = append(fitness, g.Fitness)
		if plan.Breakdown(g.Genes).Feasible {
			s.Feasible++
		}
	}
	if len(fitness) == 0 {
		return s
	}

	best := 0
	for i, g := range genomes {
		if g.Fitness >= genomes[best].Fitness {
			best = i
		}
	}
	b := plan.Breakdown(genomes[best].Genes)

	s.BestFitness = floats.Max(fitness)
	s.WorstFitness = floats.Min(fitness)
	s.MeanFitness, s.StdDevFitness = stat.MeanStdDev(fitness, nil)
	if b.Feasible {
		s.BestTotalPaid = b.TotalPaid
	}
	s.BestMonthly = b.Monthly
	s.BestPayments = plan.Payments(genomes[best].Genes)
	return s
}
