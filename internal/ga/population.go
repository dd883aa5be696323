package ga

import (
	"fmt"
	"sort"
)

// Population is a fixed-size collection of equally sized genomes.
// Slots are replaced in place; the size never changes.
type Population struct {
	Genomes    []Genome
	GenomeSize int
}

// NewPopulation creates a population of uniformly random genomes in [0,1).
// A genome rejected by accept is redrawn in place until accepted. A nil accept
// admits everything. maxAttempts bounds the redraws per slot; zero means no bound,
// in which case an unsatisfiable acceptor never returns.
func NewPopulation(size, genomeSize int, accept Acceptor, maxAttempts int, rng Rand) (*Population, error) {
	p := &Population{
		Genomes:    make([]Genome, size),
		GenomeSize: genomeSize,
	}

	for i := 0; i < size; i++ {
		g := NewGenome(genomeSize)
		for attempt := 1; ; attempt++ {
			RandomizeGenes(g.Genes, rng)
			if accept == nil || accept.Accept(g.Genes) {
				break
			}
			if maxAttempts > 0 && attempt >= maxAttempts {
				return nil, fmt.Errorf("slot %d rejected %d times: %w", i, attempt, ErrSeedingExhausted)
			}
		}
		p.Genomes[i] = g
	}

	return p, nil
}

// RandomizeGenes overwrites every gene with a uniform value in [0,1)
func RandomizeGenes(genes []float64, rng Rand) {
	for i := range genes {
		genes[i] = rng.Float64()
	}
}

// Size returns the population size
func (p *Population) Size() int {
	return len(p.Genomes)
}

// SortByFitness sorts genomes by fitness (ascending), so the elite is last.
// Unevaluated genomes sort first.
func (p *Population) SortByFitness() {
	sort.SliceStable(p.Genomes, func(i, j int) bool {
		return p.Genomes[i].Fitness < p.Genomes[j].Fitness
	})
}

// Best returns the index of the genome with the highest fitness. Ties go to
// the later slot, which is where a stable ascending sort leaves it.
func (p *Population) Best() int {
	if len(p.Genomes) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(p.Genomes); i++ {
		if p.Genomes[i].Fitness >= p.Genomes[best].Fitness {
			best = i
		}
	}
	return best
}

// Snapshot returns deep copies of all genomes
func (p *Population) Snapshot() []Genome {
	out := make([]Genome, len(p.Genomes))
	for i, g := range p.Genomes {
		out[i] = g.Clone()
	}
	return out
}

// TotalFitness sums the fitness of every genome
func (p *Population) TotalFitness() float64 {
	var total float64
	for _, g := range p.Genomes {
		total += g.Fitness
	}
	return total
}
