package ga

// Unevaluated marks a genome whose fitness has not been computed yet.
// Valid fitness values are finite and non-negative, so it never collides.
const Unevaluated = -1.0

// Genome is one candidate solution: a fixed-length vector of genes and its fitness
type Genome struct {
	Genes   []float64
	Fitness float64
}

// NewGenome returns a zeroed, unevaluated genome of length n
func NewGenome(n int) Genome {
	return Genome{
		Genes:   make([]float64, n),
		Fitness: Unevaluated,
	}
}

// Len returns the number of genes
func (g Genome) Len() int {
	return len(g.Genes)
}

// Evaluated reports whether the fitness has been assigned
func (g Genome) Evaluated() bool {
	return g.Fitness != Unevaluated
}

// Clone creates a deep copy of a genome
func (g Genome) Clone() Genome {
	genes := make([]float64, len(g.Genes))
	copy(genes, g.Genes)
	return Genome{Genes: genes, Fitness: g.Fitness}
}
