package ga

// Mutate applies reset mutation in place: each gene is replaced by a fresh
// uniform value in [0,1) with probability rate
func Mutate(genes []float64, rate float64, rng Rand) int {
	mutated := 0
	for i := range genes {
		if rng.Float64() < rate {
			genes[i] = rng.Float64()
			mutated++
		}
	}
	return mutated
}

// MutateGenome applies Mutate to a genome's genes
func MutateGenome(g *Genome, rate float64, rng Rand) int {
	return Mutate(g.Genes, rate, rng)
}
