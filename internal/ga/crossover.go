package ga

// BlendCrossover creates a single child from two parents of equal length.
// Per gene, a uniform draw above rate blends the parents with a random weight
// w (w*mother + (1-w)*father); otherwise the gene is copied verbatim from one
// parent picked by a coin flip. A higher rate therefore means less blending.
func BlendCrossover(mother, father Genome, rate float64, rng Rand) Genome {
	child := NewGenome(mother.Len())
	BlendInto(child.Genes, mother.Genes, father.Genes, rate, rng)
	return child
}

// BlendInto writes the crossover of mother and father into dst
func BlendInto(dst, mother, father []float64, rate float64, rng Rand) {
	for i := range dst {
		if rng.Float64() > rate {
			w := rng.Float64()
			dst[i] = w*mother[i] + (1-w)*father[i]
			continue
		}
		if rng.Float64() > 0.5 {
			dst[i] = mother[i]
		} else {
			dst[i] = father[i]
		}
	}
}
