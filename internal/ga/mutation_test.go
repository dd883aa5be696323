package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutateRateZeroLeavesGenes(t *testing.T) {
	genes := []float64{0.1, 0.2, 0.3, 0.4}
	before := append([]float64(nil), genes...)

	n := Mutate(genes, 0, newRNG(1))

	assert.Zero(t, n)
	assert.Equal(t, before, genes)
}

func TestMutateRateOneReplacesEveryGene(t *testing.T) {
	genes := []float64{5, 6, 7}
	rng := &scriptedRand{vals: []float64{0.5, 0.11, 0.2, 0.22, 0.9, 0.33}}

	n := Mutate(genes, 1, rng)

	assert.Equal(t, 3, n)
	assert.Equal(t, []float64{0.11, 0.22, 0.33}, genes)
}

func TestMutateRateOneStaysInUnitInterval(t *testing.T) {
	genes := make([]float64, 100)
	for i := range genes {
		genes[i] = 2
	}

	Mutate(genes, 1, newRNG(9))
	for _, v := range genes {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestMutateGenomeKeepsLength(t *testing.T) {
	g := NewGenome(6)
	MutateGenome(&g, 0.5, newRNG(2))
	assert.Equal(t, 6, g.Len())
}
