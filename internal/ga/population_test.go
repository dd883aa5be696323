package ga

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPopulationSeedsUnitInterval(t *testing.T) {
	pop, err := NewPopulation(20, 5, nil, 0, newRNG(42))
	require.NoError(t, err)

	assert.Equal(t, 20, pop.Size())
	for _, g := range pop.Genomes {
		require.Equal(t, 5, g.Len())
		assert.False(t, g.Evaluated())
		for _, v := range g.Genes {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 1.0)
		}
	}
}

func TestNewPopulationRedrawsRejected(t *testing.T) {
	calls := 0
	accept := AcceptFunc(func(genes []float64) bool {
		calls++
		return genes[0] < 0.25
	})

	pop, err := NewPopulation(10, 2, accept, 0, newRNG(4))
	require.NoError(t, err)

	assert.Greater(t, calls, 10)
	for _, g := range pop.Genomes {
		assert.Less(t, g.Genes[0], 0.25)
	}
}

func TestNewPopulationSeedAttemptsExhausted(t *testing.T) {
	never := AcceptFunc(func([]float64) bool { return false })

	_, err := NewPopulation(3, 2, never, 25, newRNG(1))
	assert.True(t, errors.Is(err, ErrSeedingExhausted))
}

func TestPopulationSortAndBest(t *testing.T) {
	pop := &Population{Genomes: genomesWithFitness(0.5, Unevaluated, 0.9, 0.1)}

	assert.Equal(t, 2, pop.Best())
	pop.SortByFitness()

	got := make([]float64, 0, 4)
	for _, g := range pop.Genomes {
		got = append(got, g.Fitness)
	}
	assert.Equal(t, []float64{Unevaluated, 0.1, 0.5, 0.9}, got)
	assert.Equal(t, 3, pop.Best())
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	pop := &Population{Genomes: genomesWithFitness(0.3)}

	snap := pop.Snapshot()
	snap[0].Genes[0] = 99
	snap[0].Fitness = 99

	assert.Equal(t, 0.3, pop.Genomes[0].Genes[0])
	assert.Equal(t, 0.3, pop.Genomes[0].Fitness)
}
