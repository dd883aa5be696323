package ga

import "math/rand"

// scriptedRand replays a fixed sequence of draws and panics when it runs dry
type scriptedRand struct {
	vals []float64
	i    int
}

func (s *scriptedRand) Float64() float64 {
	v := s.vals[s.i]
	s.i++
	return v
}

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func sumGenes(genes []float64) float64 {
	var s float64
	for _, g := range genes {
		s += g
	}
	return s
}

func genomesWithFitness(fitness ...float64) []Genome {
	out := make([]Genome, len(fitness))
	for i, f := range fitness {
		out[i] = Genome{Genes: []float64{f}, Fitness: f}
	}
	return out
}
