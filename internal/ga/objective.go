package ga

// Rand is the random source every stochastic operator draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a uniform value in [0,1)
	Float64() float64
}

// Objective scores a genome. Higher is better; the result must be finite and
// non-negative. Infeasible solutions should score at or near zero.
type Objective interface {
	Fitness(genes []float64) float64
}

// Acceptor vetoes random genomes while the initial population is seeded
type Acceptor interface {
	Accept(genes []float64) bool
}

// ObjectiveFunc adapts a plain function to Objective
type ObjectiveFunc func(genes []float64) float64

// Fitness calls f(genes)
func (f ObjectiveFunc) Fitness(genes []float64) float64 {
	return f(genes)
}

// AcceptFunc adapts a plain function to Acceptor
type AcceptFunc func(genes []float64) bool

// Accept calls f(genes)
func (f AcceptFunc) Accept(genes []float64) bool {
	return f(genes)
}
