package ga

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
)

type state int

const (
	stateUninitialized state = iota
	stateReady
	stateDestroyed
)

// Config holds the immutable per-run parameters
type Config struct {
	PopulationSize int
	GenomeSize     int
	// MutationRate is the per-gene probability of a reset mutation [0:1]
	MutationRate float64
	// CrossoverRate is the per-gene probability of discrete inheritance [0:1]
	CrossoverRate float64
	// FitnessThreshold is validated and reported but not consulted by
	// selection or replacement: every generation replaces all but the elite.
	FitnessThreshold float64

	Objective Objective
	Acceptor  Acceptor // optional

	// Rand is the random source. When nil, one is created from Seed.
	Rand Rand
	Seed int64
	// MaxSeedAttempts bounds acceptor rejections per slot while seeding (0 = unbounded)
	MaxSeedAttempts int
	// Logger receives debug traces of selection and breeding (optional)
	Logger *slog.Logger
}

// Validate checks the configuration
func (c *Config) Validate() error {
	switch {
	case c.PopulationSize <= 0:
		return &ConfigError{Field: "population_size", Reason: "must be positive"}
	case c.GenomeSize <= 0:
		return &ConfigError{Field: "genome_size", Reason: "must be positive"}
	case c.Objective == nil:
		return &ConfigError{Field: "objective", Reason: "is required"}
	case !inUnitRange(c.MutationRate):
		return &ConfigError{Field: "mutation_rate", Reason: "must be within [0,1]"}
	case !inUnitRange(c.CrossoverRate):
		return &ConfigError{Field: "crossover_rate", Reason: "must be within [0,1]"}
	case c.FitnessThreshold < 0 || math.IsNaN(c.FitnessThreshold):
		return &ConfigError{Field: "fitness_threshold", Reason: "must be non-negative"}
	case c.MaxSeedAttempts < 0:
		return &ConfigError{Field: "max_seed_attempts", Reason: "must be non-negative"}
	}
	return nil
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}

// Engine runs a micro genetic algorithm with roulette-wheel selection and
// single-elite reinsertion. It exclusively owns its population; callers only
// ever see copies. An Engine is not safe for concurrent use.
type Engine struct {
	cfg        Config
	rng        Rand
	log        *slog.Logger
	pop        *Population
	generation int
	state      state
}

// New validates cfg, seeds the population and returns a ready engine
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pop, err := NewPopulation(cfg.PopulationSize, cfg.GenomeSize, cfg.Acceptor, cfg.MaxSeedAttempts, rng)
	if err != nil {
		return nil, fmt.Errorf("seed population: %w", err)
	}

	return &Engine{
		cfg:   cfg,
		rng:   rng,
		log:   logger,
		pop:   pop,
		state: stateReady,
	}, nil
}

func (e *Engine) ready() error {
	if e == nil || e.state != stateReady {
		return ErrNotReady
	}
	return nil
}

// Destroy releases the population. The engine is unusable afterwards.
func (e *Engine) Destroy() error {
	if err := e.ready(); err != nil {
		return err
	}
	e.pop = nil
	e.state = stateDestroyed
	return nil
}

// Evaluate scores every genome whose fitness is still unknown.
// Scores are checked before any is stored, so a bad score leaves the
// population untouched.
func (e *Engine) Evaluate() error {
	if err := e.ready(); err != nil {
		return err
	}
	return e.evaluate()
}

func (e *Engine) evaluate() error {
	scores := make([]float64, e.pop.Size())
	for i, g := range e.pop.Genomes {
		if g.Evaluated() {
			scores[i] = g.Fitness
			continue
		}
		f := e.cfg.Objective.Fitness(g.Genes)
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("slot %d scored %v: %w", i, f, ErrInvalidFitness)
		}
		scores[i] = f
	}
	for i := range e.pop.Genomes {
		e.pop.Genomes[i].Fitness = scores[i]
	}
	return nil
}

// Sort orders the population by ascending fitness
func (e *Engine) Sort() error {
	if err := e.ready(); err != nil {
		return err
	}
	e.pop.SortByFitness()
	return nil
}

// Step advances the population by one generation: evaluate, rank, select
// size-1 parent pairs, breed and mutate children in a scratch buffer, then
// overwrite every slot except the elite.
func (e *Engine) Step() error {
	if err := e.ready(); err != nil {
		return err
	}

	// 1. Evaluate
	if err := e.evaluate(); err != nil {
		return err
	}

	// 2. Rank; the elite ends up in the last slot
	e.pop.SortByFitness()
	size := e.pop.Size()
	replace := size - 1

	// 3. Roulette wheel over the ranked population
	dist := CumulativeDistribution(e.pop.Genomes)

	// 4. Select parents
	pairs, err := SelectParents(dist, replace, e.rng)
	if err != nil {
		return fmt.Errorf("select parents: %w", err)
	}

	// 5. Breed into scratch so replaced slots stay valid parents
	children := make([]Genome, replace)
	for n, p := range pairs {
		children[n] = BlendCrossover(e.pop.Genomes[p.Mother], e.pop.Genomes[p.Father], e.cfg.CrossoverRate, e.rng)
	}

	// 6. Mutate the staged children
	for n := range children {
		mutated := MutateGenome(&children[n], e.cfg.MutationRate, e.rng)

		if e.log.Enabled(context.Background(), slog.LevelDebug) {
			p := pairs[n]
			e.log.Debug("bred child",
				"generation", e.generation,
				"mother", p.Mother,
				"father", p.Father,
				"mother_genes", e.pop.Genomes[p.Mother].Genes,
				"father_genes", e.pop.Genomes[p.Father].Genes,
				"child_genes", children[n].Genes,
				"mutated", mutated,
			)
		}
	}

	// 7. Replace the non-elite slots
	for n := range children {
		e.pop.Genomes[n] = children[n]
	}
	e.generation++

	e.log.Debug("generation complete",
		"generation", e.generation,
		"replaced", replace,
		"elite_fitness", e.pop.Genomes[size-1].Fitness,
	)
	return nil
}

// Genomes returns deep copies of the current population in slot order
func (e *Engine) Genomes() ([]Genome, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}
	return e.pop.Snapshot(), nil
}

// Best returns a copy of the genome with the highest fitness
func (e *Engine) Best() (Genome, error) {
	if err := e.ready(); err != nil {
		return Genome{}, err
	}
	return e.pop.Genomes[e.pop.Best()].Clone(), nil
}

// Size returns the population size
func (e *Engine) Size() int {
	if e == nil || e.pop == nil {
		return 0
	}
	return e.pop.Size()
}

// Generation returns the number of completed steps
func (e *Engine) Generation() int {
	if e == nil {
		return 0
	}
	return e.generation
}

// Threshold returns the configured fitness threshold. It has no effect on evolution.
func (e *Engine) Threshold() float64 {
	if e == nil {
		return 0
	}
	return e.cfg.FitnessThreshold
}
