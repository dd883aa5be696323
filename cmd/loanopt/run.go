package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"loanopt/internal/config"
	"loanopt/internal/ga"
	"loanopt/internal/history"
	"loanopt/internal/loan"
	"loanopt/internal/logging"
)

var (
	configPath  string
	generations int
	seed        int64
	planOut     string
	historyDB   string
	printAll    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the payment optimization",
	Long: `Evolves monthly payment splits for the configured loans and prints the
best plan found. Per-generation statistics go to CSV/JSONL and, optionally, a
history database.`,
	RunE: runOptimization,
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML or INI config file (built-in defaults when empty)")
	runCmd.Flags().IntVar(&generations, "generations", 0, "Number of generations (overrides config)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (overrides config; 0 uses the clock)")
	runCmd.Flags().StringVar(&planOut, "out", "", "Where to write the best plan JSON (overrides config)")
	runCmd.Flags().StringVar(&historyDB, "history-db", "", "SQLite file to record run history in")
	runCmd.Flags().BoolVar(&printAll, "all", false, "Print every individual of the final population")

	rootCmd.AddCommand(runCmd)
}

func runOptimization(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("generations") {
		cfg.GA.Generations = generations
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("out") {
		cfg.Logging.PlanPath = planOut
	}
	if flags.Changed("history-db") {
		cfg.Logging.HistoryBackend = "sqlite"
		cfg.Logging.HistoryDB = historyDB
	}
	if flags.Changed("all") {
		cfg.Logging.PrintAll = printAll
	}

	_, err := optimize(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
	return err
}

// runResult is what a finished optimization produced
type runResult struct {
	RunID       string
	Generations int
	Best        ga.Genome
	Breakdown   loan.Breakdown
	Final       []ga.Genome
}

// optimize runs the whole generation loop for cfg, writing the report to out
func optimize(ctx context.Context, cfg *config.Config, out io.Writer, log *slog.Logger) (*runResult, error) {
	plan := cfg.Plan()
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	runSeed := cfg.Seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}

	objective := loan.NewObjective(plan, cfg.GA.RejectInfeasibleSeeds)
	threshold := objective.FitnessThreshold(cfg.GA.ThresholdMargin)

	fmt.Fprintln(out, "Loan Payment Optimization")
	fmt.Fprintln(out, "-------------------------")
	fmt.Fprintf(out, "Minimum possible total payment: %s\n\n", loan.Money(plan.MinimumTotal()))

	engine, err := ga.New(ga.Config{
		PopulationSize:   cfg.GA.Population,
		GenomeSize:       plan.GenomeSize(),
		MutationRate:     cfg.GA.MutationRate,
		CrossoverRate:    cfg.GA.CrossoverRate,
		FitnessThreshold: threshold,
		Objective:        objective,
		Acceptor:         objective,
		Seed:             runSeed,
		MaxSeedAttempts:  cfg.GA.MaxSeedAttempts,
		Logger:           log.With("component", "ga"),
	})
	if err != nil {
		return nil, fmt.Errorf("init ga: %w", err)
	}
	defer warnOnClose(log, "ga engine", engine.Destroy)

	var console io.Writer
	if cfg.Logging.EveryGenSummary {
		console = out
	}
	runLog, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONPath, console)
	if err != nil {
		return nil, fmt.Errorf("create run log: %w", err)
	}
	if err := runLog.Init(); err != nil {
		return nil, fmt.Errorf("init run log: %w", err)
	}
	defer warnOnClose(log, "run log", runLog.Close)

	store, err := history.NewStore(cfg.Logging.HistoryBackend, cfg.Logging.HistoryDB)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, fmt.Errorf("init history: %w", err)
	}
	defer warnOnClose(log, "history store", func() error { return history.CloseIfSupported(store) })

	run := history.Run{
		ID:         history.NewRunID(),
		StartedAt:  time.Now().UTC(),
		Seed:       runSeed,
		Population: cfg.GA.Population,
	}
	if err := store.CreateRun(ctx, run); err != nil {
		return nil, fmt.Errorf("record run: %w", err)
	}

	log.Info("starting optimization",
		"run_id", run.ID,
		"seed", runSeed,
		"loans", len(plan.Loans),
		"population", cfg.GA.Population,
		"generations", cfg.GA.Generations,
		"fitness_threshold", engine.Threshold(),
	)

	start := time.Now()
	completed := 0
	for gen := 1; gen <= cfg.GA.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			log.Warn("optimization interrupted", "generation", completed, "err", err)
			break
		}

		if err := engine.Step(); err != nil {
			return nil, fmt.Errorf("generation %d: %w", gen, err)
		}
		if err := engine.Evaluate(); err != nil {
			return nil, fmt.Errorf("generation %d: %w", gen, err)
		}
		completed = gen

		genomes, err := engine.Genomes()
		if err != nil {
			return nil, err
		}
		summary := logging.Summarize(gen, genomes, plan)
		if err := runLog.LogGeneration(summary); err != nil {
			log.Warn("failed to log generation", "generation", gen, "err", err)
		}
		if err := store.AppendGeneration(ctx, run.ID, summary); err != nil {
			log.Warn("failed to record generation", "generation", gen, "err", err)
		}
	}

	// a run with zero generations still reports its seeded population
	if err := engine.Evaluate(); err != nil {
		return nil, err
	}
	if err := engine.Sort(); err != nil {
		return nil, err
	}
	final, err := engine.Genomes()
	if err != nil {
		return nil, err
	}
	best, err := engine.Best()
	if err != nil {
		return nil, err
	}
	breakdown := plan.Breakdown(best.Genes)

	fmt.Fprintln(out)
	if cfg.Logging.PrintAll {
		individuals := make([][]float64, len(final))
		for i, g := range final {
			individuals[i] = g.Genes
		}
		loan.WriteSummary(out, plan, individuals)
	}
	fmt.Fprintln(out, "Best plan")
	fmt.Fprintln(out, "---------")
	loan.WriteBreakdown(out, breakdown)

	if cfg.Logging.PlanPath != "" {
		if err := logging.SavePlan(cfg.Logging.PlanPath, run.ID, best, completed, plan); err != nil {
			log.Warn("failed to save plan", "path", cfg.Logging.PlanPath, "err", err)
		}
	}

	run.FinishedAt = time.Now().UTC()
	run.Generations = completed
	run.BestFitness = best.Fitness
	run.BestGenome = best.Genes
	if breakdown.Feasible {
		run.BestTotalPaid = breakdown.TotalPaid
	}
	if err := store.FinishRun(context.WithoutCancel(ctx), run); err != nil {
		log.Warn("failed to finish run record", "run_id", run.ID, "err", err)
	}

	log.Info("optimization complete",
		"run_id", run.ID,
		"generations", completed,
		"elapsed", time.Since(start),
		"best_fitness", best.Fitness,
		"total_paid", breakdown.TotalPaid,
	)

	return &runResult{
		RunID:       run.ID,
		Generations: completed,
		Best:        best,
		Breakdown:   breakdown,
		Final:       final,
	}, nil
}

// warnOnClose runs a deferred release and logs its error
func warnOnClose(log *slog.Logger, what string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Warn("failed to close "+what, "err", err)
	}
}
