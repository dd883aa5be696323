package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"loanopt/internal/history"
	"loanopt/internal/loan"
)

var historyPath string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded optimization runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show per-generation statistics of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)

	historyCmd.PersistentFlags().StringVar(&historyPath, "db", "runs/history.db", "SQLite history file")
}

func openHistory(cmd *cobra.Command) (*history.SQLiteStore, error) {
	store := history.NewSQLiteStore(historyPath)
	if err := store.Init(cmd.Context()); err != nil {
		return nil, fmt.Errorf("open history %s: %w", historyPath, err)
	}
	return store, nil
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(cmd.Context())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tSTARTED\tSEED\tPOP\tGENS\tBEST TOTAL\tSTATUS")
	for _, r := range runs {
		status := "running"
		if r.Finished() {
			status = "done"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
			r.ID, r.StartedAt.Local().Format(time.DateTime), r.Seed, r.Population, r.Generations,
			loan.Money(r.BestTotalPaid), status)
	}
	return w.Flush()
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	run, ok, err := store.GetRun(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("run %s not found", args[0])
	}
	gens, err := store.Generations(cmd.Context(), run.ID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s (seed %d, population %d)\n", run.ID, run.Seed, run.Population)
	fmt.Fprintf(out, "Best genome: %v\n\n", run.BestGenome)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "GEN\tBEST\tMEAN\tSTDDEV\tBEST TOTAL\tFEASIBLE\t")
	for _, g := range gens {
		fmt.Fprintf(w, "%d\t%.6g\t%.6g\t%.3g\t%s\t%d/%d\t\n",
			g.Generation, g.BestFitness, g.MeanFitness, g.StdDevFitness,
			loan.Money(g.BestTotalPaid), g.Feasible, g.Population)
	}
	return w.Flush()
}
