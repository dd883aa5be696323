package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"loanopt/internal/loan"
	"loanopt/internal/logging"
)

var showPlanPath string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the payment breakdown of a saved plan",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&showPlanPath, "plan", "artifacts/plan.json", "Path to a saved plan JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	saved, err := logging.LoadPlan(showPlanPath)
	if err != nil {
		return fmt.Errorf("load plan: %w", err)
	}
	if err := saved.Plan.Validate(); err != nil {
		return fmt.Errorf("plan %s: %w", showPlanPath, err)
	}
	if len(saved.Genome) != saved.Plan.GenomeSize() {
		return fmt.Errorf("plan %s: genome has %d genes, expected %d", showPlanPath, len(saved.Genome), saved.Plan.GenomeSize())
	}

	out := cmd.OutOrStdout()
	if saved.RunID != "" {
		fmt.Fprintf(out, "Run %s, generation %d (fitness=%.6g)\n", saved.RunID, saved.Generation, saved.Fitness)
	} else {
		fmt.Fprintf(out, "Generation %d (fitness=%.6g)\n", saved.Generation, saved.Fitness)
	}
	fmt.Fprintf(out, "Minimum possible total payment: %s\n\n", loan.Money(saved.Plan.MinimumTotal()))
	loan.WriteBreakdown(out, saved.Plan.Breakdown(saved.Genome))
	return nil
}
