package logging

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loanopt/internal/ga"
	"loanopt/internal/loan"
)

func testPlan() loan.Plan {
	return loan.Plan{
		Nominal: 1250,
		Loans: []loan.Loan{
			{Name: "a", InterestRate: 5.00, Principal: 1500},
			{Name: "b", InterestRate: 3.50, Principal: 10000},
			{Name: "c", InterestRate: 9.50, Principal: 5000},
		},
	}
}

func testGenomes() []ga.Genome {
	return []ga.Genome{
		{Genes: []float64{0.2, 0.5, 0}, Fitness: 0.2},
		{Genes: []float64{1, 0, 0}, Fitness: 0.4},
		{Genes: []float64{0.1, 0.4, 0}, Fitness: 0.6},
		{Genes: []float64{0.3, 0.3, 0}, Fitness: ga.Unevaluated},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(3, testGenomes(), testPlan())

	assert.Equal(t, 3, s.Generation)
	assert.Equal(t, 4, s.Population)
	assert.Equal(t, 0.6, s.BestFitness)
	assert.Equal(t, 0.2, s.WorstFitness)
	assert.InDelta(t, 0.4, s.MeanFitness, 1e-12)
	assert.InDelta(t, 0.2, s.StdDevFitness, 1e-12)
	assert.Equal(t, 2, s.Feasible)
	assert.Equal(t, 1250.0, s.BestMonthly)
	assert.Greater(t, s.BestTotalPaid, 16500.0)
	assert.Len(t, s.BestPayments, 3)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(0, nil, testPlan())
	assert.Zero(t, s.BestFitness)
	assert.Zero(t, s.Population)
}

func TestLoggerWritesCSVAndJSONL(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "runs", "run.csv")
	jsonPath := filepath.Join(dir, "runs", "run.jsonl")
	var console bytes.Buffer

	l, err := NewLogger(csvPath, jsonPath, &console)
	require.NoError(t, err)
	require.NoError(t, l.Init())

	for gen := 1; gen <= 2; gen++ {
		require.NoError(t, l.LogGeneration(Summarize(gen, testGenomes(), testPlan())))
	}
	require.NoError(t, l.Close())

	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "generation", rows[0][0])
	assert.Equal(t, "2", rows[2][0])

	jf, err := os.Open(jsonPath)
	require.NoError(t, err)
	defer jf.Close()
	scanner := bufio.NewScanner(jf)
	var lines []GenerationSummary
	for scanner.Scan() {
		var s GenerationSummary
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &s))
		lines = append(lines, s)
	}
	require.Len(t, lines, 2)
	assert.Equal(t, 0.6, lines[1].BestFitness)

	assert.Contains(t, console.String(), "Gen    1")
}

func TestLoggerWithoutInitIsSilent(t *testing.T) {
	l, err := NewLogger("", "", nil)
	require.NoError(t, err)
	assert.NoError(t, l.LogGeneration(GenerationSummary{}))
	assert.NoError(t, l.Close())
}

func TestSaveAndLoadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifacts", "plan.json")
	best := ga.Genome{Genes: []float64{0.1, 0.4, 0}, Fitness: 0.6}

	require.NoError(t, SavePlan(path, "run-1", best, 50, testPlan()))

	saved, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, "run-1", saved.RunID)
	assert.Equal(t, 50, saved.Generation)
	assert.Equal(t, best.Genes, saved.Genome)
	assert.Equal(t, testPlan(), saved.Plan)
	require.NotNil(t, saved.Breakdown)
	assert.True(t, saved.Breakdown.Feasible)
}

func TestSavePlanInfeasibleOmitsBreakdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	best := ga.Genome{Genes: []float64{1, 0, 0}, Fitness: loan.InfeasibleFitness}

	require.NoError(t, SavePlan(path, "", best, 1, testPlan()))

	saved, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Nil(t, saved.Breakdown)
}
