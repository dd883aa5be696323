package logging

import (
	"encoding/json"
	"os"
	"path/filepath"

	"loanopt/internal/ga"
	"loanopt/internal/loan"
)

// SavedPlan is the on-disk form of the best genome of a run
type SavedPlan struct {
	RunID      string          `json:"run_id,omitempty"`
	Generation int             `json:"generation"`
	Fitness    float64         `json:"fitness"`
	Genome     []float64       `json:"genome"`
	Plan       loan.Plan       `json:"plan"`
	Breakdown  *loan.Breakdown `json:"breakdown,omitempty"`
}

// SavePlan saves the best genome together with its loan plan
func SavePlan(path, runID string, best ga.Genome, gen int, plan loan.Plan) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data := SavedPlan{
		RunID:      runID,
		Generation: gen,
		Fitness:    best.Fitness,
		Genome:     best.Genes,
		Plan:       plan,
	}
	// months are infinite for infeasible plans and cannot be encoded
	if b := plan.Breakdown(best.Genes); b.Feasible {
		data.Breakdown = &b
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, jsonData, 0644)
}

// LoadPlan loads a saved plan from a file
func LoadPlan(path string) (*SavedPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var saved SavedPlan
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, err
	}

	return &saved, nil
}
