// Package history records run summaries and per-generation statistics so
// past optimization runs can be listed and compared. Populations themselves
// are never persisted.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"loanopt/internal/logging"
)

// ErrNotInitialized is returned when a store is used before Init
var ErrNotInitialized = errors.New("history store not initialized")

// Run describes one optimization run. FinishedAt is zero until FinishRun.
type Run struct {
	ID            string    `json:"id"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
	Seed          int64     `json:"seed"`
	Population    int       `json:"population"`
	Generations   int       `json:"generations"`
	BestFitness   float64   `json:"best_fitness"`
	BestTotalPaid float64   `json:"best_total_paid"`
	BestGenome    []float64 `json:"best_genome"`
}

// Finished reports whether FinishRun has been recorded
func (r Run) Finished() bool {
	return !r.FinishedAt.IsZero()
}

// NewRunID returns a fresh random run identifier
func NewRunID() string {
	return uuid.NewString()
}

// Store persists run history
type Store interface {
	Init(ctx context.Context) error
	CreateRun(ctx context.Context, run Run) error
	AppendGeneration(ctx context.Context, runID string, summary logging.GenerationSummary) error
	FinishRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	ListRuns(ctx context.Context) ([]Run, error)
	Generations(ctx context.Context, runID string) ([]logging.GenerationSummary, error)
}

// NewStore creates a store backend by kind ("memory" or "sqlite")
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(sqlitePath), nil
	default:
		return nil, fmt.Errorf("unsupported history backend: %s", kind)
	}
}

// CloseIfSupported closes stores that hold resources
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
