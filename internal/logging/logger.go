package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Logger writes per-generation summaries as CSV rows, JSON lines and a console line
type Logger struct {
	csvPath     string
	jsonPath    string
	console     io.Writer
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	initialized bool
}

// NewLogger creates a new logger. Empty paths disable that output; a nil
// console disables the console line.
func NewLogger(csvPath, jsonPath string, console io.Writer) (*Logger, error) {
	l := &Logger{
		csvPath:  csvPath,
		jsonPath: jsonPath,
		console:  console,
	}

	// Ensure directories exist
	for _, p := range []string{csvPath, jsonPath} {
		if p == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Init opens the log files and writes the CSV header
func (l *Logger) Init() error {
	var err error

	if l.csvPath != "" {
		l.csvFile, err = os.Create(l.csvPath)
		if err != nil {
			return err
		}
		l.csvWriter = csv.NewWriter(l.csvFile)

		header := []string{
			"generation", "best_fitness", "mean_fitness", "stddev_fitness", "worst_fitness",
			"best_total_paid", "best_monthly", "feasible", "population",
		}
		if err := l.csvWriter.Write(header); err != nil {
			return err
		}
	}

	if l.jsonPath != "" {
		l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
	}

	l.initialized = true
	return nil
}

// Close flushes and closes all log files
func (l *Logger) Close() error {
	var firstErr error
	if l.csvWriter != nil {
		l.csvWriter.Flush()
		firstErr = l.csvWriter.Error()
	}
	if l.csvFile != nil {
		if err := l.csvFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if l.jsonFile != nil {
		if err := l.jsonFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// LogGeneration writes one summary to every enabled output
func (l *Logger) LogGeneration(s GenerationSummary) error {
	if !l.initialized {
		return nil
	}

	if l.csvWriter != nil {
		row := []string{
			strconv.Itoa(s.Generation),
			strconv.FormatFloat(s.BestFitness, 'g', -1, 64),
			strconv.FormatFloat(s.MeanFitness, 'g', -1, 64),
			strconv.FormatFloat(s.StdDevFitness, 'g', -1, 64),
			strconv.FormatFloat(s.WorstFitness, 'g', -1, 64),
			fmt.Sprintf("%.2f", s.BestTotalPaid),
			fmt.Sprintf("%.2f", s.BestMonthly),
			strconv.Itoa(s.Feasible),
			strconv.Itoa(s.Population),
		}
		if err := l.csvWriter.Write(row); err != nil {
			return err
		}
		l.csvWriter.Flush()
	}

	if l.jsonFile != nil {
		line, err := json.Marshal(s)
		if err != nil {
			return err
		}
		if _, err := l.jsonFile.Write(append(line, '\n')); err != nil {
			return err
		}
	}

	if l.console != nil {
		fmt.Fprintf(l.console, "Gen %4d | Best: %.6g | Mean: %.6g | Std: %.3g | Total: %10.2f | Feasible: %d/%d\n",
			s.Generation, s.BestFitness, s.MeanFitness, s.StdDevFitness, s.BestTotalPaid, s.Feasible, s.Population)
	}
	return nil
}
