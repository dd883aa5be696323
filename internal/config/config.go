package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"loanopt/internal/loan"
)

// Config is the root configuration structure
type Config struct {
	Seed    int64         `yaml:"seed"`
	Payment PaymentConfig `yaml:"payment"`
	Loans   []loan.Loan   `yaml:"loans"`
	GA      GAConfig      `yaml:"ga"`
	Logging LogConfig     `yaml:"logging"`
}

// PaymentConfig defines the monthly budget
type PaymentConfig struct {
	Nominal   float64 `yaml:"nominal" ini:"nominal"`
	Deviation float64 `yaml:"deviation" ini:"deviation"` // 0 pays exactly nominal
}

// GAConfig defines genetic algorithm parameters
type GAConfig struct {
	Population            int     `yaml:"population" ini:"population"`
	Generations           int     `yaml:"generations" ini:"generations"`
	MutationRate          float64 `yaml:"mutation_rate" ini:"mutation_rate"`
	CrossoverRate         float64 `yaml:"crossover_rate" ini:"crossover_rate"`
	ThresholdMargin       float64 `yaml:"threshold_margin" ini:"threshold_margin"`
	RejectInfeasibleSeeds bool    `yaml:"reject_infeasible_seeds" ini:"reject_infeasible_seeds"`
	MaxSeedAttempts       int     `yaml:"max_seed_attempts" ini:"max_seed_attempts"`
}

// LogConfig defines logging parameters
type LogConfig struct {
	EveryGenSummary bool   `yaml:"every_gen_summary" ini:"every_gen_summary"`
	PrintAll        bool   `yaml:"print_all" ini:"print_all"`
	CSVPath         string `yaml:"csv_path" ini:"csv_path"`
	JSONPath        string `yaml:"json_path" ini:"json_path"`
	PlanPath        string `yaml:"plan_path" ini:"plan_path"`
	HistoryBackend  string `yaml:"history_backend" ini:"history_backend"`
	HistoryDB       string `yaml:"history_db" ini:"history_db"`
}

// Default returns the built-in configuration: three loans paid from 1250/month
func Default() *Config {
	return &Config{
		Seed: 0,
		Payment: PaymentConfig{
			Nominal:   1250.00,
			Deviation: 0,
		},
		Loans: []loan.Loan{
			{Name: "Loan 1", InterestRate: 5.00, Principal: 1500.00},
			{Name: "Loan 2", InterestRate: 3.50, Principal: 10000.00},
			{Name: "Loan 3", InterestRate: 9.50, Principal: 5000.00},
		},
		GA: GAConfig{
			Population:      15,
			Generations:     50,
			MutationRate:    0.1,
			CrossoverRate:   0.7,
			ThresholdMargin: 1.30,
		},
		Logging: LogConfig{
			EveryGenSummary: true,
			CSVPath:         "runs/run.csv",
			JSONPath:        "runs/run.jsonl",
			PlanPath:        "artifacts/plan.json",
			HistoryBackend:  "memory",
		},
	}
}

// Load reads a YAML or INI config file (chosen by extension) over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini":
		if err := loadINI(path, cfg); err != nil {
			return nil, err
		}
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// loadINI maps [payment], [ga] and [logging] onto cfg. Every section named
// "loan <name>" defines one loan; when any is present they replace the defaults.
func loadINI(path string, cfg *Config) error {
	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.Seed = f.Section(ini.DefaultSection).Key("seed").MustInt64(cfg.Seed)

	sections := map[string]any{
		"payment": &cfg.Payment,
		"ga":      &cfg.GA,
		"logging": &cfg.Logging,
	}
	for name, target := range sections {
		if !f.HasSection(name) {
			continue
		}
		if err := f.Section(name).MapTo(target); err != nil {
			return fmt.Errorf("section [%s]: %w", name, err)
		}
	}

	var loans []loan.Loan
	for _, sec := range f.Sections() {
		name, ok := strings.CutPrefix(sec.Name(), "loan ")
		if !ok {
			continue
		}
		loans = append(loans, loan.Loan{
			Name:         strings.TrimSpace(name),
			InterestRate: sec.Key("interest_rate").MustFloat64(0),
			Principal:    sec.Key("principal").MustFloat64(0),
		})
	}
	if len(loans) > 0 {
		cfg.Loans = loans
	}
	return nil
}

// Validate checks the loan plan and run-level settings. GA rates are checked
// by the engine itself.
func (c *Config) Validate() error {
	if err := c.Plan().Validate(); err != nil {
		return err
	}
	if c.GA.Generations < 0 {
		return errors.New("ga.generations must be non-negative")
	}
	if c.GA.ThresholdMargin < 0 {
		return errors.New("ga.threshold_margin must be non-negative")
	}
	return nil
}

// Plan returns the loan plan described by the config
func (c *Config) Plan() loan.Plan {
	return loan.Plan{
		Nominal:   c.Payment.Nominal,
		Deviation: c.Payment.Deviation,
		Loans:     c.Loans,
	}
}
