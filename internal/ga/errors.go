package ga

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every *ConfigError
	ErrInvalidConfig = errors.New("invalid ga config")
	// ErrNotReady is returned when the engine is used before New or after Destroy
	ErrNotReady = errors.New("ga engine not ready")
	// ErrInvalidFitness is returned when the objective yields a negative or non-finite score
	ErrInvalidFitness = errors.New("invalid fitness")
	// ErrSeedingExhausted is returned when the acceptor rejected MaxSeedAttempts candidates in a row
	ErrSeedingExhausted = errors.New("seeding attempts exhausted")
)

// ConfigError describes a rejected configuration field
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid ga config: %s %s", e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
