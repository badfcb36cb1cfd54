package config

import (
	"fmt"
	"slices"
	"strings"

	"symposium/internal/logging"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // The config field path (e.g., "dining.philosophers")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks the Config for invalid values and returns all validation
// errors found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateDining()...)
	errors = append(errors, c.validateProcs()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateDining() []ValidationError {
	var errors []ValidationError

	if c.Dining.Philosophers < 2 {
		errors = append(errors, ValidationError{
			Field:   "dining.philosophers",
			Value:   c.Dining.Philosophers,
			Message: "must be at least 2; a single philosopher would need the same fork twice",
		})
	}
	if c.Dining.Iterations < 1 {
		errors = append(errors, ValidationError{
			Field:   "dining.iterations",
			Value:   c.Dining.Iterations,
			Message: "must be at least 1",
		})
	}
	if c.Dining.ThinkMinMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "dining.think_min_ms",
			Value:   c.Dining.ThinkMinMs,
			Message: "must not be negative",
		})
	}
	if c.Dining.ThinkMaxMs < c.Dining.ThinkMinMs {
		errors = append(errors, ValidationError{
			Field:   "dining.think_max_ms",
			Value:   c.Dining.ThinkMaxMs,
			Message: fmt.Sprintf("must be at least think_min_ms (%d)", c.Dining.ThinkMinMs),
		})
	}
	if c.Dining.EatMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "dining.eat_ms",
			Value:   c.Dining.EatMs,
			Message: "must not be negative",
		})
	}

	return errors
}

func (c *Config) validateProcs() []ValidationError {
	var errors []ValidationError

	if c.Procs.File == "" {
		errors = append(errors, ValidationError{
			Field:   "procs.file",
			Value:   c.Procs.File,
			Message: "must not be empty",
		})
	}
	if c.Procs.BurstUnitMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "procs.burst_unit_ms",
			Value:   c.Procs.BurstUnitMs,
			Message: "must not be negative",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(logging.ValidLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(logging.ValidLevels(), ", ")),
		})
	}

	return errors
}
