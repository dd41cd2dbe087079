// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"slices"
	"strings"
)

// Colour modes for OutputConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // config key, e.g. "solve.bound"
	Value   any
	Message string
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
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}

	return sb.String()
}

// Is reports ErrInvalidConfig.
func (e ValidationErrors) Is(target error) bool { return target == ErrInvalidConfig }

// ValidLogLevels returns the accepted log levels.
func ValidLogLevels() []string { return []string{"debug", "info", "warn", "error"} }

// ValidLogFormats returns the accepted log formats.
func ValidLogFormats() []string { return []string{"text", "json"} }

// ValidColorModes returns the accepted colour modes.
func ValidColorModes() []string { return []string{ColorAuto, ColorAlways, ColorNever} }

// Validate checks c for invalid values and returns every failure found.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(c.Input.Path) == "" {
		errs = append(errs, ValidationError{Field: "input.path", Value: c.Input.Path, Message: "must not be empty"})
	}

	if c.Solve.Iterations < 1 {
		errs = append(errs, ValidationError{Field: "solve.iterations", Value: c.Solve.Iterations, Message: "must be at least 1"})
	}
	if c.Solve.TimeLimit < 0 {
		errs = append(errs, ValidationError{Field: "solve.time_limit", Value: c.Solve.TimeLimit, Message: "must be non-negative"})
	}
	if c.Solve.MIPGap < 0 || c.Solve.MIPGap >= 1 {
		errs = append(errs, ValidationError{Field: "solve.mip_gap", Value: c.Solve.MIPGap, Message: "must be in [0, 1)"})
	}
	if c.Solve.MaxRows < 0 {
		errs = append(errs, ValidationError{Field: "solve.max_rows", Value: c.Solve.MaxRows, Message: "must be non-negative"})
	}
	if c.Solve.Bound < 0 {
		errs = append(errs, ValidationError{Field: "solve.bound", Value: c.Solve.Bound, Message: "must be non-negative"})
	}
	for _, n := range c.Solve.FixedNodes {
		if strings.TrimSpace(n) == "" {
			errs = append(errs, ValidationError{Field: "solve.fixed_nodes", Value: c.Solve.FixedNodes, Message: "must not contain empty labels"})
			break
		}
	}

	if !slices.Contains(ValidColorModes(), c.Output.Color) {
		errs = append(errs, ValidationError{
			Field:   "output.color",
			Value:   c.Output.Color,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidColorModes(), ", ")),
		})
	}

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}
	if !slices.Contains(ValidLogFormats(), strings.ToLower(c.Logging.Format)) {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogFormats(), ", ")),
		})
	}

	return errs
}
