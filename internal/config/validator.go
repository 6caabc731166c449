package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // The config field path (e.g., "session.output_buffer_size")
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

// ValidLogLevels returns the list of valid log levels.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidDarkModes returns the list of valid tui.dark_mode values.
func ValidDarkModes() []string {
	return []string{"auto", "dark", "light"}
}

// Validate checks the Config for invalid values and returns all validation
// errors found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateSession()...)
	errors = append(errors, c.validateMux()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateSession() []ValidationError {
	var errors []ValidationError

	if c.Session.OutputBufferSize < 1024 {
		errors = append(errors, ValidationError{
			Field:   "session.output_buffer_size",
			Value:   c.Session.OutputBufferSize,
			Message: "must be at least 1024 bytes",
		})
	}
	if c.Session.CursorBlinkMs < 50 {
		errors = append(errors, ValidationError{
			Field:   "session.cursor_blink_ms",
			Value:   c.Session.CursorBlinkMs,
			Message: "must be at least 50",
		})
	}

	return errors
}

func (c *Config) validateMux() []ValidationError {
	var errors []ValidationError

	if c.Mux.MaxPanes < 1 || c.Mux.MaxPanes > 6 {
		errors = append(errors, ValidationError{
			Field:   "mux.max_panes",
			Value:   c.Mux.MaxPanes,
			Message: "must be between 1 and 6",
		})
	}
	if c.Mux.HueStep <= 0 {
		errors = append(errors, ValidationError{
			Field:   "mux.hue_step",
			Value:   c.Mux.HueStep,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.TickMs < 10 || c.TUI.TickMs > 1000 {
		errors = append(errors, ValidationError{
			Field:   "tui.tick_ms",
			Value:   c.TUI.TickMs,
			Message: "must be between 10 and 1000",
		})
	}
	if !slices.Contains(ValidDarkModes(), c.TUI.DarkMode) {
		errors = append(errors, ValidationError{
			Field:   "tui.dark_mode",
			Value:   c.TUI.DarkMode,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidDarkModes(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
