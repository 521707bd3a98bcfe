package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/Iron-Ham/datagrid/internal/grid"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "grid.pixels_per_cell")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
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

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the list of built-in TUI themes
func ValidThemes() []string {
	return []string{"default", "monokai", "dracula", "nord"}
}

// Limits shared with the TUI renderer.
const (
	MinPixelsPerCell   = 1
	MaxPixelsPerCell   = 64
	MaxColumnWidth     = 10000
	maxLogSizeMB       = 1000
	maxLogBackupsLimit = 100
)

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateGrid()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateData()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateGrid validates the GridConfig
func (c *Config) validateGrid() []ValidationError {
	var errors []ValidationError

	if _, err := grid.ParseSelectionMode(c.Grid.SelectionMode); err != nil {
		errors = append(errors, ValidationError{
			Field:   "grid.selection_mode",
			Value:   c.Grid.SelectionMode,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(grid.ValidSelectionModes(), ", ")),
		})
	}

	if c.Grid.DefaultColumnWidth < grid.MinWidth {
		errors = append(errors, ValidationError{
			Field:   "grid.default_column_width",
			Value:   c.Grid.DefaultColumnWidth,
			Message: fmt.Sprintf("must be at least %d", grid.MinWidth),
		})
	}
	if c.Grid.DefaultColumnWidth > MaxColumnWidth {
		errors = append(errors, ValidationError{
			Field:   "grid.default_column_width",
			Value:   c.Grid.DefaultColumnWidth,
			Message: fmt.Sprintf("exceeds maximum of %d", MaxColumnWidth),
		})
	}

	if c.Grid.PixelsPerCell < MinPixelsPerCell || c.Grid.PixelsPerCell > MaxPixelsPerCell {
		errors = append(errors, ValidationError{
			Field:   "grid.pixels_per_cell",
			Value:   c.Grid.PixelsPerCell,
			Message: fmt.Sprintf("must be between %d and %d", MinPixelsPerCell, MaxPixelsPerCell),
		})
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	return errors
}

// validateData validates the DataConfig
func (c *Config) validateData() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Data.IDColumn) == "" {
		errors = append(errors, ValidationError{
			Field:   "data.id_column",
			Value:   c.Data.IDColumn,
			Message: "must not be empty",
		})
	}

	for i, pattern := range c.Data.Columns {
		if strings.TrimSpace(pattern) == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("data.columns[%d]", i),
				Value:   pattern,
				Message: "must not be empty",
			})
			continue
		}
		if _, err := glob.Compile(pattern); err != nil {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("data.columns[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}
	if c.Logging.MaxBackups > maxLogBackupsLimit {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: fmt.Sprintf("exceeds maximum of %d", maxLogBackupsLimit),
		})
	}

	return errors
}
