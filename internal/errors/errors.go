// Package errors provides centralized error definitions and error handling
// utilities for datagrid. The interaction controllers themselves never return
// errors; everything around them (dataset loading, cell-key parsing,
// interaction scripts, configuration) reports failures through this package.
//
// # Error Types
//
// Domain-specific errors:
//   - DataError: a dataset could not be read or is structurally invalid
//   - ScriptError: an interaction script could not be parsed or applied
//
// Semantic errors:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input or state
//
// # Usage
//
//	err := errors.NewDataError("duplicate row id", errors.ErrDuplicateRowID).
//		WithPath("people.csv").WithLine(12)
//
//	if errors.Is(err, errors.ErrDuplicateRowID) { ... }
//
//	var dataErr *errors.DataError
//	if errors.As(err, &dataErr) { ... }
//
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Dataset-related sentinel errors
var (
	// ErrUnsupportedFormat indicates a dataset file format that cannot be loaded.
	ErrUnsupportedFormat = New("unsupported dataset format")
	// ErrDuplicateRowID indicates two rows share the same identifier.
	ErrDuplicateRowID = New("duplicate row id")
	// ErrDuplicateField indicates two columns share the same field name.
	ErrDuplicateField = New("duplicate column field")
	// ErrEmptyDataset indicates a dataset without any columns.
	ErrEmptyDataset = New("dataset has no columns")
)

// Grid-related sentinel errors
var (
	// ErrMalformedKey indicates an encoded cell key that cannot be decoded.
	ErrMalformedKey = New("malformed cell key")
	// ErrInvalidScript indicates an interaction script that cannot be applied.
	ErrInvalidScript = New("invalid interaction script")
)

// General sentinel errors
var (
	// ErrNotFound indicates that a resource could not be found.
	ErrNotFound = New("not found")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// GridError is the base interface for all datagrid errors.
type GridError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// DataError represents a failure to load or interpret a dataset.
//
// Example:
//
//	err := errors.NewDataError("row id is empty", errors.ErrInvalidInput).
//		WithPath("people.csv").WithLine(4).WithColumn("id")
type DataError struct {
	baseError
	Path   string
	Line   int
	Column string
}

// NewDataError creates a new DataError.
func NewDataError(message string, cause error) *DataError {
	return &DataError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
	}
}

// WithPath adds the dataset path to the error context.
func (e *DataError) WithPath(path string) *DataError {
	e.Path = path
	return e
}

// WithLine adds the 1-based record number to the error context.
func (e *DataError) WithLine(line int) *DataError {
	e.Line = line
	return e
}

// WithColumn adds the offending column field to the error context.
func (e *DataError) WithColumn(field string) *DataError {
	e.Column = field
	return e
}

// Error returns the formatted error message.
func (e *DataError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}
	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line=%d", e.Line))
	}
	if e.Column != "" {
		parts = append(parts, fmt.Sprintf("column=%s", e.Column))
	}

	prefix := "data error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("data error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *DataError) Is(target error) bool {
	if _, ok := target.(*DataError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ScriptError represents a failure in an interaction script.
type ScriptError struct {
	baseError
	Step   int
	Action string
}

// NewScriptError creates a new ScriptError. Step is the 1-based index of the
// failing step, or 0 when the failure is not tied to a step.
func NewScriptError(message string, step int) *ScriptError {
	return &ScriptError{
		baseError: baseError{
			message:    message,
			severity:   SeverityError,
			userFacing: true,
		},
		Step: step,
	}
}

// WithAction adds the step's action name to the error context.
func (e *ScriptError) WithAction(action string) *ScriptError {
	e.Action = action
	return e
}

// WithCause adds a cause to the error.
func (e *ScriptError) WithCause(cause error) *ScriptError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ScriptError) Error() string {
	prefix := "script error"
	switch {
	case e.Step > 0 && e.Action != "":
		prefix = fmt.Sprintf("script error [step=%d, action=%s]", e.Step, e.Action)
	case e.Step > 0:
		prefix = fmt.Sprintf("script error [step=%d]", e.Step)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ScriptError) Is(target error) bool {
	if _, ok := target.(*ScriptError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidScript) {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("column", "email")
//	fmt.Println(err) // "column 'email' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	if errors.Is(target, ErrNotFound) {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("selection mode must be single or multiple")
//	err = err.WithField("mode").WithValue("many")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var gridErr GridError
	if As(err, &gridErr) {
		return gridErr.IsUserFacing()
	}

	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement GridError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var gridErr GridError
	if As(err, &gridErr) {
		return gridErr.Severity()
	}

	return SeverityError
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
