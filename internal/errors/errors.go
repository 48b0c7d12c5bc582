// Package errors provides the error taxonomy for the USD assembler.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrClassification indicates a directory could not be classified as an
	// asset node. Non-fatal to siblings; fatal only when no usable node
	// exists at the top level.
	ErrClassification = errors.New("classification error")

	// ErrCycle indicates a cyclic directory structure (usually a symlink
	// loop). Always fatal to the whole run.
	ErrCycle = errors.New("cyclic structure")

	// ErrMissingGeometry indicates a leaf directory claims component status
	// but its geometry file is absent.
	ErrMissingGeometry = errors.New("missing geometry")

	// ErrNoValidNodes indicates zero usable nodes were found at the top level.
	ErrNoValidNodes = errors.New("no valid asset nodes")

	// ErrTemplate indicates a seed template could not be loaded or rendered.
	ErrTemplate = errors.New("template error")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the filesystem path the error refers to (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewClassificationError creates a classification error for a directory that
// is not a usable asset node.
func NewClassificationError(message, location, hint string) error {
	return &DetailError{
		Type:     "not an asset node",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrClassification,
	}
}

// NewCycleError creates a fatal cyclic-structure error.
func NewCycleError(message, location string) error {
	return &DetailError{
		Type:     "cyclic directory structure",
		Message:  message,
		Location: location,
		Hint:     "remove the symlink loop from the asset tree",
		Cause:    ErrCycle,
	}
}

// NewMissingGeometryError creates an error for a leaf without its geometry file.
func NewMissingGeometryError(message, location string) error {
	return &DetailError{
		Type:     "missing geometry",
		Message:  message,
		Location: location,
		Hint:     "add a <name>_geom.usd file or remove the directory",
		Cause:    ErrMissingGeometry,
	}
}

// NewNoValidNodesError creates the fatal zero-usable-nodes error.
func NewNoValidNodesError(message, location string) error {
	return &DetailError{
		Type:     "no valid asset nodes",
		Message:  message,
		Location: location,
		Hint:     "an assembly needs a components/ directory with at least one valid component",
		Cause:    ErrNoValidNodes,
	}
}

// NewTemplateError creates a template loading/rendering error.
func NewTemplateError(message string, cause error) error {
	wrapped := ErrTemplate
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrTemplate, cause)
	}
	return &DetailError{
		Type:    "template error",
		Message: message,
		Cause:   wrapped,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
