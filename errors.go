package redacted

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNotApplicable indicates no property carries the redacted marker.
	// It is a normal negative result: the host falls back to its default output.
	ErrNotApplicable = errors.New("not applicable")

	// ErrMalformedProperty indicates a property violates the host contract.
	ErrMalformedProperty = errors.New("malformed property")

	// ErrInvalidTag indicates a struct tag has an invalid placement or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrNotStruct indicates a scanned type is not a struct.
	ErrNotStruct = errors.New("not a struct")

	// ErrGenericInstance indicates a scanned type is an instantiated generic type.
	// Type parameters are only kept by the source host.
	ErrGenericInstance = errors.New("instantiated generic type")

	// ErrFormat indicates the generated source failed to format.
	ErrFormat = errors.New("format failed")

	// ErrParse indicates a source file could not be parsed.
	ErrParse = errors.New("parse failed")

	// ErrWrite indicates a generated file could not be written.
	ErrWrite = errors.New("write failed")

	// ErrStale indicates a generated file is missing or out of date.
	ErrStale = errors.New("stale output")
)

// PropertyError represents a rejected property.
// It wraps a sentinel error with the type and property that triggered it.
type PropertyError struct {
	Err      error  // Underlying sentinel error (ErrMalformedProperty, ErrInvalidTag)
	Type     string // Subject type name
	Property string // Property name
	Reason   string // Broken invariant
}

func (e *PropertyError) Error() string {
	msg := e.Err.Error()
	if e.Type != "" && e.Property != "" {
		msg = fmt.Sprintf("%s (%s.%s)", msg, e.Type, e.Property)
	} else if e.Property != "" {
		msg = fmt.Sprintf("%s (property %s)", msg, e.Property)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

// SourceError represents a failure reading, formatting or writing a file.
type SourceError struct {
	Err   error  // Underlying sentinel error (ErrParse, ErrFormat, ErrWrite, ErrStale)
	Path  string // File or type the failure concerns
	Cause error  // Original error
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %v", e.Err.Error(), e.Path, e.Cause)
	}
	return fmt.Sprintf("%s %s", e.Err.Error(), e.Path)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// newPropertyError creates a PropertyError for a rejected property.
func newPropertyError(sentinel error, typeName, property, reason string) error {
	return &PropertyError{
		Err:      sentinel,
		Type:     typeName,
		Property: property,
		Reason:   reason,
	}
}

// NewSourceError creates a SourceError for file level failures.
func NewSourceError(sentinel error, path string, cause error) error {
	return &SourceError{
		Err:   sentinel,
		Path:  path,
		Cause: cause,
	}
}
