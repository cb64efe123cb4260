// Package errors provides the structured error type (TranspileError) used for
// kind-based classification and exit-code mapping in the CLI.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a TranspileError for callers that pattern-match on failures.
type Kind string

const (
	// Input and parse errors; these carry a document position where applicable.
	KindMissingInput       Kind = "missing_input"
	KindInvalidDirective   Kind = "invalid_directive"
	KindUnterminatedMarker Kind = "unterminated_marker"

	// Configuration and usage errors
	KindInvalidIndentConfig Kind = "invalid_indent_config"
	KindConfig              Kind = "config"
	KindUsage               Kind = "usage"

	// Runtime and infrastructure errors
	KindIO       Kind = "io"
	KindInternal Kind = "internal"
)

// TranspileError is a structured error with a kind, an optional 1-based line
// number, and an optional wrapped cause.
type TranspileError struct {
	Kind    Kind
	Line    int // 1-based; 0 when the error is not tied to a document line
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *TranspileError) Error() string {
	switch {
	case e.Line > 0 && e.Cause != nil:
		return fmt.Sprintf("%s (line %d): %s: %v", e.Kind, e.Line, e.Message, e.Cause)
	case e.Line > 0:
		return fmt.Sprintf("%s (line %d): %s", e.Kind, e.Line, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// Unwrap implements error unwrapping for Go 1.13+ error handling.
func (e *TranspileError) Unwrap() error {
	return e.Cause
}

// New creates a new TranspileError.
func New(kind Kind, message string) *TranspileError {
	return &TranspileError{Kind: kind, Message: message}
}

// Newf creates a new TranspileError with a formatted message.
func Newf(kind Kind, format string, args ...any) *TranspileError {
	return &TranspileError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a new TranspileError that wraps an existing error.
func Wrap(err error, kind Kind, message string) *TranspileError {
	return &TranspileError{Kind: kind, Message: message, Cause: err}
}

// AtLine creates a new TranspileError carrying a 1-based line number.
func AtLine(kind Kind, line int, message string) *TranspileError {
	return &TranspileError{Kind: kind, Line: line, Message: message}
}

// AtLinef creates a line-carrying TranspileError with a formatted message.
func AtLinef(kind Kind, line int, format string, args ...any) *TranspileError {
	return &TranspileError{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

// MissingInput reports a source path that does not exist.
func MissingInput(path string, cause error) *TranspileError {
	return &TranspileError{Kind: KindMissingInput, Message: fmt.Sprintf("input file not found: %s", path), Cause: cause}
}

// InvalidDirective reports a directive-candidate line that failed parsing.
func InvalidDirective(line int, reason string) *TranspileError {
	return &TranspileError{Kind: KindInvalidDirective, Line: line, Message: reason}
}

// UnterminatedMarker reports a content line with no closing parenthesis.
func UnterminatedMarker(line int) *TranspileError {
	return &TranspileError{Kind: KindUnterminatedMarker, Line: line, Message: "content line has no closing parenthesis"}
}

// InvalidIndentConfig reports an unrecognized indentation type.
func InvalidIndentConfig(indentType string) *TranspileError {
	return &TranspileError{Kind: KindInvalidIndentConfig, Message: fmt.Sprintf("unrecognized indentation type %q (want \"spaces\" or \"tabs\")", indentType)}
}

// IsKind checks whether an error is a TranspileError of the given kind.
func IsKind(err error, kind Kind) bool {
	var te *TranspileError
	if stderrors.As(err, &te) {
		return te.Kind == kind
	}
	return false
}

// KindOf extracts the kind from an error, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var te *TranspileError
	if stderrors.As(err, &te) {
		return te.Kind
	}
	return KindInternal
}

// LineOf extracts the 1-based line number from an error, or 0 when the error
// carries no position.
func LineOf(err error) int {
	var te *TranspileError
	if stderrors.As(err, &te) {
		return te.Line
	}
	return 0
}
