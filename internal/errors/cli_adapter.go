package errors

import (
	stderrors "errors"
	"log/slog"
)

// CLIErrorAdapter handles error presentation and exit code determination for
// the lbpc command line.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{verbose: verbose, logger: logger}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindUsage:
		return 2 // Invalid usage
	case KindInvalidDirective, KindUnterminatedMarker:
		return 3 // Parse error in the input document
	case KindConfig, KindInvalidIndentConfig:
		return 7 // Configuration error
	case KindMissingInput, KindIO:
		return 11 // Filesystem error
	case KindInternal:
		return 10 // Internal error
	default:
		return 1 // General error
	}
}

// Report logs an error with its structured fields. Line numbers are attached
// when the error carries a document position.
func (a *CLIErrorAdapter) Report(err error) {
	if err == nil {
		return
	}
	attrs := []any{"kind", string(KindOf(err))}
	if line := LineOf(err); line > 0 {
		attrs = append(attrs, "line", line)
	}
	if a.verbose {
		var te *TranspileError
		if stderrors.As(err, &te) && te.Cause != nil {
			attrs = append(attrs, "cause", te.Cause.Error())
		}
	}
	a.logger.Error(err.Error(), attrs...)
}
