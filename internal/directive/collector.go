package directive

import (
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/lbpc/internal/document"
	"git.home.luguber.info/inful/lbpc/internal/errors"
)

// AliasEvent describes one successful alias registration.
type AliasEvent struct {
	Line        int
	Original    string
	Replacement string
}

// EventSink receives collector events. The core never touches the process
// logger; callers inject whatever sink they need (a slog adapter in the CLI,
// a capturing sink in tests).
type EventSink interface {
	AliasRegistered(e AliasEvent)
}

// NoopSink is an EventSink that discards all events.
type NoopSink struct{}

func (NoopSink) AliasRegistered(AliasEvent) {}

// SlogSink forwards collector events to a structured logger.
type SlogSink struct {
	Logger *slog.Logger
}

func (s SlogSink) AliasRegistered(e AliasEvent) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("Alias registered",
		"original", e.Original,
		"replacement", e.Replacement,
		"line", e.Line)
}

// Collect runs the first pass over the document: every line is inspected
// once, directive candidates are parsed, and alias directives populate the
// returned substitution table. Definitions anywhere in the document apply to
// all content lines, which is why this pass completes before any output is
// produced. Any parse failure aborts the run.
func Collect(lines []document.Line, sink EventSink) (*Table, error) {
	if sink == nil {
		sink = NoopSink{}
	}
	table := NewTable()
	for _, l := range lines {
		if document.IsBlank(l.Text) || document.IsComment(l.Text) {
			continue
		}
		trimmed := strings.TrimSpace(l.Text)
		if !IsCandidate(trimmed) {
			continue
		}
		d, err := Parse(trimmed, l.Number)
		if err != nil {
			return nil, err
		}
		switch d.Kind {
		case KindAlias:
			if len(d.Args) != 2 {
				return nil, errors.AtLinef(errors.KindInvalidDirective, l.Number,
					"alias directive needs exactly 2 arguments, got %d", len(d.Args))
			}
			if err := table.Set(d.Args[0], d.Args[1]); err != nil {
				return nil, err
			}
			sink.AliasRegistered(AliasEvent{Line: l.Number, Original: d.Args[0], Replacement: d.Args[1]})
		default:
			return nil, errors.AtLinef(errors.KindInvalidDirective, l.Number,
				"unknown directive %q", d.Kind)
		}
	}
	return table, nil
}
