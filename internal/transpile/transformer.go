// Package transpile implements the second translation pass (content line →
// output line) and the Translator that runs both passes over a document.
package transpile

import (
	"io"
	"strings"

	"git.home.luguber.info/inful/lbpc/internal/directive"
	"git.home.luguber.info/inful/lbpc/internal/document"
	"git.home.luguber.info/inful/lbpc/internal/errors"
)

const (
	contentOpen  = "("
	contentClose = ")"
	indentMarker = '-'
)

// Transform runs the second pass: it re-traverses the full line sequence,
// skips blank, comment, and directive lines, and streams one output line per
// valid content line to w. It returns the number of lines emitted.
//
// The directive skip here is an independent determination from the
// Collector's, on purpose: the two passes share no parsed state.
//
// Lines that are not blank, comment, directive, or content-opening are
// silently dropped. That asymmetry with malformed content lines (which abort
// the run) is part of the format's contract.
func Transform(lines []document.Line, table *directive.Table, policy Policy, w io.Writer) (int, error) {
	emitted := 0
	for _, l := range lines {
		if document.IsBlank(l.Text) || document.IsComment(l.Text) {
			continue
		}
		trimmed := strings.TrimSpace(l.Text)
		if directive.IsCandidate(trimmed) {
			continue
		}
		if !strings.HasPrefix(trimmed, contentOpen) {
			continue
		}

		out, err := transformContent(trimmed, l.Number, table, policy)
		if err != nil {
			return emitted, err
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return emitted, errors.Wrap(err, errors.KindIO, "write output")
		}
		emitted++
	}
	return emitted, nil
}

// transformContent rewrites one accepted content line into its output text
// (without the trailing newline).
func transformContent(trimmed string, lineNo int, table *directive.Table, policy Policy) (string, error) {
	// Inner content runs from just after the opening parenthesis to the
	// LAST closing parenthesis; anything after that is discarded.
	closeIdx := strings.LastIndex(trimmed, contentClose)
	if closeIdx < 0 {
		return "", errors.UnterminatedMarker(lineNo)
	}
	inner := strings.TrimSpace(trimmed[len(contentOpen):closeIdx])

	level := 0
	for level < len(inner) && inner[level] == indentMarker {
		level++
	}
	payload := strings.TrimSpace(inner[level:])
	payload = table.Apply(payload)

	prefix, err := policy.Render(level)
	if err != nil {
		return "", err
	}
	return prefix + payload, nil
}
