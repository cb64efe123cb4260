// Package directive implements the first translation pass: scanning a
// document for `<< ... >>` directive lines and building the substitution
// table that the line transformer consumes.
package directive

import (
	"strings"

	"git.home.luguber.info/inful/lbpc/internal/errors"
)

const (
	openToken  = "<<"
	closeToken = ">>"
)

// KindAlias is the only directive kind currently recognized.
const KindAlias = "alias"

// IsCandidate reports whether a trimmed line should be treated as a directive.
// The check is pure containment of both tokens, not positional: a line with
// the close token before the open token is still a candidate and then fails
// to parse.
func IsCandidate(trimmed string) bool {
	return strings.Contains(trimmed, openToken) && strings.Contains(trimmed, closeToken)
}

// Directive is a parsed instruction extracted from a directive line.
type Directive struct {
	Line int
	Kind string
	Args []string
}

// Parse extracts the directive from a candidate line: the substring between
// the first open token and the first close token after it, split on
// whitespace, with the first token lower-cased as the kind.
func Parse(trimmed string, line int) (*Directive, error) {
	start := strings.Index(trimmed, openToken)
	if start < 0 {
		return nil, errors.InvalidDirective(line, "invalid directive format")
	}
	rest := trimmed[start+len(openToken):]
	end := strings.Index(rest, closeToken)
	if end < 0 {
		return nil, errors.InvalidDirective(line, "invalid directive format")
	}
	fields := strings.Fields(strings.TrimSpace(rest[:end]))
	if len(fields) == 0 {
		return nil, errors.InvalidDirective(line, "empty directive")
	}
	return &Directive{
		Line: line,
		Kind: strings.ToLower(fields[0]),
		Args: fields[1:],
	}, nil
}
