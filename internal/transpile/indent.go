package transpile

import (
	"strings"

	"git.home.luguber.info/inful/lbpc/internal/errors"
)

// IndentType selects how indentation levels render into whitespace.
type IndentType string

const (
	IndentSpaces IndentType = "spaces"
	IndentTabs   IndentType = "tabs"
)

// Policy is the indentation configuration for a whole run: a rendering
// function from a non-negative level to a literal whitespace prefix.
type Policy struct {
	Type IndentType
	Size int // spaces per level; ignored for tabs
}

// DefaultPolicy returns the default rendering: 4 spaces per level.
func DefaultPolicy() Policy {
	return Policy{Type: IndentSpaces, Size: 4}
}

// Render converts an indentation level into its literal prefix. An
// unrecognized type is reported here, at first use, rather than at
// construction, so a Policy value can be built from unvalidated input and
// still fail cleanly.
func (p Policy) Render(level int) (string, error) {
	switch p.Type {
	case IndentSpaces:
		return strings.Repeat(" ", p.Size*level), nil
	case IndentTabs:
		return strings.Repeat("\t", level), nil
	default:
		return "", errors.InvalidIndentConfig(string(p.Type))
	}
}
