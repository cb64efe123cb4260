package directive

import (
	"regexp"

	"git.home.luguber.info/inful/lbpc/internal/errors"
)

// rule is one alias substitution with its precompiled whole-word pattern.
type rule struct {
	original    string
	replacement string
	re          *regexp.Regexp
}

// Table is the substitution table built by the Collector and consumed by the
// transformer. Aliases apply in definition order; redefining an alias updates
// its replacement in place without moving its position in that order. The
// table is private to a single run.
type Table struct {
	rules []*rule
	index map[string]*rule
}

// NewTable creates an empty substitution table.
func NewTable() *Table {
	return &Table{index: make(map[string]*rule)}
}

// Set registers original → replacement, overwriting any prior mapping for the
// same original (last-write-wins).
func (t *Table) Set(original, replacement string) error {
	if existing, ok := t.index[original]; ok {
		existing.replacement = replacement
		return nil
	}
	// Matches only whole identifiers: \b rejects adjacency to another
	// identifier character on either side.
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(original) + `\b`)
	if err != nil {
		return errors.Wrap(err, errors.KindInternal, "compile alias pattern")
	}
	r := &rule{original: original, replacement: replacement, re: re}
	t.rules = append(t.rules, r)
	t.index[original] = r
	return nil
}

// Replacement looks up the current replacement for an original.
func (t *Table) Replacement(original string) (string, bool) {
	r, ok := t.index[original]
	if !ok {
		return "", false
	}
	return r.replacement, true
}

// Len returns the number of registered aliases.
func (t *Table) Len() int { return len(t.rules) }

// Apply rewrites every whole-word occurrence of each alias in payload, one
// alias at a time in definition order, each applied to the current state of
// the string.
func (t *Table) Apply(payload string) string {
	for _, r := range t.rules {
		payload = r.re.ReplaceAllLiteralString(payload, r.replacement)
	}
	return payload
}

// Aliases returns the (original, replacement) pairs in application order.
func (t *Table) Aliases() [][2]string {
	out := make([][2]string, 0, len(t.rules))
	for _, r := range t.rules {
		out = append(out, [2]string{r.original, r.replacement})
	}
	return out
}
