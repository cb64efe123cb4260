// Package document models a .lbp source file as an immutable ordered sequence
// of lines. Both translation passes traverse the same in-memory sequence, so
// the physical file is read exactly once per run.
package document

import (
	"bufio"
	"io"
	"os"
	"strings"

	"git.home.luguber.info/inful/lbpc/internal/errors"
)

// CommentMarker introduces a comment line (after trimming).
const CommentMarker = "#"

// Line is one raw source line together with its 1-based position. The
// position is used solely for diagnostics.
type Line struct {
	Number int
	Text   string
}

// Document is an ordered, immutable sequence of source lines.
type Document struct {
	path  string
	lines []Line
}

// Load reads the file at path into a Document. A missing file is reported as
// a missing-input error before any processing happens.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.MissingInput(path, err)
		}
		return nil, errors.Wrap(err, errors.KindIO, "open input file")
	}
	defer f.Close()

	doc, err := Read(f, path)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Read reads all lines from r into a Document. The name is kept for
// diagnostics only.
func Read(r io.Reader, name string) (*Document, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	// Raise the token limit above the default 64KiB; .lbp lines are
	// free-form text and may be long.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		lines = append(lines, Line{Number: n, Text: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.KindIO, "read input")
	}
	return &Document{path: name, lines: lines}, nil
}

// FromLines builds a Document from raw line text, numbering from 1. Intended
// for tests and in-memory translation.
func FromLines(lines ...string) *Document {
	d := &Document{}
	for i, text := range lines {
		d.lines = append(d.lines, Line{Number: i + 1, Text: text})
	}
	return d
}

// Path returns the source path the document was loaded from.
func (d *Document) Path() string { return d.path }

// Lines returns the ordered line sequence. Callers must not mutate it.
func (d *Document) Lines() []Line { return d.lines }

// Len returns the number of lines.
func (d *Document) Len() int { return len(d.lines) }

// IsBlank reports whether a raw line is empty after trimming.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// IsComment reports whether a raw line is a comment (trimmed text begins with
// the comment marker).
func IsComment(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), CommentMarker)
}
