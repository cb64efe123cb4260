package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/lbpc/internal/errors"
)

func TestRead_NumbersLinesFromOne(t *testing.T) {
	doc, err := Read(strings.NewReader("first\nsecond\nthird\n"), "test.lbp")
	require.NoError(t, err)
	require.Equal(t, 3, doc.Len())
	require.Equal(t, 1, doc.Lines()[0].Number)
	require.Equal(t, "second", doc.Lines()[1].Text)
	require.Equal(t, 3, doc.Lines()[2].Number)
}

func TestRead_NoTrailingNewline(t *testing.T) {
	doc, err := Read(strings.NewReader("only"), "test.lbp")
	require.NoError(t, err)
	require.Equal(t, 1, doc.Len())
	require.Equal(t, "only", doc.Lines()[0].Text)
}

func TestRead_EmptyInput(t *testing.T) {
	doc, err := Read(strings.NewReader(""), "test.lbp")
	require.NoError(t, err)
	require.Equal(t, 0, doc.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.lbp"))
	require.Error(t, err)
	require.True(t, errors.IsKind(err, errors.KindMissingInput))
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.lbp")
	require.NoError(t, os.WriteFile(path, []byte("(hello)\n(world)\n"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, doc.Len())
	require.Equal(t, path, doc.Path())
}

func TestFromLines(t *testing.T) {
	doc := FromLines("a", "b")
	require.Equal(t, 2, doc.Len())
	require.Equal(t, Line{Number: 2, Text: "b"}, doc.Lines()[1])
}

func TestIsBlank(t *testing.T) {
	require.True(t, IsBlank(""))
	require.True(t, IsBlank("   \t "))
	require.False(t, IsBlank(" x "))
}

func TestIsComment(t *testing.T) {
	require.True(t, IsComment("# a comment"))
	require.True(t, IsComment("   # indented comment"))
	require.False(t, IsComment("(payload) # not a comment line"))
	require.False(t, IsComment(""))
}
