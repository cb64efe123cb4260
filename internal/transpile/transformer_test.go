package transpile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/lbpc/internal/directive"
	"git.home.luguber.info/inful/lbpc/internal/document"
	"git.home.luguber.info/inful/lbpc/internal/errors"
)

func transform(t *testing.T, doc *document.Document, table *directive.Table) (string, int, error) {
	t.Helper()
	if table == nil {
		table = directive.NewTable()
	}
	var sb strings.Builder
	n, err := Transform(doc.Lines(), table, DefaultPolicy(), &sb)
	return sb.String(), n, err
}

func TestTransform_EmptyDocument(t *testing.T) {
	out, n, err := transform(t, document.FromLines(), nil)
	require.NoError(t, err)
	require.Equal(t, "", out)
	require.Equal(t, 0, n)
}

func TestTransform_NoContentLinesIsEmptyOutput(t *testing.T) {
	doc := document.FromLines(
		"# comment only",
		"",
		"just some text",
	)
	out, n, err := transform(t, doc, nil)
	require.NoError(t, err)
	require.Equal(t, "", out)
	require.Equal(t, 0, n)
}

func TestTransform_HyphensBecomeIndentation(t *testing.T) {
	out, _, err := transform(t, document.FromLines("(--hello)"), nil)
	require.NoError(t, err)
	require.Equal(t, "        hello\n", out)
}

func TestTransform_ZeroHyphensZeroIndent(t *testing.T) {
	out, _, err := transform(t, document.FromLines("(hello)"), nil)
	require.NoError(t, err)
	require.Equal(t, "hello\n", out)
}

func TestTransform_InnerContentRunsToLastParen(t *testing.T) {
	// Payload may contain closing parens; only text after the LAST one is
	// discarded.
	out, _, err := transform(t, document.FromLines("(-f(x)) trailing junk"), nil)
	require.NoError(t, err)
	require.Equal(t, "    f(x)\n", out)
}

func TestTransform_PayloadWhitespaceTrimmed(t *testing.T) {
	out, _, err := transform(t, document.FromLines("(  --   spaced out   )"), nil)
	require.NoError(t, err)
	require.Equal(t, "        spaced out\n", out)
}

func TestTransform_AppliesAliases(t *testing.T) {
	table := directive.NewTable()
	require.NoError(t, table.Set("foo", "bar"))

	out, _, err := transform(t, document.FromLines("(-baz foo)", "(foobar)"), table)
	require.NoError(t, err)
	require.Equal(t, "    baz bar\nfoobar\n", out)
}

func TestTransform_DirectiveLinesNeverEmitted(t *testing.T) {
	doc := document.FromLines(
		"<< alias foo bar >>",
		"(foo)",
		"<< alias foo again >>",
	)
	table := directive.NewTable()
	require.NoError(t, table.Set("foo", "bar"))

	out, n, err := transform(t, doc, table)
	require.NoError(t, err)
	require.Equal(t, "bar\n", out)
	require.Equal(t, 1, n)
}

func TestTransform_SilentlyDropsUnrecognizedLines(t *testing.T) {
	doc := document.FromLines(
		"this line is not content",
		"(kept)",
		"]weird[",
	)
	out, _, err := transform(t, doc, nil)
	require.NoError(t, err)
	require.Equal(t, "kept\n", out)
}

func TestTransform_UnterminatedMarkerAborts(t *testing.T) {
	doc := document.FromLines(
		"(first)",
		"(hello",
		"(never reached)",
	)
	out, n, err := transform(t, doc, nil)
	require.Error(t, err)
	require.True(t, errors.IsKind(err, errors.KindUnterminatedMarker))
	require.Equal(t, 2, errors.LineOf(err))
	// Output up to the failing line stays written; nothing after it does.
	require.Equal(t, "first\n", out)
	require.Equal(t, 1, n)
}

func TestTransform_InvalidIndentConfigSurfacesAtFirstContentLine(t *testing.T) {
	table := directive.NewTable()
	var sb strings.Builder
	_, err := Transform(document.FromLines("(x)").Lines(), table, Policy{Type: "dots", Size: 4}, &sb)
	require.Error(t, err)
	require.True(t, errors.IsKind(err, errors.KindInvalidIndentConfig))
}

func TestTransform_TabsPolicy(t *testing.T) {
	table := directive.NewTable()
	var sb strings.Builder
	_, err := Transform(document.FromLines("(--x)").Lines(), table, Policy{Type: IndentTabs, Size: 4}, &sb)
	require.NoError(t, err)
	require.Equal(t, "\t\tx\n", sb.String())
}

func TestTransform_SpecExample(t *testing.T) {
	doc := document.FromLines(
		"<< alias foo bar >>",
		"(--foo)",
		"# a comment",
		"(-baz foo)",
	)
	table, err := directive.Collect(doc.Lines(), nil)
	require.NoError(t, err)

	var sb strings.Builder
	n, err := Transform(doc.Lines(), table, DefaultPolicy(), &sb)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "        bar\n    baz bar\n", sb.String())
}

func TestTransform_HyphensOnlyLine(t *testing.T) {
	// A content line that is nothing but hyphens has an empty payload.
	out, _, err := transform(t, document.FromLines("(---)"), nil)
	require.NoError(t, err)
	require.Equal(t, "            \n", out)
}
