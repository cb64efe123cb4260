package directive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable_ApplyWholeWordOnly(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Set("foo", "bar"))

	// Adjacent identifier characters must block the match.
	require.Equal(t, "foobar", table.Apply("foobar"))
	require.Equal(t, "bar bar", table.Apply("foo bar"))
	require.Equal(t, "bar(bar)", table.Apply("foo(foo)"))
	require.Equal(t, "foo_x", table.Apply("foo_x"))
	require.Equal(t, "xfoo", table.Apply("xfoo"))
	require.Equal(t, "bar", table.Apply("foo"))
}

func TestTable_LastWriteWins(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Set("x", "y"))
	require.NoError(t, table.Set("x", "z"))

	repl, ok := table.Replacement("x")
	require.True(t, ok)
	require.Equal(t, "z", repl)
	require.Equal(t, 1, table.Len())
	require.Equal(t, "z z", table.Apply("x x"))
}

func TestTable_DefinitionOrderApplication(t *testing.T) {
	// Aliases apply in definition order, each to the current state of the
	// payload, so a later alias can rewrite an earlier alias's output.
	table := NewTable()
	require.NoError(t, table.Set("a", "b"))
	require.NoError(t, table.Set("b", "c"))
	require.Equal(t, "c", table.Apply("a"))

	reversed := NewTable()
	require.NoError(t, reversed.Set("b", "c"))
	require.NoError(t, reversed.Set("a", "b"))
	require.Equal(t, "b", reversed.Apply("a"))
}

func TestTable_RedefineKeepsPosition(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Set("a", "b"))
	require.NoError(t, table.Set("b", "c"))
	// Redefining "a" must not move it after "b" in application order.
	require.NoError(t, table.Set("a", "b"))
	require.Equal(t, "c", table.Apply("a"))
	require.Equal(t, [][2]string{{"a", "b"}, {"b", "c"}}, table.Aliases())
}

func TestTable_EmptyTableIsIdentity(t *testing.T) {
	table := NewTable()
	require.Equal(t, "untouched text", table.Apply("untouched text"))
}

func TestTable_ReplacementUnknown(t *testing.T) {
	table := NewTable()
	_, ok := table.Replacement("missing")
	require.False(t, ok)
}
