package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func evalSrc(t *testing.T, src string, cells []string) bool {
	t.Helper()
	expr, err := Parse(src)
	require.NoError(t, err)
	return Eval(expr, cells)
}

func TestEvalNilPassesAll(t *testing.T) {
	t.Parallel()
	require.True(t, Eval(nil, []string{"anything"}))
	require.True(t, Eval(nil, nil))
}

func TestEvalNumericComparison(t *testing.T) {
	t.Parallel()

	// "5" and "5.0" are decimal-equal when both sides parse numerically.
	require.True(t, evalSrc(t, "1 == 5", []string{"x", "5"}))
	require.True(t, evalSrc(t, "1 == 5", []string{"x", "5.0"}))
	require.False(t, evalSrc(t, "1 != 5", []string{"x", "5.0"}))

	require.True(t, evalSrc(t, "0 > 9", []string{"10"}), "numeric, not lexicographic")
	require.True(t, evalSrc(t, "0 >= 10", []string{"10"}))
	require.True(t, evalSrc(t, "0 < 0", []string{"-1"}))
	require.True(t, evalSrc(t, "0 == -1.5", []string{"-1.50"}))
}

func TestEvalStringFallback(t *testing.T) {
	t.Parallel()

	// Neither side numeric: plain string comparison.
	require.True(t, evalSrc(t, `2 != "abc"`, []string{"", "", "abcd"}))
	require.False(t, evalSrc(t, `2 != "abc"`, []string{"", "", "abc"}))

	// Numeric literal against a non-numeric cell falls back to bytes.
	require.False(t, evalSrc(t, "0 == 5", []string{"five"}))
	require.True(t, evalSrc(t, "0 != 5", []string{"five"}))

	// Quoted literal forces text comparison even for numeric-looking cells.
	require.False(t, evalSrc(t, `0 == "5"`, []string{"5.0"}))
	require.True(t, evalSrc(t, `0 == "5.0"`, []string{"5.0"}))

	// Lexicographic ordering for text.
	require.True(t, evalSrc(t, "0 < b", []string{"a"}))
}

func TestEvalMissingColumnIsFalse(t *testing.T) {
	t.Parallel()
	cells := []string{"only"}

	require.False(t, evalSrc(t, "5 == x", cells))
	require.False(t, evalSrc(t, "5 ~ x", cells))
	require.False(t, evalSrc(t, "5", cells))
	require.True(t, evalSrc(t, "not 5", cells), "negation of a missing column holds")
}

func TestEvalPresence(t *testing.T) {
	t.Parallel()
	cells := []string{"a", "", "c"}

	require.True(t, evalSrc(t, "0", cells))
	require.False(t, evalSrc(t, "1", cells), "empty cell is absent")
	require.True(t, evalSrc(t, "2", cells))
}

func TestEvalRegex(t *testing.T) {
	t.Parallel()
	cells := []string{"foobar", "2024-01-15"}

	require.True(t, evalSrc(t, `0 ~ "^foo"`, cells))
	require.False(t, evalSrc(t, `0 ~ "^bar"`, cells))
	require.True(t, evalSrc(t, `1 ~ "^\d{4}-"`, cells))
	require.True(t, evalSrc(t, "0 matches bar", cells), "unanchored match anywhere")
}

func TestEvalSlices(t *testing.T) {
	t.Parallel()
	cells := []string{"Chocolate"}

	require.True(t, evalSrc(t, `0[2:4] == "oc"`, cells))
	require.True(t, evalSrc(t, `0[2-4] == "oco"`, cells), "dash form includes the end index")
	require.True(t, evalSrc(t, `0[0] == "C"`, cells))
	require.True(t, evalSrc(t, `0[:3] == "Cho"`, cells))
	require.True(t, evalSrc(t, `0[4:] == "olate"`, cells))

	// Out of range clamps to empty, it is not an error.
	require.False(t, evalSrc(t, "0[50:60]", cells))
	require.True(t, evalSrc(t, `0[50:60] == ""`, cells))
	require.True(t, evalSrc(t, `0[7:200] == "te"`, cells))
}

func TestEvalBooleans(t *testing.T) {
	t.Parallel()
	cells := []string{"a", "", "c"}

	require.True(t, evalSrc(t, "0 and 2", cells))
	require.False(t, evalSrc(t, "0 and 1", cells))
	require.True(t, evalSrc(t, "0 or 1", cells))
	require.True(t, evalSrc(t, "1 or 2", cells))
	require.False(t, evalSrc(t, "not 0", cells))
	require.True(t, evalSrc(t, "1 and 1 or 0", cells), "or applies after and")
	require.False(t, evalSrc(t, "1 and (1 or 0)", cells))
}

func TestEvalWhitespaceAroundNumericCell(t *testing.T) {
	t.Parallel()
	require.True(t, evalSrc(t, "0 == 5", []string{" 5 "}))
}
