package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayoutHeaderNames(t *testing.T) {
	t.Parallel()
	l := NewLayout(25)
	l.SetHeader([]string{"name", "age"})

	require.Equal(t, 2, l.VisibleCount())
	require.Equal(t, "name", l.Column(0).Name)
	require.Equal(t, "age", l.Column(1).Name)
}

func TestLayoutGrowsWithWiderRows(t *testing.T) {
	t.Parallel()
	l := NewLayout(25)
	l.SetHeader([]string{"a"})

	l.EnsureCount(3)
	require.Equal(t, 3, l.VisibleCount())
	require.Equal(t, "?", l.Column(1).Name, "columns past the header get a placeholder name")
	require.Equal(t, 2, l.Column(2).Source)

	// Growing never shrinks or reorders.
	l.EnsureCount(2)
	require.Equal(t, 3, l.VisibleCount())
}

func TestLayoutHeaderlessColumnNames(t *testing.T) {
	t.Parallel()
	l := NewLayout(25)
	l.EnsureCount(3)

	require.Equal(t, "0", l.Column(0).Name)
	require.Equal(t, "2", l.Column(2).Name)
}

func TestLayoutHide(t *testing.T) {
	t.Parallel()
	l := NewLayout(25)
	l.SetHeader([]string{"a", "b", "c"})

	l.Hide(1)
	require.Equal(t, 2, l.VisibleCount())
	require.Equal(t, "a", l.Column(0).Name)
	require.Equal(t, "c", l.Column(1).Name)
	require.Equal(t, 2, l.Column(1).Source, "source index survives hiding")
}

func TestLayoutMove(t *testing.T) {
	t.Parallel()
	l := NewLayout(25)
	l.SetHeader([]string{"a", "b", "c"})

	l.MoveRight(0)
	require.Equal(t, []int{1, 0, 2}, l.SourceOrder())

	l.MoveLeft(2)
	require.Equal(t, []int{1, 2, 0}, l.SourceOrder())

	// Edges are no-ops.
	l.MoveLeft(0)
	l.MoveRight(2)
	require.Equal(t, []int{1, 2, 0}, l.SourceOrder())
}

func TestLayoutAutoWidthIsCapped(t *testing.T) {
	t.Parallel()
	l := NewLayout(10)
	l.SetHeader([]string{"a"})

	l.Observe(0, 4)
	require.Equal(t, 4, l.Width(0))

	l.Observe(0, 50)
	require.Equal(t, 10, l.Width(0), "auto width stops at the cap")

	l.Observe(0, 3)
	require.Equal(t, 10, l.Width(0), "observations never shrink the content width")
}

func TestLayoutGrowShrink(t *testing.T) {
	t.Parallel()
	l := NewLayout(10)
	l.SetHeader([]string{"a"})
	l.Observe(0, 5)

	l.Grow(0)
	require.Equal(t, 6, l.Width(0))
	l.Grow(0)
	require.Equal(t, 7, l.Width(0))

	for i := 0; i < 10; i++ {
		l.Shrink(0)
	}
	require.Equal(t, 1, l.Width(0), "width floor is one cell")
}

func TestLayoutFitIgnoresCap(t *testing.T) {
	t.Parallel()
	l := NewLayout(10)
	l.SetHeader([]string{"a"})
	l.Observe(0, 42)

	require.Equal(t, 10, l.Width(0))
	l.Fit(0)
	require.Equal(t, 42, l.Width(0))
}

func TestLayoutResetAll(t *testing.T) {
	t.Parallel()
	l := NewLayout(10)
	l.SetHeader([]string{"a", "b"})
	l.Observe(0, 8)
	l.Grow(0)
	l.Fit(1)

	l.ResetAll()
	require.Equal(t, 1, l.Width(0), "reset forgets measurements until re-observed")
	l.Observe(0, 6)
	require.Equal(t, 6, l.Width(0))
}

func TestLayoutWidthNeverBelowOne(t *testing.T) {
	t.Parallel()
	l := NewLayout(10)
	l.SetHeader([]string{"a"})
	require.Equal(t, 1, l.Width(0), "unobserved column still renders")
}
