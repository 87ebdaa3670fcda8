package source_test

import (
	"slices"
	"testing"

	"github.com/teenjuna/reiter/internal/testing/require"
	"github.com/teenjuna/reiter/source"
)

func TestFunc(t *testing.T) {
	i := 0
	seq := source.Func(func() (int, bool) {
		i++
		return i, i <= 3
	})

	require.Equal(t, slices.Collect(seq), []int{1, 2, 3})
}

func TestChan(t *testing.T) {
	ch := make(chan string, 3)
	ch <- "a"
	ch <- "b"
	ch <- "c"
	close(ch)

	seq := source.Chan(ch)
	require.Equal(t, slices.Collect(seq), []string{"a", "b", "c"})

	// The channel is drained: a second pass sees nothing.
	require.Equal(t, len(slices.Collect(seq)), 0)
}
