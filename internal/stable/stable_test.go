package stable_test

import (
	"testing"

	"github.com/teenjuna/reiter/internal/stable"
	"github.com/teenjuna/reiter/internal/testing/require"
)

func TestSlice(t *testing.T) {
	s := stable.New[int](4)
	require.Equal(t, s.Len(), 0)

	for i := range 10 {
		p := s.Append(i)
		require.Equal(t, *p, i)
		require.Equal(t, s.Len(), i+1)
	}

	for i := range 10 {
		require.Equal(t, *s.Get(i), i)
	}
}

func TestSliceStableAddresses(t *testing.T) {
	s := stable.New[int](2)

	var pointers []*int
	for i := range 100 {
		pointers = append(pointers, s.Append(i))
	}

	// Growth never moves elements already appended.
	for i, p := range pointers {
		if p != s.Get(i) {
			t.Fatalf("element %d moved", i)
		}
		require.Equal(t, *p, i)
	}
}

func TestSliceChunkSize(t *testing.T) {
	require.PanicWithError(t, "chunk size can't be < 1", func() {
		stable.New[int](0)
	})
}

func TestSliceGetOutOfRange(t *testing.T) {
	s := stable.New[int](4)
	s.Append(1)

	require.PanicWithError(t, "index out of range", func() {
		s.Get(1)
	})

	require.PanicWithError(t, "index out of range", func() {
		s.Get(-1)
	})
}
