package source_test

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/teenjuna/reiter/internal/testing/require"
	"github.com/teenjuna/reiter/source"
)

func TestDecode(t *testing.T) {
	type event struct {
		Name string `json:"name"`
	}

	dec := json.NewDecoder(strings.NewReader(`{"name":"a"} {"name":"b"}`))
	src := source.Decode(func() (event, error) {
		var e event
		err := dec.Decode(&e)
		return e, err
	})

	require.Equal(t, slices.Collect(src.Seq()), []event{{Name: "a"}, {Name: "b"}})
	require.Nil(t, src.Err())
}

func TestDecodeError(t *testing.T) {
	dec := json.NewDecoder(strings.NewReader("1 2 oops"))
	src := source.Decode(func() (int, error) {
		var n int
		err := dec.Decode(&n)
		return n, err
	})

	require.Equal(t, slices.Collect(src.Seq()), []int{1, 2})
	require.NotNil(t, src.Err())
}
