package reiter_test

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/teenjuna/reiter"
	"github.com/teenjuna/reiter/source"
)

func Example() {
	reader := strings.NewReader("alpha\nbeta\ngamma")

	seq := reiter.New(source.Lines(reader).Seq())

	// The first pass pulls lines from the reader.
	for line := range seq.Iter() {
		fmt.Println(*line)
	}

	// The second pass replays the cache; the reader is long exhausted.
	for line := range seq.Iter() {
		fmt.Println(*line)
	}

	// Output:
	// alpha
	// beta
	// gamma
	// alpha
	// beta
	// gamma
}

func ExampleNewValue() {
	seq := reiter.NewValue(slices.Values([]int{1, 2, 3}))

	fmt.Println(slices.Collect(seq.Iter()))
	fmt.Println(slices.Collect(seq.Iter()))

	// Output:
	// [1 2 3]
	// [1 2 3]
}

func ExampleSeq_Cursor() {
	seq := reiter.New(slices.Values([]string{"a", "b", "c"}))

	first := seq.Cursor()
	second := seq.Cursor()

	item, _ := first.Next()
	fmt.Println(*item)

	item, _ = second.Next()
	fmt.Println(*item)

	item, _ = first.Next()
	fmt.Println(*item)

	// Output:
	// a
	// a
	// b
}

func Example_fanIn() {
	results := make(chan int)

	var group errgroup.Group
	for worker := range 3 {
		group.Go(func() error {
			for i := range 3 {
				results <- worker*3 + i
			}
			return nil
		})
	}
	go func() {
		if err := group.Wait(); err != nil {
			panic(err)
		}
		close(results)
	}()

	// A channel can be drained only once; the adaptor lets every consumer
	// see the same merged sequence.
	seq := reiter.NewValue(source.Chan(results))

	first := slices.Collect(seq.Iter())
	second := slices.Collect(seq.Iter())

	fmt.Println(slices.Equal(first, second))
	fmt.Println(len(first))

	// Output:
	// true
	// 9
}
