// Package source adapts common one-shot producers into single-pass sequences
// for reiter adaptors.
//
// Every adapter yields a sequence that can be consumed once; wrap it in
// reiter.New or reiter.NewValue to make it replayable. Adapters over fallible
// producers ([Lines], [Decode], [Rows]) follow the bufio.Scanner convention:
// a failure ends the sequence, and Err reports it afterwards.
package source

import "iter"

// Func returns a sequence that yields next's results until next reports
// false. The sequence is single-use.
func Func[Item any](next func() (Item, bool)) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for {
			item, ok := next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Chan returns a sequence that receives from ch until ch is closed. The
// sequence is single-use: a value taken from ch by one iteration is not seen
// by another.
func Chan[Item any](ch <-chan Item) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
