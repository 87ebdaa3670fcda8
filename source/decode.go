package source

import (
	"io"
	"iter"
)

// DecodeSource yields values from a decoding function as a single-pass
// sequence.
type DecodeSource[Item any] struct {
	decode func() (Item, error)
	err    error
}

// Decode returns a [DecodeSource] over decode, which is called once per
// element, the way json.Decoder pulls one value per Decode call:
//
//	dec := json.NewDecoder(r)
//	src := source.Decode(func() (Event, error) {
//		var e Event
//		err := dec.Decode(&e)
//		return e, err
//	})
//
// A decode returning io.EOF ends the sequence cleanly. Any other error ends
// it too and is reported by [DecodeSource.Err].
func Decode[Item any](decode func() (Item, error)) *DecodeSource[Item] {
	return &DecodeSource[Item]{
		decode: decode,
	}
}

// Seq returns the single-use sequence of decoded values.
func (s *DecodeSource[Item]) Seq() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for {
			item, err := s.decode()
			if err == io.EOF {
				return
			} else if err != nil {
				s.err = err
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Err returns the decode error that ended the sequence, if any. It is nil
// while the sequence is still being consumed and after a clean end.
func (s *DecodeSource[Item]) Err() error {
	return s.err
}
