package source

import (
	"bufio"
	"io"
	"iter"
)

// LinesSource yields successive lines of a reader as a single-pass sequence.
type LinesSource struct {
	scanner *bufio.Scanner
	err     error
}

// Lines returns a [LinesSource] over r. Lines are yielded without their
// trailing newline. A read error ends the sequence; check [LinesSource.Err]
// once the sequence is over.
func Lines(r io.Reader) *LinesSource {
	return &LinesSource{
		scanner: bufio.NewScanner(r),
	}
}

// Seq returns the single-use sequence of lines.
func (s *LinesSource) Seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s.scanner.Scan() {
			if !yield(s.scanner.Text()) {
				return
			}
		}
		s.err = s.scanner.Err()
	}
}

// Err returns the read error that ended the sequence, if any. It is nil while
// the sequence is still being consumed and after a clean end.
func (s *LinesSource) Err() error {
	return s.err
}
