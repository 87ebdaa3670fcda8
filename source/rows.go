package source

import (
	"database/sql"
	"iter"
)

// RowsSource yields scanned database rows as a single-pass sequence.
type RowsSource[Item any] struct {
	rows *sql.Rows
	scan func(*sql.Rows) (Item, error)
	err  error
}

// Rows returns a [RowsSource] over rows. scan extracts one element from the
// current row, typically with rows.Scan.
//
// The rows are closed when the sequence ends for any reason: exhaustion, a
// scan error, or the consumer stopping early. A failed scan ends the
// sequence; check [RowsSource.Err] once the sequence is over.
func Rows[Item any](rows *sql.Rows, scan func(*sql.Rows) (Item, error)) *RowsSource[Item] {
	return &RowsSource[Item]{
		rows: rows,
		scan: scan,
	}
}

// Seq returns the single-use sequence of scanned rows.
func (s *RowsSource[Item]) Seq() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		defer s.rows.Close()

		for s.rows.Next() {
			item, err := s.scan(s.rows)
			if err != nil {
				s.err = err
				return
			}
			if !yield(item) {
				return
			}
		}

		s.err = s.rows.Err()
	}
}

// Err returns the error that ended the sequence, if any: a failed scan or the
// rows' own iteration error.
func (s *RowsSource[Item]) Err() error {
	return s.err
}
