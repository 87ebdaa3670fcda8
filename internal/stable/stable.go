// Package stable provides append-only storage whose elements keep a stable
// address for the whole lifetime of the container.
package stable

// Slice is an append-only container that never moves its elements.
//
// Elements live in fixed-capacity chunks allocated in sequence. Growth
// allocates a new chunk and never reallocates or copies an existing one, so a
// pointer returned by Append or Get stays valid until the Slice itself is
// discarded, no matter how much the Slice grows afterwards.
//
// A Slice is not considered thread-safe.
type Slice[Item any] struct {
	chunks [][]Item
	size   int
	len    int
}

// New returns an empty Slice that grows in chunks of size elements.
func New[Item any](size int) *Slice[Item] {
	if size < 1 {
		panic("chunk size can't be < 1")
	}
	return &Slice[Item]{size: size}
}

// Len returns the number of stored elements.
func (s *Slice[Item]) Len() int {
	return s.len
}

// Append stores item and returns its permanent address.
func (s *Slice[Item]) Append(item Item) *Item {
	if s.len == len(s.chunks)*s.size {
		s.chunks = append(s.chunks, make([]Item, 0, s.size))
	}
	last := len(s.chunks) - 1
	s.chunks[last] = append(s.chunks[last], item)
	s.len++
	return &s.chunks[last][len(s.chunks[last])-1]
}

// Get returns the permanent address of the element at index i.
// It panics if i is out of range.
func (s *Slice[Item]) Get(i int) *Item {
	if i < 0 || i >= s.len {
		panic("index out of range")
	}
	return &s.chunks[i/s.size][i%s.size]
}
