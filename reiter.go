// Package reiter turns a single-pass sequence into one that can be iterated
// any number of times.
//
// An adaptor owns an exhaustible source (a side-effecting generator, a
// parser, a channel, a database result set) and an append-only cache of
// everything pulled from it so far. Any number of cursors iterate over the
// adaptor independently: an advance past the cached frontier pulls exactly
// one item from the source, every other advance is served from the cache.
// However many cursors read a position, the source is advanced at most once
// for it.
//
//	lines := source.Lines(file)
//	seq := reiter.New(lines.Seq())
//
//	for line := range seq.Iter() {
//		fmt.Println(*line)
//	}
//
//	for line := range seq.Iter() {
//		// Served from the cache, the file is not read again.
//		fmt.Println(*line)
//	}
//
// [Seq] returns pointers into the cache, which stay valid for the adaptor's
// whole lifetime. [ValueSeq] returns copies instead. Neither is considered
// thread-safe: access is single-threaded and non-reentrant, and a source that
// advances a cursor of its own adaptor during a pull panics.
package reiter

import (
	"iter"

	"github.com/teenjuna/reiter/internal/stable"
)

// Seq is an adaptor around a single-pass sequence that can produce any number
// of cursors sharing one underlying cache.
//
// Cached elements never move: a pointer returned by an advance keeps pointing
// at the same element for the adaptor's whole lifetime, no matter how far
// other cursors advance afterwards. Two cursors reading the same position
// observe the same element, not copies of it.
//
// If Item is cheap to copy and nobody holds long-lived references into the
// cache, [ValueSeq] is the simpler choice.
//
// A Seq is not considered thread-safe.
type Seq[Item any] struct {
	cfg *config[Item]

	next func() (Item, bool)
	stop func()

	cache   *stable.Slice[Item]
	done    bool
	pulling bool
}

// New returns a [Seq] over src.
//
// New takes ownership of src: it must be a fresh, unconsumed sequence, and
// nothing else may range over it afterwards. The source is advanced lazily,
// one element per frontier pull, and is never reset or re-acquired.
func New[Item any](src iter.Seq[Item], options ...Option[Item]) *Seq[Item] {
	cfg := newConfig(options...)
	next, stop := iter.Pull(src)

	return &Seq[Item]{
		cfg:   cfg,
		next:  next,
		stop:  stop,
		cache: stable.New[Item](cfg.chunkSize),
	}
}

// Cursor returns a new independent cursor positioned at the first element.
//
// Cursors may be created at any time, including after other cursors have
// partially or fully drained the source. Dropping a cursor has no effect on
// the adaptor or on other cursors.
func (s *Seq[Item]) Cursor() *Cursor[Item] {
	s.cfg.metrics.cursors.Inc()
	return &Cursor[Item]{seq: s}
}

// Iter returns a sequence of all elements. Every iteration of the returned
// sequence runs on a fresh cursor, so ranging twice replays from the start
// with the second pass served from the cache.
func (s *Seq[Item]) Iter() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		cursor := s.Cursor()
		for {
			item, ok := cursor.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Len returns the number of elements cached so far, which is also the number
// of elements pulled from the source.
func (s *Seq[Item]) Len() int {
	return s.cache.Len()
}

// Stop releases the source early.
//
// After Stop, cursors keep reading cached elements, and advances past the
// frontier observe the end of the sequence. Stop is idempotent, a no-op once
// the source is exhausted, and must not be called from inside a pull.
func (s *Seq[Item]) Stop() {
	if s.pulling {
		panic("reiter: Stop during a pull")
	}
	if s.done {
		return
	}
	s.done = true
	s.stop()
}

// pull advances the source by one element and caches the result. Pulls are
// strictly sequential: re-entering pull while one is in progress is a
// contract violation.
//
// If the source panics, the panic propagates with the cache, the frontier and
// the pull guard left as they were before the pull.
func (s *Seq[Item]) pull() (*Item, bool) {
	if s.done {
		return nil, false
	}
	if s.pulling {
		panic("reiter: reentrant pull of the source")
	}

	s.pulling = true
	defer func() {
		s.pulling = false
	}()

	item, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
		return nil, false
	}

	p := s.cache.Append(item)
	s.cfg.metrics.pulls.Inc()
	s.cfg.metrics.length.Set(float64(s.cache.Len()))

	return p, true
}

// Cursor is one consumer's iteration position over a [Seq].
//
// A cursor holds no resources and has no teardown: an unused cursor is simply
// dropped.
type Cursor[Item any] struct {
	seq *Seq[Item]
	pos int
}

// Next returns a pointer to the next element, or (nil, false) once no more
// elements exist. Once Next has returned false it returns false forever.
//
// Behind the frontier the element comes straight from the cache and the
// source is not touched. At the frontier the source is pulled for exactly one
// element.
func (c *Cursor[Item]) Next() (*Item, bool) {
	seq := c.seq

	// Cursors never get past the frontier, so a position is either behind it
	// (a cache hit) or at it (a pull).
	if c.pos < seq.cache.Len() {
		item := seq.cache.Get(c.pos)
		c.pos++
		seq.cfg.metrics.hits.Inc()
		return item, true
	}

	item, ok := seq.pull()
	if !ok {
		return nil, false
	}
	c.pos++
	return item, true
}
