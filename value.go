package reiter

import "iter"

// ValueSeq is an adaptor around a single-pass sequence that can produce any
// number of cursors sharing one underlying cache of elements returned by
// value.
//
// Advances return copies, so Item should be a value type, or one whose shared
// innards (slices, maps, pointers) every consumer treats as read-only. If
// consumers need stable long-lived references into the cache, use [Seq]
// instead: a ValueSeq may relocate its cache as it grows.
//
// Unlike [Seq], which only guards source pulls, a ValueSeq keeps its source
// state, cache and frontier in a single guarded record and runs every
// advance, cache hits included, inside that guard.
//
// A ValueSeq is not considered thread-safe.
type ValueSeq[Item any] struct {
	cfg *config[Item]

	next func() (Item, bool)
	stop func()

	cache []Item
	done  bool

	// busy guards every advance: position, cache and source state change
	// together or not at all.
	busy bool
}

// NewValue returns a [ValueSeq] over src.
//
// NewValue takes ownership of src: it must be a fresh, unconsumed sequence,
// and nothing else may range over it afterwards. The source is advanced
// lazily, one element per frontier pull, and is never reset or re-acquired.
func NewValue[Item any](src iter.Seq[Item], options ...Option[Item]) *ValueSeq[Item] {
	cfg := newConfig(options...)
	next, stop := iter.Pull(src)

	return &ValueSeq[Item]{
		cfg:   cfg,
		next:  next,
		stop:  stop,
		cache: make([]Item, 0, cfg.chunkSize),
	}
}

// Cursor returns a new independent cursor positioned at the first element.
//
// Cursors may be created at any time, including after other cursors have
// partially or fully drained the source. Dropping a cursor has no effect on
// the adaptor or on other cursors.
func (s *ValueSeq[Item]) Cursor() *ValueCursor[Item] {
	s.cfg.metrics.cursors.Inc()
	return &ValueCursor[Item]{seq: s}
}

// Iter returns a sequence of all elements. Every iteration of the returned
// sequence runs on a fresh cursor, so ranging twice replays from the start
// with the second pass served from the cache.
func (s *ValueSeq[Item]) Iter() iter.Seq[Item] {
	return func(yield func(Item) bool) {
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
func (s *ValueSeq[Item]) Len() int {
	return len(s.cache)
}

// Stop releases the source early.
//
// After Stop, cursors keep reading cached elements, and advances past the
// frontier observe the end of the sequence. Stop is idempotent, a no-op once
// the source is exhausted, and must not be called from inside an advance.
func (s *ValueSeq[Item]) Stop() {
	if s.busy {
		panic("reiter: Stop during an advance")
	}
	if s.done {
		return
	}
	s.done = true
	s.stop()
}

// ValueCursor is one consumer's iteration position over a [ValueSeq].
//
// A cursor holds no resources and has no teardown: an unused cursor is simply
// dropped.
type ValueCursor[Item any] struct {
	seq *ValueSeq[Item]
	pos int
}

// Next returns a copy of the next element, or (zero, false) once no more
// elements exist. Once Next has returned false it returns false forever.
//
// Every advance runs inside the adaptor's single critical section, so a
// source that advances any cursor of the same adaptor during its own pull
// panics, even when that advance would have been a cache hit.
//
// If the source panics, the panic propagates with the cache, the frontier and
// the guard left as they were before the pull.
func (c *ValueCursor[Item]) Next() (Item, bool) {
	seq := c.seq
	if seq.busy {
		panic("reiter: reentrant advance of shared state")
	}

	seq.busy = true
	defer func() {
		seq.busy = false
	}()

	// Cursors never get past the frontier, so a position is either behind it
	// (a cache hit) or at it (a pull).
	if c.pos < len(seq.cache) {
		item := seq.cache[c.pos]
		c.pos++
		seq.cfg.metrics.hits.Inc()
		return item, true
	}

	var zero Item
	if seq.done {
		return zero, false
	}

	item, ok := seq.next()
	if !ok {
		seq.done = true
		seq.stop()
		return zero, false
	}

	seq.cache = append(seq.cache, item)
	seq.cfg.metrics.pulls.Inc()
	seq.cfg.metrics.length.Set(float64(len(seq.cache)))
	c.pos++

	return item, true
}
