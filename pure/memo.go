package pure

// Memo caches the outputs of a pure unary function, keyed by input.
//
// Equal inputs (by ==) share one entry; the first key stored is the one kept.
// fn runs at most once per distinct input until Clear is called.
// A Memo is meant for a single owner and is not safe for concurrent use.
type Memo[I comparable, O any] struct {
	fn    func(I) O
	table *table[I, O]
	cfg   config
}

// NewMemo wraps fn with an empty cache. It panics if fn is nil.
func NewMemo[I comparable, O any](fn func(I) O, opts ...Option) *Memo[I, O] {
	if fn == nil {
		panic("pure: NewMemo called with nil function")
	}
	cfg := newConfig(opts)
	return &Memo[I, O]{
		fn:    fn,
		table: newTable[I, O](cfg),
		cfg:   cfg,
	}
}

// Call returns fn(in), computing it only if in is not cached yet.
//
// If fn calls back into the same Memo with an equal input, the inner call
// recomputes and the outer call overwrites its result. If fn panics, nothing
// is cached.
func (m *Memo[I, O]) Call(in I) O {
	return m.table.lookupOrCompute(in, func() O {
		return m.fn(in)
	})
}

// Clear empties the cache and resets Stats.
func (m *Memo[I, O]) Clear() {
	m.table.reset(m.cfg.now())
}

// Len reports the number of cached entries.
func (m *Memo[I, O]) Len() int {
	return m.table.len()
}

// Stats returns the counters since construction or the last Clear.
func (m *Memo[I, O]) Stats() Stats {
	return m.table.stats(m.cfg.now())
}
