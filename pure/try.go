package pure

import "go.uber.org/multierr"

// TryMemo is Memo for functions that can fail.
// Errors are handed back untouched and never cached, so a failed input is
// retried on its next call.
type TryMemo[I comparable, O any] struct {
	fn    func(I) (O, error)
	table *table[I, O]
	cfg   config
}

// NewTryMemo wraps fn with an empty cache. It panics if fn is nil.
func NewTryMemo[I comparable, O any](fn func(I) (O, error), opts ...Option) *TryMemo[I, O] {
	if fn == nil {
		panic("pure: NewTryMemo called with nil function")
	}
	cfg := newConfig(opts)
	return &TryMemo[I, O]{
		fn:    fn,
		table: newTable[I, O](cfg),
		cfg:   cfg,
	}
}

// Call returns the cached output for in, or runs fn and caches a successful result.
func (m *TryMemo[I, O]) Call(in I) (O, error) {
	return m.table.lookupOrTry(in, func() (O, error) {
		return m.fn(in)
	})
}

// CallAll calls every input in order. Outputs line up with ins; a failed
// input leaves its slot zero. All failures are combined with multierr.
func (m *TryMemo[I, O]) CallAll(ins ...I) ([]O, error) {
	outs := make([]O, len(ins))
	var errs error
	for i, in := range ins {
		out, err := m.Call(in)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		outs[i] = out
	}
	return outs, errs
}

// Clear empties the cache and resets Stats.
func (m *TryMemo[I, O]) Clear() {
	m.table.reset(m.cfg.now())
}

// Len reports the number of cached entries. Failed inputs are never counted.
func (m *TryMemo[I, O]) Len() int {
	return m.table.len()
}

// Stats returns the counters since construction or the last Clear.
func (m *TryMemo[I, O]) Stats() Stats {
	return m.table.stats(m.cfg.now())
}

// MemoizeErr is the closure form of TryMemo.
func MemoizeErr[I comparable, O any](fn func(I) (O, error), opts ...Option) func(I) (O, error) {
	return NewTryMemo(fn, opts...).Call
}
