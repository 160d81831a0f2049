package pure

// Memoize returns a memoized version of fn.
//
// The result behaves like Memo.Call but keeps its cache to itself:
// there is no way to clear or inspect it, and it is released with the closure.
func Memoize[I comparable, O any](fn func(I) O, opts ...Option) func(I) O {
	return NewMemo(fn, opts...).Call
}

// MemoizeBy memoizes fn for inputs that are not comparable themselves.
// keyOf must map equal inputs to equal keys and be deterministic; only
// the first input seen for a key is ever passed to fn.
func MemoizeBy[I any, K comparable, O any](
	fn func(I) O,
	keyOf func(I) K,
	opts ...Option,
) func(I) O {
	if fn == nil || keyOf == nil {
		panic("pure: MemoizeBy called with nil function")
	}
	memo := newTable[K, O](newConfig(opts))
	return func(in I) O {
		return memo.lookupOrCompute(keyOf(in), func() O {
			return fn(in)
		})
	}
}
