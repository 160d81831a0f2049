// Package pure memoizes pure unary functions.
//
// A pure function can be read as a lazily filled table: the first call for an
// input computes the row, every later call with an equal input reads it back.
// The package offers that table in two shapes:
//
//   - Memo, a value with Call and Clear for callers that need to reset the cache.
//   - Memoize, a drop-in func(I) O whose cache is private to the closure.
//
// TryMemo and MemoizeErr do the same for func(I) (O, error). Failures are
// never cached.
//
// Inputs are keyed with ==, so any comparable type works, including structs
// used as composite keys. MemoizeBy covers inputs that are not comparable.
// A NaN float is never == to itself, so every call with a NaN-valued key
// misses and adds another entry.
//
// None of the memos are safe for concurrent use, and none of them evict:
// the cache grows until Clear or until the memo is garbage collected.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
// The cache keeps whatever the first call returned.
package pure
