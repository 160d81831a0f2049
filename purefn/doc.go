// Package purefn provides high-level memoization utilities for pure functions.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The Tableize family memoizes pure functions of up to four arguments by
// packing the arguments into one composite key, then delegating to
// pure.MemoizeBy. Each argument must be comparable or implement fmt.Stringer;
// a Stringer is keyed by its String() result. When an argument type is an
// interface, a Stringer and a plain string with the same text share one entry.
//
// Features:
//   - TableizeI1O1 to TableizeI4O2: Typed, generic memoizers for common arities.
//   - One table per tableized function, owned by the returned closure.
//   - Options from package pure (logger, name, size hint) pass straight through.
//
// This package embodies the idea that:
//
//	> If a function is pure, it should be cacheable like a mathematical function.
//
// See tableize_test.go and tableize_bench_test.go for usage and benchmarks.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
// Tableized functions are not safe for concurrent use.
package purefn
