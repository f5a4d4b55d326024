// Package pure provides memoization utilities for pure functions and lazily computed values.
//
// A memoizer is not just a utility to add caching. It forces the developer to ask:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// Features:
//   - Memoizer: caches results by call signature (positional arguments plus keyword
//     arguments, where keyword order never matters).
//   - MemoizeI1O1 to MemoizeI4O1, MemoizeI1O2, MemoizeI2O2, MemoizeI1E to MemoizeI3E:
//     typed, generic memoizers for common arities. Each returns the wrapped function and
//     the *Memoizer that owns its table.
//   - CachedAttribute and Lazy: per-instance values computed on first read and kept
//     until explicitly invalidated.
//
// Failures are never memoized: an error from the wrapped function is returned unchanged
// and the next call with the same signature computes again.
//
// The memo table is unbounded and nothing is evicted unless Forget or Reset is called.
// Nothing here takes a lock. Concurrent first calls with the same signature may each run
// the wrapped function; the last write wins, and the table structure stays consistent.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
package pure
