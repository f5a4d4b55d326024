package purefn

import "unicode/utf8"

// LongestCommonPrefix returns the longest prefix shared by a and b, as a slice of a.
// The result's capacity is capped at its length, so appending to it never writes into a.
func LongestCommonPrefix[S ~[]E, E comparable](a, b S) S {
	return LongestCommonPrefixFunc(a, b, func(x, y E) bool { return x == y })
}

// LongestCommonPrefixFunc is LongestCommonPrefix with a custom equality.
func LongestCommonPrefixFunc[S1 ~[]E1, S2 ~[]E2, E1, E2 any](a S1, b S2, eq func(E1, E2) bool) S1 {
	n := 0
	for n < len(a) && n < len(b) && eq(a[n], b[n]) {
		n++
	}
	return a[:n:n]
}

// LongestCommonPrefixString returns the longest common prefix of a and b, compared rune by rune.
// A multi-byte UTF-8 sequence is never split.
func LongestCommonPrefixString[S ~string](a, b S) S {
	n := 0
	for n < len(a) && n < len(b) {
		_, size := utf8.DecodeRuneInString(string(a[n:]))
		if n+size > len(b) || a[n:n+size] != b[n:n+size] {
			break
		}
		n += size
	}
	return a[:n]
}
