// Package purefn provides small pure functions over slices, maps and strings.
//
// Every function here returns a new value and leaves its inputs untouched:
//   - StableUnique, StableUniqueFunc, StableUniqueAny: drop duplicates, keeping the
//     first occurrence of each element in input order.
//   - UnionDicts: merge maps left to right; later maps win on key collision.
//   - LongestCommonPrefix, LongestCommonPrefixFunc, LongestCommonPrefixString: the
//     shared leading elements of two sequences, typed like the first one.
//
// Example:
//
//	purefn.StableUnique([]int{1, 4, 6, 4, 6, 5, 7}) // [1 4 6 5 7]
//	purefn.LongestCommonPrefixString("abcde", "abcxy") // "abc"
package purefn
