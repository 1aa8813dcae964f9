// Package fuzzystrmatch is a small toolkit for fuzzy string comparison,
// built around bounded and unbounded edit distances in the style of the
// PostgreSQL fuzzystrmatch extension.
//
// 🚀 What is fuzzystrmatch?
//
//	A focused, allocation-light library that brings together:
//		• Character-aware Levenshtein distance with four tunable costs
//		  (insertion, deletion, substitution, transposition)
//		• A bounded variant that prunes the matrix to a diagonal band and
//		  answers maxD+1 as soon as the threshold is unreachable
//		• A transposition-aware variant that counts adjacent swaps as a
//		  single edit
//		• Full UTF-8 handling with a pluggable character-width function
//		• A shared 255-character input ceiling matching the PostgreSQL
//		  extension
//
// ✨ Why choose fuzzystrmatch?
//
//   - Predictable memory: two rolling rows for the main algorithm, three
//     for the transposing one, a single allocation each
//   - Threshold queries stay cheap: length gaps short-circuit in O(1) and
//     tight bounds collapse the band after a handful of rows
//   - Pure functions, no shared state, safe for concurrent use
//
// Everything is organized under two packages:
//
//	levenshtein/    - the distance engine: Distance, DistanceLE, options
//	cmd/fuzzymatch/ - a command-line front end for ad-hoc comparisons and
//	                  wordlist ranking
//
// Quick example:
//
//	d, err := levenshtein.Distance("kitten", "sitting")
//	// d == 3
//
//	d, err = levenshtein.DistanceLE("extensive", "exhaustive", 2)
//	// d == 3, the threshold was exceeded
//
// See the levenshtein package documentation for the full API.
package fuzzystrmatch
