// Package levenshtein computes exact and bounded edit distances between
// two strings under configurable per-operation costs, with correct
// handling of multi-byte characters.
//
// Overview:
//
//   - Distance returns the minimum total cost of transforming one input
//     into the other with insertions, deletions and substitutions (plus
//     adjacent transpositions under the Transposing algorithm).
//   - DistanceLE answers the cheaper question "is the distance within
//     maxD?": it returns the true distance when that distance is ≤ maxD
//     and the sentinel maxD+1 otherwise, pruning the computation to the
//     diagonal band that can still satisfy the bound.
//   - Both walk a rolling-row dynamic program: the notional (m+1)x(n+1)
//     cost matrix is never materialized, only two (or three) rows are.
//
// When to use:
//
//   - Fuzzy lookups: "did you mean?" suggestions, typo-tolerant search,
//     deduplication of near-identical records.
//   - Anywhere a similarity threshold matters more than the exact value:
//     DistanceLE with a tight bound is far cheaper than Distance.
//
// Algorithms:
//
//   - Simple (default): character-aware Levenshtein distance. Multi-byte
//     characters compare as whole characters and cost one substitution,
//     never one per byte. No transposition primitive.
//   - Transposing: byte-oriented Damerau-Levenshtein distance counting
//     the swap of two adjacent bytes as a single operation. The metric
//     is bytes throughout, so a multi-byte character weighs its width;
//     pick it for single-byte data where swaps are the dominant typo.
//
// The two variants are deliberately separate metrics selected via
// WithAlgorithm; they are not reconciled into one recurrence.
//
// Limits and costs:
//
//   - Inputs are capped at MaxChars (255) characters each; longer inputs
//     return ErrInputTooLong. The cap bounds the O(m*n) work and O(m)
//     memory per call.
//   - Costs default to (1, 1, 1, 1) and may be any non-negative ints,
//     zero included. Negative costs return ErrNegativeCost.
//
// Performance and complexity:
//
//   - Time:  O(m*n) worst case; DistanceLE with a tight bound computes
//     only the surviving band per row and can exit in O(1) when the
//     length difference alone exceeds the bound.
//   - Space: O(m) for the rolling rows, plus a width table per call only
//     when multi-byte content is present.
//
// Thread safety:
//
//   - Every call is a pure function of its inputs with no shared state;
//     concurrent calls are safe without synchronization.
//
// See example_test.go for runnable examples.
package levenshtein
