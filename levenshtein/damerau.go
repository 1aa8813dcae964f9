package levenshtein

import "fmt"

// transposingDistance is the byte-oriented three-row recurrence behind
// the Transposing algorithm: Damerau-Levenshtein distance where the swap
// of two adjacent bytes counts as one operation.
//
// Cell (i, j) holds the minimum cost of transforming the first i+1 bytes
// of s into the first j+1 bytes of t. A swap candidate reaches back two
// positions in both inputs, so three rows stay materialized: row2 is
// being filled, row1 is the previous row and row0 the one before that.
// The candidate order is substitution, swap, deletion, insertion.
//
// The metric is bytes end to end. A multi-byte character weighs its
// width in every operation, including the degenerate empty-input
// products; Simple is the character-aware variant. The MaxChars ceiling
// still counts characters, keeping the interface guard uniform.
//
// With maxD >= 0 the length difference alone can prove the bound
// unreachable in O(1); past that the full recurrence runs and the caller
// clamps out-of-bound answers. This variant carries no band.
func transposingDistance(s, t string, o *Options, maxD int) (int, error) {
	insC, delC, subC, transC := o.Costs.Ins, o.Costs.Del, o.Costs.Sub, o.Costs.Trans

	// 1) Cap CPU and RAM usage; the ceiling counts characters even though
	//    the recurrence walks bytes.
	if c := charCount(s, o.CharLen); c > MaxChars {
		return 0, fmt.Errorf("%w: first input is %d characters, limit is %d", ErrInputTooLong, c, MaxChars)
	}
	if c := charCount(t, o.CharLen); c > MaxChars {
		return 0, fmt.Errorf("%w: second input is %d characters, limit is %d", ErrInputTooLong, c, MaxChars)
	}

	len1, len2 := len(s), len(t)

	// 2) Bounded mode pre-check: re-aligning the lengths alone already
	//    costs this much, so an impossibly tight bound exits in O(1).
	if maxD >= 0 && minResidual(len2-len1, insC, delC) > maxD {
		return maxD + 1, nil
	}

	// 3) Three rolling rows over the bytes of t.
	row0 := make([]int, len2+1)
	row1 := make([]int, len2+1)
	row2 := make([]int, len2+1)

	// Transforming zero bytes of s into the first j bytes of t takes j
	// insertions.
	for j := 0; j <= len2; j++ {
		row1[j] = j * insC
	}

	// 4) Fill the matrix row by row; i indexes bytes of s, j bytes of t.
	for i := 0; i < len1; i++ {
		// Transforming the first i+1 bytes of s into zero bytes of t
		// takes i+1 deletions.
		row2[0] = (i + 1) * delC
		for j := 0; j < len2; j++ {
			// Substitution (free when the bytes already match).
			best := row1[j]
			if s[i] != t[j] {
				best += subC
			}
			// Swap of the adjacent pair ending here, reaching back two
			// positions in both inputs.
			if i > 0 && j > 0 && s[i-1] == t[j] && s[i] == t[j-1] && row0[j-1]+transC < best {
				best = row0[j-1] + transC
			}
			// Deletion.
			if v := row1[j+1] + delC; v < best {
				best = v
			}
			// Insertion.
			if v := row2[j] + insC; v < best {
				best = v
			}
			row2[j+1] = best
		}

		// Rotate the rows; row2 becomes scratch again.
		row0, row1, row2 = row1, row2, row0
	}

	// 5) The final rotation moved the answer into row1.
	return row1[len2], nil
}
