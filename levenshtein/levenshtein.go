package levenshtein

import "fmt"

// Distance computes the edit distance between s and t.
//
// By default this is the character-aware Levenshtein distance under unit
// costs; WithCosts, WithAlgorithm and WithCharLen adjust the cost vector,
// the recurrence and the character boundaries. The result is the minimum
// total cost of transforming s into t.
//
// Returns:
//
//   - the distance as a non-negative int, or
//   - ErrInputTooLong if either input exceeds MaxChars characters,
//   - ErrNegativeCost / ErrUnknownAlgorithm for invalid options.
//
// Complexity: O(m*n) time and O(m) extra memory for m and n input
// characters (bytes under Transposing).
func Distance(s, t string, opts ...Option) (int, error) {
	// 1) Build and validate Options.
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	// 2) Dispatch on the recurrence; a negative bound disables banding.
	switch o.Algorithm {
	case Simple:
		return levDistance(s, t, &o, -1)
	case Transposing:
		return transposingDistance(s, t, &o, -1)
	default:
		// Unreachable through the option constructors, kept as a guard.
		return 0, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, o.Algorithm)
	}
}

// DistanceLE computes the edit distance between s and t subject to the
// bound maxD: it returns the true distance whenever that distance is at
// most maxD, and exactly maxD+1 otherwise. A negative maxD behaves like
// Distance.
//
// The maxD+1 sentinel is indistinguishable from a genuine distance that
// happens to equal maxD+1. Callers asking "is the distance within the
// bound?" compare the result against maxD and need nothing more; callers
// needing the exact value above the bound must use Distance.
//
// A tight bound pays off: rows outside the reachable diagonal band are
// skipped, impossible bounds are rejected in O(1), and the call returns
// the sentinel the moment the band collapses.
func DistanceLE(s, t string, maxD int, opts ...Option) (int, error) {
	// 1) Build and validate Options.
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	// 2) Run the selected recurrence with the bound applied.
	var (
		d   int
		err error
	)
	switch o.Algorithm {
	case Simple:
		d, err = levDistance(s, t, &o, maxD)
	case Transposing:
		d, err = transposingDistance(s, t, &o, maxD)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, o.Algorithm)
	}
	if err != nil {
		return 0, err
	}

	// 3) The recurrences may surface a raw value past the bound (e.g. the
	//    degenerate empty-input products); every such answer is pinned to
	//    the maxD+1 sentinel.
	if maxD >= 0 && d > maxD {
		d = maxD + 1
	}

	return d, nil
}

// levDistance is the character-aware rolling-row recurrence behind the
// Simple algorithm, shared by the exact and bounded modes.
//
// Conceptually cell (i, j) of an (m+1)x(n+1) matrix holds the minimum
// cost of transforming the first i characters of s into the first j
// characters of t; only the previous and current rows are materialized
// and swapped by reference each iteration. The answer is the last cell
// of the final row.
//
// With maxD >= 0 an answer is only owed when it is at most maxD, which
// admits a band optimization: from any cell there is a minimum residual
// cost to reach the last column of the final row, zero on the diagonal
// where the untransformed remainders are equally long and growing with
// the distance from it. Columns whose cell value plus residual already
// exceed maxD can never influence an in-bound answer, so each row only
// computes the surviving band [startColumn, stopColumn). The function
// may then return early with maxD+1; it may also return a raw value
// greater than maxD (callers clamp).
func levDistance(s, t string, o *Options, maxD int) (int, error) {
	insC, delC, subC := o.Costs.Ins, o.Costs.Del, o.Costs.Sub

	// 1) Measure both inputs in bytes and in characters.
	sBytes, tBytes := len(s), len(t)
	m := charCount(s, o.CharLen)
	n := charCount(t, o.CharLen)

	// 2) An empty s becomes t with n insertions; a non-empty s becomes an
	//    empty t with m deletions.
	if m == 0 {
		return n * insC, nil
	}
	if n == 0 {
		return m * delC, nil
	}

	// 3) Cap CPU and RAM usage (O(m) memory, O(m*n) time).
	if m > MaxChars {
		return 0, fmt.Errorf("%w: first input is %d characters, limit is %d", ErrInputTooLong, m, MaxChars)
	}
	if n > MaxChars {
		return 0, fmt.Errorf("%w: second input is %d characters, limit is %d", ErrInputTooLong, n, MaxChars)
	}

	// Active column band; the unbounded mode keeps it covering every column.
	startColumn, stopColumn := 0, m+1

	// 4) With a bound, decide between three regimes: impossibly tight
	//    (answer is maxD+1 without any DP), loose enough to never bind
	//    (drop the bound and run unbounded), or genuinely narrowing.
	if maxD >= 0 {
		netInserts := n - m

		// Cheapest conceivable answer given only the length difference.
		minTheoD := minResidual(netInserts, insC, delC)
		if minTheoD > maxD {
			return maxD + 1, nil
		}

		// A substitution never needs to cost more than a delete plus an
		// insert; the clamped value keeps the estimate below honest.
		if insC+delC < subC {
			subC = insC + delC
		}

		// Costliest reasonable answer: fix the length gap, then
		// substitute every remaining character.
		shorter := m
		if n < m {
			shorter = n
		}
		maxTheoD := minTheoD + subC*shorter
		if maxD >= maxTheoD {
			maxD = -1
		} else if insC+delC > 0 {
			// How far right the first row must reach: the theoretical
			// minimum already pays for the length gap, and every column
			// past the best-case start burns insC+delC more of the slack.
			slackD := maxD - minTheoD
			bestColumn := 0
			if netInserts < 0 {
				bestColumn = -netInserts
			}
			stopColumn = bestColumn + slackD/(insC+delC) + 1
			if stopColumn > m {
				stopColumn = m + 1
			}
		}
	}

	// 5) Cache the character widths of s up front instead of re-decoding
	//    on every row. When both inputs are pure single-byte the table is
	//    skipped and the inner loop takes the byte fast path; if only one
	//    input is multi-byte the table is still built so the fast path
	//    never has to reason about a missing table.
	var sWidths []int
	if m != sBytes || n != tBytes {
		sWidths = charWidths(s, m, o.CharLen)
	}
	tMulti := n != tBytes

	// One more cell for the initialization column and row.
	m++
	n++

	// Previous and current rows of the notional matrix, one allocation.
	rows := make([]int, 2*m)
	prev, curr := rows[:m], rows[m:]

	// 6) Transforming the first i characters of s into zero characters of
	//    t takes i deletions.
	for i := startColumn; i < stopColumn; i++ {
		prev[i] = i * delC
	}

	// 7) Walk the rows of the notional matrix. sOff and tOff are byte
	//    cursors kept in lockstep with the logical columns and rows.
	sOff, tOff := 0, 0
	var i int
	for j := 1; j < n; j++ {
		tw := 1
		if tMulti {
			tw = nextWidth(t, tOff, o.CharLen)
		}

		// In the best case values percolate down the diagonal unchanged,
		// so the stop column moves right once per row. The inner loop
		// reads prev[stopColumn], so the newly exposed cell is seeded
		// with a value that can never win a min.
		if stopColumn < m {
			prev[stopColumn] = maxD + 1
			stopColumn++
		}

		// curr[0] transforms zero characters of s into the first j
		// characters of t: j insertions. Once the band has moved off
		// column zero the cell is no longer part of any answer.
		if startColumn == 0 {
			curr[0] = j * insC
			i = 1
		} else {
			i = startColumn
		}

		// 8) The inner loop is the hot path, so the all-single-byte case
		//    runs on plain byte comparisons. For multi-byte content the
		//    last bytes are compared first (that alone rules out most
		//    mismatches), then the widths, then the remaining bytes.
		if sWidths != nil {
			xOff := sOff
			for ; i < stopColumn; i++ {
				xw := sWidths[i-1]
				sub := prev[i-1]
				if s[xOff+xw-1] != t[tOff+tw-1] || xw != tw ||
					(xw > 1 && s[xOff:xOff+xw] != t[tOff:tOff+tw]) {
					sub += subC
				}
				curr[i] = min3(prev[i]+insC, curr[i-1]+delC, sub)
				xOff += xw
			}
		} else {
			xOff := sOff
			for ; i < stopColumn; i++ {
				sub := prev[i-1]
				if s[xOff] != t[tOff] {
					sub += subC
				}
				curr[i] = min3(prev[i]+insC, curr[i-1]+delC, sub)
				xOff++
			}
		}

		// Swap the rows by reference and step to the next row character.
		prev, curr = curr, prev
		tOff += tw

		// 9) Re-anchor the band around the zero point, the column of this
		//    row where the untransformed remainders are equally long.
		if maxD >= 0 {
			zp := j - (n - m)

			// Slide the stop column left while its boundary cell can no
			// longer come back under the bound.
			for stopColumn > 0 {
				ii := stopColumn - 1
				if prev[ii]+minResidual(ii-zp, insC, delC) <= maxD {
					break
				}
				stopColumn--
			}

			// Slide the start column right under the mirrored test. A
			// dropped column is never recomputed, so both of its cells
			// are poisoned; a stale value must not win a later min after
			// the stop column grows back over it.
			for startColumn < stopColumn {
				if prev[startColumn]+minResidual(startColumn-zp, insC, delC) <= maxD {
					break
				}
				prev[startColumn] = maxD + 1
				curr[startColumn] = maxD + 1
				if startColumn != 0 {
					if sWidths != nil {
						sOff += sWidths[startColumn-1]
					} else {
						sOff++
					}
				}
				startColumn++
			}

			// The band collapsed: the bound is provably unreachable.
			if startColumn >= stopColumn {
				return maxD + 1, nil
			}
		}
	}

	// 10) The final swap moved the answer into prev.
	return prev[m-1], nil
}

// minResidual is the cheapest completion cost for a cell sitting net
// columns off the zero point: a positive net forces net further
// insertions, a negative net forces -net further deletions.
func minResidual(net, insC, delC int) int {
	if net < 0 {
		return -net * delC
	}

	return net * insC
}

// min3 returns the minimum of three int values.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
