package levenshtein

import "unicode/utf8"

// utf8CharLen is the default CharLenFunc. Invalid sequences decode as a
// one-byte character, which keeps the walk moving; validating the
// encoding remains the caller's responsibility.
func utf8CharLen(s string) int {
	_, size := utf8.DecodeRuneInString(s)

	return size
}

// nextWidth reports the width of the character starting at byte offset
// off of s, clamped to [1, len(s)-off]. The clamp guarantees forward
// progress and in-bounds cursors even under an inconsistent
// CharLenFunc; the UTF-8 default never triggers it.
func nextWidth(s string, off int, fn CharLenFunc) int {
	w := fn(s[off:])
	if w < 1 {
		w = 1
	}
	if rest := len(s) - off; w > rest {
		w = rest
	}

	return w
}

// charCount reports the number of characters in s under fn.
func charCount(s string, fn CharLenFunc) int {
	count := 0
	for off := 0; off < len(s); off += nextWidth(s, off, fn) {
		count++
	}

	return count
}

// charWidths builds the per-character byte-width table of s, sized
// count+1 with a trailing zero so walkers advancing by width can probe
// one position past the end.
//
// The table is only worth building when multi-byte content is present;
// for all-single-byte inputs callers skip it entirely and byte offsets
// equal character positions.
func charWidths(s string, count int, fn CharLenFunc) []int {
	widths := make([]int, count+1)
	off := 0
	for i := 0; i < count; i++ {
		widths[i] = nextWidth(s, off, fn)
		off += widths[i]
	}

	return widths
}
