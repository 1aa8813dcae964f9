package levenshtein

import (
	"reflect"
	"testing"
)

// TestUTF8CharLen checks the default width function on single characters of
// every UTF-8 encoding length, including an invalid lead byte.
func TestUTF8CharLen(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"a", 1},
		{"é", 2},
		{"€", 3},
		{"語", 3},
		{"\xff", 1},
	}
	for _, tc := range cases {
		if got := utf8CharLen(tc.in); got != tc.want {
			t.Errorf("utf8CharLen(%q) = %d; want %d", tc.in, got, tc.want)
		}
	}
}

// TestCharCount walks mixed-width strings and verifies the character tally,
// treating each invalid byte as a one-byte character.
func TestCharCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"naïve", 5},
		{"€€€", 3},
		{"a€b", 3},
		{"\xff\xfe", 2},
	}
	for _, tc := range cases {
		if got := charCount(tc.in, utf8CharLen); got != tc.want {
			t.Errorf("charCount(%q) = %d; want %d", tc.in, got, tc.want)
		}
	}
}

// TestCharWidths verifies the per-character width table, including the
// trailing zero entry the scanning loops rely on.
func TestCharWidths(t *testing.T) {
	got := charWidths("a€b", 3, utf8CharLen)
	want := []int{1, 3, 1, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("charWidths(%q) = %v; want %v", "a€b", got, want)
	}

	got = charWidths("", 0, utf8CharLen)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("charWidths(%q) = %v; want [0]", "", got)
	}
}

// TestNextWidth_Clamps pins the guard rails around a custom width function:
// a non-positive width advances by one byte, and a width past the end of the
// string is cut to the remaining bytes.
func TestNextWidth_Clamps(t *testing.T) {
	zero := func(string) int { return 0 }
	if got := nextWidth("abc", 0, zero); got != 1 {
		t.Errorf("nextWidth with zero-width fn = %d; want 1", got)
	}

	huge := func(string) int { return 100 }
	if got := nextWidth("abc", 1, huge); got != 2 {
		t.Errorf("nextWidth with oversized fn = %d; want 2", got)
	}

	if got := nextWidth("a€b", 1, utf8CharLen); got != 3 {
		t.Errorf("nextWidth(%q, 1) = %d; want 3", "a€b", got)
	}
}
