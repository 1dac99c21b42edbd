package simd

import (
	"bytes"
	"strings"
	"testing"
)

// TestMemmem tests substring positions including degenerate needles
func TestMemmem(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		want     int
	}{
		{"empty needle", "abc", "", 0},
		{"empty haystack", "", "a", -1},
		{"needle longer", "ab", "abc", -1},
		{"single byte", "abcd", "c", 2},
		{"at start", "needle in hay", "needle", 0},
		{"at end", "hay with needle", "needle", 9},
		{"in middle", "aa needle aa", "needle", 3},
		{"absent", "hay hay hay", "needle", -1},
		{"exact match", "needle", "needle", 0},
		{"repeated prefix", "aaab", "aab", 1},
		{"overlapping candidates", "ababab", "abab", 0},
		{"rare byte not first", "xxx a@b xxx", "a@b", 4},
		{"second occurrence counts once", "ab ab", "ab", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Memmem([]byte(tt.haystack), []byte(tt.needle))
			if got != tt.want {
				t.Errorf("Memmem(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

// TestMemmemMatchesStdlib cross-checks against bytes.Index on sliding
// windows of a mixed corpus
func TestMemmemMatchesStdlib(t *testing.T) {
	haystack := []byte("the quick brown fox jumps over the lazy dog 0123456789 THE END")
	needles := [][]byte{
		[]byte("the"), []byte("quick"), []byte("dog 0"), []byte("END"),
		[]byte("zz"), []byte("o"), []byte(" "), []byte("89 T"),
	}

	for _, needle := range needles {
		for start := 0; start < len(haystack); start += 7 {
			window := haystack[start:]
			got := Memmem(window, needle)
			want := bytes.Index(window, needle)
			if got != want {
				t.Fatalf("Memmem(%q, %q) = %d, stdlib %d", window, needle, got, want)
			}
		}
	}
}

// TestMemmemLongHaystack tests a needle far past the first word chunks
func TestMemmemLongHaystack(t *testing.T) {
	haystack := []byte(strings.Repeat("ab", 5000) + "needle")
	if got := Memmem(haystack, []byte("needle")); got != 10000 {
		t.Errorf("Memmem() = %d, want 10000", got)
	}
}

// TestSelectRareByte tests that the heuristic avoids common text bytes
func TestSelectRareByte(t *testing.T) {
	b, idx := selectRareByte([]byte("a@b"))
	if b != '@' || idx != 1 {
		t.Errorf("selectRareByte(\"a@b\") = (%q, %d), want ('@', 1)", b, idx)
	}

	b, idx = selectRareByte([]byte("hello World"))
	if b != 'W' {
		t.Errorf("selectRareByte(\"hello World\") = (%q, %d), want 'W'", b, idx)
	}

	// All same rank: the first byte wins.
	b, idx = selectRareByte([]byte("abc"))
	if b != 'a' || idx != 0 {
		t.Errorf("selectRareByte(\"abc\") = (%q, %d), want ('a', 0)", b, idx)
	}
}
