package simd

import (
	"bytes"
	"strings"
	"testing"
)

// TestMemchr tests needle positions around word boundaries
func TestMemchr(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   byte
		want     int
	}{
		{"empty", "", 'x', -1},
		{"single hit", "x", 'x', 0},
		{"single miss", "a", 'x', -1},
		{"short input", "abcx", 'x', 3},
		{"first of word", "xabcdefg", 'x', 0},
		{"last of word", "abcdefgx", 'x', 7},
		{"second word", "abcdefghix", 'x', 9},
		{"tail after words", "abcdefgh" + "ijklmnop" + "qx", 'x', 17},
		{"miss long", strings.Repeat("a", 100), 'x', -1},
		{"first of many", "aaxaxax", 'x', 2},
		{"zero byte", "abc\x00def", 0, 3},
		{"high byte", "abc\xffdef", 0xff, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Memchr([]byte(tt.haystack), tt.needle)
			if got != tt.want {
				t.Errorf("Memchr(%q, %q) = %d, want %d", tt.haystack, tt.needle, got, tt.want)
			}
		})
	}
}

// TestMemchrMatchesStdlib cross-checks against bytes.IndexByte on every
// alignment and length up to several words
func TestMemchrMatchesStdlib(t *testing.T) {
	base := []byte("abcdefghijklmnopqrstuvwxyz0123456789abcdefghijklmnop")
	for start := 0; start < 8; start++ {
		for end := start; end <= len(base); end++ {
			haystack := base[start:end]
			for _, needle := range []byte{'a', 'm', 'z', '5', '!', 0} {
				got := Memchr(haystack, needle)
				want := bytes.IndexByte(haystack, needle)
				if got != want {
					t.Fatalf("Memchr(%q, %q) = %d, stdlib %d", haystack, needle, got, want)
				}
			}
		}
	}
}

// TestZeroByteMask tests the SWAR flagging primitive directly
func TestZeroByteMask(t *testing.T) {
	tests := []struct {
		v    uint64
		want uint64
	}{
		{0x0000000000000000, 0x8080808080808080},
		{0xffffffffffffffff, 0},
		{0x1111111111111111, 0},
		{0xff00ff00ff00ff00, 0x0080008000800080},
		{0x0100000000000000, 0x0080808080808080},
		{0x0000000000000001, 0x8080808080808000},
		{0x0000ff0000000000, 0x8080008080808080},
	}

	for _, tt := range tests {
		if got := zeroByteMask(tt.v); got != tt.want {
			t.Errorf("zeroByteMask(%#016x) = %#016x, want %#016x", tt.v, got, tt.want)
		}
	}
}

// TestZeroByteMaskNoCarry tests that a 0x01 byte next to a 0xff byte does
// not leak a flag across byte lanes
func TestZeroByteMaskNoCarry(t *testing.T) {
	// Values built to stress lane boundaries: the borrow-based formula
	// flags false positives on some of these.
	values := []uint64{
		0x01ff01ff01ff01ff,
		0xff01ff01ff01ff01,
		0x0101010101010101,
		0x8000800080008000,
	}
	for _, v := range values {
		if got := zeroByteMask(v); got != 0 {
			t.Errorf("zeroByteMask(%#016x) = %#016x, want 0 (no zero bytes)", v, got)
		}
	}
}
