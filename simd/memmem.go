package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack, or
// -1 if needle is not present. It is equivalent to bytes.Index but drives
// the scan with Memchr on a rare byte of the needle, which keeps candidate
// verification infrequent on realistic inputs.
func Memmem(haystack, needle []byte) int {
	needleLen := len(needle)
	haystackLen := len(haystack)

	if needleLen == 0 {
		return 0
	}
	if haystackLen == 0 || needleLen > haystackLen {
		return -1
	}
	if needleLen == 1 {
		return Memchr(haystack, needle[0])
	}

	rare, rareIdx := selectRareByte(needle)

	// Every occurrence of the needle contains the rare byte at offset
	// rareIdx, so scanning rare-byte occurrences in order enumerates all
	// candidate starts left to right.
	searchStart := 0
	for searchStart < haystackLen {
		cand := Memchr(haystack[searchStart:], rare)
		if cand < 0 {
			return -1
		}
		cand += searchStart

		start := cand - rareIdx
		if start >= 0 && start+needleLen <= haystackLen &&
			bytes.Equal(haystack[start:start+needleLen], needle) {
			return start
		}

		searchStart = cand + 1
	}
	return -1
}

// selectRareByte picks the needle byte least likely to occur in typical
// text, so Memchr yields few false candidates. Returns the byte and its
// offset in the needle.
func selectRareByte(needle []byte) (byte, int) {
	best := needle[0]
	bestIdx := 0
	for i := 1; i < len(needle); i++ {
		if byteRank(needle[i]) < byteRank(best) {
			best = needle[i]
			bestIdx = i
		}
	}
	return best, bestIdx
}

// byteRank is a coarse frequency rank for bytes in typical text; lower is
// rarer. It replaces a full frequency table with category buckets, which is
// enough to steer the scan away from spaces and lowercase letters.
func byteRank(b byte) int {
	switch {
	case b == ' ':
		return 255
	case b >= 'a' && b <= 'z':
		return 200
	case b >= 'A' && b <= 'Z':
		return 120
	case b >= '0' && b <= '9':
		return 100
	case b >= 0x80:
		return 10
	case b < 0x20:
		return 20
	default:
		return 60
	}
}
