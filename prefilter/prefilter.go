// Package prefilter provides fast candidate filtering for the unanchored
// scan using literal prefixes extracted from compiled patterns.
//
// A prefilter quickly rejects positions in the haystack that cannot start a
// match, so the backtracking engine only runs where one of the mandatory
// prefix literals actually occurs. Selection is automatic:
//   - single byte literal        -> memchr (SWAR byte search)
//   - single substring literal   -> memmem (rare-byte + verify)
//   - multiple literals          -> Aho-Corasick automaton
package prefilter

import (
	"github.com/coregx/regexlite/literal"
	"github.com/coregx/regexlite/simd"
)

// Prefilter finds candidate match positions before the engine runs.
//
// A candidate is a position where one of the prefilter literals occurs. It
// does not guarantee a match; the caller verifies with the engine unless
// IsComplete reports that a candidate is already a full match.
type Prefilter interface {
	// Find returns the smallest position at or after start where a match
	// could begin, or -1 when no match can start anywhere at or after
	// start. Single-literal implementations return the exact occurrence
	// index; multi-literal implementations may return a conservative lower
	// bound on the next occurrence start. The result never skips a real
	// match start.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is by itself a full match,
	// i.e. the literals cover the entire pattern.
	IsComplete() bool

	// LiteralLen returns the match length for a complete prefilter with a
	// single fixed-length literal, and 0 otherwise. Complete prefilters
	// with variable-length literals implement MatchFinder instead.
	LiteralLen() int

	// HeapBytes returns the heap memory held by the prefilter, for
	// profiling and budgeting.
	HeapBytes() int
}

// MatchFinder is implemented by prefilters that can report the matched
// range directly, which complete multi-literal prefilters need because the
// matched literal's length varies.
type MatchFinder interface {
	// FindMatch returns the bounds of the first candidate at or after
	// start, or (-1, -1).
	FindMatch(haystack []byte, start int) (int, int)
}

// Build constructs the best prefilter for the extracted prefixes, or nil
// when no effective prefilter exists.
func Build(prefixes *literal.Seq) Prefilter {
	if prefixes.IsEmpty() || prefixes.MinLen() == 0 {
		return nil
	}

	if prefixes.Len() == 1 {
		lit := prefixes.Get(0)
		if len(lit.Bytes) == 1 {
			return &memchrPrefilter{needle: lit.Bytes[0], complete: lit.Complete}
		}
		return newMemmemPrefilter(lit)
	}

	return newAhoCorasickPrefilter(prefixes)
}

// memchrPrefilter scans for a single byte literal.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := simd.Memchr(haystack[start:], p.needle)
	if idx < 0 {
		return -1
	}
	return start + idx
}

func (p *memchrPrefilter) IsComplete() bool {
	return p.complete
}

func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

func (p *memchrPrefilter) HeapBytes() int {
	return 0
}

// memmemPrefilter scans for a single substring literal.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func newMemmemPrefilter(lit literal.Literal) Prefilter {
	needle := make([]byte, len(lit.Bytes))
	copy(needle, lit.Bytes)
	return &memmemPrefilter{needle: needle, complete: lit.Complete}
}

func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := simd.Memmem(haystack[start:], p.needle)
	if idx < 0 {
		return -1
	}
	return start + idx
}

func (p *memmemPrefilter) IsComplete() bool {
	return p.complete
}

func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

func (p *memmemPrefilter) HeapBytes() int {
	return len(p.needle)
}
