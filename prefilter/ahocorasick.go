package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/regexlite/literal"
)

// ahoCorasickPrefilter scans for any of several literals with an
// Aho-Corasick automaton, typically the alternative prefixes of a leading
// group like (cat|dog|cow). The automaton gives O(n) multi-literal search
// regardless of how many alternatives the group has.
//
// The automaton reports the earliest-ending occurrence, whose start is not
// necessarily the leftmost when literal lengths differ ("abcd" starting at
// 0 ends later than an interior "bc" starting at 1). Find therefore
// reports a lower bound on occurrence starts rather than the reported
// occurrence's own start, and completeness requires equal-length literals.
type ahoCorasickPrefilter struct {
	auto      *ahocorasick.Automaton
	complete  bool
	maxLen    int
	heapBytes int
}

// newAhoCorasickPrefilter builds the automaton from the literal sequence.
// Returns nil if the automaton cannot be built, in which case the scan
// falls back to trying every position.
func newAhoCorasickPrefilter(lits *literal.Seq) Prefilter {
	builder := ahocorasick.NewBuilder()
	heap := 0
	maxLen := 0
	minLen := lits.Get(0).Len()
	for i := 0; i < lits.Len(); i++ {
		lit := lits.Get(i)
		builder.AddPattern(lit.Bytes)
		heap += len(lit.Bytes)
		if lit.Len() > maxLen {
			maxLen = lit.Len()
		}
		if lit.Len() < minLen {
			minLen = lit.Len()
		}
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickPrefilter{
		auto: auto,
		// With equal lengths the earliest-ending occurrence is also the
		// leftmost-starting one and its bounds are what the engine's scan
		// would report. Variable-length occurrences can disagree with
		// first-alternative-wins order, so those candidates are verified.
		complete:  lits.AllComplete() && minLen == maxLen,
		maxLen:    maxLen,
		heapBytes: heap,
	}
}

// Find returns a floor on candidate starts. Every occurrence from start
// onward ends at or after the earliest-ending occurrence's end, so no
// literal can begin before that end minus the longest literal length.
func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	cand := m.End - p.maxLen
	if cand < start {
		cand = start
	}
	return cand
}

// FindMatch implements MatchFinder so a complete prefilter can report the
// matched range without engine verification. The bypass only runs when
// IsComplete holds, which guarantees equal-length literals and makes the
// reported occurrence the leftmost one.
func (p *ahoCorasickPrefilter) FindMatch(haystack []byte, start int) (int, int) {
	if start < 0 || start >= len(haystack) {
		return -1, -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1, -1
	}
	return m.Start, m.End
}

func (p *ahoCorasickPrefilter) IsComplete() bool {
	return p.complete
}

func (p *ahoCorasickPrefilter) LiteralLen() int {
	// Complete matches go through FindMatch.
	return 0
}

func (p *ahoCorasickPrefilter) HeapBytes() int {
	return p.heapBytes
}
