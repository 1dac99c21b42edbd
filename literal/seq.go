// Package literal represents literal byte sequences extracted from compiled
// patterns. The extracted literals feed prefilter construction: positions
// where none of them occur cannot start a match, so the unanchored scan can
// skip those positions without running the engine.
package literal

import "bytes"

// Literal is one byte sequence that must appear at a match start.
// Complete marks a literal that covers an entire match by itself, in which
// case finding it is finding a match and the engine can be bypassed.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// NewLiteral creates a Literal from b and the completeness flag. The bytes
// are copied so the literal does not alias the caller's buffer.
func NewLiteral(b []byte, complete bool) Literal {
	c := make([]byte, len(b))
	copy(c, b)
	return Literal{Bytes: c, Complete: complete}
}

// Len returns the literal length in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// Seq is a set of alternative literals, one of which must be present at a
// match start (e.g. the alternative prefixes of a leading group).
type Seq struct {
	lits []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{lits: lits}
}

// Push appends a literal to the sequence.
func (s *Seq) Push(l Literal) {
	s.lits = append(s.lits, l)
}

// Len returns the number of literals. A nil sequence is empty.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.lits)
}

// IsEmpty reports whether the sequence holds no literals.
func (s *Seq) IsEmpty() bool {
	return s.Len() == 0
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) Literal {
	return s.lits[i]
}

// MinLen returns the length of the shortest literal, or 0 for an empty
// sequence.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	m := len(s.lits[0].Bytes)
	for _, l := range s.lits[1:] {
		if len(l.Bytes) < m {
			m = len(l.Bytes)
		}
	}
	return m
}

// AllComplete reports whether the sequence is non-empty and every literal in
// it is complete.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, l := range s.lits {
		if !l.Complete {
			return false
		}
	}
	return true
}

// Minimize removes literals that are redundant for prefix scanning: exact
// duplicates, and literals that have another literal of the sequence as a
// proper prefix (any position matching "foobar" already matches "foo").
// A literal survives prefix subsumption only when it is complete and the
// shorter literal is not, since dropping it would lose completeness.
//
// When prefix subsumption does drop a complete literal, the survivors are
// demoted to incomplete: which of the overlapping literals a match reports
// depends on alternative order, so candidates must be verified by the
// engine. The relative order of surviving literals is preserved.
func (s *Seq) Minimize() {
	if s.Len() <= 1 {
		return
	}

	droppedComplete := false
	out := make([]Literal, 0, len(s.lits))
	for i, l := range s.lits {
		redundant := false
		for j, k := range s.lits {
			if i == j {
				continue
			}
			if len(k.Bytes) > len(l.Bytes) || !bytes.Equal(k.Bytes, l.Bytes[:len(k.Bytes)]) {
				continue
			}
			if len(k.Bytes) == len(l.Bytes) {
				// Exact duplicate: keep the first occurrence.
				if j < i {
					redundant = true
					break
				}
				continue
			}
			if !l.Complete || k.Complete {
				redundant = true
				droppedComplete = droppedComplete || l.Complete
				break
			}
		}
		if !redundant {
			out = append(out, l)
		}
	}
	if droppedComplete {
		for i := range out {
			out[i].Complete = false
		}
	}
	s.lits = out
}
