// Package backtrack implements the recursive backtracking matching engine
// for regexlite patterns.
//
// The engine interprets the syntax.Pattern AST directly. A match attempt is
// a depth-first search over (pattern-cursor, text-cursor, capture-state)
// triples: quantifier expansion counts, group alternatives and backreference
// substitutions are the choice points, and failure at any of them is an
// ordinary negative result that backtracks to the nearest one. Capture state
// travels by value into every branch, so an abandoned branch needs no undo.
//
// Call-stack depth is bounded by pattern length times the quantifier
// expansion along the explored path. There is no protection against
// pathological patterns beyond the optional Config.MaxSteps budget; this is
// the accepted cost of a plain backtracker.
package backtrack

import (
	"sync/atomic"

	"github.com/coregx/regexlite/prefilter"
	"github.com/coregx/regexlite/syntax"
)

// Backtracker is a compiled backtracking matcher. It is immutable after
// construction except for its statistics counters and is safe for
// concurrent searches: all per-search state lives on the search stack.
type Backtracker struct {
	// stats must be the first field so the uint64 counters stay 8-byte
	// aligned for atomic access on 32-bit platforms.
	stats Stats

	pattern *syntax.Pattern
	pf      prefilter.Prefilter
	config  Config

	// anchored caches whether every top-level phrase begins with ^, in
	// which case only position 0 is ever attempted.
	anchored bool
}

// Stats tracks execution counters for performance analysis. All fields are
// updated atomically and may be read while searches are in flight.
type Stats struct {
	// Attempts counts anchored match attempts (one per scan position tried).
	Attempts uint64

	// Steps counts engine steps across all searches.
	Steps uint64

	// PrefilterHits counts candidate positions produced by the prefilter.
	PrefilterHits uint64

	// BudgetExhausted counts searches abandoned because Config.MaxSteps
	// was exceeded.
	BudgetExhausted uint64
}

// New creates a backtracker for a compiled pattern with no prefilter.
func New(pattern *syntax.Pattern, config Config) *Backtracker {
	return NewWithPrefilter(pattern, config, nil)
}

// NewWithPrefilter creates a backtracker that uses pf to skip scan positions
// that cannot start a match. The prefilter must be sound for the pattern:
// every match start must be a candidate it reports.
func NewWithPrefilter(pattern *syntax.Pattern, config Config, pf prefilter.Prefilter) *Backtracker {
	return &Backtracker{
		pattern:  pattern,
		pf:       pf,
		config:   config,
		anchored: pattern.StartAnchored(),
	}
}

// Pattern returns the compiled pattern the backtracker interprets.
func (b *Backtracker) Pattern() *syntax.Pattern {
	return b.pattern
}

// Prefilter returns the attached prefilter, or nil.
func (b *Backtracker) Prefilter() prefilter.Prefilter {
	return b.pf
}

// Stats returns a snapshot of the execution counters.
func (b *Backtracker) Stats() Stats {
	return Stats{
		Attempts:        atomic.LoadUint64(&b.stats.Attempts),
		Steps:           atomic.LoadUint64(&b.stats.Steps),
		PrefilterHits:   atomic.LoadUint64(&b.stats.PrefilterHits),
		BudgetExhausted: atomic.LoadUint64(&b.stats.BudgetExhausted),
	}
}

// ResetStats resets the execution counters to zero.
func (b *Backtracker) ResetStats() {
	atomic.StoreUint64(&b.stats.Attempts, 0)
	atomic.StoreUint64(&b.stats.Steps, 0)
	atomic.StoreUint64(&b.stats.PrefilterHits, 0)
	atomic.StoreUint64(&b.stats.BudgetExhausted, 0)
}

// IsMatch reports whether the pattern matches anywhere in haystack.
func (b *Backtracker) IsMatch(haystack []byte) bool {
	// A complete prefilter answers boolean matching alone.
	if b.pf != nil && b.pf.IsComplete() {
		hit := b.pf.Find(haystack, 0) >= 0
		if hit {
			atomic.AddUint64(&b.stats.PrefilterHits, 1)
		}
		return hit
	}
	return b.Find(haystack) != nil
}

// Find returns the first match in haystack, or nil. Phrases are tried in
// declaration order and within a phrase the scan runs left to right; the
// first success wins. The returned Match carries capture-group text except
// on the complete-prefilter bypass path (use FindSubmatch for captures).
func (b *Backtracker) Find(haystack []byte) *Match {
	// Pure-literal patterns are answered by the prefilter directly.
	if b.pf != nil && b.pf.IsComplete() {
		if mf, ok := b.pf.(prefilter.MatchFinder); ok {
			start, end := mf.FindMatch(haystack, 0)
			if start < 0 {
				return nil
			}
			atomic.AddUint64(&b.stats.PrefilterHits, 1)
			return NewMatch(start, end, haystack, nil)
		}
		if n := b.pf.LiteralLen(); n > 0 {
			start := b.pf.Find(haystack, 0)
			if start < 0 {
				return nil
			}
			atomic.AddUint64(&b.stats.PrefilterHits, 1)
			return NewMatch(start, start+n, haystack, nil)
		}
	}
	return b.FindSubmatch(haystack)
}

// FindSubmatch returns the first match with capture groups tracked, or nil.
// It always runs the full engine.
func (b *Backtracker) FindSubmatch(haystack []byte) *Match {
	s := &search{
		b:        b,
		haystack: haystack,
		limit:    b.config.MaxSteps,
	}
	m := s.find()
	s.flush()
	return m
}

// search holds the per-search mutable state. One value lives per top-level
// search call, which keeps the Backtracker itself safe for concurrent use.
type search struct {
	b        *Backtracker
	haystack []byte

	steps     int
	limit     int
	exhausted bool

	attempts      uint64
	prefilterHits uint64
}

// flush folds the local counters into the shared stats.
func (s *search) flush() {
	atomic.AddUint64(&s.b.stats.Attempts, s.attempts)
	atomic.AddUint64(&s.b.stats.Steps, uint64(s.steps))
	atomic.AddUint64(&s.b.stats.PrefilterHits, s.prefilterHits)
	if s.exhausted {
		atomic.AddUint64(&s.b.stats.BudgetExhausted, 1)
	}
}

func (s *search) find() *Match {
	for _, ph := range s.b.pattern.Phrases {
		if m := s.findPhrase(ph); m != nil {
			return m
		}
		if s.exhausted {
			return nil
		}
	}
	return nil
}

// findPhrase runs the unanchored scan for one top-level phrase: attempt a
// match at each position until one succeeds or the text is exhausted. A
// start-anchored phrase is attempted at position 0 only; a prefilter, when
// attached, jumps the scan to the next candidate position.
func (s *search) findPhrase(ph syntax.Phrase) *Match {
	steps := itemSteps(ph, nil)

	if len(ph) > 0 && ph[0].Kind == syntax.StartAnchor {
		return s.attempt(steps, 0)
	}

	for pos := 0; pos <= len(s.haystack); pos++ {
		if s.b.pf != nil && !s.b.anchored {
			cand := s.b.pf.Find(s.haystack, pos)
			if cand < 0 {
				return nil
			}
			pos = cand
			s.prefilterHits++
		}
		if m := s.attempt(steps, pos); m != nil {
			return m
		}
		if s.exhausted {
			return nil
		}
	}
	return nil
}

// attempt tries a single anchored match at pos with fresh capture buffers.
func (s *search) attempt(steps []step, pos int) *Match {
	s.attempts++
	caps := newCaptures(s.b.pattern.Groups)
	end, caps, ok := s.matchSteps(steps, pos, caps)
	if !ok {
		return nil
	}
	return NewMatch(pos, end, s.haystack, caps)
}

// step is one entry of the continuation the engine matches against: a
// pattern item, a synthetic group-end marker, or a resume point planted by
// quantifier expansion.
type step struct {
	// item is the pattern item to match; nil for marker steps.
	item *syntax.Item

	// closeGroup is the capture index deactivated when this marker is
	// reached. Valid only when item and cont are both nil.
	closeGroup int

	// cont, when set, takes over matching at this point in the
	// continuation. Quantifier expansion uses it to resume with updated
	// repeat bounds after each consumed instance.
	cont func(pos int, caps Captures) (int, Captures, bool)
}

// itemSteps converts a phrase into continuation steps followed by tail.
func itemSteps(ph syntax.Phrase, tail []step) []step {
	steps := make([]step, 0, len(ph)+len(tail))
	for i := range ph {
		steps = append(steps, step{item: &ph[i]})
	}
	return append(steps, tail...)
}

// quantBounds maps a quantifier marker to its (min, max) repeat bounds.
// max < 0 means unbounded.
func quantBounds(k syntax.ItemKind) (int, int) {
	switch k {
	case syntax.ZeroOrMore:
		return 0, -1
	case syntax.OneOrMore:
		return 1, -1
	case syntax.ZeroOrOne:
		return 0, 1
	}
	panic("backtrack: quantBounds on non-quantifier " + k.String())
}

// matchSteps is the core recursive step: match the continuation against the
// text from pos under capture state caps. An exhausted continuation is a
// success and pos is the match end. Failure is a normal return, never an
// error; it triggers backtracking at the nearest enclosing choice point.
func (s *search) matchSteps(steps []step, pos int, caps Captures) (int, Captures, bool) {
	if s.step() {
		return 0, nil, false
	}
	if len(steps) == 0 {
		return pos, caps, true
	}

	st := steps[0]
	if st.cont != nil {
		return st.cont(pos, caps)
	}
	if st.item == nil {
		// Group-end marker: close the buffer so characters matched in the
		// outer remainder are not misattributed to the group.
		return s.matchSteps(steps[1:], pos, caps.deactivate(st.closeGroup))
	}

	it := st.item
	// A quantifier marker never pairs with a following quantifier; it has
	// nothing to repeat and is matched as a zero-width no-op below.
	if len(steps) > 1 && !it.Kind.IsQuantifier() &&
		steps[1].item != nil && steps[1].item.Kind.IsQuantifier() {
		min, max := quantBounds(steps[1].item.Kind)
		return s.expand(it, min, max, steps[2:], pos, caps)
	}

	switch it.Kind {
	case syntax.StartAnchor:
		if pos == 0 {
			return s.matchSteps(steps[1:], pos, caps)
		}
		return 0, nil, false

	case syntax.EndAnchor:
		if pos == len(s.haystack) {
			return s.matchSteps(steps[1:], pos, caps)
		}
		return 0, nil, false

	case syntax.Group:
		return s.matchGroup(it, steps[1:], pos, caps)

	case syntax.Backref:
		return s.matchBackref(it, steps[1:], pos, caps)

	case syntax.ZeroOrMore, syntax.OneOrMore, syntax.ZeroOrOne:
		// A quantifier with nothing before it has nothing to repeat.
		return s.matchSteps(steps[1:], pos, caps)
	}

	if pos < len(s.haystack) && matchByte(it, s.haystack[pos]) {
		return s.matchSteps(steps[1:], pos+1, caps.appendByte(s.haystack[pos]))
	}
	return 0, nil, false
}

// step counts one engine step against the budget. It reports true when the
// search must be abandoned.
func (s *search) step() bool {
	if s.exhausted {
		return true
	}
	s.steps++
	if s.limit > 0 && s.steps > s.limit {
		s.exhausted = true
		return true
	}
	return false
}

// matchGroup tries each alternative of a capturing group in declaration
// order. Each alternative is matched with its own items followed by a
// synthetic group-end marker and the outer remainder, so the first
// alternative whose full continuation succeeds wins. When every alternative
// fails the group fails and the activated buffer is discarded with the rest
// of the branch's capture state.
func (s *search) matchGroup(it *syntax.Item, rest []step, pos int, caps Captures) (int, Captures, bool) {
	tail := append([]step{{closeGroup: it.Index}}, rest...)
	for i := range it.Alts {
		steps := itemSteps(it.Alts[i], tail)
		end, out, ok := s.matchSteps(steps, pos, caps.activate(it.Index))
		if ok {
			return end, out, true
		}
		if s.exhausted {
			break
		}
	}
	return 0, nil, false
}

// matchBackref requires the input at pos to literally repeat the text the
// referenced group captured on this path. A group that never captured reads
// as the empty string; an index beyond the pattern's group count is a match
// failure, not a compile error.
func (s *search) matchBackref(it *syntax.Item, rest []step, pos int, caps Captures) (int, Captures, bool) {
	if it.Index >= len(caps) {
		return 0, nil, false
	}
	text := caps[it.Index].Text
	if pos+len(text) > len(s.haystack) {
		return 0, nil, false
	}
	if string(s.haystack[pos:pos+len(text)]) != text {
		return 0, nil, false
	}
	return s.matchSteps(rest, pos+len(text), caps.appendText(text))
}

// expand performs greedy quantifier expansion of it with the given repeat
// bounds, then matches rest. It first tries to consume one more instance at
// pos; each consumed instance resumes expansion with decremented bounds, so
// the engine consumes as much as possible and gives instances back one at a
// time as deeper matching fails. When no further instance is consumed and
// min is satisfied, the remainder is matched from the current position.
func (s *search) expand(it *syntax.Item, min, max int, rest []step, pos int, caps Captures) (int, Captures, bool) {
	if s.step() {
		return 0, nil, false
	}

	if max != 0 {
		resume := step{cont: func(p int, c Captures) (int, Captures, bool) {
			if p == pos {
				// The instance consumed nothing; repeating it cannot make
				// progress, so stop expanding here.
				if decMin(min) == 0 {
					return s.matchSteps(rest, p, c)
				}
				return 0, nil, false
			}
			return s.expand(it, decMin(min), decMax(max), rest, p, c)
		}}
		if end, out, ok := s.matchOne(it, pos, caps, resume); ok {
			return end, out, true
		}
		if s.exhausted {
			return 0, nil, false
		}
	}

	if min == 0 {
		return s.matchSteps(rest, pos, caps)
	}
	return 0, nil, false
}

func decMin(min int) int {
	if min > 0 {
		return min - 1
	}
	return 0
}

func decMax(max int) int {
	if max < 0 {
		return -1
	}
	return max - 1
}

// matchOne consumes exactly one instance of a quantified item at pos and
// continues at resume. Group instances try their alternatives with resume as
// the continuation, so an alternative is only accepted if the rest of the
// expansion (and pattern) can succeed after it.
func (s *search) matchOne(it *syntax.Item, pos int, caps Captures, resume step) (int, Captures, bool) {
	cont := []step{resume}

	switch it.Kind {
	case syntax.Group:
		tail := []step{{closeGroup: it.Index}, resume}
		for i := range it.Alts {
			steps := itemSteps(it.Alts[i], tail)
			end, out, ok := s.matchSteps(steps, pos, caps.activate(it.Index))
			if ok {
				return end, out, true
			}
			if s.exhausted {
				return 0, nil, false
			}
		}
		return 0, nil, false

	case syntax.Backref:
		return s.matchBackref(it, cont, pos, caps)

	case syntax.StartAnchor:
		if pos == 0 {
			return s.matchSteps(cont, pos, caps)
		}
		return 0, nil, false

	case syntax.EndAnchor:
		if pos == len(s.haystack) {
			return s.matchSteps(cont, pos, caps)
		}
		return 0, nil, false
	}

	if pos < len(s.haystack) && matchByte(it, s.haystack[pos]) {
		return s.matchSteps(cont, pos+1, caps.appendByte(s.haystack[pos]))
	}
	return 0, nil, false
}
