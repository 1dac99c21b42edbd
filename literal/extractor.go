package literal

import "github.com/coregx/regexlite/syntax"

// ExtractPrefixes returns the literal prefixes a match of p must start with,
// or nil when no useful set exists.
//
// The extraction is conservative: it only reports literals that are
// mandatory at the match start, so a prefilter built from the result never
// skips a real match. Sources, in order of preference:
//
//   - a leading run of unquantified literal items (a '+'-quantified literal
//     in leading position still contributes its mandatory first byte);
//   - a leading group whose alternatives each begin with such a run, one
//     prefix per alternative.
//
// A start-anchored pattern yields nil: its scan only ever tries position 0,
// so there is nothing to accelerate. Completeness is reported when a literal
// by itself covers the entire pattern, which lets the caller answer matches
// without running the engine.
func ExtractPrefixes(p *syntax.Pattern) *Seq {
	if p == nil || len(p.Phrases) == 0 || p.StartAnchored() {
		return nil
	}

	seq := NewSeq()
	for _, ph := range p.Phrases {
		if !extractPhrase(ph, seq) {
			return nil
		}
	}
	seq.Minimize()
	if seq.IsEmpty() {
		return nil
	}
	return seq
}

// extractPhrase appends the mandatory prefixes of one top-level phrase to
// seq. It reports false when the phrase has no extractable prefix, which
// voids the whole sequence: a prefilter must cover every phrase.
func extractPhrase(ph syntax.Phrase, seq *Seq) bool {
	if len(ph) == 0 || ph[0].Kind == syntax.StartAnchor {
		return false
	}

	if run, complete, ok := literalRun(ph); ok {
		seq.Push(NewLiteral(run, complete))
		return true
	}

	// A leading group contributes one prefix per alternative. A '+'
	// quantifier keeps the prefixes mandatory (the first instance starts at
	// the match start); '*' and '?' make the group optional and kill the
	// extraction.
	it := ph[0]
	if it.Kind != syntax.Group {
		return false
	}
	groupOnly := len(ph) == 1
	if len(ph) > 1 && ph[1].Kind.IsQuantifier() {
		if ph[1].Kind != syntax.OneOrMore {
			return false
		}
		groupOnly = false
	}

	for _, alt := range it.Alts {
		run, altComplete, ok := literalRun(alt)
		if !ok {
			return false
		}
		seq.Push(NewLiteral(run, altComplete && groupOnly))
	}
	return true
}

// literalRun collects the leading run of literal characters of a phrase.
// The run stops before any quantified item; a '+'-quantified literal in
// leading position contributes its first, mandatory byte. complete reports
// that the run covers the whole phrase.
func literalRun(ph syntax.Phrase) (run []byte, complete bool, ok bool) {
	i := 0
	for i < len(ph) {
		it := ph[i]
		if it.Kind != syntax.Literal {
			break
		}
		if i+1 < len(ph) && ph[i+1].Kind.IsQuantifier() {
			if len(run) == 0 && ph[i+1].Kind == syntax.OneOrMore {
				run = append(run, it.Ch)
			}
			break
		}
		run = append(run, it.Ch)
		i++
	}
	if len(run) == 0 {
		return nil, false, false
	}
	return run, i == len(ph), true
}
