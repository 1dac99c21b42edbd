// Package syntax defines the pattern AST for regexlite and the single-pass
// compiler that produces it.
//
// A compiled Pattern is a list of top-level alternative phrases, each phrase
// an ordered sequence of items. Groups nest recursively: a group item carries
// its own list of alternative phrases. Quantifier markers (*, +, ?) are
// standalone items that immediately follow the item they modify; pairing them
// up is the matching engine's job, not the compiler's.
package syntax

import "strings"

// ItemKind identifies the variant of a pattern Item.
type ItemKind int

const (
	// Literal matches exactly one character.
	Literal ItemKind = iota

	// DigitClass matches any ASCII digit ('0'-'9').
	DigitClass

	// AlnumClass matches any ASCII letter or digit. Unlike Perl's \w it does
	// not include the underscore.
	AlnumClass

	// CharSet matches a character that is a member of Item.Set.
	CharSet

	// NegCharSet matches a character that is NOT a member of Item.Set.
	NegCharSet

	// Wildcard matches any character.
	Wildcard

	// StartAnchor is a zero-width assertion for the beginning of the text.
	// The compiler only emits it as the first item of a phrase.
	StartAnchor

	// EndAnchor is a zero-width assertion for the end of the text. It never
	// consumes a character.
	EndAnchor

	// ZeroOrMore, OneOrMore and ZeroOrOne are postfix quantifier markers.
	// They always immediately follow the item they quantify and are never
	// matched standalone.
	ZeroOrMore
	OneOrMore
	ZeroOrOne

	// Group is a capturing group with one or more alternative phrases.
	// Item.Index is the zero-based capture index.
	Group

	// Backref matches the text captured by a previous group.
	// Item.Index is the zero-based capture index (source syntax \1 -> 0).
	Backref
)

// String returns the kind name for diagnostics and tests.
func (k ItemKind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case DigitClass:
		return "DigitClass"
	case AlnumClass:
		return "AlnumClass"
	case CharSet:
		return "CharSet"
	case NegCharSet:
		return "NegCharSet"
	case Wildcard:
		return "Wildcard"
	case StartAnchor:
		return "StartAnchor"
	case EndAnchor:
		return "EndAnchor"
	case ZeroOrMore:
		return "ZeroOrMore"
	case OneOrMore:
		return "OneOrMore"
	case ZeroOrOne:
		return "ZeroOrOne"
	case Group:
		return "Group"
	case Backref:
		return "Backref"
	}
	return "Unknown"
}

// IsQuantifier reports whether the kind is a postfix quantifier marker.
func (k ItemKind) IsQuantifier() bool {
	return k == ZeroOrMore || k == OneOrMore || k == ZeroOrOne
}

// Item is one unit of pattern structure.
//
// Only the fields relevant to Kind are set:
//   - Ch for Literal
//   - Set for CharSet and NegCharSet (literal members, no ranges or escapes)
//   - Index for Group and Backref
//   - Alts for Group
type Item struct {
	Kind  ItemKind
	Ch    byte
	Set   string
	Index int
	Alts  []Phrase
}

// Phrase is one alternative derivation: an ordered sequence of items with no
// alternation at its own level.
type Phrase []Item

// Pattern is a compiled pattern: the top-level alternative phrases plus the
// number of capture groups assigned during compilation.
//
// Group indices are assigned left-to-right in the order groups open, are
// contiguous starting at 0, and are stable for the lifetime of the Pattern.
// A Pattern is immutable after compilation.
type Pattern struct {
	Phrases []Phrase
	Groups  int
}

// StartAnchored reports whether every top-level phrase begins with ^,
// meaning the pattern can only match at the start of the text.
func (p *Pattern) StartAnchored() bool {
	if len(p.Phrases) == 0 {
		return false
	}
	for _, ph := range p.Phrases {
		if len(ph) == 0 || ph[0].Kind != StartAnchor {
			return false
		}
	}
	return true
}

// String reconstructs a source form of the item for diagnostics. It is not
// guaranteed to round-trip escaping exactly.
func (it Item) String() string {
	switch it.Kind {
	case Literal:
		return string(it.Ch)
	case DigitClass:
		return `\d`
	case AlnumClass:
		return `\w`
	case CharSet:
		return "[" + it.Set + "]"
	case NegCharSet:
		return "[^" + it.Set + "]"
	case Wildcard:
		return "."
	case StartAnchor:
		return "^"
	case EndAnchor:
		return "$"
	case ZeroOrMore:
		return "*"
	case OneOrMore:
		return "+"
	case ZeroOrOne:
		return "?"
	case Group:
		alts := make([]string, len(it.Alts))
		for i, a := range it.Alts {
			alts[i] = a.String()
		}
		return "(" + strings.Join(alts, "|") + ")"
	case Backref:
		return "\\" + string(rune('1'+it.Index))
	}
	return "?"
}

// String reconstructs a source form of the phrase for diagnostics.
func (ph Phrase) String() string {
	var b strings.Builder
	for _, it := range ph {
		b.WriteString(it.String())
	}
	return b.String()
}
