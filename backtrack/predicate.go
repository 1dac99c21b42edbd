package backtrack

import (
	"strings"

	"github.com/coregx/regexlite/syntax"
)

// matchByte reports whether one input character satisfies one non-structural
// pattern item. It is defined for the consuming item kinds plus EndAnchor
// (always false: the anchor is zero-width and never consumes).
//
// Structural kinds (anchor-at-start, quantifier markers, groups,
// backreferences) are handled by the engine and must never reach the
// predicate; passing one is a programming error and panics.
func matchByte(it *syntax.Item, c byte) bool {
	switch it.Kind {
	case syntax.Literal:
		return c == it.Ch
	case syntax.DigitClass:
		return c >= '0' && c <= '9'
	case syntax.AlnumClass:
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	case syntax.CharSet:
		return strings.IndexByte(it.Set, c) >= 0
	case syntax.NegCharSet:
		return strings.IndexByte(it.Set, c) < 0
	case syntax.Wildcard:
		return true
	case syntax.EndAnchor:
		return false
	}
	panic("backtrack: structural item " + it.Kind.String() + " passed to matchByte")
}
