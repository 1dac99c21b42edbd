package backtrack

import (
	"testing"

	"github.com/coregx/regexlite/syntax"
)

// TestMatchByte tests the per-character predicate for each consuming kind
func TestMatchByte(t *testing.T) {
	tests := []struct {
		name string
		item syntax.Item
		hit  []byte
		miss []byte
	}{
		{"literal", syntax.Item{Kind: syntax.Literal, Ch: 'a'},
			[]byte{'a'}, []byte{'b', 'A', 0}},
		{"digit", syntax.Item{Kind: syntax.DigitClass},
			[]byte{'0', '5', '9'}, []byte{'a', '/', ':', ' '}},
		{"alnum", syntax.Item{Kind: syntax.AlnumClass},
			[]byte{'a', 'z', 'A', 'Z', '0', '9'}, []byte{'_', '-', ' ', '@'}},
		{"char set", syntax.Item{Kind: syntax.CharSet, Set: "xyz"},
			[]byte{'x', 'y', 'z'}, []byte{'a', 'X'}},
		{"negated set", syntax.Item{Kind: syntax.NegCharSet, Set: "xyz"},
			[]byte{'a', 'X', ' '}, []byte{'x', 'y', 'z'}},
		{"empty negated set", syntax.Item{Kind: syntax.NegCharSet, Set: ""},
			[]byte{'a', 0, 0xff}, nil},
		{"wildcard", syntax.Item{Kind: syntax.Wildcard},
			[]byte{'a', ' ', 0, 0xff}, nil},
		{"end anchor", syntax.Item{Kind: syntax.EndAnchor},
			nil, []byte{'a', 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range tt.hit {
				if !matchByte(&tt.item, c) {
					t.Errorf("matchByte(%v, %q) = false, want true", tt.item.Kind, c)
				}
			}
			for _, c := range tt.miss {
				if matchByte(&tt.item, c) {
					t.Errorf("matchByte(%v, %q) = true, want false", tt.item.Kind, c)
				}
			}
		})
	}
}

// TestMatchByteStructuralPanics tests the programming-error contract
func TestMatchByteStructuralPanics(t *testing.T) {
	structural := []syntax.ItemKind{
		syntax.StartAnchor, syntax.ZeroOrMore, syntax.OneOrMore,
		syntax.ZeroOrOne, syntax.Group, syntax.Backref,
	}
	for _, kind := range structural {
		t.Run(kind.String(), func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("matchByte(%v) did not panic", kind)
				}
			}()
			matchByte(&syntax.Item{Kind: kind}, 'a')
		})
	}
}
