package backtrack

// Match represents a successful match with position information and the
// capture buffers recorded on the winning derivation path.
//
// The haystack is stored by reference, not copied; callers must ensure it
// remains valid for the lifetime of the Match.
type Match struct {
	start    int
	end      int
	haystack []byte
	groups   Captures
}

// NewMatch creates a Match from start and end positions in haystack.
// Searches that do not track captures pass nil groups.
func NewMatch(start, end int, haystack []byte, groups Captures) *Match {
	return &Match{
		start:    start,
		end:      end,
		haystack: haystack,
		groups:   groups,
	}
}

// Start returns the inclusive start position of the match.
func (m *Match) Start() int {
	return m.start
}

// End returns the exclusive end position of the match.
func (m *Match) End() int {
	return m.end
}

// Len returns the length of the match in bytes.
func (m *Match) Len() int {
	return m.end - m.start
}

// Bytes returns the matched bytes as a view into the original haystack.
func (m *Match) Bytes() []byte {
	if m.start < 0 || m.end > len(m.haystack) || m.start > m.end {
		return nil
	}
	return m.haystack[m.start:m.end]
}

// String returns the matched text, copying the bytes.
func (m *Match) String() string {
	return string(m.Bytes())
}

// IsEmpty reports whether the match has zero length. Empty matches occur
// with patterns like "" or "a*" that can succeed without consuming input.
func (m *Match) IsEmpty() bool {
	return m.start == m.end
}

// NumGroups returns the number of capture groups tracked by the match.
// Searches that bypass the engine (pure literal patterns) track none.
func (m *Match) NumGroups() int {
	return len(m.groups)
}

// Group returns the text captured by group index i (zero-based, \1 -> 0) and
// whether the group captured at all on the winning path. A group that
// matched an empty span returns ("", true).
func (m *Match) Group(i int) (string, bool) {
	if i < 0 || i >= len(m.groups) || !m.groups[i].Set {
		return "", false
	}
	return m.groups[i].Text, true
}
