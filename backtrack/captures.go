package backtrack

// Capture is the per-group buffer accumulating the text a group matched on
// the currently explored derivation path.
//
// Active is set while the matcher is inside the group's span; every character
// consumed while a buffer is active is appended to it. Set records that the
// group's span completed at least once on this path, which is what
// distinguishes an empty capture from a group that never matched.
type Capture struct {
	Text   string
	Active bool
	Set    bool
}

// Captures holds one buffer per capture index. It is passed by value into
// every exploratory branch of the backtracking search: any step that mutates
// capture state clones first, so abandoned branches leave no trace and no
// undo logic is needed.
type Captures []Capture

// newCaptures allocates fresh buffers for one top-level match attempt.
func newCaptures(groups int) Captures {
	if groups == 0 {
		return nil
	}
	return make(Captures, groups)
}

// clone returns an independent copy. Capture holds only value types, so a
// shallow slice copy is a deep copy.
func (c Captures) clone() Captures {
	if c == nil {
		return nil
	}
	out := make(Captures, len(c))
	copy(out, c)
	return out
}

// anyActive reports whether at least one buffer is accumulating.
func (c Captures) anyActive() bool {
	for i := range c {
		if c[i].Active {
			return true
		}
	}
	return false
}

// appendText returns capture state with text appended to every active
// buffer. When nothing is active the receiver is returned unchanged, which
// keeps the common no-groups path allocation free.
func (c Captures) appendText(text string) Captures {
	if len(text) == 0 || !c.anyActive() {
		return c
	}
	out := c.clone()
	for i := range out {
		if out[i].Active {
			out[i].Text += text
		}
	}
	return out
}

// appendByte is appendText for a single consumed character.
func (c Captures) appendByte(b byte) Captures {
	if !c.anyActive() {
		return c
	}
	out := c.clone()
	for i := range out {
		if out[i].Active {
			out[i].Text += string(b)
		}
	}
	return out
}

// activate returns capture state with the given buffer reset and marked
// active, as happens when the matcher enters a group's span.
func (c Captures) activate(index int) Captures {
	out := c.clone()
	out[index] = Capture{Active: true}
	return out
}

// deactivate returns capture state with the given buffer closed: characters
// matched afterwards are no longer attributed to the group, and the buffer
// counts as captured for backreference and result purposes.
func (c Captures) deactivate(index int) Captures {
	out := c.clone()
	out[index].Active = false
	out[index].Set = true
	return out
}
