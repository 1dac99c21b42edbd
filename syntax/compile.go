package syntax

// parser is a single-pass, character-driven compiler over the pattern text.
// The group counter is threaded through the parser rather than any global
// state, so concurrent compilations are independent.
type parser struct {
	pattern string
	pos     int
	groups  int
}

// Compile compiles pattern text into a Pattern.
//
// Malformed input is reported as a *ParseError; Compile never panics on bad
// patterns. A top-level '|' is rejected: alternation is only supported inside
// a group.
func Compile(pattern string) (*Pattern, error) {
	p := &parser{pattern: pattern}

	phrase, err := p.compilePhrase()
	if err != nil {
		return nil, err
	}

	// compilePhrase stops without consuming '|' or ')'. Inside a group the
	// group loop owns those; at the top level both are malformed.
	if p.pos < len(p.pattern) {
		switch p.pattern[p.pos] {
		case '|':
			return nil, p.fail(ErrTopLevelAlternation)
		case ')':
			return nil, p.fail(ErrUnexpectedGroupTerminator)
		}
	}

	return &Pattern{
		Phrases: []Phrase{phrase},
		Groups:  p.groups,
	}, nil
}

// fail wraps a sentinel error with the pattern and current position.
func (p *parser) fail(err error) error {
	return &ParseError{Pattern: p.pattern, Pos: p.pos, Err: err}
}

// compilePhrase compiles one phrase: items up to end of input or an
// unconsumed '|' or ')'. The caller decides what the terminator means.
func (p *parser) compilePhrase() (Phrase, error) {
	var phrase Phrase

	// '^' is only meaningful at the very beginning of a phrase; anywhere
	// else it is an ordinary literal.
	if p.pos < len(p.pattern) && p.pattern[p.pos] == '^' {
		phrase = append(phrase, Item{Kind: StartAnchor})
		p.pos++
	}

	for p.pos < len(p.pattern) {
		c := p.pattern[p.pos]
		switch c {
		case '|', ')':
			return phrase, nil

		case '\\':
			p.pos++
			it, err := p.compileEscape()
			if err != nil {
				return nil, err
			}
			phrase = append(phrase, it)

		case '[':
			p.pos++
			it, ok, err := p.compileClass()
			if err != nil {
				return nil, err
			}
			if ok {
				phrase = append(phrase, it)
			}

		case '(':
			p.pos++
			it, err := p.compileGroup()
			if err != nil {
				return nil, err
			}
			phrase = append(phrase, it)

		case ']':
			return nil, p.fail(ErrUnexpectedClassTerminator)

		case '$':
			phrase = append(phrase, Item{Kind: EndAnchor})
			p.pos++

		case '*':
			phrase = append(phrase, Item{Kind: ZeroOrMore})
			p.pos++

		case '+':
			phrase = append(phrase, Item{Kind: OneOrMore})
			p.pos++

		case '?':
			phrase = append(phrase, Item{Kind: ZeroOrOne})
			p.pos++

		case '.':
			phrase = append(phrase, Item{Kind: Wildcard})
			p.pos++

		default:
			phrase = append(phrase, Item{Kind: Literal, Ch: c})
			p.pos++
		}
	}

	return phrase, nil
}

// compileEscape compiles the character following a '\'.
func (p *parser) compileEscape() (Item, error) {
	if p.pos >= len(p.pattern) {
		return Item{}, p.fail(ErrInvalidEscape)
	}

	c := p.pattern[p.pos]
	p.pos++

	switch {
	case c == 'd':
		return Item{Kind: DigitClass}, nil
	case c == 'w':
		return Item{Kind: AlnumClass}, nil
	case c == '\\':
		return Item{Kind: Literal, Ch: '\\'}, nil
	case c >= '1' && c <= '9':
		// \1 refers to the first opened group, capture index 0.
		return Item{Kind: Backref, Index: int(c - '1')}, nil
	}

	p.pos--
	return Item{}, p.fail(ErrInvalidEscape)
}

// compileClass compiles a character class after the opening '['. The second
// return value is false for the empty class "[]", which compiles to nothing.
func (p *parser) compileClass() (Item, bool, error) {
	if p.pos >= len(p.pattern) {
		return Item{}, false, p.fail(ErrUnterminatedClass)
	}

	kind := CharSet
	switch p.pattern[p.pos] {
	case ']':
		// Empty class is a no-op.
		p.pos++
		return Item{}, false, nil
	case '^':
		kind = NegCharSet
		p.pos++
	}

	start := p.pos
	for p.pos < len(p.pattern) {
		switch p.pattern[p.pos] {
		case ']':
			set := p.pattern[start:p.pos]
			p.pos++
			return Item{Kind: kind, Set: set}, true, nil
		case '\\':
			// Classes hold literal members only.
			return Item{}, false, p.fail(ErrClassEscape)
		}
		p.pos++
	}

	return Item{}, false, p.fail(ErrUnterminatedClass)
}

// compileGroup compiles a capturing group after the opening '('. The capture
// index is assigned here, at group open, so indices run left to right in
// source order.
func (p *parser) compileGroup() (Item, error) {
	index := p.groups
	p.groups++

	var alts []Phrase
	for {
		alt, err := p.compilePhrase()
		if err != nil {
			return Item{}, err
		}
		alts = append(alts, alt)

		if p.pos >= len(p.pattern) {
			return Item{}, p.fail(ErrUnclosedGroup)
		}

		switch p.pattern[p.pos] {
		case '|':
			p.pos++
		case ')':
			p.pos++
			return Item{Kind: Group, Index: index, Alts: alts}, nil
		default:
			// compilePhrase only stops on '|', ')' or end of input, so this
			// is unreachable; report it rather than crash if the grammar
			// ever changes.
			return Item{}, p.fail(ErrInvalidGroupSeparator)
		}
	}
}
