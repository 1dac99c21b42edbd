package syntax

import (
	"errors"
	"fmt"
)

// Sentinel errors for pattern compilation. All malformed patterns are
// reported through a *ParseError wrapping one of these; compilation never
// panics on bad input.
var (
	// ErrUnexpectedClassTerminator indicates a ']' outside an open character
	// class.
	ErrUnexpectedClassTerminator = errors.New("unexpected ']' outside character class")

	// ErrInvalidEscape indicates a '\' followed by a character with no
	// defined meaning.
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrClassEscape indicates a '\' inside a character class. Classes accept
	// literal members only, no escapes or ranges.
	ErrClassEscape = errors.New("escape sequences are not supported inside character classes")

	// ErrUnterminatedClass indicates the pattern ended while a character
	// class was still open.
	ErrUnterminatedClass = errors.New("unterminated character class")

	// ErrUnclosedGroup indicates the pattern ended while a '(' group was
	// still open.
	ErrUnclosedGroup = errors.New("unclosed group")

	// ErrInvalidGroupSeparator indicates a character other than '|' or ')'
	// at a group alternative boundary. Unreachable under the current grammar,
	// reported rather than crashed on if it ever occurs.
	ErrInvalidGroupSeparator = errors.New("invalid group separator")

	// ErrUnexpectedGroupTerminator indicates a ')' with no open group.
	ErrUnexpectedGroupTerminator = errors.New("unexpected ')' outside group")

	// ErrTopLevelAlternation indicates a '|' outside any group. Top-level
	// alternation is unsupported; wrap the alternatives in a group instead.
	ErrTopLevelAlternation = errors.New("top-level alternation is not supported; use a group")
)

// ParseError reports a malformed pattern with the offending position.
type ParseError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing pattern %q at position %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
