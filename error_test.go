package regexlite

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/regexlite/syntax"
)

// TestCompileErrors tests that malformed patterns report the right error kind
func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    error
	}{
		{"unclosed group", "(abc", syntax.ErrUnclosedGroup},
		{"unclosed nested group", "((a)b", syntax.ErrUnclosedGroup},
		{"stray close paren", "abc)", syntax.ErrUnexpectedGroupTerminator},
		{"top-level alternation", "cat|dog", syntax.ErrTopLevelAlternation},
		{"trailing alternation", "(a)|b", syntax.ErrTopLevelAlternation},
		{"unterminated class", "[abc", syntax.ErrUnterminatedClass},
		{"unterminated negated class", "[^", syntax.ErrUnterminatedClass},
		{"stray class terminator", "ab]c", syntax.ErrUnexpectedClassTerminator},
		{"invalid escape", `\q`, syntax.ErrInvalidEscape},
		{"trailing backslash", `abc\`, syntax.ErrInvalidEscape},
		{"escape in class", `[a\d]`, syntax.ErrClassEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pattern)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want error", tt.pattern)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.pattern, err, tt.want)
			}

			var perr *syntax.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Compile(%q) error is %T, want *syntax.ParseError", tt.pattern, err)
			}
			if perr.Pattern != tt.pattern {
				t.Errorf("ParseError.Pattern = %q, want %q", perr.Pattern, tt.pattern)
			}
			if perr.Pos < 0 || perr.Pos > len(tt.pattern) {
				t.Errorf("ParseError.Pos = %d, out of range for %q", perr.Pos, tt.pattern)
			}
		})
	}
}

// TestErrorMessage tests the ParseError message format
func TestErrorMessage(t *testing.T) {
	_, err := Compile("a[bc")
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, part := range []string{`"a[bc"`, "position"} {
		if !strings.Contains(msg, part) {
			t.Errorf("error message %q missing %q", msg, part)
		}
	}
}

// TestErrorsDoNotPanic tests that compilation never panics on bad input
func TestErrorsDoNotPanic(t *testing.T) {
	patterns := []string{
		"(", ")", "[", "]", `\`, "|", "((", "))", "[^", `(\`, "(|", "(a|",
	}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Compile(%q) panicked: %v", pattern, r)
				}
			}()
			Compile(pattern)
		})
	}
}
