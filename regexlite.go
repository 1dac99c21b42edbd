// Package regexlite is a small, embeddable backtracking regex engine.
//
// The supported syntax is deliberately minimal: literal characters, the
// ASCII classes \d and \w (letters and digits, no underscore), user-defined
// character classes [...] and [^...] holding literal members (no ranges),
// the wildcard '.', the anchors '^' and '$', the greedy quantifiers '*',
// '+' and '?', capturing groups with alternation, and the backreferences
// \1 through \9. Alternation is only available inside a group; a top-level
// '|' is a compile error.
//
// Basic usage:
//
//	re, err := regexlite.Compile(`(cat|dog) \1`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("cat cat") // true
//	re.MatchString("cat dog") // false
//
// Matching is a plain backtracker: straightforward, capture-aware and
// backreference-capable, but with no protection against pathological
// patterns. Callers that need bounded-time matching set a step budget via
// CompileWithConfig. Patterns with literal prefixes are scanned with
// prefilters (memchr/memmem/Aho-Corasick) so the engine only runs at
// candidate positions.
//
// A compiled Regex is immutable apart from statistics counters and safe for
// concurrent use.
package regexlite

import (
	"github.com/coregx/regexlite/backtrack"
	"github.com/coregx/regexlite/literal"
	"github.com/coregx/regexlite/prefilter"
	"github.com/coregx/regexlite/syntax"
)

// Regex represents a compiled regular expression.
type Regex struct {
	engine  *backtrack.Backtracker
	pattern string
}

// Compile compiles a pattern with the default configuration.
// Malformed patterns are reported as a *syntax.ParseError.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, backtrack.DefaultConfig())
}

// CompileWithConfig compiles a pattern with a custom search configuration,
// e.g. a backtracking step budget:
//
//	config := regexlite.DefaultConfig()
//	config.MaxSteps = 1 << 20
//	re, err := regexlite.CompileWithConfig("(a+)+b", config)
func CompileWithConfig(pattern string, config backtrack.Config) (*Regex, error) {
	pat, err := syntax.Compile(pattern)
	if err != nil {
		return nil, err
	}

	pf := prefilter.Build(literal.ExtractPrefixes(pat))

	return &Regex{
		engine:  backtrack.NewWithPrefilter(pat, config, pf),
		pattern: pattern,
	}, nil
}

// MustCompile compiles a pattern and panics if it fails. Useful for
// patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexlite: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// DefaultConfig returns the default search configuration. Customize it and
// pass to CompileWithConfig.
func DefaultConfig() backtrack.Config {
	return backtrack.DefaultConfig()
}

// MatchString reports whether text contains any match of pattern. It is a
// convenience composition of Compile and MatchString for callers that do
// not reuse the compiled pattern.
func MatchString(pattern, text string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(text), nil
}

// QuoteMeta returns a string that escapes all regexlite metacharacters in
// text; the result is a pattern matching the literal text.
func QuoteMeta(text string) string {
	const special = `\.+*?()|[]^$`

	n := 0
	for i := 0; i < len(text); i++ {
		if isSpecial(text[i], special) {
			n++
		}
	}
	if n == 0 {
		return text
	}

	buf := make([]byte, 0, len(text)+n)
	for i := 0; i < len(text); i++ {
		if isSpecial(text[i], special) {
			buf = append(buf, '\\')
		}
		buf = append(buf, text[i])
	}
	return string(buf)
}

func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}

// Match reports whether b contains any match of the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// Find returns the text of the leftmost match in b, or nil if there is no
// match. The result is a view into b.
func (r *Regex) Find(b []byte) []byte {
	m := r.engine.Find(b)
	if m == nil {
		return nil
	}
	return m.Bytes()
}

// FindString returns the text of the leftmost match in s. It returns the
// empty string both for no match and for an empty match; use
// FindStringIndex to tell the two apart.
func (r *Regex) FindString(s string) string {
	m := r.engine.Find([]byte(s))
	if m == nil {
		return ""
	}
	return m.String()
}

// FindIndex returns [start, end] of the leftmost match in b, or nil.
func (r *Regex) FindIndex(b []byte) []int {
	m := r.engine.Find(b)
	if m == nil {
		return nil
	}
	return []int{m.Start(), m.End()}
}

// FindStringIndex returns [start, end] of the leftmost match in s, or nil.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindSubmatch returns the leftmost match and the text captured by each
// group: element 0 is the entire match, element i+1 is capture group i
// (\1 is group 0). Groups that did not participate in the match are nil.
// Returns nil if there is no match.
func (r *Regex) FindSubmatch(b []byte) [][]byte {
	m := r.engine.FindSubmatch(b)
	if m == nil {
		return nil
	}

	out := make([][]byte, m.NumGroups()+1)
	out[0] = m.Bytes()
	for i := 0; i < m.NumGroups(); i++ {
		if text, ok := m.Group(i); ok {
			out[i+1] = []byte(text)
		}
	}
	return out
}

// FindStringSubmatch is FindSubmatch for strings. Groups that did not
// participate return the empty string.
func (r *Regex) FindStringSubmatch(s string) []string {
	m := r.engine.FindSubmatch([]byte(s))
	if m == nil {
		return nil
	}

	out := make([]string, m.NumGroups()+1)
	out[0] = m.String()
	for i := 0; i < m.NumGroups(); i++ {
		out[i+1], _ = m.Group(i)
	}
	return out
}

// FindAll returns all successive non-overlapping matches in b. If n > 0 it
// returns at most n matches; n <= 0 means all matches. Returns nil if there
// are none.
func (r *Regex) FindAll(b []byte, n int) [][]byte {
	var matches [][]byte
	r.findAll(b, n, func(start, end int) {
		matches = append(matches, b[start:end])
	})
	return matches
}

// FindAllString returns all successive non-overlapping matches in s.
func (r *Regex) FindAllString(s string, n int) []string {
	b := []byte(s)
	var matches []string
	r.findAll(b, n, func(start, end int) {
		matches = append(matches, s[start:end])
	})
	return matches
}

// FindAllIndex returns [start, end] pairs for all successive matches in b.
func (r *Regex) FindAllIndex(b []byte, n int) [][]int {
	var indices [][]int
	r.findAll(b, n, func(start, end int) {
		indices = append(indices, []int{start, end})
	})
	return indices
}

// findAll drives the successive-match scan shared by the FindAll variants.
// An empty match advances the scan by one byte to guarantee progress.
func (r *Regex) findAll(b []byte, n int, emit func(start, end int)) {
	if n == 0 {
		return
	}

	count := 0
	pos := 0
	for pos <= len(b) {
		m := r.engine.Find(b[pos:])
		if m == nil {
			return
		}

		start := pos + m.Start()
		end := pos + m.End()
		emit(start, end)
		count++
		if n > 0 && count >= n {
			return
		}

		// A start-anchored pattern only ever matches at the true start
		// of the haystack, never at a later scan offset.
		if r.engine.Pattern().StartAnchored() {
			return
		}

		if end > pos {
			pos = end
		} else {
			pos++
		}
	}
}

// String returns the source text used to compile the regular expression.
func (r *Regex) String() string {
	return r.pattern
}

// NumSubexp returns the number of capture groups in the pattern.
func (r *Regex) NumSubexp() int {
	return r.engine.Pattern().Groups
}

// Stats returns a snapshot of the engine's execution counters.
func (r *Regex) Stats() backtrack.Stats {
	return r.engine.Stats()
}
