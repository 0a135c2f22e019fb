package search

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// Mode identifies which matching strategy a Matcher implements.
type Mode int

const (
	ModeLiteral Mode = iota
	ModeLiteralFold
	ModeRegex
)

func (m Mode) String() string {
	switch m {
	case ModeLiteral:
		return "literal"
	case ModeLiteralFold:
		return "literal_fold"
	case ModeRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// Matcher decides whether a single line satisfies the query.
// Implementations hold only immutable state and are safe for concurrent use.
type Matcher interface {
	Match(line string) bool
	Mode() Mode
}

// LiteralMatcher matches lines containing the query as a substring, case preserved.
type LiteralMatcher struct {
	query string
}

func NewLiteral(query string) LiteralMatcher {
	return LiteralMatcher{query: query}
}

func (m LiteralMatcher) Match(line string) bool {
	return strings.Contains(line, m.query)
}

func (m LiteralMatcher) Mode() Mode { return ModeLiteral }

// FoldMatcher matches lines whose case-folded text contains the case-folded query.
type FoldMatcher struct {
	folded string
}

func NewFoldedLiteral(query string) FoldMatcher {
	// запрос сворачиваем один раз, строки - по мере сканирования
	return FoldMatcher{folded: fold(query)}
}

func (m FoldMatcher) Match(line string) bool {
	return strings.Contains(fold(line), m.folded)
}

func (m FoldMatcher) Mode() Mode { return ModeLiteralFold }

// A cases.Caser keeps internal state, so every call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// RegexMatcher matches lines where the compiled pattern matches anywhere.
type RegexMatcher struct {
	re *regexp.Regexp
}

func NewRegex(re *regexp.Regexp) RegexMatcher {
	return RegexMatcher{re: re}
}

func (m RegexMatcher) Match(line string) bool {
	return m.re.MatchString(line)
}

func (m RegexMatcher) Mode() Mode { return ModeRegex }
