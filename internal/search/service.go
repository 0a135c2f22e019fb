package search

import (
	"regexp"
	"strings"
)

// Match is one line that satisfied the query.
type Match struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// Search scans content line by line and returns every line accepted by m,
// numbered from 1, in the order the lines appear.
func Search(m Matcher, content string) []Match {
	var matches []Match
	n := 0
	for line := range strings.Lines(content) {
		n++
		line = trimEOL(line)
		if m.Match(line) {
			matches = append(matches, Match{Line: n, Text: line})
		}
	}
	return matches
}

// Lines is a literal, case-sensitive search.
func Lines(query, content string) []Match {
	return Search(NewLiteral(query), content)
}

// LinesFolded is a literal search ignoring case.
func LinesFolded(query, content string) []Match {
	return Search(NewFoldedLiteral(query), content)
}

// LinesRegex searches with an already compiled pattern.
func LinesRegex(re *regexp.Regexp, content string) []Match {
	return Search(NewRegex(re), content)
}

// trimEOL drops "\n" or "\r\n" from the end of a line.
func trimEOL(line string) string {
	line, ok := strings.CutSuffix(line, "\n")
	if !ok {
		return line
	}
	return strings.TrimSuffix(line, "\r")
}
