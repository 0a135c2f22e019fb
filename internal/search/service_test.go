package search

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"testing"
)

const threeLines = "Rust:\nsafe, fast, productive.\nPick three."

const fourLines = threeLines + "\nTrust me."

func TestOneResult(t *testing.T) {
	got := Lines("duct", threeLines)
	want := []Match{{Line: 2, Text: "safe, fast, productive."}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
}

func TestNoResult(t *testing.T) {
	got := Lines("404", threeLines)
	if len(got) != 0 {
		t.Fatalf("Expected no matches, got %v", got)
	}
}

func TestTwoResults(t *testing.T) {
	got := Lines("st", threeLines)
	want := []Match{
		{Line: 1, Text: "Rust:"},
		{Line: 2, Text: "safe, fast, productive."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
}

func TestCaseInsensitive(t *testing.T) {
	got := LinesFolded("RuST", fourLines)
	want := []Match{
		{Line: 1, Text: "Rust:"},
		{Line: 4, Text: "Trust me."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
}

func TestCaseSensitiveIgnoresOtherCase(t *testing.T) {
	got := Lines("RuST", fourLines)
	if len(got) != 0 {
		t.Fatalf("Expected no matches for case-sensitive search, got %v", got)
	}
}

func TestRegexFourLetterWord(t *testing.T) {
	re := regexp.MustCompile(`\b[a-zA-Z]{4}\b`)
	got := LinesRegex(re, fourLines)
	want := []Match{
		{Line: 1, Text: "Rust:"},
		{Line: 2, Text: "safe, fast, productive."},
		{Line: 3, Text: "Pick three."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
}

func TestEmptyQueryMatchesEveryLine(t *testing.T) {
	for _, m := range []Matcher{NewLiteral(""), NewFoldedLiteral("")} {
		got := Search(m, fourLines)
		if len(got) != 4 {
			t.Errorf("%s: expected 4 matches, got %d", m.Mode(), len(got))
		}
	}
}

func TestEmptyContent(t *testing.T) {
	if got := Lines("", ""); len(got) != 0 {
		t.Fatalf("Expected no matches on empty content, got %v", got)
	}
}

func TestLineSplitting(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Match
	}{
		{
			name:    "trailing newline",
			content: "a\nb\n",
			want:    []Match{{1, "a"}, {2, "b"}},
		},
		{
			name:    "no trailing newline",
			content: "a\nb",
			want:    []Match{{1, "a"}, {2, "b"}},
		},
		{
			name:    "crlf",
			content: "a\r\nb\r\n",
			want:    []Match{{1, "a"}, {2, "b"}},
		},
		{
			name:    "blank line in the middle",
			content: "a\n\nb\n",
			want:    []Match{{1, "a"}, {2, ""}, {3, "b"}},
		},
		{
			name:    "single newline",
			content: "\n",
			want:    []Match{{1, ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines("", tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFoldedIsSupersetOfLiteral(t *testing.T) {
	queries := []string{"st", "Rust", "three", "e", ".", "me"}
	for _, q := range queries {
		exact := Lines(q, fourLines)
		folded := LinesFolded(q, fourLines)
		for _, m := range exact {
			if !containsMatch(folded, m) {
				t.Errorf("query %q: %v missing from folded result %v", q, m, folded)
			}
		}
	}
}

func TestFoldedMatchesPerLineFolding(t *testing.T) {
	content := "STRASSE\nstraße\nΣίσυφος\nσίσυφος"
	got := LinesFolded("ΣΊΣΥΦΟΣ", content)
	if len(got) != 2 || got[0].Line != 3 || got[1].Line != 4 {
		t.Fatalf("Expected lines 3 and 4, got %v", got)
	}
}

func TestResultsAscending(t *testing.T) {
	content := strings.Repeat("x\ny\n", 50)
	got := Lines("x", content)
	if len(got) != 50 {
		t.Fatalf("Expected 50 matches, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Line <= got[i-1].Line {
			t.Fatalf("matches out of order at %d: %v", i, got[i-1:i+1])
		}
	}
}

func TestSearchConcurrent(t *testing.T) {
	matchers := []Matcher{
		NewLiteral("st"),
		NewFoldedLiteral("RuST"),
		NewRegex(regexp.MustCompile(`\b[a-zA-Z]{4}\b`)),
	}
	want := make([][]Match, len(matchers))
	for i, m := range matchers {
		want[i] = Search(m, fourLines)
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		for j, m := range matchers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if got := Search(m, fourLines); !reflect.DeepEqual(got, want[j]) {
					t.Errorf("%s: concurrent result %v differs from %v", m.Mode(), got, want[j])
				}
			}()
		}
	}
	wg.Wait()
}

func TestModeString(t *testing.T) {
	if ModeLiteral.String() != "literal" || ModeLiteralFold.String() != "literal_fold" || ModeRegex.String() != "regex" {
		t.Fatal("unexpected mode names")
	}
	if Mode(42).String() != "unknown" {
		t.Fatal("expected unknown for out of range mode")
	}
}

func containsMatch(list []Match, m Match) bool {
	for _, x := range list {
		if x == m {
			return true
		}
	}
	return false
}
