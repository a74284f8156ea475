package regex

import (
	"errors"
	"strings"
	"testing"

	"github.com/adam-mcdaniel/regex-engine/internal/nfa"
)

func TestCompileAndMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		cases   map[string]bool
	}{
		{
			name:    "empty pattern",
			pattern: "",
			cases:   map[string]bool{"": true, "a": false},
		},
		{
			name:    "single literal",
			pattern: "a",
			cases:   map[string]bool{"a": true, "": false, "aa": false},
		},
		{
			name:    "literal run",
			pattern: "abc",
			cases:   map[string]bool{"abc": true, "ab": false, "abcd": false},
		},
		{
			name:    "star",
			pattern: "a*",
			cases:   map[string]bool{"": true, "aaaa": true, "b": false},
		},
		{
			name:    "plus",
			pattern: "a+",
			cases:   map[string]bool{"": false, "a": true, "aaa": true},
		},
		{
			name:    "optional",
			pattern: "a?",
			cases:   map[string]bool{"": true, "a": true, "aa": false},
		},
		{
			name:    "grouped alternation star",
			pattern: "(a|b)*",
			cases:   map[string]bool{"ababba": true, "abc": false},
		},
		{
			name:    "pathological optional chain",
			pattern: "a?a?a?aaa",
			cases:   map[string]bool{"aaa": true, "aa": false},
		},
		{
			name:    "overlapping alternation star",
			pattern: "(a|b|c|d)*",
			cases:   map[string]bool{"abcdabcdabcd": true, "abce": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tt.pattern, err)
			}
			for input, want := range tt.cases {
				if got := r.Match(input); got != want {
					t.Errorf("Match(%q) on pattern %q = %v, want %v", input, tt.pattern, got, want)
				}
			}
		})
	}
}

func TestCompileMalformedPattern(t *testing.T) {
	_, err := Compile("ab.*c|+")
	if err == nil {
		t.Fatal("expected a malformed-pattern error for \"ab.*c|+\"")
	}
	if !errors.Is(err, nfa.ErrUnderflow) {
		t.Errorf("expected ErrUnderflow in the error chain, got %v", err)
	}
}

func TestCompileUnbalancedParens(t *testing.T) {
	for _, pattern := range []string{"(a", "a)", "((a)"} {
		if _, err := Compile(pattern); err == nil {
			t.Errorf("expected malformed-pattern error for %q", pattern)
		}
	}
}

func TestRegexRender(t *testing.T) {
	r, err := Compile("a*")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	out := r.Render()
	if !strings.Contains(out, "start:") {
		t.Errorf("Render() output missing start line: %q", out)
	}
}

func TestRegexRenderGo(t *testing.T) {
	r, err := Compile("a*")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	src, err := r.RenderGo("Star")
	if err != nil {
		t.Fatalf("RenderGo failed: %v", err)
	}
	if !strings.Contains(src, "StarStart") {
		t.Errorf("expected the rendered Go source to name the start constant, got: %s", src)
	}
}

func TestRegexStringIsPattern(t *testing.T) {
	r, err := Compile("a|b")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if r.String() != "a|b" {
		t.Errorf("String() = %q, want %q", r.String(), "a|b")
	}
}

func TestCompileDeterministicAcceptance(t *testing.T) {
	// Two independent compilations of the same pattern must accept the
	// same language, even though their internal state identifiers need
	// not match.
	inputs := []string{"", "a", "ab", "abab", "b"}
	for _, pattern := range []string{"(a|b)*", "a+b?"} {
		r1, err := Compile(pattern)
		if err != nil {
			t.Fatalf("Compile(%q) failed: %v", pattern, err)
		}
		r2, err := Compile(pattern)
		if err != nil {
			t.Fatalf("Compile(%q) failed: %v", pattern, err)
		}
		for _, in := range inputs {
			if r1.Match(in) != r2.Match(in) {
				t.Errorf("pattern %q: two compilations disagree on input %q", pattern, in)
			}
		}
	}
}
