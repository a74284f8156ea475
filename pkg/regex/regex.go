// Package regex is the public library surface: compile a pattern, match
// an input against it, and render it for diagnostics. It owns no
// concurrency model beyond "read-only sharing is safe" — Compile and
// Match perform no I/O and never suspend, and a *Regex may be shared
// across goroutines as long as each call is given its own input.
package regex

import (
	"fmt"

	"github.com/adam-mcdaniel/regex-engine/internal/compiler"
	"github.com/adam-mcdaniel/regex-engine/internal/nfa"
)

// Options configures a compile pass.
type Options struct {
	// Pattern is the regular expression to compile.
	Pattern string

	// Verbose enables phase-by-phase diagnostic logging during
	// compilation (normalize -> postfix -> build), written to stderr.
	Verbose bool
}

// Validate checks that the options are usable.
func (o Options) Validate() error {
	// Pattern == "" is the documented empty-pattern case (spec.md §4.2,
	// §7), not an error: it compiles to a Regex that matches only the
	// empty input.
	return nil
}

// Regex owns a compiled NFA and the original pattern text used to
// produce it (kept for diagnostic rendering).
type Regex struct {
	pattern string
	prog    *nfa.Program
}

// Compile compiles pattern into a Regex. It returns an error for a
// malformed pattern (operator underflow or unbalanced parentheses); an
// empty pattern is not an error.
func Compile(pattern string) (*Regex, error) {
	return CompileWithOptions(Options{Pattern: pattern})
}

// CompileWithOptions compiles with explicit Options, e.g. to enable
// verbose diagnostic logging of the compile pipeline.
func CompileWithOptions(opts Options) (*Regex, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	c := compiler.New(compiler.Config{Pattern: opts.Pattern, Verbose: opts.Verbose})
	prog, err := c.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", opts.Pattern, err)
	}

	return &Regex{pattern: opts.Pattern, prog: prog}, nil
}

// Match reports whether input is accepted by the compiled automaton.
// Matching never fails; it always returns a boolean.
func (r *Regex) Match(input string) bool {
	return nfa.Match(r.prog, input)
}

// Pattern returns the original pattern text this Regex was compiled
// from.
func (r *Regex) Pattern() string {
	return r.pattern
}

// Render returns a human-readable dump of the compiled automaton's
// states and out-edges, guarding against cycles.
func (r *Regex) Render() string {
	return nfa.Render(r.prog)
}

// RenderGo returns a Go source listing of the compiled automaton,
// formatted with jennifer, suitable for embedding in a bug report or
// test fixture. name appears in the header comment and prefixes the
// generated identifiers (e.g. "StarStart"); it defaults to "pattern".
func (r *Regex) RenderGo(name string) (string, error) {
	if name == "" {
		name = "pattern"
	}
	return compiler.RenderGo(name, r.pattern, r.prog)
}

// String implements fmt.Stringer by returning the original pattern text.
func (r *Regex) String() string {
	return r.pattern
}
