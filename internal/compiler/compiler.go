// Package compiler wires the lexical normalizer, the shunting-yard
// converter, and the NFA builder into a single pipeline, logging each
// phase transition when verbose mode is enabled.
package compiler

import (
	"fmt"

	"github.com/adam-mcdaniel/regex-engine/internal/lexer"
	"github.com/adam-mcdaniel/regex-engine/internal/nfa"
	"github.com/adam-mcdaniel/regex-engine/internal/parser"
)

// Config holds the configuration for a single compile pass.
type Config struct {
	Pattern string
	Verbose bool
}

// Compiler runs the pattern -> normalized -> postfix -> NFA pipeline.
type Compiler struct {
	config Config
	logger *Logger
}

// New creates a new Compiler for the given configuration.
func New(config Config) *Compiler {
	return &Compiler{
		config: config,
		logger: NewLogger(config.Verbose),
	}
}

// Logger exposes the compiler's logger, primarily so callers embedding a
// Compiler (such as pkg/regex) can redirect its output in tests.
func (c *Compiler) Logger() *Logger {
	return c.logger
}

// Compile runs the full pipeline and returns the resulting Program.
func (c *Compiler) Compile() (*nfa.Program, error) {
	c.logger.Begin(c.config.Pattern)

	normalized := lexer.Normalize(c.config.Pattern)
	c.logger.Normalized(normalized)

	postfix, err := parser.ToPostfix(normalized)
	if err != nil {
		return nil, fmt.Errorf("shunting yard: %w", err)
	}
	c.logger.Postfix(postfix)

	prog, err := nfa.Build(postfix)
	if err != nil {
		return nil, fmt.Errorf("nfa build: %w", err)
	}
	c.logger.Built(prog.Len())

	return prog, nil
}
