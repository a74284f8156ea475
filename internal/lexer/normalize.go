// Package lexer implements the lexical normalizer: it makes the implicit
// concatenation between adjacent atoms explicit so that the shunting-yard
// converter never has to guess where one operand ends and the next begins.
package lexer

import "strings"

// operators is the reserved alphabet. Any byte outside this set is an atom.
const operators = "*+?.|()"

func isOperator(c byte) bool {
	return strings.IndexByte(operators, c) >= 0
}

func isAtom(c byte) bool {
	return !isOperator(c)
}

// Normalize inserts the concatenation marker '.' between adjacent atoms
// that do not already carry an operator between them. It does not validate
// structure: unrecognized shapes (leading operators, stray parens) pass
// through unchanged and become the shunting yard's problem.
func Normalize(pattern string) string {
	if len(pattern) == 0 {
		return pattern
	}

	var out strings.Builder
	out.Grow(len(pattern) * 2)
	out.WriteByte(pattern[0])

	for i := 1; i < len(pattern); i++ {
		prev, next := pattern[i-1], pattern[i]
		if needsConcat(prev, next) {
			out.WriteByte('.')
		}
		out.WriteByte(next)
	}

	return out.String()
}

// needsConcat decides whether a '.' belongs between two adjacent source
// characters, per the four insertion rules:
//  1. atom, atom
//  2. ')' followed by an atom or '('
//  3. '*' '+' '?' followed by an atom or '('
//  4. '(' preceded by an atom or ')'
func needsConcat(prev, next byte) bool {
	if isAtom(prev) && isAtom(next) {
		return true
	}
	if prev == ')' && (isAtom(next) || next == '(') {
		return true
	}
	if (prev == '*' || prev == '+' || prev == '?') && (isAtom(next) || next == '(') {
		return true
	}
	if next == '(' && (isAtom(prev) || prev == ')') {
		return true
	}
	return false
}
