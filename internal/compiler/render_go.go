package compiler

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/adam-mcdaniel/regex-engine/internal/codegen"
	"github.com/adam-mcdaniel/regex-engine/internal/nfa"
)

// RenderGo emits a Go source listing of a compiled automaton's states and
// transitions, formatted with jennifer. It is a debug artifact for
// embedding a compiled pattern in a bug report or test fixture, not a
// second, compiled execution path: nothing in this package ever runs the
// generated source.
func RenderGo(name, pattern string, prog *nfa.Program) (string, error) {
	file := jen.NewFile("regexdebug")
	file.HeaderComment(fmt.Sprintf("%s: pattern %q", name, pattern))

	var cases []jen.Code
	for _, st := range prog.Reachable() {
		cases = append(cases, stateCase(st))
	}

	startConst := name + "Start"
	file.Comment(fmt.Sprintf("%s is the NFA start state for %q.", startConst, pattern))
	file.Const().Id(startConst).Op("=").Lit(prog.Start())
	file.Line()
	file.Comment(codegen.CurrentSetName + " holds the reachable-state dump below, one case per arena index.")
	file.Func().Id(name+"States").Params(jen.Id(codegen.StateVarName).Int()).Block(
		jen.Switch(jen.Id(codegen.StateVarName)).Block(cases...),
	)

	var buf bytes.Buffer
	if err := file.Render(&buf); err != nil {
		return "", fmt.Errorf("render go: %w", err)
	}
	return buf.String(), nil
}

func stateCase(st nfa.StateInfo) jen.Code {
	label := codegen.StateLabel(st.ID)
	switch st.Kind {
	case nfa.Literal:
		return jen.Case(jen.Lit(st.ID)).Block(
			jen.Commentf("%s: literal %q -> %d", label, rune(st.Char), st.Out1),
		)
	case nfa.Epsilon:
		return jen.Case(jen.Lit(st.ID)).Block(
			jen.Commentf("%s: epsilon -> %d, %d", label, st.Out1, st.Out2),
		)
	default: // nfa.Accept
		return jen.Case(jen.Lit(st.ID)).Block(
			jen.Commentf("%s: %s", label, codegen.AcceptMaskName),
		)
	}
}
