package nfa

import (
	"fmt"
	"strings"
)

// Render prints every reachable state's identifier, label, and out-edge
// identifiers, one line per state, guarding against cycles via
// Program.Reachable's visited set. It never mutates p and can be called
// any number of times.
func Render(p *Program) string {
	var b strings.Builder
	fmt.Fprintf(&b, "start: %d\n", p.start)

	for _, st := range p.Reachable() {
		switch st.Kind {
		case Literal:
			fmt.Fprintf(&b, "state %d: literal %q -> %d\n", st.ID, rune(st.Char), st.Out1)
		case Epsilon:
			fmt.Fprintf(&b, "state %d: epsilon -> %d, %d\n", st.ID, st.Out1, st.Out2)
		case Accept:
			fmt.Fprintf(&b, "state %d: accept\n", st.ID)
		}
	}

	return b.String()
}
