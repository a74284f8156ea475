package nfa

// fragment is a transient construction artifact: a designated start state
// plus the set of currently unpatched out-edge slots that the next piece
// of the automaton will be wired to. Fragments never outlive Build.
type fragment struct {
	start    int
	dangling []int
}

// patch fills the first empty out-slot of every state in dangling with
// target. Insertion order is irrelevant; a state with no empty slot left
// is left untouched (it should never appear in a dangling set once full).
func patch(p *Program, dangling []int, target int) {
	for _, id := range dangling {
		s := &p.states[id]
		if s.out1 == none {
			s.out1 = target
		} else if s.out2 == none {
			s.out2 = target
		}
	}
}

// union concatenates two dangling sets without removing duplicates. None
// arise in Build: the two sets always come from distinct fragments, or from
// a freshly allocated state and one fragment. A repeated entry would make
// patch fill that state's next empty slot as well.
func union(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}
