// Package nfa implements the NFA data model, the Thompson builder
// (post2nfa), and the parallel state-set simulator (match). States live in
// a flat arena owned by the Program; edges are arena indices rather than
// pointers, so the cyclic, shared-sink topology that '*', '+' and '|'
// produce can be torn down and traversed without the double-visit and
// use-after-free hazards a pointer graph would otherwise invite.
package nfa

// Kind identifies what a state does with its input.
type Kind uint8

const (
	// Literal matches exactly one character and has exactly one live
	// out-edge once construction finishes.
	Literal Kind = iota
	// Epsilon matches no input and uses one or two out-edges to
	// represent alternation and quantifier forks.
	Epsilon
	// Accept is terminal and has no out-edges.
	Accept
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Epsilon:
		return "epsilon"
	case Accept:
		return "accept"
	default:
		return "unknown"
	}
}

// none marks an unset (dangling) out-edge slot.
const none = -1

type state struct {
	kind Kind
	ch   byte
	out1 int
	out2 int
}

// Program is the compiled NFA: every state reachable from Start is owned
// by this arena. A Program is immutable once Build returns and is safe
// for concurrent read-only use (concurrent Match calls on distinct
// inputs do not share any mutable state).
type Program struct {
	states []state
	start  int
}

func newProgram() *Program {
	return &Program{}
}

func (p *Program) alloc(kind Kind, ch byte) int {
	p.states = append(p.states, state{kind: kind, ch: ch, out1: none, out2: none})
	return len(p.states) - 1
}

// Start returns the arena index of the NFA's start state.
func (p *Program) Start() int {
	return p.start
}

// Len returns the number of states allocated, including unreachable ones
// (there should be none in a Program returned by Build).
func (p *Program) Len() int {
	return len(p.states)
}

// StateInfo is a read-only snapshot of one state, for rendering and other
// diagnostic traversal outside this package. Out1/Out2 are -1 when unset.
type StateInfo struct {
	ID   int
	Kind Kind
	Char byte
	Out1 int
	Out2 int
}

// Reachable walks every state reachable from Start, guarding against
// cycles with a per-call visited set, and returns them in the order first
// visited (start first). No state is ever visited twice.
func (p *Program) Reachable() []StateInfo {
	if len(p.states) == 0 {
		return nil
	}

	visited := make([]bool, len(p.states))
	order := []int{p.start}
	visited[p.start] = true

	for i := 0; i < len(order); i++ {
		s := p.states[order[i]]
		for _, out := range [2]int{s.out1, s.out2} {
			if out != none && !visited[out] {
				visited[out] = true
				order = append(order, out)
			}
		}
	}

	infos := make([]StateInfo, len(order))
	for i, id := range order {
		s := p.states[id]
		infos[i] = StateInfo{ID: id, Kind: s.kind, Char: s.ch, Out1: s.out1, Out2: s.out2}
	}
	return infos
}
