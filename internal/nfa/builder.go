package nfa

import (
	"errors"
	"fmt"
)

// ErrUnderflow is returned when a postfix operator has fewer operands on
// the fragment stack than it needs, or when more than one fragment is
// left once the postfix stream is exhausted. The reference implementation
// silently skips '.' on underflow and leaves stray fragments unconnected;
// this builder reports it instead, per spec.
var ErrUnderflow = errors.New("malformed pattern: operator underflow")

// Build implements post2nfa: it consumes a postfix token stream and
// produces a Program whose Start is the root of a Thompson NFA. An empty
// postfix stream is not an error; it produces a Program that accepts only
// the empty input.
func Build(postfix string) (*Program, error) {
	p := newProgram()

	if len(postfix) == 0 {
		p.start = p.alloc(Accept, 0)
		return p, nil
	}

	var stack []fragment

	pop := func() (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, fmt.Errorf("%w: no operand available", ErrUnderflow)
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, nil
	}

	for i := 0; i < len(postfix); i++ {
		switch postfix[i] {
		case '.':
			e2, err := pop()
			if err != nil {
				return nil, fmt.Errorf("concatenation: %w", err)
			}
			e1, err := pop()
			if err != nil {
				return nil, fmt.Errorf("concatenation: %w", err)
			}
			patch(p, e1.dangling, e2.start)
			stack = append(stack, fragment{start: e1.start, dangling: e2.dangling})

		case '|':
			e2, err := pop()
			if err != nil {
				return nil, fmt.Errorf("alternation: %w", err)
			}
			e1, err := pop()
			if err != nil {
				return nil, fmt.Errorf("alternation: %w", err)
			}
			s := p.alloc(Epsilon, 0)
			p.states[s].out1 = e1.start
			p.states[s].out2 = e2.start
			stack = append(stack, fragment{start: s, dangling: union(e1.dangling, e2.dangling)})

		case '*':
			e1, err := pop()
			if err != nil {
				return nil, fmt.Errorf("kleene star: %w", err)
			}
			s := p.alloc(Epsilon, 0)
			patch(p, e1.dangling, s)
			p.states[s].out2 = e1.start
			stack = append(stack, fragment{start: s, dangling: []int{s}})

		case '+':
			e1, err := pop()
			if err != nil {
				return nil, fmt.Errorf("one-or-more: %w", err)
			}
			s := p.alloc(Epsilon, 0)
			patch(p, e1.dangling, s)
			p.states[s].out1 = e1.start
			stack = append(stack, fragment{start: e1.start, dangling: []int{s}})

		case '?':
			e1, err := pop()
			if err != nil {
				return nil, fmt.Errorf("optional: %w", err)
			}
			s := p.alloc(Epsilon, 0)
			p.states[s].out1 = e1.start
			stack = append(stack, fragment{start: s, dangling: union([]int{s}, e1.dangling)})

		default:
			s := p.alloc(Literal, postfix[i])
			stack = append(stack, fragment{start: s, dangling: []int{s}})
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %d fragments remain after compilation", ErrUnderflow, len(stack))
	}

	final := stack[0]
	accept := p.alloc(Accept, 0)
	patch(p, final.dangling, accept)
	p.start = final.start

	return p, nil
}
