package machine

import (
	"errors"
	"fmt"
	"slices"
)

type State interface {
	~string
}

var ErrInvalidTransition = errors.New("invalid state transition")

// Transition lists the states reachable from one state
type Transition[S State] struct {
	from S
	to   []S
}

// TransitionBuilder helps in creating a from-to relationship for state transitions
type TransitionBuilder[S State] struct {
	from S
}

// From starts a transition out of from
func From[S State](from S) TransitionBuilder[S] {
	return TransitionBuilder[S]{from: from}
}

// To sets the possible destination states and returns the configured transition
func (tb TransitionBuilder[S]) To(to ...S) Transition[S] {
	return Transition[S]{from: tb.from, to: to}
}

// Graph is the set of allowed transitions between states. It holds no current
// state so one Graph can be shared.
type Graph[S State] struct {
	edges map[S][]S
}

func NewGraph[S State](transitions ...Transition[S]) Graph[S] {
	g := Graph[S]{edges: make(map[S][]S)}
	for _, t := range transitions {
		g.edges[t.from] = append(g.edges[t.from], t.to...)
		for _, to := range t.to {
			if _, ok := g.edges[to]; !ok {
				g.edges[to] = nil
			}
		}
	}
	return g
}

// Known reports whether s appears in any transition
func (g Graph[S]) Known(s S) bool {
	_, ok := g.edges[s]
	return ok
}

// Machine starts a state machine at current
func (g Graph[S]) Machine(current S) *StateMachine[S] {
	return &StateMachine[S]{current: current, graph: g}
}

// StateMachine manages the state of a context
type StateMachine[S State] struct {
	current S
	graph   Graph[S]
}

func New[S State](current S, transitions ...Transition[S]) *StateMachine[S] {
	return NewGraph(transitions...).Machine(current)
}

// Current is the state the machine was built from
func (m *StateMachine[S]) Current() S {
	return m.current
}

// ToState determines if the current state can transition to s.
// The returned error wraps ErrInvalidTransition.
func (m *StateMachine[S]) ToState(s S) error {
	if slices.Contains(m.graph.edges[m.current], s) {
		return nil
	}
	return fmt.Errorf("%w: %q to %q", ErrInvalidTransition, m.current, s)
}
