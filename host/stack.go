package host

import "github.com/google/uuid"

// entry is one pushed unit plus the animation flag it was pushed with.
type entry struct {
	component Component
	animated  bool
}

// Stack is the live navigation stack for one flow instance. Units appear in
// the exact order their constructing continuations fired. It is exclusively
// owned by that flow: only the sequencing combinator pushes, and only the
// host pops or dismisses.
type Stack struct {
	id      string
	entries []entry
}

// NewStack creates an empty stack with a fresh instance ID.
func NewStack() *Stack {
	return &Stack{id: uuid.NewString()}
}

// ID returns the flow-instance identifier, used for trace correlation.
func (s *Stack) ID() string {
	return s.id
}

// Push adds a unit to the top of the stack.
func (s *Stack) Push(c Component, animated bool) {
	s.entries = append(s.entries, entry{component: c, animated: animated})
}

// Pop removes and returns the top unit.
// Returns nil if the stack is empty.
func (s *Stack) Pop() Component {
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top.component
}

// Peek returns the top unit without removing it.
func (s *Stack) Peek() Component {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1].component
}

// Root returns the bottom-most unit, the one seeded by the flow's first step.
// Returns nil if the stack is empty.
func (s *Stack) Root() Component {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[0].component
}

// Len returns the number of units on the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Components returns the units in push order, oldest first.
func (s *Stack) Components() []Component {
	out := make([]Component, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.component
	}
	return out
}

// setTop replaces the top unit in place; used by the host after Update.
func (s *Stack) setTop(c Component) {
	if len(s.entries) == 0 {
		return
	}
	s.entries[len(s.entries)-1].component = c
}
