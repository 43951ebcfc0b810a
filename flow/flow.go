package flow

import (
	"go.uber.org/atomic"

	"screenflow/chrome"
	"screenflow/host"
)

// Continuation delivers a step's result. The contract is at most one
// invocation per built unit: exactly when that unit's interaction completes,
// never before the unit exists, never after it is torn down.
type Continuation[A any] func(A)

// OneShot guards a continuation so it fires at most once. Later invocations
// are dropped, not reported; misuse of a continuation is not an error surface.
// Leaf screens wrap their continuations with this to keep the one-shot
// invariant even under sloppy event handling.
func OneShot[A any](k Continuation[A]) Continuation[A] {
	var fired atomic.Bool
	return func(a A) {
		if fired.CompareAndSwap(false, true) {
			k(a)
		}
	}
}

// Screen is a deferred builder for one presentable unit. Build constructs a
// fresh unit wired to the given continuation; NavigationItem is the chrome
// stamped onto that unit when Run is called. A Screen value is stateless:
// building twice yields two independent units with independent continuations.
type Screen[A any] struct {
	Build          func(Continuation[A]) host.Component
	NavigationItem *chrome.NavigationItem
}

// NewScreen wraps a build function into a Screen with empty chrome.
func NewScreen[A any](build func(Continuation[A]) host.Component) Screen[A] {
	return Screen[A]{
		Build:          build,
		NavigationItem: &chrome.NavigationItem{},
	}
}

// WithTitle sets the screen's navigation-bar title.
func (s Screen[A]) WithTitle(title string) Screen[A] {
	s.NavigationItem.Title = title
	return s
}

// Run builds the unit, registers k as its completion handler, and applies the
// screen's navigation item to it. This is the only point at which a Screen
// has any effect.
func (s Screen[A]) Run(k Continuation[A]) host.Component {
	c := s.Build(k)
	c.SetNavigationItem(s.NavigationItem)
	return c
}

// NavigationController is a deferred builder for a whole navigation-stack
// flow. Build constructs the stack and wires the flow's terminal continuation,
// which receives the final result together with the live stack.
type NavigationController[A any] struct {
	Build func(func(A, *host.Stack)) *host.Stack
}

// Run builds the flow with a discarding terminal continuation, for callers
// that present the stack itself and never observe the final result.
func (nc NavigationController[A]) Run() *host.Stack {
	return nc.Build(func(A, *host.Stack) {})
}

// FromScreen lifts a single screen into a one-step flow: a fresh stack seeded
// with the screen's unit, whose completion forwards (result, stack).
func FromScreen[A any](s Screen[A]) NavigationController[A] {
	return NavigationController[A]{
		Build: func(k func(A, *host.Stack)) *host.Stack {
			stack := host.NewStack()
			unit := s.Run(func(a A) {
				k(a, stack)
			})
			stack.Push(unit, false)
			observer().StepPushed(stack.ID(), stack.Len())
			return stack
		},
	}
}
