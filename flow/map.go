package flow

import "screenflow/host"

// MapScreen transforms a screen's eventual result with f. The wrapped unit is
// the one built; its single firing is forwarded through f, so the one-shot
// invariant carries over. Functor laws hold: mapping the identity changes
// nothing observable, and mapping g then f equals mapping their composition.
func MapScreen[A, B any](s Screen[A], f func(A) B) Screen[B] {
	return Screen[B]{
		NavigationItem: s.NavigationItem,
		Build: func(k Continuation[B]) host.Component {
			return s.Build(func(a A) {
				k(f(a))
			})
		},
	}
}

// MapController transforms a flow's final result with f, leaving the stack
// and every intermediate step untouched.
func MapController[A, B any](nc NavigationController[A], f func(A) B) NavigationController[B] {
	return NavigationController[B]{
		Build: func(k func(B, *host.Stack)) *host.Stack {
			return nc.Build(func(a A, s *host.Stack) {
				k(f(a), s)
			})
		},
	}
}
