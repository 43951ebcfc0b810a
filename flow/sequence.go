package flow

import "screenflow/host"

// Sequence extends a flow by one step: when the prior flow delivers its
// result, the next screen is constructed from that result, pushed onto the
// same live stack as an animated push, and its completion becomes the new
// flow's result.
//
// The push happens only after the driving step's continuation fires, so units
// appear on the stack in the exact order their results were produced.
// Sequencing is associative: regrouping chained steps changes neither the
// order of pushes nor the final result.
func Sequence[A, B any](nc NavigationController[A], next func(A) Screen[B]) NavigationController[B] {
	return NavigationController[B]{
		Build: func(k func(B, *host.Stack)) *host.Stack {
			return nc.Build(func(a A, stack *host.Stack) {
				unit := next(a).Run(func(b B) {
					k(b, stack)
				})
				stack.Push(unit, true)
				observer().StepPushed(stack.ID(), stack.Len())
			})
		},
	}
}
