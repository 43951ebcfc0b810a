// Package flow provides combinators for composing multi-step, typed UI flows
// out of individually-presentable screens.
//
// Core abstractions:
//   - Screen[A]: a blueprint for one presentable unit yielding a typed result
//     through a one-shot continuation
//   - NavigationController[A]: a blueprint for a navigation-stack host built
//     from one or more screens
//   - MapScreen / MapController: functorial mapping over the result type
//   - Sequence: monadic chaining; the result of one step determines the next
//     screen, pushed onto the same live stack
//   - PresentModal: mounts a flow as a dismissible overlay with an optional
//     cancel path
//
// Blueprints are immutable values; nothing is built and no side effect occurs
// until Run or Build is called. Calling Run twice yields two independent flow
// instances sharing no mutable state.
package flow
