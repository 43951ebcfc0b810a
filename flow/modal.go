package flow

import (
	"screenflow/chrome"
	"screenflow/host"
)

// PresentModal builds the flow and mounts it as a modal overlay on h. When
// the flow delivers its final result, callback is invoked and the overlay is
// dismissed. When cancellable, a Cancel button is installed on the root
// unit's navigation item; activating it dismisses the overlay without ever
// invoking callback.
//
// The dismiss and cancel closures hold h as a plain borrowed pointer: the
// presented flow never owns its presenter.
func PresentModal[A any](h *host.Host, nc NavigationController[A], cancellable bool, callback func(A)) {
	stack := nc.Build(func(a A, s *host.Stack) {
		callback(a)
		observer().FlowFinished(s.ID())
		h.Dismiss()
	})
	if cancellable {
		if root := stack.Root(); root != nil {
			flowID := stack.ID()
			root.NavigationItem().LeftButton = &chrome.BarButton{
				Title: chrome.TitleCancel,
				OnPress: func() {
					observer().FlowCancelled(flowID)
					h.Dismiss()
				},
			}
		}
	}
	h.Present(stack)
}

// ModalButton returns a bar button that presents nc as a cancellable modal
// each time it is pressed. The flow is rebuilt per press; presses after a
// dismissal start a fresh instance.
func ModalButton[A any](h *host.Host, title chrome.BarButtonTitle, nc NavigationController[A], callback func(A)) *chrome.BarButton {
	return &chrome.BarButton{
		Title: title,
		OnPress: func() {
			PresentModal(h, nc, true, callback)
		},
	}
}

// AddButton lifts a bare screen into a one-step modal flow behind the stock
// Add action.
func AddButton[A any](h *host.Host, s Screen[A], callback func(A)) *chrome.BarButton {
	return ModalButton(h, chrome.TitleAdd, FromScreen(s), callback)
}

// WithTrailingButton decorates a screen-constructing function with a trailing
// navigation action: for each input, the produced screen carries the produced
// button as its right bar button. Pure decoration; the continuation contract
// is untouched.
func WithTrailingButton[A, B any](next func(A) Screen[B], button func(A) *chrome.BarButton) func(A) Screen[B] {
	return func(a A) Screen[B] {
		s := next(a)
		s.NavigationItem.RightButton = button(a)
		return s
	}
}
