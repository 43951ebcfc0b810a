package flow

import (
	"fmt"
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"screenflow/host"
)

// probe is a minimal component whose interaction is driven directly from
// tests: calling complete stands in for the user finishing the unit.
type probe struct {
	host.Nav
	label    string
	complete func()
}

func (p *probe) Init() tea.Cmd                                { return nil }
func (p *probe) Update(msg tea.Msg) (host.Component, tea.Cmd) { return p, nil }
func (p *probe) View() string                                 { return p.label }

// intScreen builds a probe that yields value when completed. When log is
// non-nil, each build is recorded so tests can compare construction order.
func intScreen(label string, value int, log *[]string) Screen[int] {
	return NewScreen(func(k Continuation[int]) host.Component {
		if log != nil {
			*log = append(*log, "build "+label)
		}
		p := &probe{label: label}
		p.complete = func() { k(value) }
		return p
	})
}

// completeTop simulates the user finishing the top unit of a stack.
func completeTop(t *testing.T, s *host.Stack) {
	t.Helper()
	top, ok := s.Peek().(*probe)
	require.True(t, ok, "top of stack is not a probe")
	top.complete()
}

// labels returns the probe labels in push order.
func labels(s *host.Stack) []string {
	var out []string
	for _, c := range s.Components() {
		out = append(out, c.(*probe).label)
	}
	return out
}

func TestOneShot_DropsSecondFiring(t *testing.T) {
	var got []int
	k := OneShot(func(a int) { got = append(got, a) })
	k(1)
	k(2)
	require.Equal(t, []int{1}, got)
}

func TestScreenRun_AppliesNavigationItem(t *testing.T) {
	s := intScreen("a", 5, nil).WithTitle("Title")
	u := s.Run(func(int) {})
	require.Equal(t, "Title", u.NavigationItem().Title)
}

func TestScreenRun_IndependentUnits(t *testing.T) {
	s := intScreen("a", 5, nil)
	var first, second []int
	u1 := s.Run(func(a int) { first = append(first, a) })
	u2 := s.Run(func(a int) { second = append(second, a) })
	require.NotSame(t, u1, u2)

	u1.(*probe).complete()
	require.Equal(t, []int{5}, first)
	require.Empty(t, second, "completing one unit must not fire the other's continuation")
}

func TestMapScreen_Identity(t *testing.T) {
	s := intScreen("a", 5, nil)
	m := MapScreen(s, func(a int) int { return a })

	var got int
	u := m.Run(func(a int) { got = a })
	require.Equal(t, "a", u.(*probe).label, "mapping must build the wrapped unit")
	u.(*probe).complete()
	require.Equal(t, 5, got)
}

func TestMapScreen_Composition(t *testing.T) {
	g := func(a int) int { return a + 1 }
	f := strconv.Itoa

	var nested, composed string
	u1 := MapScreen(MapScreen(intScreen("a", 5, nil), g), f).Run(func(s string) { nested = s })
	u2 := MapScreen(intScreen("a", 5, nil), func(a int) string { return f(g(a)) }).Run(func(s string) { composed = s })

	u1.(*probe).complete()
	u2.(*probe).complete()
	require.Equal(t, "6", nested)
	require.Equal(t, nested, composed)
}

func TestFromScreen_SeedsStackAndForwardsResult(t *testing.T) {
	nc := FromScreen(intScreen("root", 5, nil))

	var got int
	var gotStack *host.Stack
	st := nc.Build(func(a int, s *host.Stack) {
		got = a
		gotStack = s
	})
	require.Equal(t, 1, st.Len())
	require.Equal(t, []string{"root"}, labels(st))

	completeTop(t, st)
	require.Equal(t, 5, got)
	require.Same(t, st, gotStack, "the continuation must receive the flow's own stack")
}

func TestControllerRun_DiscardsResult(t *testing.T) {
	st := FromScreen(intScreen("root", 5, nil)).Run()
	require.Equal(t, 1, st.Len())
	completeTop(t, st) // must not panic; result is silently dropped
	require.Equal(t, 1, st.Len())
}

func TestMapController_LeavesStackUntouched(t *testing.T) {
	nc := MapController(FromScreen(intScreen("root", 5, nil)), strconv.Itoa)

	var got string
	st := nc.Build(func(s string, _ *host.Stack) { got = s })
	require.Equal(t, []string{"root"}, labels(st))
	completeTop(t, st)
	require.Equal(t, "5", got)
}

func TestSequence_ThreadsResultIntoNextScreen(t *testing.T) {
	var log []string
	nc := Sequence(FromScreen(intScreen("root", 5, &log)), func(a int) Screen[int] {
		return intScreen(fmt.Sprintf("next(%d)", a), a*2, &log)
	})

	var got int
	st := nc.Build(func(b int, _ *host.Stack) { got = b })
	require.Equal(t, 1, st.Len(), "next unit must not be pushed before the root fires")

	completeTop(t, st)
	require.Equal(t, []string{"build root", "build next(5)"}, log)
	require.Equal(t, []string{"root", "next(5)"}, labels(st))

	completeTop(t, st)
	require.Equal(t, 10, got)
}

func TestSequence_PushOrder(t *testing.T) {
	step := func(n int) func(int) Screen[int] {
		return func(a int) Screen[int] {
			return intScreen(fmt.Sprintf("s%d", n), a, nil)
		}
	}
	nc := Sequence(Sequence(FromScreen(intScreen("s1", 1, nil)), step(2)), step(3))

	st := nc.Run()
	completeTop(t, st)
	completeTop(t, st)
	completeTop(t, st)
	require.Equal(t, []string{"s1", "s2", "s3"}, labels(st))
}

func TestSequence_Associativity(t *testing.T) {
	f := func(log *[]string) func(int) Screen[int] {
		return func(a int) Screen[int] { return intScreen(fmt.Sprintf("f(%d)", a), a+1, log) }
	}
	g := func(log *[]string) func(int) Screen[int] {
		return func(a int) Screen[int] { return intScreen(fmt.Sprintf("g(%d)", a), a*2, log) }
	}

	// Left grouping: (nc >>> f) >>> g on one stack.
	var leftLog []string
	leftRes := -1
	left := Sequence(Sequence(FromScreen(intScreen("root", 1, &leftLog)), f(&leftLog)), g(&leftLog))
	leftStack := left.Build(func(b int, _ *host.Stack) { leftRes = b })
	completeTop(t, leftStack)
	completeTop(t, leftStack)
	completeTop(t, leftStack)

	// Right grouping: nc >>> (a => f(a) >>> g), the inner chain lifted into
	// its own flow whose result feeds the same final continuation.
	var rightLog []string
	rightRes := -1
	var sub *host.Stack
	rightStack := FromScreen(intScreen("root", 1, &rightLog)).Build(func(a int, _ *host.Stack) {
		inner := Sequence(FromScreen(f(&rightLog)(a)), g(&rightLog))
		sub = inner.Build(func(b int, _ *host.Stack) { rightRes = b })
	})
	completeTop(t, rightStack)
	completeTop(t, sub)
	completeTop(t, sub)

	require.Equal(t, leftRes, rightRes, "groupings must agree on the final result")
	require.Equal(t, leftLog, rightLog, "groupings must build the same screens in the same order")
	require.Equal(t, labels(leftStack), append(labels(rightStack), labels(sub)...),
		"groupings must push the same units in the same order")
}
