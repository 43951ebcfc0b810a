package flow

import "sync"

// Observer receives flow lifecycle notifications: one StepPushed per unit
// pushed onto a flow's stack, then exactly one of FlowFinished or
// FlowCancelled for modally presented flows. The flowID is the stack's
// instance ID. Implementations must be cheap; they run synchronously on the
// UI thread.
type Observer interface {
	StepPushed(flowID string, depth int)
	FlowFinished(flowID string)
	FlowCancelled(flowID string)
}

type nopObserver struct{}

func (nopObserver) StepPushed(string, int) {}
func (nopObserver) FlowFinished(string)    {}
func (nopObserver) FlowCancelled(string)   {}

var (
	obsMu  sync.RWMutex
	curObs Observer = nopObserver{}
)

// SetObserver installs the process-wide flow observer. Passing nil restores
// the no-op default.
func SetObserver(o Observer) {
	obsMu.Lock()
	defer obsMu.Unlock()
	if o == nil {
		o = nopObserver{}
	}
	curObs = o
}

func observer() Observer {
	obsMu.RLock()
	defer obsMu.RUnlock()
	return curObs
}
