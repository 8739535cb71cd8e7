package ext

import (
	"slices"
	"sync"

	"github.com/ib-77/fluent/pkg/fluent"
)

var _ fluent.Extension = (*Recorder)(nil)

type Phase string

const (
	PhaseBefore Phase = "before"
	PhaseAfter  Phase = "after"
)

// Call is one recorded notification. Args is set for PhaseBefore and
// Result for PhaseAfter.
type Call struct {
	Phase  Phase
	Method string
	Args   []any
	Result any
}

// Recorder remembers notifications in arrival order.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

func (r *Recorder) BeforeCall(method string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Phase: PhaseBefore, Method: method, Args: slices.Clone(args)})
}

func (r *Recorder) AfterCall(method string, result any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Phase: PhaseAfter, Method: method, Result: result})
}

func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

// Methods lists method names of the given phase, in order.
func (r *Recorder) Methods(phase Phase) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		if c.Phase == phase {
			names = append(names, c.Method)
		}
	}
	return names
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
