package ext

import (
	"slices"
	"sync"
	"time"

	"github.com/ib-77/fluent/pkg/fluent"
	"github.com/prometheus/client_golang/prometheus"
)

var _ fluent.Extension = (*Metrics)(nil)

// Metrics counts forwarded calls and observes their duration, labelled by
// method. Duration is measured from BeforeCall to the matching AfterCall;
// calls that fail never reach AfterCall and are counted as started only.
type Metrics struct {
	started  *prometheus.CounterVec
	finished *prometheus.CounterVec
	duration *prometheus.HistogramVec

	mu      sync.Mutex
	pending []pendingCall
}

const maxPending = 64

type pendingCall struct {
	method string
	at     time.Time
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		started: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "chain_calls_started_total",
				Help:      "Total number of forwarded chain calls",
			},
			[]string{"method"},
		),
		finished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "chain_calls_finished_total",
				Help:      "Total number of forwarded chain calls that returned",
			},
			[]string{"method"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "chain_call_duration_seconds",
				Help:      "Duration of forwarded chain calls",
			},
			[]string{"method"},
		),
	}

	for _, c := range []prometheus.Collector{m.started, m.finished, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) BeforeCall(method string, _ []any) {
	m.started.WithLabelValues(method).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	// calls that failed never pop their entry
	if len(m.pending) >= maxPending {
		m.pending = slices.Delete(m.pending, 0, 1)
	}
	m.pending = append(m.pending, pendingCall{method: method, at: time.Now()})
}

func (m *Metrics) AfterCall(method string, _ any) {
	m.finished.WithLabelValues(method).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.pending) - 1; i >= 0; i-- {
		if m.pending[i].method == method {
			m.duration.WithLabelValues(method).Observe(time.Since(m.pending[i].at).Seconds())
			m.pending = slices.Delete(m.pending, i, i+1)
			return
		}
	}
}

func (m *Metrics) Started() *prometheus.CounterVec {
	return m.started
}

func (m *Metrics) Finished() *prometheus.CounterVec {
	return m.finished
}

func (m *Metrics) Duration() *prometheus.HistogramVec {
	return m.duration
}
