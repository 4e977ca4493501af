package rroute

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rohanthewiz/rroute/core/ids"
)

// Outcome is what a resolution pass decided for one fragment.
type Outcome int

const (
	OutcomeShown Outcome = iota + 1
	OutcomeHidden
	OutcomeSuppressed // a sibling already claimed the parent's match
)

func (o Outcome) String() string {
	switch o {
	case OutcomeShown:
		return "shown"
	case OutcomeHidden:
		return "hidden"
	case OutcomeSuppressed:
		return "suppressed"
	default:
		return "unknown"
	}
}

// Resolution describes one fragment evaluation.
type Resolution struct {
	ID      ids.ID
	Name    string
	Variant Variant
	Pattern string
	Outcome Outcome
}

// Sink observes every fragment evaluation. It has no effect on resolution.
type Sink interface {
	Observe(Resolution)
}

type nopSink struct{}

func (nopSink) Observe(Resolution) {}

// CountingSink counts evaluations per fragment id.
type CountingSink struct {
	mu     sync.Mutex
	counts map[ids.ID]int
	total  int
}

func NewCountingSink() *CountingSink {
	return &CountingSink{counts: make(map[ids.ID]int)}
}

func (s *CountingSink) Observe(r Resolution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[r.ID]++
	s.total++
}

// Count returns how many times the fragment was evaluated.
func (s *CountingSink) Count(id ids.ID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[id]
}

// Total returns the number of evaluations across all fragments.
func (s *CountingSink) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// PrometheusSink exports evaluation counts by variant and outcome.
type PrometheusSink struct {
	resolutions *prometheus.CounterVec
}

// NewPrometheusSink registers the sink's collectors on reg.
func NewPrometheusSink(reg prometheus.Registerer) (*PrometheusSink, error) {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rroute_fragment_resolutions_total",
		Help: "Fragment evaluations by variant and outcome",
	}, []string{"variant", "outcome"})

	if err := reg.Register(vec); err != nil {
		return nil, err
	}
	return &PrometheusSink{resolutions: vec}, nil
}

func (s *PrometheusSink) Observe(r Resolution) {
	s.resolutions.WithLabelValues(r.Variant.String(), r.Outcome.String()).Inc()
}

// Collector exposes the underlying counter vector.
func (s *PrometheusSink) Collector() *prometheus.CounterVec {
	return s.resolutions
}
