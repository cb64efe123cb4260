// Package metrics provides observability hooks for translation runs.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics impose no cost and no nil checks when they are not
// configured. Watch mode swaps in the Prometheus implementation.
package metrics

import "time"

// Outcome enumerates terminal run results for counters.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// Recorder defines observability hooks for translation runs. Implementations
// must be safe to call from a single run goroutine; the Noop implementation
// is safe everywhere.
type Recorder interface {
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(o Outcome)
	AddLinesEmitted(n int)
	AddAliasesRegistered(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not
// configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) IncRunOutcome(Outcome)            {}
func (NoopRecorder) AddLinesEmitted(int)              {}
func (NoopRecorder) AddAliasesRegistered(int)         {}
