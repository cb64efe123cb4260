package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	runDuration prom.Histogram
	runOutcomes *prom.CounterVec
	lines       prom.Counter
	aliases     prom.Counter
}

// NewPrometheusRecorder constructs and registers the lbpc metrics on reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "lbpc",
			Name:      "run_duration_seconds",
			Help:      "Total duration of one translation run",
			Buckets:   prom.DefBuckets,
		}),
		runOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "lbpc",
			Name:      "run_outcomes_total",
			Help:      "Translation run outcomes by final status",
		}, []string{"outcome"}),
		lines: prom.NewCounter(prom.CounterOpts{
			Namespace: "lbpc",
			Name:      "lines_emitted_total",
			Help:      "Output lines emitted across all runs",
		}),
		aliases: prom.NewCounter(prom.CounterOpts{
			Namespace: "lbpc",
			Name:      "aliases_registered_total",
			Help:      "Alias directives registered across all runs",
		}),
	}
	reg.MustRegister(pr.runDuration, pr.runOutcomes, pr.lines, pr.aliases)
	return pr
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(o Outcome) {
	if p == nil || p.runOutcomes == nil {
		return
	}
	p.runOutcomes.WithLabelValues(string(o)).Inc()
}

func (p *PrometheusRecorder) AddLinesEmitted(n int) {
	if p == nil || p.lines == nil {
		return
	}
	p.lines.Add(float64(n))
}

func (p *PrometheusRecorder) AddAliasesRegistered(n int) {
	if p == nil || p.aliases == nil {
		return
	}
	p.aliases.Add(float64(n))
}
