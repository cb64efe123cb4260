package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveRunDuration(150 * time.Millisecond)
	pr.IncRunOutcome(OutcomeSuccess)
	pr.IncRunOutcome(OutcomeSuccess)
	pr.IncRunOutcome(OutcomeFailed)
	pr.AddLinesEmitted(42)
	pr.AddAliasesRegistered(3)

	require.Equal(t, float64(2), testutil.ToFloat64(pr.runOutcomes.WithLabelValues("success")))
	require.Equal(t, float64(1), testutil.ToFloat64(pr.runOutcomes.WithLabelValues("failed")))
	require.Equal(t, float64(42), testutil.ToFloat64(pr.lines))
	require.Equal(t, float64(3), testutil.ToFloat64(pr.aliases))

	// Basic scrape to ensure metrics encode without panic.
	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.ObserveRunDuration(time.Second)
	pr.IncRunOutcome(OutcomeFailed)
	pr.AddLinesEmitted(1)
	pr.AddAliasesRegistered(1)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveRunDuration(time.Second)
	r.IncRunOutcome(OutcomeSuccess)
	r.AddLinesEmitted(10)
	r.AddAliasesRegistered(2)
}
