package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/client_golang/prometheus"
)

// testutilGaugeValue reads the current value of a gauge without going
// through the HTTP exposition format, for fast unit assertions.
func testutilGaugeValue(g prometheus.Gauge) float64 {
	m := &dto.Metric{}
	if err := g.Write(m); err != nil {
		return 0
	}
	return m.GetGauge().GetValue()
}

func TestTestutilGaugeValueDefaultsToZero(t *testing.T) {
	r := NewRegistry()
	if got := testutilGaugeValue(r.BuildVerticesTotal); got != 0 {
		t.Errorf("fresh gauge = %v, want 0", got)
	}
}
