package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestSchedulingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSchedulingMetrics(reg)
	m.ObserveAvailability("inperson", "ok", 12)
	m.ObserveAvailability("telemedicine", "error", 0)
	m.ObserveCatalog("ok")
}

func TestPricingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPricingMetrics(reg)
	m.ObserveQuote("telemedicine", "legacy", 0)
	m.ObserveQuote("inperson", "product", 100)
}

func TestMetricsNilSafe(t *testing.T) {
	var s *SchedulingMetrics
	s.ObserveAvailability("inperson", "ok", 1)
	s.ObserveCatalog("error")

	var p *PricingMetrics
	p.ObserveQuote("inperson", "legacy", 175)
}
