package metrics

import "github.com/prometheus/client_golang/prometheus"

// SchedulingMetrics exposes counters/histograms for availability flows.
type SchedulingMetrics struct {
	availabilityTotal *prometheus.CounterVec
	slotsReturned     prometheus.Histogram
	catalogTotal      *prometheus.CounterVec
}

func NewSchedulingMetrics(reg prometheus.Registerer) *SchedulingMetrics {
	m := &SchedulingMetrics{
		availabilityTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "scheduling",
			Name:      "availability_requests_total",
			Help:      "Total availability lookups",
		}, []string{"mode", "status"}),
		slotsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "portal",
			Subsystem: "scheduling",
			Name:      "slots_returned",
			Help:      "Deduplicated slots returned per availability lookup",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}),
		catalogTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "scheduling",
			Name:      "catalog_requests_total",
			Help:      "Total provider catalog lookups",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.availabilityTotal, m.slotsReturned, m.catalogTotal)
	return m
}

func (m *SchedulingMetrics) ObserveAvailability(mode, status string, slots int) {
	if m == nil {
		return
	}
	m.availabilityTotal.WithLabelValues(mode, status).Inc()
	if status == "ok" {
		m.slotsReturned.Observe(float64(slots))
	}
}

func (m *SchedulingMetrics) ObserveCatalog(status string) {
	if m == nil {
		return
	}
	m.catalogTotal.WithLabelValues(status).Inc()
}

// PricingMetrics exposes counters for price quote resolution.
type PricingMetrics struct {
	quotesTotal *prometheus.CounterVec
	zeroQuotes  prometheus.Counter
}

func NewPricingMetrics(reg prometheus.Registerer) *PricingMetrics {
	m := &PricingMetrics{
		quotesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "pricing",
			Name:      "quotes_total",
			Help:      "Total price quotes by mode and rule source",
		}, []string{"mode", "source"}),
		zeroQuotes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "pricing",
			Name:      "zero_amount_quotes_total",
			Help:      "Quotes resolved to a zero amount",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.quotesTotal, m.zeroQuotes)
	return m
}

// ObserveQuote records one resolved quote. source is "product" when a
// subscription product matched, "legacy" otherwise.
func (m *PricingMetrics) ObserveQuote(mode, source string, amount float64) {
	if m == nil {
		return
	}
	m.quotesTotal.WithLabelValues(mode, source).Inc()
	if amount == 0 {
		m.zeroQuotes.Inc()
	}
}
