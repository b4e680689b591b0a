// Package metrics collects Prometheus metrics about searches and API calls.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Search outcomes.
const (
	OutcomeResults  = "results"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeInvalid  = "invalid"
	OutcomeStale    = "stale"
)

// Collector records search metrics. A nil *Collector is valid and records
// nothing.
type Collector struct {
	gatherer      prometheus.Gatherer
	searches      *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
}

// NewCollector creates a Collector on a private registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := newCollector(reg)
	c.gatherer = reg

	return c
}

func newCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ghexplorer_searches_total",
			Help: "Searches by outcome",
		}, []string{"outcome"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ghexplorer_fetch_duration_seconds",
			Help:    "GitHub API call latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint", "result"}),
	}

	reg.MustRegister(c.searches, c.fetchDuration)

	return c
}

// RecordSearch counts a finished search.
func (c *Collector) RecordSearch(outcome string) {
	if c == nil {
		return
	}

	c.searches.WithLabelValues(outcome).Inc()
}

// ObserveFetch records the latency of one API call.
func (c *Collector) ObserveFetch(endpoint string, d time.Duration, err error) {
	if c == nil {
		return
	}

	result := "ok"
	if err != nil {
		result = "error"
	}

	c.fetchDuration.WithLabelValues(endpoint, result).Observe(d.Seconds())
}

// WriteText writes every collected metric in the Prometheus text format.
func (c *Collector) WriteText(w io.Writer) error {
	if c == nil || c.gatherer == nil {
		return nil
	}

	families, err := c.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	return nil
}
