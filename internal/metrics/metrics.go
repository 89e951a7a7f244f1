package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers crawl instrumentation on a private registry.
type Collector struct {
	registry *prometheus.Registry
	handler  http.Handler

	pagesFetched    *prometheus.CounterVec
	pageRetries     *prometheus.CounterVec
	pagesFailed     *prometheus.CounterVec
	recordsWritten  *prometheus.CounterVec
	adapterFailures *prometheus.CounterVec
	pagesInFlight   prometheus.Gauge
}

// New registers the crawl collectors.
func New() *Collector {
	registry := prometheus.NewRegistry()

	pagesFetched := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "crawl_pages_fetched_total",
		Help: "Pages fetched and handed to an adapter handler",
	}, []string{"adapter"})

	pageRetries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "crawl_page_retries_total",
		Help: "Page fetches re-queued after a transient failure",
	}, []string{"adapter"})

	pagesFailed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "crawl_pages_failed_total",
		Help: "Pages abandoned after exhausting the retry budget",
	}, []string{"adapter"})

	recordsWritten := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_records_written_total",
		Help: "Records persisted through the content store",
	}, []string{"entity"})

	adapterFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "adapter_failures_total",
		Help: "Adapter invocations that ended in a fatal error",
	}, []string{"adapter"})

	pagesInFlight := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "crawl_pages_in_flight",
		Help: "Pages currently being fetched or processed",
	})

	registry.MustRegister(pagesFetched, pageRetries, pagesFailed, recordsWritten, adapterFailures, pagesInFlight)

	return &Collector{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		pagesFetched:    pagesFetched,
		pageRetries:     pageRetries,
		pagesFailed:     pagesFailed,
		recordsWritten:  recordsWritten,
		adapterFailures: adapterFailures,
		pagesInFlight:   pagesInFlight,
	}
}

// Handler serves the registry in Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return c.handler
}

// PageFetched counts a successfully processed page.
func (c *Collector) PageFetched(adapter string) {
	c.pagesFetched.WithLabelValues(adapter).Inc()
}

// PageRetried counts a transient page failure scheduled for retry.
func (c *Collector) PageRetried(adapter string) {
	c.pageRetries.WithLabelValues(adapter).Inc()
}

// PageFailed counts a page dropped after its retry budget.
func (c *Collector) PageFailed(adapter string) {
	c.pagesFailed.WithLabelValues(adapter).Inc()
}

// PageStarted and PageDone track the in-flight gauge.
func (c *Collector) PageStarted() { c.pagesInFlight.Inc() }

// PageDone decrements the in-flight gauge.
func (c *Collector) PageDone() { c.pagesInFlight.Dec() }

// RecordWrite counts a persisted record. Satisfies store.Recorder.
func (c *Collector) RecordWrite(entity string) {
	c.recordsWritten.WithLabelValues(entity).Inc()
}

// AdapterFailure counts a fatal adapter error absorbed by the orchestrator.
func (c *Collector) AdapterFailure(adapter string) {
	c.adapterFailures.WithLabelValues(adapter).Inc()
}

// WriteCounts gathers the per-entity record totals for the end-of-run summary.
func (c *Collector) WriteCounts() map[string]int {
	out := map[string]int{}
	families, err := c.registry.Gather()
	if err != nil {
		return out
	}
	for _, family := range families {
		if family.GetName() != "store_records_written_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "entity" {
					out[label.GetValue()] = int(metric.GetCounter().GetValue())
				}
			}
		}
	}
	return out
}
