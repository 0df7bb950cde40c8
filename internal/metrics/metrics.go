// Package metrics defines the Prometheus collectors of the search engine and
// exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcomes used as the result_type label.
const (
	ResultHit  = "hit"
	ResultZero = "zero_result"
)

// Metrics holds all Prometheus collectors on a private registry, so several
// engines in one process (e.g. in tests) never clash on registration.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal  *prometheus.CounterVec
	SearchQueriesTotal *prometheus.CounterVec
	SearchResultsCount *prometheus.HistogramVec
	DocsIndexedTotal   *prometheus.CounterVec
	IndexDocumentCount *prometheus.GaugeVec
}

// New creates and registers all metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, route, and status.",
			},
			[]string{"method", "route", "status"},
		),
		SearchQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_queries_total",
				Help: "Total search queries by index and result type (hit, zero_result).",
			},
			[]string{"index", "result_type"},
		),
		SearchResultsCount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "search_results_count",
				Help:    "Number of results returned per search query.",
				Buckets: []float64{0, 1, 2, 3, 4, 5, 10},
			},
			[]string{"index"},
		),
		DocsIndexedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docs_indexed_total",
				Help: "Total documents indexed, including replacements.",
			},
			[]string{"index"},
		),
		IndexDocumentCount: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "index_document_count",
				Help: "Number of distinct documents per index.",
			},
			[]string{"index"},
		),
	}

	m.registry.MustRegister(
		m.HTTPRequestsTotal,
		m.SearchQueriesTotal,
		m.SearchResultsCount,
		m.DocsIndexedTotal,
		m.IndexDocumentCount,
	)

	return m
}

// ObserveDocumentsIndexed records added documents and the resulting corpus size.
func (m *Metrics) ObserveDocumentsIndexed(indexName string, added, documentCount int) {
	if m == nil {
		return
	}
	m.DocsIndexedTotal.WithLabelValues(indexName).Add(float64(added))
	m.IndexDocumentCount.WithLabelValues(indexName).Set(float64(documentCount))
}

// ObserveSearch records one query and the number of documents it returned.
func (m *Metrics) ObserveSearch(indexName string, hits int) {
	if m == nil {
		return
	}
	resultType := ResultHit
	if hits == 0 {
		resultType = ResultZero
	}
	m.SearchQueriesTotal.WithLabelValues(indexName, resultType).Inc()
	m.SearchResultsCount.WithLabelValues(indexName).Observe(float64(hits))
}

// ObserveHTTPRequest records one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// ForgetIndex drops the per-index series of a deleted index.
func (m *Metrics) ForgetIndex(indexName string) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{"index": indexName}
	m.SearchQueriesTotal.DeletePartialMatch(labels)
	m.SearchResultsCount.DeletePartialMatch(labels)
	m.DocsIndexedTotal.DeletePartialMatch(labels)
	m.IndexDocumentCount.DeletePartialMatch(labels)
}

// Handler returns the Prometheus scrape HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
