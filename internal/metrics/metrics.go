// Package metrics содержит prometheus-метрики сервиса.
//
// Метрики HTTP пишет middleware, метрики обращений к сервису генерации
// пишет ai.Client на границе fallback.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы обращений к сервису генерации.
const (
	OutcomeGenerated = "generated"
	OutcomeFallback  = "fallback"
)

var (
	// HTTPRequestsTotal считает запросы по шаблону маршрута, методу и статусу.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookfolio_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration измеряет длительность обработки запросов.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cookfolio_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30, 60},
		},
		[]string{"route", "method"},
	)

	// CompletionRequestsTotal считает обращения к сервису генерации по операции и исходу.
	CompletionRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookfolio_completion_requests_total",
			Help: "Total number of completion service calls by outcome",
		},
		[]string{"operation", "outcome"},
	)

	// CompletionBreakerState отражает состояние circuit breaker (0 closed, 1 half-open, 2 open).
	CompletionBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cookfolio_completion_breaker_state",
			Help: "Completion service circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
	)
)

// RecordHTTPRequest фиксирует завершённый HTTP запрос.
func RecordHTTPRequest(route, method, status string, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(route, method, status).Inc()
	HTTPRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// RecordCompletion фиксирует исход обращения к сервису генерации.
func RecordCompletion(operation string, fallback bool) {
	outcome := OutcomeGenerated
	if fallback {
		outcome = OutcomeFallback
	}
	CompletionRequestsTotal.WithLabelValues(operation, outcome).Inc()
}
