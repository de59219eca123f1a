package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "realestate"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "external_requests_total", Help: "Outbound requests."},
		[]string{"service", "endpoint", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "external_request_duration_seconds",
			Help:    "Outbound request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "cache_events_total", Help: "Cache hits/misses/sets/dels/errors."},
		[]string{"cache", "event"}, // event: hit|miss|set|del|error
	)
	ChatIntents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "chat_intents_total", Help: "Answered chat messages by intent."},
		[]string{"intent"},
	)
	Valuations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "valuations_total", Help: "Property valuations by outcome."},
		[]string{"outcome"}, // ok|invalid
	)
	// ₹10 lakh up to ₹100 crore
	EstimatedValue = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "estimated_value_inr",
			Help:    "Distribution of property value estimates in rupees.",
			Buckets: prometheus.ExponentialBuckets(1e6, 2, 11),
		},
	)
)

// Serve starts a standalone metrics listener on addr and returns it so the
// caller can shut it down. Empty addr disables it and returns nil.
func Serve(reg *prometheus.Registry, addr string) *http.Server {
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
	return srv
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ExternalRequests, ExternalLatency, CacheEvents, ChatIntents, Valuations, EstimatedValue)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveExternal(service, endpoint string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(service, endpoint, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(service, endpoint).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del|error
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveIntent(intent string) { ChatIntents.WithLabelValues(intent).Inc() }

// ObserveEstimate counts a successful valuation and records its amount.
func ObserveEstimate(amount int64) {
	ObserveValuation(true)
	EstimatedValue.Observe(float64(amount))
}

func ObserveValuation(ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "invalid"
	}
	Valuations.WithLabelValues(outcome).Inc()
}
