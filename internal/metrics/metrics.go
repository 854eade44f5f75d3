package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/aroundhq/aroundb/internal/health"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aroundb",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aroundb",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})

	// Domain metrics

	SignupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "aroundb",
		Name:      "signups_total",
		Help:      "Total successful user registrations.",
	})

	LoginsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "aroundb",
		Name:      "logins_total",
		Help:      "Total successful logins.",
	})

	CardsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "aroundb",
		Name:      "cards_created_total",
		Help:      "Total cards created.",
	})

	LikesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aroundb",
		Name:      "likes_total",
		Help:      "Total like/unlike operations applied.",
	}, []string{"action"})
)

func Register() {
	prometheus.MustRegister(
		HTTPRequestDuration,
		HTTPRequestsTotal,
		SignupsTotal,
		LoginsTotal,
		CardsCreatedTotal,
		LikesTotal,
	)
}

// NewServer serves /metrics plus liveness/readiness probes on a port
// separate from the API.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Liveness(r.Context()))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Readiness(r.Context()))
	})
	return &http.Server{Addr: addr, Handler: mux}
}

func writeHealth(w http.ResponseWriter, result health.HealthResult) {
	w.Header().Set("Content-Type", "application/json")
	if result.Status != "up" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(result)
}
