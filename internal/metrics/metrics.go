package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP metrics
var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Ledger metrics
var (
	activitiesSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rewards_activities_submitted_total",
		Help: "Activities submitted for approval.",
	})

	decisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rewards_decisions_total",
			Help: "Review decisions recorded, by subject and outcome.",
		},
		[]string{"subject", "decision"},
	)

	pointsEncashed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rewards_points_encashed_total",
		Help: "Points paid out through approved encashment requests.",
	})

	sampleUsersDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rewards_sample_users_deleted_total",
		Help: "Sample user accounts removed by cleanup.",
	})
)

var registerOnce sync.Once

// Init registers all collectors with the default registry. Safe to call
// more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpInFlight, httpRequestsTotal, httpRequestDuration,
			activitiesSubmitted, decisionsTotal, pointsEncashed, sampleUsersDeleted,
		)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Instrument records request count, latency and in-flight requests. The
// route label is the mux path template so ids do not explode cardinality.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInFlight.Inc()
		defer httpInFlight.Dec()
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := routeTemplate(r)
		status := strconv.Itoa(sw.code)
		httpRequestDuration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
	})
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

func ActivitySubmitted() {
	activitiesSubmitted.Inc()
}

// Decision counts a review outcome. subject is one of activity,
// encashment, registration or profile_change.
func Decision(subject, decision string) {
	decisionsTotal.WithLabelValues(subject, decision).Inc()
}

func PointsEncashed(points int32) {
	pointsEncashed.Add(float64(points))
}

func SampleUsersDeleted(n int64) {
	sampleUsersDeleted.Add(float64(n))
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
