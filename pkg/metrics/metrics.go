// Package metrics holds prometheus collectors for quiz generation and the http layer
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts http requests by method, route pattern and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsquiz_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestDuration tracks http request latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsquiz_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// QuizRequestsTotal counts quiz generations by category and outcome
	QuizRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsquiz_requests_total",
			Help: "Total number of quiz generation requests",
		},
		[]string{"category", "status"},
	)

	// FeedFetchDuration tracks how long fetching and parsing a feed takes
	FeedFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsquiz_feed_fetch_duration_seconds",
			Help:    "Feed fetch and parse duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"category"},
	)

	// QuestionsGenerated tracks the number of questions in generated quizzes
	QuestionsGenerated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "newsquiz_questions_generated",
			Help:    "Number of questions in a generated quiz",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		},
	)
)

// quiz outcome labels
const (
	StatusOK           = "ok"
	StatusFetchError   = "fetch_error"
	StatusInsufficient = "insufficient"
)

// statusRecorder captures the status code written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration. Path label is the matched route pattern
// to keep label cardinality bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(rec.status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
