package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/okian/salesboard/pkg/metrics"
)

// errorClass labels a failed response for the error counters.
type errorClass struct {
	kind     string
	severity string
}

// classify maps a status code to its error class. ok is false for success
// and redirects.
func classify(status int) (errorClass, bool) {
	switch {
	case status < http.StatusBadRequest:
		return errorClass{}, false
	case status == http.StatusNotFound:
		return errorClass{kind: "not_found", severity: "low"}, true
	case status == http.StatusTooManyRequests:
		return errorClass{kind: "rate_limit", severity: "low"}, true
	case status == http.StatusUnprocessableEntity:
		return errorClass{kind: "unprocessable", severity: "medium"}, true
	case status == http.StatusServiceUnavailable:
		return errorClass{kind: "unavailable", severity: "high"}, true
	case status >= http.StatusInternalServerError:
		return errorClass{kind: "server_error", severity: "high"}, true
	default:
		return errorClass{kind: "client_error", severity: "medium"}, true
	}
}

// MetricsMiddleware records request counts, latency and error classes for
// endpoint.
func MetricsMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		ms := float64(time.Since(start).Microseconds()) / 1000
		code := strconv.Itoa(rec.status)
		metrics.RecordHTTPRequest(endpoint, r.Method, code)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, code, ms)

		class, failed := classify(rec.status)
		if !failed {
			return
		}
		metrics.RecordErrorByEndpoint(endpoint, r.Method, class.kind)
		metrics.RecordErrorByType(class.kind, class.severity)
		metrics.RecordErrorByComponent("http", class.kind)
		metrics.RecordErrorLatency("http", class.kind, ms)
	}
}

// statusRecorder remembers the first status written.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wroteHeader = true
	return s.ResponseWriter.Write(b)
}
