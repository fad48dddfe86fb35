package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var IDsIssued = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "nextid_ids_issued_total",
	Help: "Number of identifiers handed out since process start.",
})
var HttpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "nextid_http_requests_total",
	Help: "HTTP requests by method and response status.",
}, []string{"method", "code"})
var HttpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "nextid_http_request_duration_seconds",
	Help:    "Time spent serving HTTP requests.",
	Buckets: prometheus.ExponentialBuckets(0.00005, 4, 10),
}, []string{"method"})

func init() {
	prometheus.MustRegister(IDsIssued)
	prometheus.MustRegister(HttpRequests)
	prometheus.MustRegister(HttpRequestDuration)
}
