// AngelaMos | 2026
// metrics.go

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bookhaven"

type Collector struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	authzDenials  *prometheus.CounterVec
	cascadeWrites prometheus.Counter
}

// NewCollector registers the HTTP, authorization and cascade metrics plus
// the go runtime and process collectors on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authzDenials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authz_denials_total",
			Help:      "Requests rejected by an access policy.",
		}, []string{"reason"}),
		cascadeWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "book_cascade_updates_total",
			Help:      "Book documents modified by provider profile cascades.",
		}),
	}

	reg.MustRegister(
		c.requests,
		c.duration,
		c.authzDenials,
		c.cascadeWrites,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

func (c *Collector) ObserveRequest(
	method, route string,
	status int,
	duration time.Duration,
) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.duration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordAuthzDenial(reason string) {
	c.authzDenials.WithLabelValues(reason).Inc()
}

// RecordCascade counts books rewritten when a provider edits their profile.
func (c *Collector) RecordCascade(modified int64) {
	c.cascadeWrites.Add(float64(modified))
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
