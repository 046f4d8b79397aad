package client

import (
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"strconv"
	"time"
)

// metrics holds the collectors updated on every Paystack request.
type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// newMetrics registers the client collectors in reg. It returns nil if reg is nil.
// Collectors already registered by another Client are reused.
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "paystack",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Number of requests sent to the Paystack API by operation and status code.",
		}, []string{"operation", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "paystack",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Duration of requests sent to the Paystack API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	m.requests = register(reg, m.requests).(*prometheus.CounterVec)
	m.duration = register(reg, m.duration).(*prometheus.HistogramVec)
	return m
}

func register(reg prometheus.Registerer, c prometheus.Collector) prometheus.Collector {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector
		}
		panic(err)
	}
	return c
}

// observe records a request to the given operation.
func (m *metrics) observe(operation string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(operation, strconv.Itoa(code)).Inc()
	m.duration.WithLabelValues(operation).Observe(d.Seconds())
}
