package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "karaokesh_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	rpcRequests *prometheus.CounterVec
	rpcLatency  *prometheus.HistogramVec
	rpcLimited  *prometheus.CounterVec

	saveTotal   *prometheus.CounterVec
	saveLatency *prometheus.HistogramVec

	capacityRejections prometheus.Counter
	playbackTotal      *prometheus.CounterVec
	activeSessions     prometheus.Gauge

	catalogReloads *prometheus.CounterVec
)

// Init registers the server metrics with the default registry.
func Init() {
	registerOnce.Do(func() {
		rpcRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "rpc_requests_total",
				Help: "Total RPCs by method and status code",
			},
			[]string{"method", "code"},
		)
		rpcLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "rpc_latency_seconds",
				Help:    "RPC latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		)
		rpcLimited = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "rpc_rate_limited_total",
				Help: "Total RPCs rejected by the rate limiter",
			},
			[]string{"method"},
		)

		saveTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "store_save_total",
				Help: "Total session collection saves by result",
			},
			[]string{"result"},
		)
		saveLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "store_save_latency_seconds",
				Help:    "Session collection save latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		capacityRejections = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "device_capacity_rejections_total",
				Help: "Total device registrations rejected at capacity",
			},
		)
		playbackTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "playback_total",
				Help: "Total videos served by source",
			},
			[]string{"source"},
		)
		activeSessions = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "active_sessions",
				Help: "Sessions currently held by the registry",
			},
		)

		catalogReloads = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "catalog_reloads_total",
				Help: "Total catalog reloads by result",
			},
			[]string{"result"},
		)

		prometheus.MustRegister(
			rpcRequests,
			rpcLatency,
			rpcLimited,
			saveTotal,
			saveLatency,
			capacityRejections,
			playbackTotal,
			activeSessions,
			catalogReloads,
		)
	})
}

// ObserveRPC records one finished RPC.
func ObserveRPC(method, code string, duration time.Duration) {
	if method == "" {
		method = "unknown"
	}
	if rpcRequests != nil {
		rpcRequests.WithLabelValues(method, code).Inc()
	}
	if rpcLatency != nil {
		rpcLatency.WithLabelValues(method).Observe(duration.Seconds())
	}
}

func IncRateLimited(method string) {
	if rpcLimited != nil {
		rpcLimited.WithLabelValues(method).Inc()
	}
}

// ObserveSave records a SaveAll call.
func ObserveSave(err error, duration time.Duration) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if saveTotal != nil {
		saveTotal.WithLabelValues(result).Inc()
	}
	if saveLatency != nil {
		saveLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

func IncCapacityRejection() {
	if capacityRejections != nil {
		capacityRejections.Inc()
	}
}

func IncPlayback(source string) {
	if source == "" {
		source = "unknown"
	}
	if playbackTotal != nil {
		playbackTotal.WithLabelValues(source).Inc()
	}
}

func SetActiveSessions(n int) {
	if activeSessions != nil {
		activeSessions.Set(float64(n))
	}
}

func ObserveCatalogReload(err error) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if catalogReloads != nil {
		catalogReloads.WithLabelValues(result).Inc()
	}
}
