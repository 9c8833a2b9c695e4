package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PointsProcessed *prometheus.CounterVec
	ProviderErrors  prometheus.Counter
	RequestSeconds  *prometheus.HistogramVec
	ActiveWorkers   prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		PointsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geocart_points_processed_total",
			Help: "Total number of processed conversion points.",
		}, []string{"status"}),
		ProviderErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "geocart_provider_api_errors_total",
			Help: "Total number of errors received from the altitude provider API.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "geocart_elevation_request_duration_seconds",
			Help:    "Duration of requests to the altitude provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "geocart_active_workers",
			Help: "Current number of active workers processing points.",
		}),
	}
}
