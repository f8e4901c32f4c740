package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RecommendationRequests *prometheus.CounterVec
	ProviderErrors         prometheus.Counter
	ProviderSeconds        *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RecommendationRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests handled.",
		}, []string{"status"}),
		ProviderErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "places_provider_api_errors_total",
			Help: "Total number of errors received from the Places API.",
		}),
		ProviderSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "places_provider_request_duration_seconds",
			Help:    "Duration of requests to the Places API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}
