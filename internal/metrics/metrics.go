package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	ItemsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsCreated,
			Help: HelpTextItemsCreated,
		},
	)

	ItemsUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsUpdated,
			Help: HelpTextItemsUpdated,
		},
	)

	ItemsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsDeleted,
			Help: HelpTextItemsDeleted,
		},
	)

	FiltersPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFiltersPerformed,
			Help: HelpTextFiltersPerformed,
		},
	)

	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersRegistered,
			Help: HelpTextUsersRegistered,
		},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLoginsTotal,
			Help: HelpTextLoginsTotal,
		},
		[]string{LabelResult},
	)
)
