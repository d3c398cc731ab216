// Package metrics holds the Prometheus collectors of the intake service.
package metrics

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"supplierintake/internal/domain/delivery"
)

// Metrics groups every collector of the service.
type Metrics struct {
	Delivery *DeliveryMetrics
	Manifest *ManifestMetrics
	HTTP     *HTTPMetrics
}

// New registers and returns all collectors. reg defaults to the global registerer.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &Metrics{
		Delivery: NewDeliveryMetrics(namespace, reg),
		Manifest: NewManifestMetrics(namespace, reg),
		HTTP:     NewHTTPMetrics(namespace, nil, reg),
	}
}

// DeliveryMetrics counts calculations and tracks delivery values.
type DeliveryMetrics struct {
	Calculations *prometheus.CounterVec
	Value        *prometheus.HistogramVec
}

// NewDeliveryMetrics registers calculation collectors.
func NewDeliveryMetrics(namespace string, reg prometheus.Registerer) *DeliveryMetrics {
	return &DeliveryMetrics{
		Calculations: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_calculations_total",
			Help:      "Delivery value calculations by input shape, price type and currency conversion.",
		}, []string{"shape", "price_type", "converted"})),
		Value: register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "delivery_value",
			Help:      "Calculated delivery values in local currency.",
			Buckets:   prometheus.ExponentialBuckets(10, 10, 7),
		}, []string{"shape"})),
	}
}

// ObserveCalculation implements delivery.Recorder.
func (m *DeliveryMetrics) ObserveCalculation(shape delivery.Shape, priceType delivery.PriceType, converted bool, res delivery.Result) {
	pt := string(priceType)
	if pt == "" {
		pt = "none"
	}
	m.Calculations.WithLabelValues(string(shape), pt, strconv.FormatBool(converted)).Inc()
	m.Value.WithLabelValues(string(shape)).Observe(res.DeliveryValue)
}

// ManifestMetrics tracks uploaded manifests.
type ManifestMetrics struct {
	Parsed   *prometheus.CounterVec
	Rows     prometheus.Histogram
	Duration *prometheus.HistogramVec
}

// NewManifestMetrics registers manifest collectors.
func NewManifestMetrics(namespace string, reg prometheus.Registerer) *ManifestMetrics {
	return &ManifestMetrics{
		Parsed: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "manifests_total",
			Help:      "Uploaded manifests by file format and outcome.",
		}, []string{"format", "outcome"})),
		Rows: register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "manifest_rows",
			Help:      "Product rows per accepted manifest.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		})),
		Duration: register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "manifest_parse_duration_ms",
			Help:      "Manifest parsing latency in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		}, []string{"format"})),
	}
}

// ObserveManifest implements intake.ManifestRecorder.
func (m *ManifestMetrics) ObserveManifest(format string, rows int, elapsed time.Duration, err error) {
	if format == "" {
		format = "unknown"
	}
	outcome := "accepted"
	if err != nil {
		outcome = "rejected"
	} else {
		m.Rows.Observe(float64(rows))
	}
	m.Parsed.WithLabelValues(format, outcome).Inc()
	m.Duration.WithLabelValues(format).Observe(DurationMillis(elapsed))
}

// DurationMillis converts a duration to milliseconds for metric observation.
func DurationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// register adds c to reg, returning the already registered collector when an
// identical one exists.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(fmt.Errorf("register collector: %w", err))
	}
	return c
}
