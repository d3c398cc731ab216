package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"supplierintake/internal/domain/delivery"
)

func TestDeliveryMetrics_ObserveCalculation(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.Delivery.ObserveCalculation(delivery.ShapeTotal, delivery.PriceNet, false, delivery.Result{DeliveryValue: 615})
	m.Delivery.ObserveCalculation(delivery.ShapeTotal, delivery.PriceNet, false, delivery.Result{DeliveryValue: 10})
	m.Delivery.ObserveCalculation(delivery.ShapeLineItems, "", true, delivery.Result{})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Delivery.Calculations.WithLabelValues("total", "net", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Delivery.Calculations.WithLabelValues("line_items", "none", "true")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Delivery.Value))
}

func TestManifestMetrics_ObserveManifest(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.Manifest.ObserveManifest("csv", 12, 3*time.Millisecond, nil)
	m.Manifest.ObserveManifest("", 0, time.Millisecond, errors.New("unsupported"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Manifest.Parsed.WithLabelValues("csv", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Manifest.Parsed.WithLabelValues("unknown", "rejected")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Manifest.Rows))
}

func TestNew_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := New("test", reg)
	second := New("test", reg)

	second.Delivery.Calculations.WithLabelValues("total", "net", "false").Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(first.Delivery.Calculations.WithLabelValues("total", "net", "false")))
	assert.Same(t, first.HTTP.ReqTotal, second.HTTP.ReqTotal)
}

func TestDurationMillis(t *testing.T) {
	assert.Equal(t, 1.5, DurationMillis(1500*time.Microsecond))
}
