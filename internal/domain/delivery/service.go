package delivery

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"supplierintake/pkg/logger"
)

// Shape names the two calculation entry points.
type Shape string

const (
	ShapeLineItems Shape = "line_items"
	ShapeTotal     Shape = "total"
)

// Recorder observes completed calculations (metrics).
type Recorder interface {
	ObserveCalculation(shape Shape, priceType PriceType, converted bool, res Result)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCalculation(Shape, PriceType, bool, Result) {}

// Service exposes the calculator to request handlers with tracing, logging
// and metrics around each call. It never changes the calculated values.
type Service struct {
	calc     *Calculator
	recorder Recorder
	tracer   trace.Tracer
}

// NewService creates a delivery service. recorder may be nil.
func NewService(calc *Calculator, recorder Recorder) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		calc:     calc,
		recorder: recorder,
		tracer:   otel.Tracer("supplierintake/delivery"),
	}
}

// Calculator returns the underlying calculator.
func (s *Service) Calculator() *Calculator {
	return s.calc
}

// Quote calculates the delivery value of line items.
func (s *Service) Quote(ctx context.Context, items []LineItem, settings Settings) Result {
	ctx, span := s.tracer.Start(ctx, "delivery.Quote", trace.WithAttributes(
		attribute.Int("delivery.items", len(items)),
		attribute.String("delivery.currency", settings.Currency),
		attribute.String("delivery.price_type", string(settings.PriceType)),
	))
	defer span.End()

	res := s.calc.CalculateFromLineItems(items, settings)
	converted := s.calc.IsForeign(settings.Currency)
	s.finish(span, ShapeLineItems, settings.PriceType, converted, res)

	logger.Debug(ctx, "delivery value calculated",
		"shape", ShapeLineItems,
		"items", len(items),
		"currency", settings.Currency,
		"delivery_value", res.DeliveryValue,
	)
	return res
}

// QuoteTotal calculates the delivery value of a known market total.
func (s *Service) QuoteTotal(ctx context.Context, in TotalInput) Result {
	priceType := in.PriceType
	if priceType == "" {
		priceType = s.calc.Config().DefaultPriceType
	}

	ctx, span := s.tracer.Start(ctx, "delivery.QuoteTotal", trace.WithAttributes(
		attribute.String("delivery.currency", in.Currency),
		attribute.String("delivery.price_type", string(priceType)),
	))
	defer span.End()

	res := s.calc.CalculateFromTotal(in)
	converted := s.calc.IsForeign(in.Currency)
	s.finish(span, ShapeTotal, priceType, converted, res)

	logger.Debug(ctx, "delivery value calculated",
		"shape", ShapeTotal,
		"currency", in.Currency,
		"delivery_value", res.DeliveryValue,
	)
	return res
}

func (s *Service) finish(span trace.Span, shape Shape, priceType PriceType, converted bool, res Result) {
	span.SetAttributes(
		attribute.Bool("delivery.converted", converted),
		attribute.Float64("delivery.value", res.DeliveryValue),
		attribute.Float64("delivery.vat_amount", res.VATAmount),
	)
	s.recorder.ObserveCalculation(shape, priceType, converted, res)
}
