package intake

import (
	"context"
	"io"
	"time"

	"supplierintake/internal/core/numeric"
	"supplierintake/internal/domain/delivery"
	"supplierintake/internal/domain/manifest"
	"supplierintake/pkg/logger"
	"supplierintake/pkg/money"
)

// ManifestRecorder observes manifest parsing (metrics).
type ManifestRecorder interface {
	ObserveManifest(format string, rows int, elapsed time.Duration, err error)
}

type nopManifestRecorder struct{}

func (nopManifestRecorder) ObserveManifest(string, int, time.Duration, error) {}

// Review is the review-step table of a delivery: the manifest summary, the
// calculated value and their display strings.
type Review struct {
	Filename     string           `json:"filename"`
	Category     string           `json:"category,omitempty"`
	Manifest     manifest.Summary `json:"manifest"`
	LotNumber    string           `json:"lotNumber"`
	PalletNumber string           `json:"palletNumber"`
	Result       delivery.Result  `json:"result"`
	Display      Display          `json:"display"`

	// Draft is the draft after the manifest was applied, when the review
	// was made for one.
	Draft *Draft `json:"draft,omitempty"`
}

// Display holds formatted amounts for the review table.
type Display struct {
	TotalMarketValue      string `json:"totalMarketValue"`
	TotalMarketValueLocal string `json:"totalMarketValueLocal"`
	BaseValue             string `json:"baseValue"`
	DeliveryValue         string `json:"deliveryValue"`
	VATAmount             string `json:"vatAmount"`
	ExchangeRate          string `json:"exchangeRate,omitempty"`
}

// Service drives the intake wizard's server-side work.
type Service struct {
	deliveries *delivery.Service
	currencies delivery.Currencies
	recorder   ManifestRecorder
}

// NewService creates an intake service. recorder may be nil.
func NewService(deliveries *delivery.Service, recorder ManifestRecorder) *Service {
	if recorder == nil {
		recorder = nopManifestRecorder{}
	}
	return &Service{
		deliveries: deliveries,
		currencies: deliveries.Calculator().Config().Currencies,
		recorder:   recorder,
	}
}

// NewDraft starts a draft in the local currency.
func (s *Service) NewDraft() *Draft {
	return NewDraft(s.currencies.Local)
}

// ParseManifest reads an uploaded delivery file.
func (s *Service) ParseManifest(ctx context.Context, filename string, r io.Reader) (*manifest.Manifest, error) {
	start := time.Now()
	m, err := manifest.Parse(ctx, filename, r)

	format, _ := manifest.DetectFormat(filename)
	rows := 0
	if m != nil {
		rows = len(m.Rows)
	}
	s.recorder.ObserveManifest(string(format), rows, time.Since(start), err)

	if err != nil {
		logger.Warn(ctx, "manifest rejected", "filename", filename, "error", err)
		return nil, err
	}

	logger.Info(ctx, "manifest parsed",
		"filename", filename,
		"format", m.Format,
		"rows", rows,
		"lot", m.LotNumber(),
	)
	return m, nil
}

// Review calculates the delivery value of a manifest under settings.
func (s *Service) Review(ctx context.Context, m *manifest.Manifest, settings delivery.Settings) Review {
	res := s.deliveries.Quote(ctx, m.LineItems(), settings)

	currency := settings.Currency
	if currency == "" {
		currency = s.currencies.Local
	}
	local := money.WithCurrency(s.currencies.Local)

	display := Display{
		TotalMarketValue:      money.FormatCurrency(res.TotalMarketValue, money.WithCurrency(currency)),
		TotalMarketValueLocal: money.FormatCurrency(res.TotalMarketValueLocal, local),
		BaseValue:             money.FormatCurrency(res.BaseValue, local),
		DeliveryValue:         money.FormatCurrency(res.DeliveryValue, local),
		VATAmount:             money.FormatCurrency(res.VATAmount, local),
	}
	calc := s.deliveries.Calculator()
	if calc.IsForeign(currency) {
		rate := numeric.OrNonZero(settings.ExchangeRate, calc.Config().DefaultExchangeRate)
		display.ExchangeRate = money.FormatExchangeRate(rate)
	}

	return Review{
		Filename:     m.Filename,
		Manifest:     m.Summary,
		LotNumber:    m.LotNumber(),
		PalletNumber: m.PalletNumber(),
		Result:       res,
		Display:      display,
	}
}

// Summarize applies an uploaded manifest to d and reviews it under the
// draft's settings. LOT and pallet numbers typed into d win over the ones
// suggested by the manifest.
func (s *Service) Summarize(ctx context.Context, d *Draft, m *manifest.Manifest) Review {
	d.ApplyManifest(m)

	review := s.Review(ctx, m, d.Settings())
	review.Category = d.CategoryLabel()
	review.LotNumber = d.LotNumber
	review.PalletNumber = d.PalletNumber
	review.Draft = d
	return review
}

// Validate checks one step of d, or every step when step is 0.
func (s *Service) Validate(ctx context.Context, d *Draft, step Step) error {
	var err error
	if step == 0 {
		err = d.Validate(s.currencies)
	} else {
		err = d.ValidateStep(step, s.currencies)
	}

	if err != nil {
		logger.Debug(ctx, "draft validation failed", "draft_id", d.ID, "step", step, "error", err)
		return err
	}
	return nil
}
