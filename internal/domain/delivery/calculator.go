package delivery

import (
	"math"

	"supplierintake/internal/core/numeric"
)

// Calculator turns delivery inputs into a Result. It holds no mutable state
// and is safe for concurrent use.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a calculator. Zero defaults in cfg are replaced with
// the values of DefaultConfig.
func NewCalculator(cfg Config) *Calculator {
	def := DefaultConfig()
	if cfg.Currencies.Local == "" {
		cfg.Currencies.Local = def.Currencies.Local
	}
	if cfg.Currencies.Foreign == "" {
		cfg.Currencies.Foreign = def.Currencies.Foreign
	}
	if cfg.DefaultVATRate == 0 {
		cfg.DefaultVATRate = def.DefaultVATRate
	}
	if cfg.DefaultExchangeRate == 0 {
		cfg.DefaultExchangeRate = def.DefaultExchangeRate
	}
	if cfg.DefaultPriceType == "" {
		cfg.DefaultPriceType = def.DefaultPriceType
	}
	return &Calculator{cfg: cfg}
}

// Config returns the effective configuration.
func (c *Calculator) Config() Config {
	return c.cfg
}

// CalculateFromLineItems aggregates items into a market value and applies
// the percentage and VAT rules of settings.
//
// Every item takes part in the fold; an item without a price contributes 0.
// Settings.PriceType has no default here: only "net" triggers the gross-up.
func (c *Calculator) CalculateFromLineItems(items []LineItem, settings Settings) Result {
	percentage := numeric.Or(settings.ValuePercentage, 0)
	vatRate := numeric.OrNonZero(settings.VATRate, c.cfg.DefaultVATRate)
	exchangeRate := numeric.OrNonZero(settings.ExchangeRate, c.cfg.DefaultExchangeRate)
	convert := c.IsForeign(settings.Currency)

	var total, totalLocal float64
	for _, item := range items {
		price := numeric.Or(item.Price, 0)
		quantity := numeric.Or(item.Quantity, 0)

		// Explicit conversions keep every product rounded on its own so the
		// compiler cannot fuse it into the following addition.
		value := float64(price * quantity)
		total += value
		if convert {
			totalLocal += float64(value * exchangeRate)
		} else {
			totalLocal += value
		}
	}

	return c.apply(total, totalLocal, percentage, vatRate, settings.PriceType)
}

// CalculateFromTotal applies the percentage and VAT rules directly to a
// pre-aggregated market value.
func (c *Calculator) CalculateFromTotal(in TotalInput) Result {
	total := numeric.Or(in.Total, 0)
	percentage := numeric.Or(in.Percentage, 0)
	exchangeRate := numeric.OrNonZero(in.ExchangeRate, c.cfg.DefaultExchangeRate)
	vatRate := numeric.OrNonZero(in.VATRate, c.cfg.DefaultVATRate)

	priceType := in.PriceType
	if priceType == "" {
		priceType = c.cfg.DefaultPriceType
	}

	totalLocal := total
	if c.IsForeign(in.Currency) {
		totalLocal = float64(total * exchangeRate)
	}

	return c.apply(total, totalLocal, percentage, vatRate, priceType)
}

// IsForeign reports whether amounts in code are converted with the exchange rate.
func (c *Calculator) IsForeign(code string) bool {
	return code == c.cfg.Currencies.Foreign
}

func (c *Calculator) apply(total, totalLocal, percentage, vatRate float64, priceType PriceType) Result {
	base := float64(totalLocal * (percentage / 100))

	final := base
	vat := 0.0
	if priceType == PriceNet {
		final = float64(base * (1 + vatRate/100))
		vat = final - base
	}

	return Result{
		TotalMarketValue:      total,
		TotalMarketValueLocal: totalLocal,
		BaseValue:             base,
		DeliveryValue:         Round2(final),
		VATAmount:             Round2(vat),
	}
}

// Round2 rounds x to 2 decimals, half away from zero, on the binary value
// of x*100. Inputs such as 1.005 round down because 1.005*100 is just
// below 100.5 in binary.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
