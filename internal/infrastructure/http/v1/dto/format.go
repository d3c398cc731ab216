package dto

import "supplierintake/pkg/money"

// FormatCurrencyQuery holds the query of GET /format/currency.
type FormatCurrencyQuery struct {
	Value    string `form:"value"`
	Currency string `form:"currency"`
	Decimals *int   `form:"decimals"`
	Grouping *bool  `form:"grouping"`
}

// Options converts the query into formatter options.
func (q FormatCurrencyQuery) Options() []money.Option {
	opts := []money.Option{money.WithCurrency(q.Currency)}
	if q.Decimals != nil {
		opts = append(opts, money.WithDecimals(*q.Decimals))
	}
	if q.Grouping != nil && !*q.Grouping {
		opts = append(opts, money.WithoutGrouping())
	}
	return opts
}
