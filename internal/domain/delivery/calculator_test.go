package delivery

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator() *Calculator {
	return NewCalculator(DefaultConfig())
}

func sampleItems() []LineItem {
	return []LineItem{
		{Price: 100, Quantity: 2},
		{Price: 200, Quantity: 1},
	}
}

func TestCalculateFromTotal(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name string
		in   TotalInput
		want Result
	}{
		{
			name: "local currency net",
			in:   TotalInput{Total: 1000, Percentage: 50, Currency: "PLN", ExchangeRate: 1, VATRate: 23, PriceType: PriceNet},
			want: Result{TotalMarketValue: 1000, TotalMarketValueLocal: 1000, BaseValue: 500, DeliveryValue: 615, VATAmount: 115},
		},
		{
			name: "foreign currency net",
			in:   TotalInput{Total: 1000, Percentage: 50, Currency: "EUR", ExchangeRate: 4.5, VATRate: 23, PriceType: PriceNet},
			want: Result{TotalMarketValue: 1000, TotalMarketValueLocal: 4500, BaseValue: 2250, DeliveryValue: 2767.5, VATAmount: 517.5},
		},
		{
			name: "gross prices get no VAT",
			in:   TotalInput{Total: 1000, Percentage: 50, Currency: "PLN", ExchangeRate: 1, VATRate: 23, PriceType: PriceGross},
			want: Result{TotalMarketValue: 1000, TotalMarketValueLocal: 1000, BaseValue: 500, DeliveryValue: 500, VATAmount: 0},
		},
		{
			name: "absent values are zero",
			in:   TotalInput{Currency: "PLN"},
			want: Result{},
		},
		{
			name: "numeric strings",
			in:   TotalInput{Total: "1000", Percentage: "50", Currency: "PLN"},
			want: Result{TotalMarketValue: 1000, TotalMarketValueLocal: 1000, BaseValue: 500, DeliveryValue: 615, VATAmount: 115},
		},
		{
			name: "unknown currency is treated as local",
			in:   TotalInput{Total: 1000, Percentage: 50, Currency: "USD", ExchangeRate: 4.5},
			want: Result{TotalMarketValue: 1000, TotalMarketValueLocal: 1000, BaseValue: 500, DeliveryValue: 615, VATAmount: 115},
		},
		{
			name: "defaults apply for omitted optional parameters",
			in:   TotalInput{Total: 1000, Percentage: 50, Currency: "EUR"},
			want: Result{TotalMarketValue: 1000, TotalMarketValueLocal: 1000, BaseValue: 500, DeliveryValue: 615, VATAmount: 115},
		},
		{
			name: "zero exchange rate and VAT fall back to defaults",
			in:   TotalInput{Total: 1000, Percentage: 50, Currency: "EUR", ExchangeRate: 0, VATRate: "0"},
			want: Result{TotalMarketValue: 1000, TotalMarketValueLocal: 1000, BaseValue: 500, DeliveryValue: 615, VATAmount: 115},
		},
		{
			name: "malformed optional parameters fall back to defaults",
			in:   TotalInput{Total: 1000, Percentage: 50, Currency: "EUR", ExchangeRate: "n/a", VATRate: "abc"},
			want: Result{TotalMarketValue: 1000, TotalMarketValueLocal: 1000, BaseValue: 500, DeliveryValue: 615, VATAmount: 115},
		},
		{
			name: "decimal comma input",
			in:   TotalInput{Total: "1000,00", Percentage: 50, Currency: "EUR", ExchangeRate: "4,5"},
			want: Result{TotalMarketValue: 1000, TotalMarketValueLocal: 4500, BaseValue: 2250, DeliveryValue: 2767.5, VATAmount: 517.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.CalculateFromTotal(tt.in))
		})
	}
}

func TestCalculateFromLineItems(t *testing.T) {
	calc := newTestCalculator()

	t.Run("local currency", func(t *testing.T) {
		got := calc.CalculateFromLineItems(sampleItems(), Settings{
			ValuePercentage: 50, VATRate: 23, ExchangeRate: 4.5, PriceType: PriceNet, Currency: "PLN",
		})
		assert.Equal(t, Result{TotalMarketValue: 400, TotalMarketValueLocal: 400, BaseValue: 200, DeliveryValue: 246, VATAmount: 46}, got)
	})

	t.Run("foreign currency", func(t *testing.T) {
		got := calc.CalculateFromLineItems(sampleItems(), Settings{
			ValuePercentage: 50, VATRate: 23, ExchangeRate: 4.5, PriceType: PriceNet, Currency: "EUR",
		})
		assert.Equal(t, Result{TotalMarketValue: 400, TotalMarketValueLocal: 1800, BaseValue: 900, DeliveryValue: 1107, VATAmount: 207}, got)
	})

	t.Run("empty list is all zero", func(t *testing.T) {
		for _, s := range []Settings{
			{ValuePercentage: 50, VATRate: 23, ExchangeRate: 4.5, PriceType: PriceNet, Currency: "EUR"},
			{ValuePercentage: 100, PriceType: PriceGross},
			{},
		} {
			assert.Equal(t, Result{}, calc.CalculateFromLineItems(nil, s))
			assert.Equal(t, Result{}, calc.CalculateFromLineItems([]LineItem{}, s))
		}
	})

	t.Run("item without price contributes zero and the fold continues", func(t *testing.T) {
		items := []LineItem{
			{Quantity: 5},
			{Price: 100, Quantity: 2},
			{Price: nil, Quantity: "3"},
			{Price: 200, Quantity: 1},
		}
		got := calc.CalculateFromLineItems(items, Settings{ValuePercentage: 50, PriceType: PriceNet, Currency: "PLN"})
		assert.Equal(t, 400.0, got.TotalMarketValue)
		assert.Equal(t, 246.0, got.DeliveryValue)
	})

	t.Run("numeric strings match numbers", func(t *testing.T) {
		settings := Settings{ValuePercentage: "50", VATRate: "23", ExchangeRate: "4.5", PriceType: PriceNet, Currency: "EUR"}
		asStrings := []LineItem{
			{Price: "100", Quantity: "2"},
			{Price: "200", Quantity: "1"},
		}
		assert.Equal(t,
			calc.CalculateFromLineItems(sampleItems(), settings),
			calc.CalculateFromLineItems(asStrings, settings))
	})

	t.Run("item currency does not drive conversion", func(t *testing.T) {
		items := []LineItem{{Price: 100, Quantity: 1, Currency: "EUR"}}
		got := calc.CalculateFromLineItems(items, Settings{ValuePercentage: 100, ExchangeRate: 4.5, PriceType: PriceGross, Currency: "PLN"})
		assert.Equal(t, 100.0, got.TotalMarketValueLocal)
	})

	t.Run("unknown currency is treated as local", func(t *testing.T) {
		got := calc.CalculateFromLineItems(sampleItems(), Settings{ValuePercentage: 50, ExchangeRate: 4.5, PriceType: PriceNet, Currency: "USD"})
		assert.Equal(t, 400.0, got.TotalMarketValueLocal)
	})

	t.Run("missing price type applies no VAT", func(t *testing.T) {
		got := calc.CalculateFromLineItems(sampleItems(), Settings{ValuePercentage: 50, VATRate: 23, Currency: "PLN"})
		assert.Equal(t, 200.0, got.DeliveryValue)
		assert.Equal(t, 0.0, got.VATAmount)
	})

	t.Run("settings decoded from JSON", func(t *testing.T) {
		var req struct {
			Items    []LineItem `json:"items"`
			Settings Settings   `json:"settings"`
		}
		body := `{"items":[{"price":"100","quantity":2},{"price":200,"quantity":"1"}],
			"settings":{"valuePercentage":50,"vatRate":"23","exchangeRate":4.5,"priceType":"net","currency":"EUR"}}`
		require.NoError(t, json.Unmarshal([]byte(body), &req))

		got := calc.CalculateFromLineItems(req.Items, req.Settings)
		assert.Equal(t, 1107.0, got.DeliveryValue)
		assert.Equal(t, 207.0, got.VATAmount)
	})
}

func TestCalculatorInvariants(t *testing.T) {
	calc := newTestCalculator()
	totals := []any{0, 1, 99.99, 123.45, 1000, "2500,50", 0.1}
	percentages := []any{0, 1, 33, 50, 100}

	for _, total := range totals {
		for _, pct := range percentages {
			net := calc.CalculateFromTotal(TotalInput{Total: total, Percentage: pct, Currency: "EUR", ExchangeRate: 4.3215})
			assert.Equal(t, Round2(net.BaseValue*(1+23.0/100)), net.DeliveryValue)

			gross := calc.CalculateFromTotal(TotalInput{Total: total, Percentage: pct, Currency: "EUR", ExchangeRate: 4.3215, PriceType: PriceGross})
			assert.Equal(t, Round2(gross.BaseValue), gross.DeliveryValue)
			assert.Equal(t, 0.0, gross.VATAmount)
		}
	}
}

func TestCalculatorIsPure(t *testing.T) {
	calc := newTestCalculator()
	settings := Settings{ValuePercentage: 33, VATRate: 23, ExchangeRate: 4.3215, PriceType: PriceNet, Currency: "EUR"}
	items := []LineItem{{Price: "99,99", Quantity: 3}, {Price: 0.1, Quantity: 7}}

	first := calc.CalculateFromLineItems(items, settings)
	second := calc.CalculateFromLineItems(items, settings)
	assert.Equal(t, first, second)

	in := TotalInput{Total: 123.45, Percentage: 50, Currency: "EUR", ExchangeRate: 4.3215}
	assert.Equal(t, calc.CalculateFromTotal(in), calc.CalculateFromTotal(in))
}

func TestCalculateFromTotal_PinnedFloatResults(t *testing.T) {
	calc := newTestCalculator()

	got := calc.CalculateFromTotal(TotalInput{Total: 99.99, Percentage: 33, Currency: "PLN"})
	assert.Equal(t, 40.59, got.DeliveryValue)
	assert.Equal(t, 7.59, got.VATAmount)

	got = calc.CalculateFromTotal(TotalInput{Total: 123.45, Percentage: 50, Currency: "EUR", ExchangeRate: 4.3215})
	assert.Equal(t, 328.1, got.DeliveryValue)
	assert.Equal(t, 61.35, got.VATAmount)
}

func TestCalculateFromTotal_VATRoundsUnroundedDifference(t *testing.T) {
	calc := newTestCalculator()

	// final is 4.305 and vat 0.805: rounding the difference of the rounded
	// delivery value would give 0.81.
	got := calc.CalculateFromTotal(TotalInput{Total: 7, Percentage: 50, Currency: "PLN"})
	assert.Equal(t, 3.5, got.BaseValue)
	assert.Equal(t, 4.31, got.DeliveryValue)
	assert.Equal(t, 0.8, got.VATAmount)
	assert.NotEqual(t, Round2(got.DeliveryValue-got.BaseValue), got.VATAmount)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 615.0, Round2(615.0000000000001))
	assert.Equal(t, 2767.5, Round2(2767.5))
	// 1.005 is stored as 1.00499999999999989..., so it rounds down.
	assert.Equal(t, 1.0, Round2(1.005))
	assert.Equal(t, -0.02, Round2(-0.015))
}

func TestNewCalculator_FillsDefaults(t *testing.T) {
	calc := NewCalculator(Config{Currencies: Currencies{Local: "CZK"}})
	cfg := calc.Config()

	assert.Equal(t, "CZK", cfg.Currencies.Local)
	assert.Equal(t, CodeEUR, cfg.Currencies.Foreign)
	assert.Equal(t, 23.0, cfg.DefaultVATRate)
	assert.Equal(t, 1.0, cfg.DefaultExchangeRate)
	assert.Equal(t, PriceNet, cfg.DefaultPriceType)
	assert.True(t, calc.IsForeign("EUR"))
	assert.False(t, calc.IsForeign("CZK"))
}
