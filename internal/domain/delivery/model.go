// Package delivery computes the payable value of a supplier delivery.
//
// The payable value is a percentage of the market value of the delivered
// goods, converted to the local currency and grossed up for VAT when prices
// are net. All inputs are raw form values: numbers, numeric strings or nil.
package delivery

// PriceType tells whether supplier prices already include VAT.
type PriceType string

const (
	PriceNet   PriceType = "net"
	PriceGross PriceType = "gross"
)

const (
	CodePLN = "PLN"
	CodeEUR = "EUR"
)

// Currencies names the local currency and the single foreign currency that
// is converted with the exchange rate. Any other code is treated as local.
type Currencies struct {
	Local   string
	Foreign string
}

// Config is the explicit calculator configuration.
type Config struct {
	Currencies          Currencies
	DefaultVATRate      float64
	DefaultExchangeRate float64
	DefaultPriceType    PriceType
}

// DefaultConfig returns PLN/EUR with 23% VAT, rate 1 and net prices.
func DefaultConfig() Config {
	return Config{
		Currencies:          Currencies{Local: CodePLN, Foreign: CodeEUR},
		DefaultVATRate:      23,
		DefaultExchangeRate: 1,
		DefaultPriceType:    PriceNet,
	}
}

// LineItem is a single product line of a delivery.
type LineItem struct {
	Price    any `json:"price"`
	Quantity any `json:"quantity"`

	// Currency is informational; the settings currency governs conversion
	// for the whole batch.
	Currency string `json:"currency,omitempty"`
}

// Settings are the delivery-level parameters of a line-item calculation.
type Settings struct {
	ValuePercentage any       `json:"valuePercentage"`
	VATRate         any       `json:"vatRate"`
	ExchangeRate    any       `json:"exchangeRate"`
	PriceType       PriceType `json:"priceType"`
	Currency        string    `json:"currency"`
}

// TotalInput holds the parameters of a calculation over a known total.
// Nil ExchangeRate/VATRate and an empty PriceType take configured defaults.
type TotalInput struct {
	Total        any       `json:"totalValue"`
	Percentage   any       `json:"percentage"`
	Currency     string    `json:"currency"`
	ExchangeRate any       `json:"exchangeRate,omitempty"`
	VATRate      any       `json:"vatRate,omitempty"`
	PriceType    PriceType `json:"priceType,omitempty"`
}

// Result is the outcome of a calculation.
type Result struct {
	// TotalMarketValue is the market value in the input currency.
	TotalMarketValue float64 `json:"totalMarketValue"`

	// TotalMarketValueLocal is the market value converted to local currency.
	TotalMarketValueLocal float64 `json:"totalMarketValueLocal"`

	// BaseValue is the local market value after applying the percentage.
	BaseValue float64 `json:"baseValue"`

	// DeliveryValue is the payable value, rounded to 2 decimals.
	DeliveryValue float64 `json:"deliveryValue"`

	// VATAmount is the VAT portion of DeliveryValue, rounded to 2 decimals.
	VATAmount float64 `json:"vatAmount"`
}
