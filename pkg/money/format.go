// Package money formats amounts and exchange rates for Polish-language display.
//
// Output follows the pl-PL number style: decimal comma, and a non-breaking
// space as thousands separator once the integer part has five or more digits
// ("1234,50 zł", "12 345,68 €").
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"supplierintake/internal/core/numeric"
)

const (
	groupSeparator = "\u00a0"
	maxDecimals    = 20

	// minGroupingDigits is the pl-PL minimum integer length before grouping applies.
	minGroupingDigits = 5
)

var codePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

type options struct {
	currency string
	decimals int
	grouping bool
}

// Option configures FormatCurrency.
type Option func(*options)

// WithCurrency sets the ISO currency code. Empty keeps the PLN default.
func WithCurrency(code string) Option {
	return func(o *options) {
		if code != "" {
			o.currency = code
		}
	}
}

// WithDecimals sets the number of fraction digits, clamped to 0..20.
func WithDecimals(n int) Option {
	return func(o *options) {
		o.decimals = min(max(n, 0), maxDecimals)
	}
}

// WithoutGrouping disables the thousands separator.
func WithoutGrouping() Option {
	return func(o *options) {
		o.grouping = false
	}
}

// FormatCurrency renders value with a currency suffix. value may be any number,
// a numeric string or nil; anything that is not a finite number renders as
// zero. It never panics.
func FormatCurrency(value any, opts ...Option) string {
	o := options{currency: "PLN", decimals: 2, grouping: true}
	for _, opt := range opts {
		opt(&o)
	}

	f, ok := numeric.Float(value)
	if !ok {
		return "0,00 " + Symbol(o.currency)
	}

	if !codePattern.MatchString(o.currency) {
		return decimal.NewFromFloat(f).StringFixed(2) + " " + o.currency
	}

	return formatNumber(f, o.decimals, o.grouping) + " " + Symbol(o.currency)
}

// FormatExchangeRate renders a rate with 4 decimals and no grouping, keeping
// only digits and the decimal comma.
func FormatExchangeRate(value any) string {
	s := FormatCurrency(value, WithDecimals(4), WithoutGrouping())
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' {
			return r
		}
		return -1
	}, s)
}

// Symbol returns the display suffix for a currency code. Matching is
// case-sensitive: only "PLN" and "EUR" have symbols, other codes print as given.
func Symbol(code string) string {
	switch code {
	case "PLN":
		return "zł"
	case "EUR":
		return "€"
	}
	return code
}

func formatNumber(f float64, decimals int, grouping bool) string {
	s := decimal.NewFromFloat(f).StringFixed(int32(decimals))

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if grouping && len(intPart) >= minGroupingDigits {
		intPart = group(intPart)
	}

	if fracPart == "" {
		return sign + intPart
	}
	return sign + intPart + "," + fracPart
}

func group(digits string) string {
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
