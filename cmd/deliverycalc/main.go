// Command deliverycalc computes a delivery value from flags or from a JSON
// line-item batch on stdin.
//
//	deliverycalc -total 1000 -percentage 50 -currency EUR -rate 4.3 -price-type net
//	echo '{"items":[{"price":10,"quantity":2}],"settings":{"valuePercentage":50}}' | deliverycalc -json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"supplierintake/internal/config"
	"supplierintake/internal/domain/delivery"
	"supplierintake/pkg/money"
)

type batch struct {
	Items    []delivery.LineItem `json:"items"`
	Settings delivery.Settings   `json:"settings"`
}

type output struct {
	Result    delivery.Result `json:"result"`
	Formatted string          `json:"formatted"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Args[1:], os.Stdin, os.Stdout, cfg.Delivery()); err != nil {
		fmt.Fprintf(os.Stderr, "deliverycalc: %v\n", err)
		os.Exit(2)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, cfg delivery.Config) error {
	fs := flag.NewFlagSet("deliverycalc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		total      = fs.String("total", "", "market value of the delivery")
		percentage = fs.String("percentage", "", "percentage of the market value paid")
		currency   = fs.String("currency", "", "currency of the market value")
		rate       = fs.String("rate", "", "exchange rate to the local currency")
		vat        = fs.String("vat", "", "VAT rate in percent")
		priceType  = fs.String("price-type", "", "net or gross")
		fromJSON   = fs.Bool("json", false, "read {items, settings} from stdin")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc := delivery.NewService(delivery.NewCalculator(cfg), nil)
	ctx := context.Background()

	var res delivery.Result
	if *fromJSON {
		var in batch
		if err := json.NewDecoder(stdin).Decode(&in); err != nil {
			return fmt.Errorf("decode stdin: %w", err)
		}
		res = svc.Quote(ctx, in.Items, in.Settings)
	} else {
		if *total == "" {
			return errors.New("-total is required unless -json is set")
		}
		res = svc.QuoteTotal(ctx, delivery.TotalInput{
			Total:        *total,
			Percentage:   *percentage,
			Currency:     *currency,
			ExchangeRate: optional(*rate),
			VATRate:      optional(*vat),
			PriceType:    delivery.PriceType(*priceType),
		})
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output{
		Result:    res,
		Formatted: money.FormatCurrency(res.DeliveryValue, money.WithCurrency(cfg.Currencies.Local)),
	})
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
