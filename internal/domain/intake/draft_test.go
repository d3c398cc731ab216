package intake

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplierintake/internal/core/apperror"
	"supplierintake/internal/core/id"
	"supplierintake/internal/domain/delivery"
	"supplierintake/internal/domain/manifest"
)

var plnEur = delivery.Currencies{Local: delivery.CodePLN, Foreign: delivery.CodeEUR}

func validDraft() *Draft {
	d := NewDraft(delivery.CodePLN)
	d.DeliveryDate = "2024-05-06"
	d.Category = "AGD"
	d.ProductClass = "mix_abc"
	d.VATRate = "23"
	d.PriceType = delivery.PriceNet
	d.FilesCount = 1
	d.ProductsCount = 3
	d.LotNumber = "LOT526555585"
	d.PalletNumber = "P1"
	d.AcceptTerms = true
	return d
}

func TestNewDraft(t *testing.T) {
	d := NewDraft(delivery.CodePLN)
	assert.False(t, id.IsNil(d.ID))
	assert.Equal(t, delivery.CodePLN, d.Currency)
	assert.Equal(t, DefaultValuePercentage, d.ValuePercentage)
}

func TestDraft_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(d *Draft)
		wantStep  int
		wantField string
	}{
		{"missing date", func(d *Draft) { d.DeliveryDate = "" }, 1, "deliveryDate"},
		{"bad date", func(d *Draft) { d.DeliveryDate = "06.05.2024" }, 1, "deliveryDate"},
		{"missing category", func(d *Draft) { d.Category = "" }, 1, "category"},
		{"unknown category", func(d *Draft) { d.Category = "Zabawki" }, 1, "category"},
		{"other without name", func(d *Draft) { d.Category = CategoryOther }, 1, "otherCategory"},
		{"missing class", func(d *Draft) { d.ProductClass = "" }, 1, "productClass"},
		{"missing currency", func(d *Draft) { d.Currency = "" }, 1, "currency"},
		{"unsupported currency", func(d *Draft) { d.Currency = "USD" }, 1, "currency"},
		{"EUR without rate", func(d *Draft) { d.Currency = "EUR" }, 1, "exchangeRate"},
		{"EUR with zero rate", func(d *Draft) { d.Currency = "EUR"; d.ExchangeRate = "0" }, 1, "exchangeRate"},
		{"missing VAT", func(d *Draft) { d.VATRate = "" }, 1, "vatRate"},
		{"unsupported VAT", func(d *Draft) { d.VATRate = "8" }, 1, "vatRate"},
		{"23% without price type", func(d *Draft) { d.PriceType = "" }, 1, "priceType"},
		{"bad price type", func(d *Draft) { d.PriceType = "brutto" }, 1, "priceType"},
		{"percentage zero", func(d *Draft) { d.ValuePercentage = 0 }, 1, "valuePercentage"},
		{"percentage above 100", func(d *Draft) { d.ValuePercentage = "101" }, 1, "valuePercentage"},
		{"percentage missing", func(d *Draft) { d.ValuePercentage = nil }, 1, "valuePercentage"},
		{"no files", func(d *Draft) { d.FilesCount = 0 }, 2, "files"},
		{"no products", func(d *Draft) { d.ProductsCount = 0 }, 3, "products"},
		{"no LOT", func(d *Draft) { d.LotNumber = " " }, 3, "lotNumber"},
		{"no pallet", func(d *Draft) { d.PalletNumber = "" }, 3, "palletNumber"},
		{"terms", func(d *Draft) { d.AcceptTerms = false }, 4, "acceptTerms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)

			err := d.Validate(plnEur)
			require.Error(t, err)

			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, tt.wantStep, appErr.Details["step"])
			assert.Equal(t, tt.wantField, appErr.Details["field"])
		})
	}
}

func TestDraft_ValidateAccepts(t *testing.T) {
	assert.NoError(t, validDraft().Validate(plnEur))

	d := validDraft()
	d.Currency = "EUR"
	d.ExchangeRate = "4,3215"
	d.VATRate = "0"
	d.PriceType = ""
	d.ValuePercentage = "100"
	d.Category = CategoryOther
	d.OtherCategory = "Zabawki"
	assert.NoError(t, d.ValidateStep(StepBasicInfo, plnEur))
	assert.Equal(t, "Zabawki", d.CategoryLabel())
}

func TestDraft_ValidateStepUnknown(t *testing.T) {
	err := validDraft().ValidateStep(Step(9), plnEur)
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestDraft_Settings(t *testing.T) {
	calc := delivery.NewCalculator(delivery.DefaultConfig())
	items := []delivery.LineItem{{Price: 100, Quantity: 10}}

	d := validDraft()
	net := calc.CalculateFromLineItems(items, d.Settings())
	assert.Equal(t, 615.0, net.DeliveryValue)
	assert.Equal(t, 115.0, net.VATAmount)

	d.VATRate = "0"
	d.PriceType = delivery.PriceNet
	zero := calc.CalculateFromLineItems(items, d.Settings())
	assert.Equal(t, delivery.PriceGross, d.Settings().PriceType)
	assert.Equal(t, 500.0, zero.DeliveryValue)
	assert.Equal(t, 0.0, zero.VATAmount)
}

func TestDraft_ApplyManifest(t *testing.T) {
	csvData := "lot,pallet,price,quantity\nLOT526555585,P9,10,1\nLOT526555585,P9,5,2\n"
	m, err := manifest.Parse(context.Background(), "d.csv", strings.NewReader(csvData))
	require.NoError(t, err)

	d := NewDraft(delivery.CodePLN)
	d.ApplyManifest(m)
	assert.Equal(t, 1, d.FilesCount)
	assert.Equal(t, 2, d.ProductsCount)
	assert.Equal(t, "LOT526555585", d.LotNumber)
	assert.Equal(t, "P9", d.PalletNumber)

	d.LotNumber = "LOT100214100"
	d.ApplyManifest(m)
	assert.Equal(t, 2, d.FilesCount)
	assert.Equal(t, 4, d.ProductsCount)
	assert.Equal(t, "LOT100214100", d.LotNumber)
}
