// Package intake holds the supplier delivery draft filled in by the
// four-step intake wizard, its validation, and the review of an uploaded
// manifest against the draft's settings.
package intake

import (
	"supplierintake/internal/core/id"
	"supplierintake/internal/domain/delivery"
	"supplierintake/internal/domain/manifest"
)

// Step is a wizard step.
type Step int

const (
	StepBasicInfo Step = iota + 1
	StepDocuments
	StepDetails
	StepConfirm
)

// Steps lists the wizard steps in order.
var Steps = []Step{StepBasicInfo, StepDocuments, StepDetails, StepConfirm}

// String returns the step name.
func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "basic_info"
	case StepDocuments:
		return "documents"
	case StepDetails:
		return "details"
	case StepConfirm:
		return "confirm"
	}
	return "unknown"
}

// CategoryOther lets the supplier type a category of their own.
const CategoryOther = "other"

var (
	Categories     = []string{"MIX", "Elektronika", "AGD", "Meble", "Ogród", CategoryOther}
	ProductClasses = []string{"mix_abc", "class_a"}
	VATRates       = []string{"23", "0"}
)

const (
	vatStandard = "23"
	vatZero     = "0"

	// DefaultValuePercentage is the initial position of the value slider.
	DefaultValuePercentage = 50
)

// Draft is a delivery being registered by a supplier.
type Draft struct {
	ID id.ID `json:"id"`

	// Step 1
	DeliveryDate    string             `json:"deliveryDate"`
	Category        string             `json:"category"`
	OtherCategory   string             `json:"otherCategory,omitempty"`
	ProductClass    string             `json:"productClass"`
	Currency        string             `json:"currency"`
	ExchangeRate    any                `json:"exchangeRate,omitempty"`
	VATRate         string             `json:"vatRate"`
	PriceType       delivery.PriceType `json:"priceType,omitempty"`
	ValuePercentage any                `json:"valuePercentage"`

	// Step 2
	FilesCount int `json:"filesCount"`

	// Step 3
	ProductsCount int    `json:"productsCount"`
	LotNumber     string `json:"lotNumber"`
	PalletNumber  string `json:"palletNumber"`

	// Step 4
	AcceptTerms bool `json:"acceptTerms"`
}

// NewDraft returns an empty draft in the local currency.
func NewDraft(local string) *Draft {
	return &Draft{
		ID:              id.New(),
		Currency:        local,
		ValuePercentage: DefaultValuePercentage,
	}
}

// CategoryLabel returns the category shown to users.
func (d *Draft) CategoryLabel() string {
	if d.Category == CategoryOther {
		return d.OtherCategory
	}
	return d.Category
}

// Settings converts the draft into calculator settings.
//
// A 0% rate is sent as gross pricing: the calculator treats a zero VAT rate
// as absent and would apply the default rate.
func (d *Draft) Settings() delivery.Settings {
	priceType := d.PriceType
	if d.VATRate == vatZero {
		priceType = delivery.PriceGross
	}

	var vat any
	if d.VATRate != "" {
		vat = d.VATRate
	}

	return delivery.Settings{
		ValuePercentage: d.ValuePercentage,
		VATRate:         vat,
		ExchangeRate:    d.ExchangeRate,
		PriceType:       priceType,
		Currency:        d.Currency,
	}
}

// ApplyManifest copies what an uploaded manifest tells about the delivery:
// the product count, and the LOT and pallet numbers unless already typed in.
func (d *Draft) ApplyManifest(m *manifest.Manifest) {
	d.FilesCount++
	d.ProductsCount += m.Summary.ItemsCount
	if d.LotNumber == "" {
		d.LotNumber = m.LotNumber()
	}
	if d.PalletNumber == "" {
		d.PalletNumber = m.PalletNumber()
	}
}
