package dto

import (
	"supplierintake/internal/domain/delivery"
	"supplierintake/internal/domain/intake"
)

// CalculateRequest is the body of POST /deliveries/calculate.
type CalculateRequest struct {
	Items    []delivery.LineItem `json:"items"`
	Settings delivery.Settings   `json:"settings"`
}

// ValidateDraftRequest is the body of POST /deliveries/validate.
// Step 0 validates every step.
type ValidateDraftRequest struct {
	Step  int          `json:"step" binding:"min=0,max=4"`
	Draft intake.Draft `json:"draft"`
}

// SettingsForm carries the draft's step-one fields as multipart form fields.
// Empty fields keep the draft's values.
type SettingsForm struct {
	ValuePercentage string `form:"valuePercentage"`
	VATRate         string `form:"vatRate"`
	ExchangeRate    string `form:"exchangeRate"`
	PriceType       string `form:"priceType"`
	Currency        string `form:"currency"`
	Category        string `form:"category"`
	OtherCategory   string `form:"otherCategory"`
	LotNumber       string `form:"lotNumber"`
	PalletNumber    string `form:"palletNumber"`
}

// ApplyTo copies the non-empty form fields onto d.
func (f SettingsForm) ApplyTo(d *intake.Draft) {
	if v := optional(f.ValuePercentage); v != nil {
		d.ValuePercentage = v
	}
	if v := optional(f.ExchangeRate); v != nil {
		d.ExchangeRate = v
	}
	setString(&d.VATRate, f.VATRate)
	setString(&d.Currency, f.Currency)
	setString(&d.Category, f.Category)
	setString(&d.OtherCategory, f.OtherCategory)
	setString(&d.LotNumber, f.LotNumber)
	setString(&d.PalletNumber, f.PalletNumber)
	if f.PriceType != "" {
		d.PriceType = delivery.PriceType(f.PriceType)
	}
}
