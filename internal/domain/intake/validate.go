package intake

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"supplierintake/internal/core/apperror"
	"supplierintake/internal/core/numeric"
	"supplierintake/internal/domain/delivery"
)

const dateLayout = "2006-01-02"

// ValidateStep checks the fields of one wizard step and returns the first
// problem found as a validation AppError carrying "field" and "step" details.
func (d *Draft) ValidateStep(step Step, currencies delivery.Currencies) error {
	switch step {
	case StepBasicInfo:
		return d.validateBasicInfo(currencies)
	case StepDocuments:
		if d.FilesCount < 1 {
			return invalid(step, "files", "Add at least one file")
		}
	case StepDetails:
		if d.ProductsCount < 1 {
			return invalid(step, "products", "The delivery has no products")
		}
		if strings.TrimSpace(d.LotNumber) == "" {
			return invalid(step, "lotNumber", "LOT number is required")
		}
		if strings.TrimSpace(d.PalletNumber) == "" {
			return invalid(step, "palletNumber", "Pallet number is required")
		}
	case StepConfirm:
		if !d.AcceptTerms {
			return invalid(step, "acceptTerms", "Terms must be accepted")
		}
	default:
		return apperror.NewValidation(fmt.Sprintf("Unknown step %d", step)).
			WithDetail("step", int(step))
	}
	return nil
}

// Validate runs every step in order.
func (d *Draft) Validate(currencies delivery.Currencies) error {
	for _, step := range Steps {
		if err := d.ValidateStep(step, currencies); err != nil {
			return err
		}
	}
	return nil
}

func (d *Draft) validateBasicInfo(currencies delivery.Currencies) error {
	const step = StepBasicInfo

	if d.DeliveryDate == "" {
		return invalid(step, "deliveryDate", "Delivery date is required")
	}
	if _, err := time.Parse(dateLayout, d.DeliveryDate); err != nil {
		return invalid(step, "deliveryDate", "Delivery date must be in YYYY-MM-DD format")
	}

	switch {
	case d.Category == "":
		return invalid(step, "category", "Delivery category is required")
	case !slices.Contains(Categories, d.Category):
		return invalid(step, "category", "Unknown delivery category")
	case d.Category == CategoryOther && strings.TrimSpace(d.OtherCategory) == "":
		return invalid(step, "otherCategory", "Enter your own category")
	}

	switch {
	case d.ProductClass == "":
		return invalid(step, "productClass", "Product class is required")
	case !slices.Contains(ProductClasses, d.ProductClass):
		return invalid(step, "productClass", "Unknown product class")
	}

	switch d.Currency {
	case "":
		return invalid(step, "currency", "Currency is required")
	case currencies.Local:
	case currencies.Foreign:
		if rate, ok := numeric.Float(d.ExchangeRate); !ok || rate <= 0 {
			return invalid(step, "exchangeRate", fmt.Sprintf("%s exchange rate is required", currencies.Foreign))
		}
	default:
		return invalid(step, "currency", "Unsupported currency")
	}

	switch {
	case d.VATRate == "":
		return invalid(step, "vatRate", "VAT rate is required")
	case !slices.Contains(VATRates, d.VATRate):
		return invalid(step, "vatRate", "Unsupported VAT rate")
	case d.VATRate == vatStandard && d.PriceType == "":
		return invalid(step, "priceType", "Price type is required for 23% VAT")
	case d.PriceType != "" && d.PriceType != delivery.PriceNet && d.PriceType != delivery.PriceGross:
		return invalid(step, "priceType", "Price type must be net or gross")
	}

	// Fractions are cut off, as the slider only produces whole percents.
	pct, ok := numeric.Float(d.ValuePercentage)
	if p := math.Trunc(pct); !ok || p < 1 || p > 100 {
		return invalid(step, "valuePercentage", "Value percentage must be between 1 and 100")
	}

	return nil
}

func invalid(step Step, field, message string) error {
	return apperror.NewFieldValidation(field, message).WithDetail("step", int(step))
}
