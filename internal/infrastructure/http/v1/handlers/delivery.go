package handlers

import (
	"github.com/gin-gonic/gin"

	"supplierintake/internal/domain/delivery"
	"supplierintake/internal/domain/intake"
	"supplierintake/internal/infrastructure/http/v1/dto"
)

// DeliveryHandler handles delivery value calculations and draft validation.
type DeliveryHandler struct {
	*BaseHandler
	deliveries *delivery.Service
	intake     *intake.Service
	maxUpload  int64
}

// NewDeliveryHandler creates a new delivery handler.
func NewDeliveryHandler(base *BaseHandler, deliveries *delivery.Service, intakeSvc *intake.Service, maxUpload int64) *DeliveryHandler {
	return &DeliveryHandler{
		BaseHandler: base,
		deliveries:  deliveries,
		intake:      intakeSvc,
		maxUpload:   maxUpload,
	}
}

// Calculate computes the delivery value of a list of line items.
// POST /api/v1/deliveries/calculate
func (h *DeliveryHandler) Calculate(c *gin.Context) {
	var req dto.CalculateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	h.OK(c, h.deliveries.Quote(c.Request.Context(), req.Items, req.Settings))
}

// CalculateTotal computes the delivery value of a known market total.
// POST /api/v1/deliveries/calculate-total
func (h *DeliveryHandler) CalculateTotal(c *gin.Context) {
	var req delivery.TotalInput
	if !h.BindJSON(c, &req) {
		return
	}

	h.OK(c, h.deliveries.QuoteTotal(c.Request.Context(), req))
}

// Validate checks one wizard step of a draft, or all of them for step 0.
// POST /api/v1/deliveries/validate
func (h *DeliveryHandler) Validate(c *gin.Context) {
	var req dto.ValidateDraftRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.intake.Validate(c.Request.Context(), &req.Draft, intake.Step(req.Step)); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ValidationResponse{Valid: true, Step: req.Step})
}

// Summary parses an uploaded manifest, applies it to a draft built from the
// form fields and returns the review table.
// POST /api/v1/deliveries/summary
func (h *DeliveryHandler) Summary(c *gin.Context) {
	var form dto.SettingsForm
	if !h.BindForm(c, &form) {
		return
	}

	m, ok := readManifest(c, h.BaseHandler, h.intake, h.maxUpload)
	if !ok {
		return
	}

	d := h.intake.NewDraft()
	form.ApplyTo(d)

	h.OK(c, h.intake.Summarize(c.Request.Context(), d, m))
}
