package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"supplierintake/internal/core/apperror"
	"supplierintake/internal/domain/intake"
	"supplierintake/internal/domain/manifest"
)

// uploadField is the multipart field carrying the delivery file.
const uploadField = "file"

// ManifestHandler handles delivery file uploads.
type ManifestHandler struct {
	*BaseHandler
	intake    *intake.Service
	maxUpload int64
}

// NewManifestHandler creates a new manifest handler.
func NewManifestHandler(base *BaseHandler, intakeSvc *intake.Service, maxUpload int64) *ManifestHandler {
	return &ManifestHandler{BaseHandler: base, intake: intakeSvc, maxUpload: maxUpload}
}

// Upload parses a CSV or XLSX delivery file.
// POST /api/v1/manifests
func (h *ManifestHandler) Upload(c *gin.Context) {
	m, ok := readManifest(c, h.BaseHandler, h.intake, h.maxUpload)
	if !ok {
		return
	}
	h.OK(c, m)
}

// readManifest parses the uploaded file field. On failure the error is
// registered on c and ok is false.
func readManifest(c *gin.Context, h *BaseHandler, svc *intake.Service, maxUpload int64) (*manifest.Manifest, bool) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			h.Error(c, apperror.NewPayloadTooLarge(maxUpload))
		case errors.Is(err, http.ErrMissingFile):
			h.Error(c, apperror.NewFieldValidation(uploadField, "file is required"))
		default:
			h.Error(c, apperror.NewInvalidInput("invalid multipart form", err))
		}
		return nil, false
	}

	if maxUpload > 0 && header.Size > maxUpload {
		h.Error(c, apperror.NewPayloadTooLarge(maxUpload))
		return nil, false
	}

	f, err := header.Open()
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return nil, false
	}
	defer f.Close()

	m, err := svc.ParseManifest(c.Request.Context(), header.Filename, f)
	if err != nil {
		h.Error(c, err)
		return nil, false
	}
	return m, true
}
