package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/poojan0106/mini-parser/api/http/presenter"
	"github.com/poojan0106/mini-parser/pkg/resume"
)

// UploadHandler serves the two legacy upload routes.
type UploadHandler struct {
	svc      resume.ParseService
	maxBytes int64
}

func NewUploadHandler(svc resume.ParseService, maxBytes int64) *UploadHandler {
	return &UploadHandler{svc: svc, maxBytes: maxBytes}
}

// Upload is the oldest route: flat-schema prompt, raw completion text back,
// plain-text errors. Behavior kept for existing callers.
// @Summary Parse resume with the legacy flat schema
// @Tags    parsing
// @Accept  json
// @Produce plain
// @Param   request body handlers.UploadRequest true "Document type tag and base64 payload"
// @Success 200 {string} string "Raw completion text"
// @Failure 400 {string} string
// @Failure 404 {string} string "Non-POST method"
// @Router  /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return c.Status(http.StatusNotFound).SendString("method not found")
	}
	data, fileType, msg := decodeUploadRequest(c, h.maxBytes)
	if msg != "" {
		return c.Status(http.StatusBadRequest).SendString(msg)
	}
	reply, err := h.svc.ParseLegacy(c.Context(), data, fileType)
	if err != nil {
		if errors.Is(err, resume.ErrExtraction) {
			return presenter.Error(c, http.StatusBadRequest, "Text extraction failed.")
		}
		log.Error().Err(err).Str("type", fileType).Msg("legacy parse failed")
		return c.Status(http.StatusInternalServerError).SendString(err.Error())
	}
	return c.Status(http.StatusOK).SendString(reply)
}

// Uploads parses with the nested schema over locally extracted text.
// @Summary Parse resume into the nested schema
// @Tags    parsing
// @Accept  json
// @Produce json
// @Param   request body handlers.UploadRequest true "Document type tag and base64 payload"
// @Success 200 {object} resume.Parsed
// @Failure 400 {object} resume.Parsed "Empty schema with error field"
// @Failure 500 {object} resume.Parsed "Empty schema with error field"
// @Router  /uploads [post]
func (h *UploadHandler) Uploads(c *fiber.Ctx) error {
	data, fileType, msg := decodeUploadRequest(c, h.maxBytes)
	if msg != "" {
		return presenter.Error(c, http.StatusBadRequest, msg)
	}
	reply, err := h.svc.ParseText(c.Context(), data, fileType)
	if err != nil {
		if errors.Is(err, resume.ErrExtraction) {
			return presenter.SchemaError(c, http.StatusBadRequest, "Text extraction failed.")
		}
		log.Error().Err(err).Str("type", fileType).Msg("uploads parse failed")
		return presenter.SchemaError(c, http.StatusInternalServerError, err.Error())
	}
	return presenter.ModelResult(c, reply)
}
