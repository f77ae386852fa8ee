package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/poojan0106/mini-parser/api/http/presenter"
	"github.com/poojan0106/mini-parser/pkg/resume"
)

// ParseHandler serves the document-grounded and direct-text parsing routes.
type ParseHandler struct {
	svc      resume.ParseService
	maxBytes int64
}

func NewParseHandler(svc resume.ParseService, maxBytes int64) *ParseHandler {
	return &ParseHandler{svc: svc, maxBytes: maxBytes}
}

// Parse extracts resume fields by uploading the original document to the
// provider's file-search index and running an ephemeral assistant over it.
// @Summary Parse resume via provider-side document search
// @Description Accepts a base64-encoded document, runs the provider assistant workflow and returns the extracted JSON.
// @Tags    parsing
// @Accept  json
// @Produce json
// @Param   request body handlers.UploadRequest true "Document type tag and base64 payload"
// @Success 200 {object} resume.Parsed
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} resume.Parsed "Empty schema with error field"
// @Router  /parse [post]
func (h *ParseHandler) Parse(c *fiber.Ctx) error {
	data, fileType, msg := decodeUploadRequest(c, h.maxBytes)
	if msg != "" {
		return presenter.Error(c, http.StatusBadRequest, msg)
	}
	reply, err := h.svc.ParseDocument(c.Context(), data, fileType)
	if err != nil {
		log.Error().Err(err).Str("type", fileType).Msg("document-grounded parse failed")
		return presenter.SchemaError(c, http.StatusInternalServerError, err.Error())
	}
	return presenter.ModelResult(c, reply)
}

// ParseText extracts text locally and asks the chat model for the nested
// schema.
// @Summary Parse resume from locally extracted text
// @Tags    parsing
// @Accept  json
// @Produce json
// @Param   request body handlers.UploadRequest true "Document type tag and base64 payload"
// @Success 200 {object} resume.Parsed
// @Failure 400 {object} resume.Parsed "Empty schema with error field"
// @Failure 500 {object} resume.Parsed "Empty schema with error field"
// @Router  /parse-text [post]
func (h *ParseHandler) ParseText(c *fiber.Ctx) error {
	data, fileType, msg := decodeUploadRequest(c, h.maxBytes)
	if msg != "" {
		return presenter.Error(c, http.StatusBadRequest, msg)
	}
	reply, err := h.svc.ParseText(c.Context(), data, fileType)
	if err != nil {
		if errors.Is(err, resume.ErrExtraction) {
			return presenter.SchemaError(c, http.StatusBadRequest,
				"Text extraction failed. File may be corrupted or unsupported.")
		}
		log.Error().Err(err).Str("type", fileType).Msg("chat parse failed")
		return presenter.SchemaError(c, http.StatusInternalServerError, err.Error())
	}
	return presenter.ModelResult(c, reply)
}
