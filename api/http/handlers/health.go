package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/poojan0106/mini-parser/pkg/health"
	"github.com/poojan0106/mini-parser/pkg/resume"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Health: liveness plus service facts. The missing credential is reported
// here, not treated as a failure — the process is healthy without it.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), time.Second)
	defer cancel()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":            "healthy",
		"openai_key_set":    h.svc.Ready(ctx) == nil,
		"supported_formats": resume.SupportedFormats(),
	})
}

// Ready: readiness check; not ready while the provider credential is absent.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), time.Second)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "not_ready",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ready"})
}
