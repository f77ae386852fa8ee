package presenter

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/poojan0106/mini-parser/pkg/resume"
)

// ErrorResponse is a plain error body for checks with no schema contract.
type ErrorResponse struct {
	Error string `json:"error"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Error: message})
}

type schemaErrorBody struct {
	Error string `json:"error"`
	resume.Parsed
}

// SchemaError merges the error with the zero-valued parsed-resume shape so
// callers always receive a schema-shaped body on failure.
func SchemaError(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, schemaErrorBody{Error: message, Parsed: resume.EmptyParsed()})
}

// ModelResult sends the post-processed model reply: as JSON when it parses,
// otherwise the raw string — still with a 200 (observed contract, kept).
func ModelResult(c *fiber.Ctx, reply string) error {
	cleaned, ok := resume.DecodeModelJSON(reply)
	if ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return c.Status(http.StatusOK).SendString(cleaned)
}
