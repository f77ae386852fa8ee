package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/poojan0106/mini-parser/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, upload *handlers.UploadHandler, parse *handlers.ParseHandler, health *handlers.HealthHandler) {
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	// Legacy route answers 404 to non-POST itself.
	app.All("/upload", upload.Upload)
	app.Post("/uploads", upload.Uploads)

	app.Post("/parse", parse.Parse)
	app.Post("/parse-text", parse.ParseText)
}
