// @title         resume-parser API
// @version       1.0
// @description   HTTP service that extracts plain text from uploaded resume documents (PDF, DOCX, DOC, TXT, RTF) and delegates structured field extraction to an LLM.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/poojan0106/mini-parser/docs"

	// internal imports
	api "github.com/poojan0106/mini-parser/api/http"
	"github.com/poojan0106/mini-parser/api/http/handlers"
	"github.com/poojan0106/mini-parser/pkg/config"
	"github.com/poojan0106/mini-parser/pkg/health"
	"github.com/poojan0106/mini-parser/pkg/llm/openai"
	"github.com/poojan0106/mini-parser/pkg/resume"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration from env/.env
	cfg := config.Load()
	if cfg.OpenAIAPIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY environment variable not set; completion calls will fail")
	}

	app := fiber.New()
	// Handler panics become shaped 500s instead of dropped connections.
	app.Use(recover.New())
	app.Use(logger.New())

	// Wire dependencies
	chat := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, openai.Temp(0))
	legacyChat := openai.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAILegacyModel, nil)
	docs := openai.NewParser(
		openai.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.AssistantModel, nil),
		cfg.AssistantModel,
		cfg.PollInterval,
		cfg.PollTimeout,
	)

	parseSvc := resume.NewParseService(chat, legacyChat, docs)
	uploadHandler := handlers.NewUploadHandler(parseSvc, cfg.MaxUploadBytes)
	parseHandler := handlers.NewParseHandler(parseSvc, cfg.MaxUploadBytes)

	readiness := health.NewService(health.NewCredentialChecker(cfg.OpenAIAPIKey))
	healthHandler := handlers.NewHealthHandler(readiness)

	// Register routes
	api.Register(app, uploadHandler, parseHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	log.Info().Str("port", cfg.Port).Msg("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
