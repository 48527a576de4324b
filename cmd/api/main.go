package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/resume-validator/internal/config"
	"alfredoptarigan/resume-validator/internal/handlers"
	"alfredoptarigan/resume-validator/internal/logger"
	"alfredoptarigan/resume-validator/internal/repositories"
	"alfredoptarigan/resume-validator/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLog, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLog.Sync() }()
	zapLog.Info("config loaded", zap.String("env", cfg.Server.Env))

	// Initialize database
	db, err := config.InitDatabase(cfg, zapLog)
	if err != nil {
		zapLog.Fatal("failed to initialize database", zap.Error(err))
	}

	resumeRepo := repositories.NewResumeRepository(db)

	ctx := context.Background()

	// Initialize services
	extractor := services.NewTextExtractor(
		services.NewPDFParserService(),
		services.NewDocxParserService(),
	)
	classifier := services.NewSectionClassifier(services.NewRuleSegmenter())

	embedder, err := newEmbedder(ctx, cfg, zapLog)
	if err != nil {
		zapLog.Fatal("failed to initialize embedder", zap.Error(err))
	}

	evaluatorService := services.NewEvaluatorService(
		resumeRepo,
		extractor,
		classifier,
		services.NewLexicalScorer(),
		services.NewSemanticScorer(embedder),
		zapLog,
	)
	zapLog.Info("services initialized")

	// Initialize Handlers
	pageHandler := handlers.NewPageHandler(evaluatorService, resumeRepo, cfg.Upload.MaxFileSize, zapLog)
	evaluateHandler := handlers.NewEvaluationHandler(evaluatorService, cfg.Upload.MaxFileSize, zapLog)
	recordsHandler := handlers.NewRecordsHandler(resumeRepo, services.NewExporter(), zapLog)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Validator",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize) + 1<<20,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.SetupRoutes(app, pageHandler, evaluateHandler, recordsHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zapLog.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zapLog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zapLog.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zapLog.Fatal("failed to start server", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// newEmbedder builds the configured embedding backend, optionally fronted by
// the Qdrant cache. It returns nil when no provider is configured, which
// leaves only keyword matching available.
func newEmbedder(ctx context.Context, cfg *config.Config, log *zap.Logger) (services.Embedder, error) {
	var (
		embedder services.Embedder
		err      error
	)

	switch cfg.EmbeddingProvider() {
	case config.ProviderGemini:
		embedder, err = services.NewGeminiEmbedder(ctx, cfg.Gemini.APIKey, cfg.Gemini.EmbedModel)
	case config.ProviderOpenAI:
		embedder, err = services.NewOpenAIEmbedder(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.EmbedModel)
	default:
		log.Warn("no embedding provider configured, semantic matching disabled")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	log.Info("embedder initialized", zap.String("model", embedder.Model()))

	if cfg.Qdrant.URL == "" {
		return embedder, nil
	}

	client, err := services.NewQdrantClient(cfg.Qdrant.URL, cfg.Qdrant.APIKey)
	if err != nil {
		return nil, err
	}

	cached, err := services.NewQdrantEmbeddingCache(ctx, client, cfg.Qdrant.Collection, cfg.Qdrant.VectorSize, embedder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedding cache: %w", err)
	}
	log.Info("embedding cache enabled", zap.String("collection", cfg.Qdrant.Collection))

	return cached, nil
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
