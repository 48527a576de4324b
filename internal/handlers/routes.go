package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(
	app *fiber.App,
	pageHandler *PageHandler,
	evaluateHandler *EvaluationHandler,
	recordsHandler *RecordsHandler,
) {
	// Form pages
	app.Get("/", pageHandler.HandleIndex)
	app.Post("/", pageHandler.HandleSubmit)
	app.Get("/records", pageHandler.HandleRecords)
	app.Get("/records/export", recordsHandler.HandleExport)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/evaluate", evaluateHandler.HandleEvaluate)
	api.Get("/records", recordsHandler.HandleList)
	api.Get("/records/count", recordsHandler.HandleCount)
	api.Get("/records/export", recordsHandler.HandleExport)
}
