package handlers

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-validator/internal/models"
	"alfredoptarigan/resume-validator/internal/services"
)

// readEvaluationInput pulls the resume upload and job fields out of a
// multipart form. Validation problems come back as *fiber.Error with 400.
func readEvaluationInput(c *fiber.Ctx, maxFileSize int64) (services.EvaluationInput, error) {
	var input services.EvaluationInput

	pipeline, err := services.ParsePipeline(c.FormValue("pipeline"))
	if err != nil {
		return input, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	file, err := c.FormFile("resume")
	if err != nil {
		return input, fiber.NewError(fiber.StatusBadRequest, "resume file is required")
	}

	if file.Size > maxFileSize {
		return input, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Resume file too large. Max size: %d bytes", maxFileSize))
	}

	requirements := c.FormValue("job_requirements")
	if strings.TrimSpace(requirements) == "" {
		return input, fiber.NewError(fiber.StatusBadRequest, "job_requirements is required")
	}

	src, err := file.Open()
	if err != nil {
		return input, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return input, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return services.EvaluationInput{
		FileName:        file.Filename,
		MediaType:       file.Header.Get(fiber.HeaderContentType),
		Data:            data,
		JobTitle:        strings.TrimSpace(c.FormValue("job_title")),
		JobRequirements: requirements,
		Pipeline:        pipeline,
	}, nil
}

func parseRecordFilter(c *fiber.Ctx) (models.RecordFilter, error) {
	filter := models.RecordFilter{
		JobTitle: strings.TrimSpace(c.Query("job_title")),
	}

	if raw := strings.TrimSpace(c.Query("min_score")); raw != "" {
		minScore, err := strconv.ParseFloat(raw, 64)
		if err != nil || minScore < 0 || minScore > 100 {
			return filter, fiber.NewError(fiber.StatusBadRequest, "min_score must be a number between 0 and 100")
		}
		filter.MinScore = minScore
	}

	return filter, nil
}

// errorStatus maps evaluation errors to HTTP status codes.
func errorStatus(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, services.ErrUnsupportedFormat):
		return fiber.StatusUnsupportedMediaType
	case errors.Is(err, services.ErrExtraction):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrEmbedderUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, services.ErrEmbedding):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// userMessage is the text shown for a failed request. Internal errors are
// not echoed back verbatim.
func userMessage(err error) string {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Message
	case errors.Is(err, services.ErrUnsupportedFormat):
		return services.ErrUnsupportedFormat.Error()
	case errors.Is(err, services.ErrExtraction):
		return "Could not read text from the uploaded document."
	case errors.Is(err, services.ErrEmbedderUnavailable):
		return "Semantic matching is not configured. Choose keyword matching or set an embedding API key."
	case errors.Is(err, services.ErrEmbedding):
		return "The embedding service failed to process the request. Please try again."
	default:
		return "Something went wrong while evaluating the resume."
	}
}
