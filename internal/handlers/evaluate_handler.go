package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-validator/internal/models"
	"alfredoptarigan/resume-validator/internal/services"
)

type EvaluationHandler struct {
	evaluator   services.EvaluatorService
	maxFileSize int64
	log         *zap.Logger
}

func NewEvaluationHandler(
	evaluator services.EvaluatorService,
	maxFileSize int64,
	log *zap.Logger,
) *EvaluationHandler {
	return &EvaluationHandler{
		evaluator:   evaluator,
		maxFileSize: maxFileSize,
		log:         log,
	}
}

// HandleEvaluate handles POST /evaluate
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	input, err := readEvaluationInput(c, h.maxFileSize)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"error": userMessage(err),
		})
	}

	result, err := h.evaluator.Evaluate(c.UserContext(), input)
	if err != nil {
		h.log.Warn("evaluation failed", zap.String("file", input.FileName), zap.Error(err))
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"error": userMessage(err),
		})
	}

	return c.JSON(newEvaluateResponse(input.JobTitle, result))
}

func newEvaluateResponse(jobTitle string, result *services.EvaluationResult) models.EvaluateResponse {
	resp := models.EvaluateResponse{
		Pipeline:  string(result.Pipeline),
		Score:     result.Score,
		Band:      result.Band,
		Message:   result.Band.Message(),
		Persisted: result.Persisted,
	}

	if result.Persisted {
		resp.ID = result.RecordID
		resp.JobTitle = jobTitle
	}

	if result.Sections != nil {
		resp.Sections = make(map[string][]string, len(result.Sections))
		for bucket, sentences := range result.Sections {
			resp.Sections[string(bucket)] = sentences
		}
	}

	return resp
}
