package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-validator/internal/models"
	"alfredoptarigan/resume-validator/internal/repositories"
	"alfredoptarigan/resume-validator/internal/services"
)

type RecordsHandler struct {
	resumeRepo repositories.ResumeRepository
	exporter   services.Exporter
	log        *zap.Logger
}

func NewRecordsHandler(
	resumeRepo repositories.ResumeRepository,
	exporter services.Exporter,
	log *zap.Logger,
) *RecordsHandler {
	return &RecordsHandler{
		resumeRepo: resumeRepo,
		exporter:   exporter,
		log:        log,
	}
}

// HandleList handles GET /records?min_score=&job_title=
func (h *RecordsHandler) HandleList(c *fiber.Ctx) error {
	filter, err := parseRecordFilter(c)
	if err != nil {
		return c.Status(errorStatus(err)).JSON(fiber.Map{
			"error": userMessage(err),
		})
	}

	records, err := h.resumeRepo.FindFiltered(filter)
	if err != nil {
		h.log.Error("failed to load resumes", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load saved resumes",
		})
	}

	total, err := h.resumeRepo.Count()
	if err != nil {
		h.log.Error("failed to count resumes", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count saved resumes",
		})
	}

	summaries := make([]models.RecordSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, models.NewRecordSummary(rec))
	}

	return c.JSON(models.RecordsResponse{
		Total:   total,
		Count:   len(summaries),
		Records: summaries,
	})
}

// HandleCount handles GET /records/count
func (h *RecordsHandler) HandleCount(c *fiber.Ctx) error {
	count, err := h.resumeRepo.Count()
	if err != nil {
		h.log.Error("failed to count resumes", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count saved resumes",
		})
	}

	return c.JSON(models.CountResponse{Count: count})
}

// HandleExport handles GET /records/export?format=csv|xlsx
func (h *RecordsHandler) HandleExport(c *fiber.Ctx) error {
	format := c.Query("format", "csv")
	if format != "csv" && format != "xlsx" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "format must be csv or xlsx",
		})
	}

	records, err := h.resumeRepo.FindAll()
	if err != nil {
		h.log.Error("failed to load resumes for export", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export saved resumes",
		})
	}

	var buf bytes.Buffer
	switch format {
	case "xlsx":
		err = h.exporter.WriteXLSX(&buf, records)
	default:
		err = h.exporter.WriteCSV(&buf, records)
	}
	if err != nil {
		h.log.Error("failed to export resumes", zap.String("format", format), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export saved resumes",
		})
	}

	h.log.Info("resumes exported", zap.String("format", format), zap.Int("count", len(records)))

	if format == "xlsx" {
		c.Attachment(services.ExportXLSXName)
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	} else {
		c.Attachment(services.ExportCSVFileName)
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	}
	return c.Send(buf.Bytes())
}
