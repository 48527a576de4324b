package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-validator/internal/models"
	"alfredoptarigan/resume-validator/internal/repositories"
	"alfredoptarigan/resume-validator/internal/services"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// PageHandler serves the interactive form.
type PageHandler struct {
	evaluator   services.EvaluatorService
	resumeRepo  repositories.ResumeRepository
	maxFileSize int64
	log         *zap.Logger
}

func NewPageHandler(
	evaluator services.EvaluatorService,
	resumeRepo repositories.ResumeRepository,
	maxFileSize int64,
	log *zap.Logger,
) *PageHandler {
	return &PageHandler{
		evaluator:   evaluator,
		resumeRepo:  resumeRepo,
		maxFileSize: maxFileSize,
		log:         log,
	}
}

type pageData struct {
	Total         int64
	Form          formValues
	Error         string
	Result        *resultView
	Filter        filterValues
	RecordsLoaded bool
	Records       []models.RecordSummary
	EmptyMessage  string
}

type formValues struct {
	JobTitle        string
	JobRequirements string
	Pipeline        string
}

type filterValues struct {
	MinScore string
	JobTitle string
}

type resultView struct {
	Title     string
	Score     string
	Band      models.ScoreBand
	Message   string
	Sections  []sectionView
	RecordID  string
	Persisted bool
}

type sectionView struct {
	Label string
	Text  string
}

// HandleIndex handles GET /
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	data := h.newPageData()
	return h.render(c, fiber.StatusOK, data)
}

// HandleSubmit handles POST / and re-renders the page with the outcome.
func (h *PageHandler) HandleSubmit(c *fiber.Ctx) error {
	data := h.newPageData()
	data.Form = formValues{
		JobTitle:        c.FormValue("job_title"),
		JobRequirements: c.FormValue("job_requirements"),
		Pipeline:        c.FormValue("pipeline", string(services.PipelineSemantic)),
	}

	input, err := readEvaluationInput(c, h.maxFileSize)
	if err != nil {
		data.Error = userMessage(err)
		return h.render(c, errorStatus(err), data)
	}

	result, err := h.evaluator.Evaluate(c.UserContext(), input)
	if err != nil {
		h.log.Warn("evaluation failed", zap.String("file", input.FileName), zap.Error(err))
		data.Error = userMessage(err)
		return h.render(c, errorStatus(err), data)
	}

	data.Result = newResultView(result)
	if result.Persisted {
		data.Total = h.count()
	}

	return h.render(c, fiber.StatusOK, data)
}

// HandleRecords handles GET /records
func (h *PageHandler) HandleRecords(c *fiber.Ctx) error {
	data := h.newPageData()
	data.Filter = filterValues{
		MinScore: c.Query("min_score", "0"),
		JobTitle: c.Query("job_title"),
	}

	filter, err := parseRecordFilter(c)
	if err != nil {
		data.Error = userMessage(err)
		return h.render(c, errorStatus(err), data)
	}

	records, err := h.resumeRepo.FindFiltered(filter)
	if err != nil {
		h.log.Error("failed to load resumes", zap.Error(err))
		data.Error = "Failed to load saved resumes."
		return h.render(c, fiber.StatusInternalServerError, data)
	}

	data.RecordsLoaded = true
	for _, rec := range records {
		data.Records = append(data.Records, models.NewRecordSummary(rec))
	}
	if len(data.Records) == 0 {
		if data.Total == 0 {
			data.EmptyMessage = "No resumes saved in the database yet."
		} else {
			data.EmptyMessage = "No resumes match the selected filters."
		}
	}

	return h.render(c, fiber.StatusOK, data)
}

func (h *PageHandler) newPageData() *pageData {
	return &pageData{
		Total:  h.count(),
		Form:   formValues{Pipeline: string(services.PipelineSemantic)},
		Filter: filterValues{MinScore: "0"},
	}
}

func (h *PageHandler) count() int64 {
	total, err := h.resumeRepo.Count()
	if err != nil {
		h.log.Warn("failed to count resumes", zap.Error(err))
		return 0
	}
	return total
}

func (h *PageHandler) render(c *fiber.Ctx, status int, data *pageData) error {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

func newResultView(result *services.EvaluationResult) *resultView {
	view := &resultView{
		Title:     "Resume Match Score",
		Score:     strconv.FormatFloat(result.Score, 'f', 2, 64),
		Band:      result.Band,
		Message:   result.Band.Message(),
		RecordID:  result.RecordID,
		Persisted: result.Persisted,
	}

	if result.Pipeline == services.PipelineSemantic {
		view.Title = "Semantic Resume Match Score"
	}

	if result.Sections != nil {
		for _, bucket := range models.SectionOrder {
			view.Sections = append(view.Sections, sectionView{
				Label: bucket.Label(),
				Text:  strings.Join(result.Sections[bucket], " "),
			})
		}
	}

	return view
}
