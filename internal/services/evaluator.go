package services

import (
	"context"
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/resume-validator/internal/logger"
	"alfredoptarigan/resume-validator/internal/models"
	"alfredoptarigan/resume-validator/internal/repositories"
)

type Pipeline string

const (
	PipelineLexical  Pipeline = "lexical"
	PipelineSemantic Pipeline = "semantic"
)

// ParsePipeline accepts "lexical" or "semantic" in any case; empty means semantic.
func ParsePipeline(s string) (Pipeline, error) {
	switch Pipeline(strings.ToLower(strings.TrimSpace(s))) {
	case "", PipelineSemantic:
		return PipelineSemantic, nil
	case PipelineLexical:
		return PipelineLexical, nil
	default:
		return "", fmt.Errorf("unknown pipeline %q, expected %q or %q", s, PipelineLexical, PipelineSemantic)
	}
}

type EvaluationInput struct {
	FileName        string
	MediaType       string
	Data            []byte
	JobTitle        string
	JobRequirements string
	Pipeline        Pipeline
}

type EvaluationResult struct {
	RecordID  string
	Pipeline  Pipeline
	Score     float64
	Band      models.ScoreBand
	Sections  models.Sections
	Persisted bool
}

type EvaluatorService interface {
	Evaluate(ctx context.Context, input EvaluationInput) (*EvaluationResult, error)
}

type evaluatorService struct {
	resumeRepo repositories.ResumeRepository
	extractor  TextExtractor
	classifier SectionClassifier
	lexical    MatchScorer
	semantic   MatchScorer
	log        *zap.Logger
}

func NewEvaluatorService(
	resumeRepo repositories.ResumeRepository,
	extractor TextExtractor,
	classifier SectionClassifier,
	lexical MatchScorer,
	semantic MatchScorer,
	log *zap.Logger,
) EvaluatorService {
	return &evaluatorService{
		resumeRepo: resumeRepo,
		extractor:  extractor,
		classifier: classifier,
		lexical:    lexical,
		semantic:   semantic,
		log:        log,
	}
}

// Evaluate extracts, scores and bands one resume. The record is stored only
// when every step succeeded and a job title was given.
func (e *evaluatorService) Evaluate(ctx context.Context, input EvaluationInput) (*EvaluationResult, error) {
	recordID := RecordID(input.FileName)
	log := e.log.With(
		zap.String("record_id", recordID),
		zap.String("pipeline", string(input.Pipeline)),
	)

	log.Info("extracting resume text",
		zap.String("media_type", input.MediaType),
		zap.Int("bytes", len(input.Data)),
		zap.String("requirements", logger.Truncate(input.JobRequirements, 80)),
	)
	resumeText, err := e.extractor.Extract(input.MediaType, input.Data)
	if err != nil {
		log.Warn("extraction failed", zap.Error(err))
		return nil, err
	}

	result := &EvaluationResult{
		RecordID: recordID,
		Pipeline: input.Pipeline,
	}

	var scorer MatchScorer
	switch input.Pipeline {
	case PipelineLexical:
		scorer = e.lexical
	case PipelineSemantic:
		result.Sections = e.classifier.Classify(resumeText)
		scorer = e.semantic
	default:
		return nil, fmt.Errorf("unknown pipeline %q", input.Pipeline)
	}

	score, err := scorer.Score(ctx, resumeText, input.JobRequirements)
	if err != nil {
		log.Warn("scoring failed", zap.Error(err))
		return nil, fmt.Errorf("failed to score resume: %w", err)
	}

	result.Score = score
	result.Band = ClassifyScore(score)
	log.Info("resume scored", zap.Float64("score", score), zap.String("band", string(result.Band)))

	if input.JobTitle == "" {
		return result, nil
	}

	record := &models.ResumeRecord{
		ID:              recordID,
		ResumeText:      resumeText,
		JobRequirements: input.JobRequirements,
		JobTitle:        input.JobTitle,
		Score:           score,
	}
	if err := e.resumeRepo.Upsert(record); err != nil {
		log.Error("failed to save resume", zap.Error(err))
		return nil, fmt.Errorf("failed to save resume: %w", err)
	}

	result.Persisted = true
	log.Info("resume saved")

	return result, nil
}

// RecordID derives the stored id from the uploaded file name: "C-" followed
// by the base name without its extension. Re-uploading a file with the same
// name therefore overwrites the earlier record.
func RecordID(fileName string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(fileName), `\`, "/"))
	if base == "." || base == "/" {
		base = ""
	}

	stem := strings.TrimSuffix(base, path.Ext(base))
	if stem == "" {
		stem = base
	}

	return "C-" + stem
}
