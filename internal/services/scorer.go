package services

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// MatchScorer rates how well resume text covers job requirements on a 0-100 scale.
type MatchScorer interface {
	Score(ctx context.Context, resumeText, requirements string) (float64, error)
}

type lexicalScorer struct{}

func NewLexicalScorer() MatchScorer {
	return &lexicalScorer{}
}

func (s *lexicalScorer) Score(_ context.Context, resumeText, requirements string) (float64, error) {
	return LexicalScore(resumeText, requirements), nil
}

// LexicalScore is the percentage of whitespace-separated requirement tokens
// that occur anywhere in the resume, compared case-insensitively. Tokens are
// matched as substrings, so "go" also matches "going". Repeated tokens count
// once per occurrence.
func LexicalScore(resumeText, requirements string) float64 {
	resume := strings.ToLower(resumeText)
	words := strings.Fields(strings.ToLower(requirements))
	if len(words) == 0 {
		return 0
	}

	matches := 0
	for _, word := range words {
		if strings.Contains(resume, word) {
			matches++
		}
	}

	return float64(matches) / float64(len(words)) * 100
}

type semanticScorer struct {
	embedder Embedder
}

// NewSemanticScorer scores with the cosine similarity of whole-text embeddings.
// A nil embedder yields ErrEmbedderUnavailable on every call.
func NewSemanticScorer(embedder Embedder) MatchScorer {
	return &semanticScorer{embedder: embedder}
}

func (s *semanticScorer) Score(ctx context.Context, resumeText, requirements string) (float64, error) {
	if s.embedder == nil {
		return 0, ErrEmbedderUnavailable
	}

	resumeEmbedding, err := s.embedder.Embed(ctx, resumeText)
	if err != nil {
		return 0, fmt.Errorf("failed to embed resume: %w", err)
	}

	jobEmbedding, err := s.embedder.Embed(ctx, requirements)
	if err != nil {
		return 0, fmt.Errorf("failed to embed job requirements: %w", err)
	}

	similarity, err := CosineSimilarity(resumeEmbedding, jobEmbedding)
	if err != nil {
		return 0, err
	}

	return similarity * 100, nil
}

// CosineSimilarity returns a value in [-1, 1]. A zero vector has similarity 0
// with everything.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("%w: empty embedding", ErrEmbedding)
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: dimension mismatch %d != %d", ErrEmbedding, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	similarity := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(-1, math.Min(1, similarity)), nil
}
