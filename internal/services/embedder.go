package services

import "context"

// Embedder turns text into a fixed-length vector. Implementations are built
// once at startup and shared by every request.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Model() string
}

// maxEmbedChars bounds the text sent to hosted embedding models.
const maxEmbedChars = 40000

func truncateForEmbedding(text string) string {
	runes := []rune(text)
	if len(runes) <= maxEmbedChars {
		return text
	}
	return string(runes[:maxEmbedChars])
}
