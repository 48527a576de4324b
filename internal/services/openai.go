package services

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

type openAIEmbedder struct {
	client     *openai.Client
	embedModel string
}

// NewOpenAIEmbedder talks to the OpenAI embeddings endpoint, or to any
// compatible endpoint when baseURL is set.
func NewOpenAIEmbedder(apiKey, baseURL, embedModel string) (Embedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	if embedModel == "" {
		embedModel = "text-embedding-3-small"
	}

	return &openAIEmbedder{
		client:     openai.NewClient(opts...),
		embedModel: embedModel,
	}, nil
}

func (o *openAIEmbedder) Model() string {
	return o.embedModel
}

// Embed implements Embedder.
func (o *openAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := o.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input:          openai.F[openai.EmbeddingNewParamsInputUnion](shared.UnionString(truncateForEmbedding(text))),
		Model:          openai.F(openai.EmbeddingModel(o.embedModel)),
		EncodingFormat: openai.F(openai.EmbeddingNewParamsEncodingFormatFloat),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: openai: %w", ErrEmbedding, err)
	}

	if resp == nil || len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: openai returned no embedding", ErrEmbedding)
	}

	values := resp.Data[0].Embedding
	embedding := make([]float32, len(values))
	for i, v := range values {
		embedding[i] = float32(v)
	}
	return embedding, nil
}
