package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

// pointStore is the subset of *qdrant.Client the embedding cache needs.
type pointStore interface {
	CollectionExists(ctx context.Context, collectionName string) (bool, error)
	CreateCollection(ctx context.Context, request *qdrant.CreateCollection) error
	Get(ctx context.Context, request *qdrant.GetPoints) ([]*qdrant.RetrievedPoint, error)
	Upsert(ctx context.Context, request *qdrant.UpsertPoints) (*qdrant.UpdateResult, error)
}

var embeddingCacheNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("resume-validator/embeddings"))

type qdrantEmbeddingCache struct {
	store          pointStore
	collectionName string
	vectorSize     uint64
	next           Embedder
	log            *zap.Logger
}

func NewQdrantClient(urlStr, apiKey string) (*qdrant.Client, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return client, nil
}

// NewQdrantEmbeddingCache wraps next so that each distinct (model, text) pair
// is embedded once and then served from the collection. Cache failures are
// logged and never fail the request.
func NewQdrantEmbeddingCache(
	ctx context.Context,
	store pointStore,
	collectionName string,
	vectorSize uint64,
	next Embedder,
	log *zap.Logger,
) (Embedder, error) {
	c := &qdrantEmbeddingCache{
		store:          store,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		next:           next,
		log:            log,
	}
	if err := c.initCollection(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *qdrantEmbeddingCache) initCollection(ctx context.Context) error {
	exists, err := c.store.CollectionExists(ctx, c.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		c.log.Debug("embedding cache collection exists", zap.String("collection", c.collectionName))
		return nil
	}

	err = c.store.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: c.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     c.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	c.log.Info("embedding cache collection created", zap.String("collection", c.collectionName))
	return nil
}

func (c *qdrantEmbeddingCache) Model() string {
	return c.next.Model()
}

// Embed implements Embedder.
func (c *qdrantEmbeddingCache) Embed(ctx context.Context, text string) ([]float32, error) {
	pointID := c.pointID(text)

	if cached := c.lookup(ctx, pointID); cached != nil {
		return cached, nil
	}

	embedding, err := c.next.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	c.save(ctx, pointID, text, embedding)
	return embedding, nil
}

func (c *qdrantEmbeddingCache) pointID(text string) string {
	return uuid.NewSHA1(embeddingCacheNamespace, []byte(c.next.Model()+"\x00"+text)).String()
}

func (c *qdrantEmbeddingCache) lookup(ctx context.Context, pointID string) []float32 {
	points, err := c.store.Get(ctx, &qdrant.GetPoints{
		CollectionName: c.collectionName,
		Ids:            []*qdrant.PointId{qdrant.NewID(pointID)},
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil {
		c.log.Warn("embedding cache lookup failed", zap.String("point_id", pointID), zap.Error(err))
		return nil
	}
	if len(points) == 0 {
		return nil
	}

	vector := points[0].GetVectors().GetVector()
	if dense := vector.GetDense().GetData(); len(dense) > 0 {
		return dense
	}
	if data := vector.GetData(); len(data) > 0 {
		return data
	}
	return nil
}

func (c *qdrantEmbeddingCache) save(ctx context.Context, pointID, text string, embedding []float32) {
	if uint64(len(embedding)) != c.vectorSize {
		c.log.Warn("embedding size does not match cache collection, skipping cache write",
			zap.Int("size", len(embedding)),
			zap.Uint64("collection_size", c.vectorSize),
		)
		return
	}

	_, err := c.store.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: c.collectionName,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewID(pointID),
				Vectors: qdrant.NewVectors(embedding...),
				Payload: qdrant.NewValueMap(map[string]any{
					"model":      c.next.Model(),
					"text_chars": len([]rune(text)),
				}),
			},
		},
	})
	if err != nil {
		c.log.Warn("embedding cache write failed", zap.String("point_id", pointID), zap.Error(err))
	}
}
