package contract

import (
	"context"

	"frontera-be/internal/entity"
	"frontera-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredChunk wraps a knowledge chunk with its cosine similarity against the
// query embedding (1.0 = identical).
type ScoredChunk struct {
	Chunk      *entity.KnowledgeEmbedding
	DocTitle   string
	Similarity float64
}

type KnowledgeDocRepository interface {
	Create(ctx context.Context, doc *entity.KnowledgeDoc) error
	Update(ctx context.Context, doc *entity.KnowledgeDoc) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeDoc, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeDoc, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type KnowledgeEmbeddingRepository interface {
	CreateBulk(ctx context.Context, embeddings []*entity.KnowledgeEmbedding) error
	DeleteByDocId(ctx context.Context, docId uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SearchSimilar returns the closest chunks for a territory, best first,
	// dropping anything under the similarity threshold.
	SearchSimilar(ctx context.Context, embedding []float32, territory string, limit int, threshold float64) ([]*ScoredChunk, error)
}
