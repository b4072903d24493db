package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeDoc is one document of the curated expert-knowledge corpus:
// methodology articles, case studies, and uploaded discovery material that
// ground the coach's suggestions.
type KnowledgeDoc struct {
	Id        uuid.UUID
	Title     string
	Territory string
	Content   string
	Source    string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

// KnowledgeEmbedding is the pgvector row for one knowledge-doc chunk.
type KnowledgeEmbedding struct {
	Id             uuid.UUID
	KnowledgeDocId uuid.UUID
	ChunkIndex     int
	ChunkText      string
	Embedding      []float32
	CreatedAt      time.Time
}
