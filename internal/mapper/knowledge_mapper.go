package mapper

import (
	"github.com/pgvector/pgvector-go"

	"frontera-be/internal/entity"
	"frontera-be/internal/model"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) DocToEntity(d *model.KnowledgeDoc) *entity.KnowledgeDoc {
	if d == nil {
		return nil
	}
	return &entity.KnowledgeDoc{
		Id:        d.Id,
		Title:     d.Title,
		Territory: d.Territory,
		Content:   d.Content,
		Source:    d.Source,
		CreatedAt: d.CreatedAt,
		UpdatedAt: updatedAtToPtr(d.UpdatedAt),
		DeletedAt: deletedAtToPtr(d.DeletedAt),
		IsDeleted: d.DeletedAt.Valid,
	}
}

func (m *KnowledgeMapper) DocToModel(d *entity.KnowledgeDoc) *model.KnowledgeDoc {
	if d == nil {
		return nil
	}
	return &model.KnowledgeDoc{
		Id:        d.Id,
		Title:     d.Title,
		Territory: d.Territory,
		Content:   d.Content,
		Source:    d.Source,
		CreatedAt: d.CreatedAt,
		UpdatedAt: ptrToUpdatedAt(d.UpdatedAt),
		DeletedAt: ptrToDeletedAt(d.DeletedAt, d.IsDeleted),
	}
}

func (m *KnowledgeMapper) EmbeddingToEntity(e *model.KnowledgeEmbedding) *entity.KnowledgeEmbedding {
	if e == nil {
		return nil
	}
	return &entity.KnowledgeEmbedding{
		Id:             e.Id,
		KnowledgeDocId: e.KnowledgeDocId,
		ChunkIndex:     e.ChunkIndex,
		ChunkText:      e.ChunkText,
		Embedding:      e.EmbeddingValue.Slice(),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *KnowledgeMapper) EmbeddingToModel(e *entity.KnowledgeEmbedding) *model.KnowledgeEmbedding {
	if e == nil {
		return nil
	}
	return &model.KnowledgeEmbedding{
		Id:             e.Id,
		KnowledgeDocId: e.KnowledgeDocId,
		ChunkIndex:     e.ChunkIndex,
		ChunkText:      e.ChunkText,
		EmbeddingValue: pgvector.NewVector(e.Embedding),
		CreatedAt:      e.CreatedAt,
	}
}
