package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"frontera-be/internal/constant"
	"frontera-be/internal/dto"
	"frontera-be/internal/entity"
	"frontera-be/internal/pkg/logger"
	"frontera-be/internal/repository/specification"
	"frontera-be/internal/repository/unitofwork"
	"frontera-be/pkg/embedding"
	"frontera-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the knowledge-ingest topic: each message names a
// knowledge doc whose content gets chunked, embedded, and stored for
// similarity search.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	log               logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		log:               log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.EmbedKnowledgeDocMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error(constant.ModuleKnowledge, "Failed to unmarshal ingest message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed, retrying won't help
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.KnowledgeDocRepository().FindOne(ctx, specification.ByID{ID: payload.KnowledgeDocId})
	if err != nil {
		cs.log.Error(constant.ModuleKnowledge, "Failed to load knowledge doc", map[string]interface{}{
			"doc_id": payload.KnowledgeDocId.String(),
			"error":  err.Error(),
		})
		msg.Nack()
		return
	}
	if doc == nil {
		// Deleted between publish and consume.
		msg.Ack()
		return
	}

	content := fmt.Sprintf("Title: %s\nTerritory: %s\n\n%s", doc.Title, doc.Territory, doc.Content)
	chunks := utils.SplitText(content, constant.KnowledgeChunkSize, constant.KnowledgeChunkOverlap)

	cs.log.Info(constant.ModuleKnowledge, "Embedding knowledge doc", map[string]interface{}{
		"doc_id": doc.Id.String(),
		"chunks": len(chunks),
	})

	var newEmbeddings []*entity.KnowledgeEmbedding
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, constant.TaskTypeDocument)
		if err != nil {
			cs.log.Error(constant.ModuleKnowledge, "Embedding generation failed", map[string]interface{}{
				"doc_id": doc.Id.String(),
				"chunk":  i,
				"error":  err.Error(),
			})
			msg.Nack()
			return
		}

		newEmbeddings = append(newEmbeddings, &entity.KnowledgeEmbedding{
			Id:             uuid.New(),
			KnowledgeDocId: doc.Id,
			ChunkIndex:     i,
			ChunkText:      chunk,
			Embedding:      res.Embedding.Values,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.KnowledgeEmbeddingRepository().DeleteByDocId(ctx, doc.Id); err != nil {
		cs.log.Error(constant.ModuleKnowledge, "Failed to clear old embeddings", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	if err := uow.KnowledgeEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
		cs.log.Error(constant.ModuleKnowledge, "Failed to store embeddings", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		msg.Nack()
		return
	}

	cs.log.Info(constant.ModuleKnowledge, "Knowledge doc embedded", map[string]interface{}{
		"doc_id": doc.Id.String(),
		"chunks": len(newEmbeddings),
	})
	msg.Ack()
}
