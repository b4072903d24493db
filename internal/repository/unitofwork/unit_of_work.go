package unitofwork

import (
	"context"

	"frontera-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ApplicationRepository() contract.ApplicationRepository
	ConversationRepository() contract.ConversationRepository
	ConversationMessageRepository() contract.ConversationMessageRepository
	AssessmentRepository() contract.AssessmentRepository
	StrategicBetRepository() contract.StrategicBetRepository
	StrategicThesisRepository() contract.StrategicThesisRepository
	KnowledgeDocRepository() contract.KnowledgeDocRepository
	KnowledgeEmbeddingRepository() contract.KnowledgeEmbeddingRepository
	InvoiceRepository() contract.InvoiceRepository
}
