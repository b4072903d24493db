package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"frontera-be/internal/constant"
	"frontera-be/internal/dto"
	"frontera-be/internal/entity"
	"frontera-be/internal/pkg/logger"
	"frontera-be/internal/pkg/mailer"
	"frontera-be/internal/repository/specification"
	"frontera-be/internal/repository/unitofwork"
	"frontera-be/pkg/events"
	pkgNats "frontera-be/pkg/nats"

	"github.com/google/uuid"
)

type IAdminService interface {
	GetStats(ctx context.Context) (*dto.AdminStatsResponse, error)

	ListApplications(ctx context.Context, status string, limit, offset int) ([]*dto.ApplicationListResponse, error)
	GetApplication(ctx context.Context, applicationId uuid.UUID) (*dto.ApplicationResponse, error)
	ReviewApplication(ctx context.Context, adminId, applicationId uuid.UUID, req *dto.ReviewApplicationRequest) (*dto.ApplicationResponse, error)

	GetLogs(ctx context.Context, level string, limit, offset int) ([]dto.LogListResponse, error)
	GetLogById(ctx context.Context, id string) (*dto.LogDetailResponse, error)

	UploadKnowledgeDoc(ctx context.Context, req *dto.UploadKnowledgeDocRequest) (*dto.KnowledgeDocResponse, error)
	ListKnowledgeDocs(ctx context.Context, territory string) ([]*dto.KnowledgeDocResponse, error)
	DeleteKnowledgeDoc(ctx context.Context, docId uuid.UUID) error
}

type adminService struct {
	uowFactory       unitofwork.RepositoryFactory
	emailService     mailer.IEmailService
	publisherService IPublisherService
	eventPublisher   *pkgNats.Publisher
	log              logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	publisherService IPublisherService,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory:       uowFactory,
		emailService:     emailService,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func (s *adminService) GetStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalUsers, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	activeUsers, err := uow.UserRepository().Count(ctx, specification.ActiveUsers{})
	if err != nil {
		return nil, err
	}
	byStatus, err := uow.ApplicationRepository().CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	totalConversations, err := uow.ConversationRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	totalAssessments, err := uow.AssessmentRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminStatsResponse{
		TotalUsers:          totalUsers,
		ActiveUsers:         activeUsers,
		ApplicationsByState: byStatus,
		TotalConversations:  totalConversations,
		TotalAssessments:    totalAssessments,
	}, nil
}

func (s *adminService) ListApplications(ctx context.Context, status string, limit, offset int) ([]*dto.ApplicationListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "submitted_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	apps, err := uow.ApplicationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ApplicationListResponse, 0, len(apps))
	for _, app := range apps {
		item := &dto.ApplicationListResponse{
			Id:          app.Id,
			UserId:      app.UserId,
			CompanyName: app.Profile.CompanyName,
			Status:      string(app.Status),
			SubmittedAt: app.SubmittedAt,
		}
		if user, userErr := uow.UserRepository().FindOne(ctx, specification.ByID{ID: app.UserId}); userErr == nil && user != nil {
			item.UserEmail = user.Email
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *adminService) GetApplication(ctx context.Context, applicationId uuid.UUID) (*dto.ApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: applicationId})
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, errors.New("application not found")
	}
	return toApplicationResponse(app), nil
}

func (s *adminService) ReviewApplication(ctx context.Context, adminId, applicationId uuid.UUID, req *dto.ReviewApplicationRequest) (*dto.ApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: applicationId})
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, errors.New("application not found")
	}

	newStatus := entity.ApplicationStatus(req.Status)

	app.Status = newStatus
	app.ReviewNotes = req.ReviewNotes
	app.ReviewedBy = &adminId
	now := time.Now()
	app.UpdatedAt = &now

	decided := newStatus != entity.ApplicationStatusInReview
	if decided {
		app.DecidedAt = &now
	}

	if err := uow.ApplicationRepository().Update(ctx, app); err != nil {
		return nil, err
	}

	s.log.Info(constant.ModuleAdmin, "Application reviewed", map[string]interface{}{
		"application_id": app.Id.String(),
		"status":         string(app.Status),
		"reviewed_by":    adminId.String(),
	})

	if decided {
		user, userErr := uow.UserRepository().FindOne(ctx, specification.ByID{ID: app.UserId})
		if userErr == nil && user != nil {
			notes := ""
			if req.ReviewNotes != nil {
				notes = *req.ReviewNotes
			}
			go func(email, company, status, notes string) {
				if emailErr := s.emailService.SendApplicationDecision(email, company, status, notes); emailErr != nil {
					fmt.Printf("Error sending decision email: %v\n", emailErr)
				}
			}(user.Email, app.Profile.CompanyName, string(app.Status), notes)
		}

		if s.eventPublisher != nil {
			event := events.NewApplicationDecidedEvent(app.Id.String(), string(app.Status))
			if err := s.eventPublisher.Publish(ctx, event); err != nil {
				s.log.Warn(constant.ModuleAdmin, "Failed to publish decision event", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	return toApplicationResponse(app), nil
}

func (s *adminService) GetLogs(ctx context.Context, level string, limit, offset int) ([]dto.LogListResponse, error) {
	entries, err := s.log.GetLogs(level, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]dto.LogListResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, dto.LogListResponse{
			Id:        e.Id,
			Level:     e.Level,
			Module:    e.Module,
			Message:   e.Message,
			Timestamp: e.Timestamp,
		})
	}
	return result, nil
}

func (s *adminService) GetLogById(ctx context.Context, id string) (*dto.LogDetailResponse, error) {
	entry, err := s.log.GetLogById(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errors.New("log entry not found")
	}

	return &dto.LogDetailResponse{
		LogListResponse: dto.LogListResponse{
			Id:        entry.Id,
			Level:     entry.Level,
			Module:    entry.Module,
			Message:   entry.Message,
			Timestamp: entry.Timestamp,
		},
		Details: entry.Details,
	}, nil
}

func (s *adminService) UploadKnowledgeDoc(ctx context.Context, req *dto.UploadKnowledgeDocRequest) (*dto.KnowledgeDocResponse, error) {
	doc := &entity.KnowledgeDoc{
		Id:        uuid.New(),
		Title:     req.Title,
		Territory: req.Territory,
		Content:   req.Content,
		Source:    req.Source,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.KnowledgeDocRepository().Create(ctx, doc); err != nil {
		return nil, err
	}

	// Embedding happens asynchronously on the ingest topic.
	payload, err := json.Marshal(dto.EmbedKnowledgeDocMessage{KnowledgeDocId: doc.Id})
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Error(constant.ModuleKnowledge, "Failed to queue doc for embedding", map[string]interface{}{
			"doc_id": doc.Id.String(),
			"error":  err.Error(),
		})
		return nil, errors.New("document stored but embedding could not be queued")
	}

	return &dto.KnowledgeDocResponse{
		Id:        doc.Id.String(),
		Title:     doc.Title,
		Territory: doc.Territory,
		Source:    doc.Source,
		CreatedAt: doc.CreatedAt,
	}, nil
}

func (s *adminService) ListKnowledgeDocs(ctx context.Context, territory string) ([]*dto.KnowledgeDocResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if territory != "" {
		specs = append(specs, specification.ByTerritory{Territory: territory})
	}

	docs, err := uow.KnowledgeDocRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.KnowledgeDocResponse, 0, len(docs))
	for _, doc := range docs {
		chunkCount, _ := uow.KnowledgeEmbeddingRepository().Count(ctx, specification.FilterBy{Field: "knowledge_doc_id", Value: doc.Id})
		result = append(result, &dto.KnowledgeDocResponse{
			Id:         doc.Id.String(),
			Title:      doc.Title,
			Territory:  doc.Territory,
			Source:     doc.Source,
			ChunkCount: chunkCount,
			CreatedAt:  doc.CreatedAt,
		})
	}
	return result, nil
}

func (s *adminService) DeleteKnowledgeDoc(ctx context.Context, docId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.KnowledgeDocRepository().FindOne(ctx, specification.ByID{ID: docId})
	if err != nil {
		return err
	}
	if doc == nil {
		return errors.New("document not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.KnowledgeEmbeddingRepository().DeleteByDocId(ctx, docId); err != nil {
		return err
	}
	if err := uow.KnowledgeDocRepository().Delete(ctx, docId); err != nil {
		return err
	}
	return uow.Commit()
}
