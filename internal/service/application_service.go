package service

import (
	"context"
	"errors"
	"time"

	"frontera-be/internal/constant"
	"frontera-be/internal/dto"
	"frontera-be/internal/entity"
	"frontera-be/internal/pkg/logger"
	"frontera-be/internal/repository/specification"
	"frontera-be/internal/repository/unitofwork"
	"frontera-be/pkg/events"
	pkgNats "frontera-be/pkg/nats"

	"github.com/google/uuid"
)

type IApplicationService interface {
	Submit(ctx context.Context, userId uuid.UUID, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error)
	GetMyApplication(ctx context.Context, userId uuid.UUID) (*dto.ApplicationResponse, error)
}

type applicationService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pkgNats.Publisher
	log            logger.ILogger
}

func NewApplicationService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pkgNats.Publisher, log logger.ILogger) IApplicationService {
	return &applicationService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func toApplicationResponse(app *entity.Application) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		Id:          app.Id,
		Status:      string(app.Status),
		Profile:     app.Profile,
		ReviewNotes: app.ReviewNotes,
		DecidedAt:   app.DecidedAt,
		SubmittedAt: app.SubmittedAt,
	}
}

func (s *applicationService) Submit(ctx context.Context, userId uuid.UUID, req *dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ApplicationRepository().FindOne(ctx, specification.OwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status != entity.ApplicationStatusRejected {
		return nil, errors.New("an application is already on file")
	}

	app := &entity.Application{
		Id:     uuid.New(),
		UserId: userId,
		Status: entity.ApplicationStatusSubmitted,
		Profile: entity.ClientProfile{
			CompanyName:      req.CompanyName,
			Industry:         req.Industry,
			CompanySize:      req.CompanySize,
			Tier:             req.Tier,
			Role:             req.Role,
			StrategicFocus:   req.StrategicFocus,
			PainPoints:       req.PainPoints,
			TargetOutcomes:   req.TargetOutcomes,
			PreviousAttempts: req.PreviousAttempts,
			Objectives:       req.Objectives,
			Links:            req.Links,
		},
		SubmittedAt: time.Now(),
	}

	if err := uow.ApplicationRepository().Create(ctx, app); err != nil {
		return nil, err
	}

	s.log.Info(constant.ModuleAuth, "Application submitted", map[string]interface{}{
		"application_id": app.Id.String(),
		"company":        app.Profile.CompanyName,
	})

	if s.eventPublisher != nil {
		event := events.NewApplicationSubmittedEvent(app.Id.String(), userId.String(), app.Profile.CompanyName)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.log.Warn(constant.ModuleAuth, "Failed to publish application event", map[string]interface{}{"error": err.Error()})
		}
	}

	return toApplicationResponse(app), nil
}

func (s *applicationService) GetMyApplication(ctx context.Context, userId uuid.UUID) (*dto.ApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	app, err := uow.ApplicationRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "submitted_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, errors.New("no application found")
	}

	return toApplicationResponse(app), nil
}
