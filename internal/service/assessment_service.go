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
	"frontera-be/pkg/coaching/assessment"
	"frontera-be/pkg/events"
	pkgNats "frontera-be/pkg/nats"

	"github.com/google/uuid"
)

type IAssessmentService interface {
	GetQuestions(ctx context.Context) *dto.AssessmentQuestionsResponse
	Submit(ctx context.Context, userId uuid.UUID, req *dto.SubmitAssessmentRequest) (*dto.AssessmentResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID) ([]*dto.AssessmentResponse, error)
	GetLatest(ctx context.Context, userId uuid.UUID) (*dto.AssessmentResponse, error)
	GetResult(ctx context.Context, userId, assessmentId uuid.UUID) (*dto.AssessmentResponse, error)
}

type assessmentService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pkgNats.Publisher
	log            logger.ILogger
}

func NewAssessmentService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pkgNats.Publisher, log logger.ILogger) IAssessmentService {
	return &assessmentService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *assessmentService) GetQuestions(ctx context.Context) *dto.AssessmentQuestionsResponse {
	return &dto.AssessmentQuestionsResponse{
		Likert:      assessment.LikertQuestions,
		Situational: assessment.SituationalQuestions,
	}
}

func toAssessmentResponse(a *entity.Assessment) *dto.AssessmentResponse {
	return &dto.AssessmentResponse{
		Id:          a.Id,
		Result:      a.Result,
		SubmittedAt: a.SubmittedAt,
	}
}

func (s *assessmentService) Submit(ctx context.Context, userId uuid.UUID, req *dto.SubmitAssessmentRequest) (*dto.AssessmentResponse, error) {
	responses := assessment.Responses{
		Likert:      req.Likert,
		Situational: req.Situational,
	}
	result := assessment.Score(responses)

	a := &entity.Assessment{
		Id:          uuid.New(),
		UserId:      userId,
		Responses:   responses,
		Result:      result,
		SubmittedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AssessmentRepository().Create(ctx, a); err != nil {
		return nil, err
	}

	s.log.Info(constant.ModuleAssessment, "Assessment scored", map[string]interface{}{
		"assessment_id": a.Id.String(),
		"archetype":     string(a.Result.Archetype.ID),
		"overall":       a.Result.OverallMaturity,
	})

	if s.eventPublisher != nil {
		event := events.NewAssessmentScoredEvent(a.Id.String(), userId.String(), string(a.Result.Archetype.ID), a.Result.OverallMaturity)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.log.Warn(constant.ModuleAssessment, "Failed to publish assessment event", map[string]interface{}{"error": err.Error()})
		}
	}

	return toAssessmentResponse(a), nil
}

func (s *assessmentService) GetHistory(ctx context.Context, userId uuid.UUID) ([]*dto.AssessmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	list, err := uow.AssessmentRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "submitted_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AssessmentResponse, 0, len(list))
	for _, a := range list {
		result = append(result, toAssessmentResponse(a))
	}
	return result, nil
}

func (s *assessmentService) GetLatest(ctx context.Context, userId uuid.UUID) (*dto.AssessmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	a, err := uow.AssessmentRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "submitted_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.New("no assessment on file")
	}
	return toAssessmentResponse(a), nil
}

func (s *assessmentService) GetResult(ctx context.Context, userId, assessmentId uuid.UUID) (*dto.AssessmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	a, err := uow.AssessmentRepository().FindOne(ctx,
		specification.ByID{ID: assessmentId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.New("assessment not found")
	}
	return toAssessmentResponse(a), nil
}
