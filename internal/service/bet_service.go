package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

// Export quality gate thresholds.
const (
	exportMinBets   = 3
	exportMinTheses = 1
)

// ErrExportBlocked is returned by ExportPortfolio when the quality gate
// fails; Reasons lists every failed check.
type ErrExportBlocked struct {
	Reasons []string
}

func (e *ErrExportBlocked) Error() string {
	return "portfolio export blocked: " + strings.Join(e.Reasons, "; ")
}

type IBetService interface {
	CreateBet(ctx context.Context, userId uuid.UUID, req *dto.CreateBetRequest) (*dto.BetResponse, error)
	UpdateBet(ctx context.Context, userId, betId uuid.UUID, req *dto.UpdateBetRequest) (*dto.BetResponse, error)
	DeleteBet(ctx context.Context, userId, betId uuid.UUID) error
	ListBets(ctx context.Context, userId uuid.UUID) ([]*dto.BetResponse, error)

	CreateThesis(ctx context.Context, userId uuid.UUID, req *dto.CreateThesisRequest) (*dto.ThesisResponse, error)
	ListTheses(ctx context.Context, userId uuid.UUID) ([]*dto.ThesisResponse, error)
	DeleteThesis(ctx context.Context, userId, thesisId uuid.UUID) error

	ExportPortfolio(ctx context.Context, userId uuid.UUID) (*dto.PortfolioExportResponse, error)
}

type betService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pkgNats.Publisher
	log            logger.ILogger
}

func NewBetService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pkgNats.Publisher, log logger.ILogger) IBetService {
	return &betService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func toBetResponse(b *entity.StrategicBet) *dto.BetResponse {
	return &dto.BetResponse{
		Id:            b.Id,
		JobToBeDone:   b.JobToBeDone,
		Belief:        b.Belief,
		Bet:           b.Bet,
		SuccessMetric: b.SuccessMetric,
		KillCriteria:  b.KillCriteria,
		KillDate:      b.KillDate,
		Scores:        b.Scores,
		OverallScore:  b.OverallScore(),
		EvidenceLinks: b.EvidenceLinks,
		Risks:         b.Risks,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func toThesisResponse(t *entity.StrategicThesis) *dto.ThesisResponse {
	return &dto.ThesisResponse{
		Id:          t.Id,
		Statement:   t.Statement,
		WhereToPlay: t.WhereToPlay,
		HowToWin:    t.HowToWin,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func risksFromDTO(r *dto.BetRisksDTO) entity.StrategicRisks {
	if r == nil {
		return entity.StrategicRisks{}
	}
	return entity.StrategicRisks{
		Market:      r.Market,
		Positioning: r.Positioning,
		Execution:   r.Execution,
		Economic:    r.Economic,
	}
}

func (s *betService) CreateBet(ctx context.Context, userId uuid.UUID, req *dto.CreateBetRequest) (*dto.BetResponse, error) {
	bet := &entity.StrategicBet{
		Id:            uuid.New(),
		UserId:        userId,
		JobToBeDone:   req.JobToBeDone,
		Belief:        req.Belief,
		Bet:           req.Bet,
		SuccessMetric: req.SuccessMetric,
		KillCriteria:  req.KillCriteria,
		KillDate:      req.KillDate,
		Scores: entity.BetScores{
			ExpectedImpact:     req.Scores.ExpectedImpact,
			CertaintyOfImpact:  req.Scores.CertaintyOfImpact,
			ClarityOfLevers:    req.Scores.ClarityOfLevers,
			UniquenessOfLevers: req.Scores.UniquenessOfLevers,
		},
		EvidenceLinks: req.EvidenceLinks,
		Risks:         risksFromDTO(req.Risks),
		CreatedAt:     time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.StrategicBetRepository().Create(ctx, bet); err != nil {
		return nil, err
	}

	return toBetResponse(bet), nil
}

func (s *betService) ownedBet(ctx context.Context, uow unitofwork.UnitOfWork, userId, betId uuid.UUID) (*entity.StrategicBet, error) {
	bet, err := uow.StrategicBetRepository().FindOne(ctx,
		specification.ByID{ID: betId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if bet == nil {
		return nil, errors.New("bet not found")
	}
	return bet, nil
}

func (s *betService) UpdateBet(ctx context.Context, userId, betId uuid.UUID, req *dto.UpdateBetRequest) (*dto.BetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bet, err := s.ownedBet(ctx, uow, userId, betId)
	if err != nil {
		return nil, err
	}

	if req.JobToBeDone != nil {
		bet.JobToBeDone = *req.JobToBeDone
	}
	if req.Belief != nil {
		bet.Belief = *req.Belief
	}
	if req.Bet != nil {
		bet.Bet = *req.Bet
	}
	if req.SuccessMetric != nil {
		bet.SuccessMetric = *req.SuccessMetric
	}
	if req.KillCriteria != nil {
		bet.KillCriteria = *req.KillCriteria
	}
	if req.KillDate != nil {
		bet.KillDate = req.KillDate
	}
	if req.Scores != nil {
		bet.Scores = entity.BetScores{
			ExpectedImpact:     req.Scores.ExpectedImpact,
			CertaintyOfImpact:  req.Scores.CertaintyOfImpact,
			ClarityOfLevers:    req.Scores.ClarityOfLevers,
			UniquenessOfLevers: req.Scores.UniquenessOfLevers,
		}
	}
	if req.EvidenceLinks != nil {
		bet.EvidenceLinks = req.EvidenceLinks
	}
	if req.Risks != nil {
		bet.Risks = risksFromDTO(req.Risks)
	}
	now := time.Now()
	bet.UpdatedAt = &now

	if err := uow.StrategicBetRepository().Update(ctx, bet); err != nil {
		return nil, err
	}

	return toBetResponse(bet), nil
}

func (s *betService) DeleteBet(ctx context.Context, userId, betId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bet, err := s.ownedBet(ctx, uow, userId, betId)
	if err != nil {
		return err
	}
	return uow.StrategicBetRepository().Delete(ctx, bet.Id)
}

func (s *betService) ListBets(ctx context.Context, userId uuid.UUID) ([]*dto.BetResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bets, err := uow.StrategicBetRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.BetResponse, 0, len(bets))
	for _, b := range bets {
		result = append(result, toBetResponse(b))
	}
	return result, nil
}

func (s *betService) CreateThesis(ctx context.Context, userId uuid.UUID, req *dto.CreateThesisRequest) (*dto.ThesisResponse, error) {
	thesis := &entity.StrategicThesis{
		Id:          uuid.New(),
		UserId:      userId,
		Statement:   req.Statement,
		WhereToPlay: req.WhereToPlay,
		HowToWin:    req.HowToWin,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.StrategicThesisRepository().Create(ctx, thesis); err != nil {
		return nil, err
	}

	return toThesisResponse(thesis), nil
}

func (s *betService) ListTheses(ctx context.Context, userId uuid.UUID) ([]*dto.ThesisResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	theses, err := uow.StrategicThesisRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ThesisResponse, 0, len(theses))
	for _, t := range theses {
		result = append(result, toThesisResponse(t))
	}
	return result, nil
}

func (s *betService) DeleteThesis(ctx context.Context, userId, thesisId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	thesis, err := uow.StrategicThesisRepository().FindOne(ctx,
		specification.ByID{ID: thesisId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if thesis == nil {
		return errors.New("thesis not found")
	}
	return uow.StrategicThesisRepository().Delete(ctx, thesis.Id)
}

// exportGate runs the quality checks the portfolio must pass before export.
func exportGate(bets []*entity.StrategicBet, theses []*entity.StrategicThesis) []string {
	var reasons []string

	if len(bets) < exportMinBets {
		reasons = append(reasons, fmt.Sprintf("at least %d strategic bets required, have %d", exportMinBets, len(bets)))
	}
	if len(theses) < exportMinTheses {
		reasons = append(reasons, fmt.Sprintf("at least %d strategic thesis required, have %d", exportMinTheses, len(theses)))
	}
	for _, b := range bets {
		if strings.TrimSpace(b.KillCriteria) == "" {
			reasons = append(reasons, fmt.Sprintf("bet %q has no kill criteria", b.Bet))
		}
	}
	return reasons
}

func (s *betService) ExportPortfolio(ctx context.Context, userId uuid.UUID) (*dto.PortfolioExportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	bets, err := uow.StrategicBetRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	theses, err := uow.StrategicThesisRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	if reasons := exportGate(bets, theses); len(reasons) > 0 {
		return nil, &ErrExportBlocked{Reasons: reasons}
	}

	resp := &dto.PortfolioExportResponse{
		ExportedAt:  time.Now(),
		BetCount:    len(bets),
		ThesisCount: len(theses),
	}
	for _, t := range theses {
		resp.Theses = append(resp.Theses, *toThesisResponse(t))
	}
	for _, b := range bets {
		resp.Bets = append(resp.Bets, *toBetResponse(b))
	}

	if s.eventPublisher != nil {
		event := events.NewPortfolioExportedEvent(userId.String(), len(bets), len(theses))
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.log.Warn(constant.ModuleBets, "Failed to publish export event", map[string]interface{}{"error": err.Error()})
		}
	}

	return resp, nil
}
