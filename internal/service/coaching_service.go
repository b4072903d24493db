package service

import (
	"context"
	"errors"
	"time"

	"frontera-be/internal/constant"
	"frontera-be/internal/dto"
	"frontera-be/internal/entity"
	"frontera-be/internal/pkg/logger"
	"frontera-be/internal/repository/memory"
	"frontera-be/internal/repository/specification"
	"frontera-be/internal/repository/unitofwork"
	"frontera-be/pkg/coaching/progress"
	"frontera-be/pkg/coaching/prompt"
	"frontera-be/pkg/coaching/state"
	"frontera-be/pkg/events"
	"frontera-be/pkg/llm"
	pkgNats "frontera-be/pkg/nats"
	"frontera-be/pkg/store"

	"github.com/google/uuid"
)

// chatHistoryLimit caps how many stored messages are replayed to the model
// on each turn.
const chatHistoryLimit = 40

type ICoachingService interface {
	CreateConversation(ctx context.Context, userId uuid.UUID, req *dto.CreateConversationRequest) (*dto.CreateConversationResponse, error)
	ListConversations(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationListResponse, error)
	GetConversation(ctx context.Context, userId, conversationId uuid.UUID) (*dto.ConversationDetailResponse, error)
	GetMessages(ctx context.Context, userId, conversationId uuid.UUID) ([]*dto.ChatMessageResponse, error)
	SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	PatchState(ctx context.Context, userId, conversationId uuid.UUID, req *dto.PatchStateRequest) (*dto.PatchStateResponse, error)
	GetProgress(ctx context.Context, userId, conversationId uuid.UUID) (*dto.ProgressResponse, error)
}

type coachingService struct {
	uowFactory     unitofwork.RepositoryFactory
	llmProvider    llm.LLMProvider
	sessionRepo    *memory.SessionRepository
	eventPublisher *pkgNats.Publisher
	log            logger.ILogger
}

func NewCoachingService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	sessionRepo *memory.SessionRepository,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) ICoachingService {
	return &coachingService{
		uowFactory:     uowFactory,
		llmProvider:    llmProvider,
		sessionRepo:    sessionRepo,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// clientContext loads the coaching client profile from the user's accepted
// application. Coaching is only available after acceptance.
func (s *coachingService) clientContext(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (prompt.ClientContext, *entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return prompt.ClientContext{}, nil, errors.New("user not found")
	}

	app, err := uow.ApplicationRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByStatus{Status: string(entity.ApplicationStatusAccepted)},
	)
	if err != nil {
		return prompt.ClientContext{}, nil, err
	}
	if app == nil {
		return prompt.ClientContext{}, nil, errors.New("coaching requires an accepted application")
	}

	p := app.Profile
	return prompt.ClientContext{
		CompanyName:      p.CompanyName,
		Industry:         strOrEmpty(p.Industry),
		CompanySize:      strOrEmpty(p.CompanySize),
		Tier:             strOrEmpty(p.Tier),
		StrategicFocus:   strOrEmpty(p.StrategicFocus),
		PainPoints:       strOrEmpty(p.PainPoints),
		TargetOutcomes:   strOrEmpty(p.TargetOutcomes),
		PreviousAttempts: strOrEmpty(p.PreviousAttempts),
	}, user, nil
}

func (s *coachingService) ownedConversation(ctx context.Context, uow unitofwork.UnitOfWork, userId, conversationId uuid.UUID) (*entity.Conversation, error) {
	conv, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: conversationId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, errors.New("conversation not found")
	}
	return conv, nil
}

func toProgressResponse(st state.State) dto.ProgressResponse {
	p := progress.Calculate(st)
	return dto.ProgressResponse{
		Overall:  p.Overall,
		Research: p.Research,
		Canvas:   p.Canvas,
		Summary:  progress.Summary(st),
	}
}

func (s *coachingService) CreateConversation(ctx context.Context, userId uuid.UUID, req *dto.CreateConversationRequest) (*dto.CreateConversationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clientCtx, user, err := s.clientContext(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	st := state.Initialize()

	title := req.Title
	if title == "" {
		title = "Coaching with " + clientCtx.CompanyName
	}

	conv := &entity.Conversation{
		Id:             uuid.New(),
		UserId:         userId,
		Title:          title,
		FrameworkState: st,
		CreatedAt:      time.Now(),
	}

	opening := prompt.GenerateOpeningMessage(clientCtx, st, user.FullName, false)
	openingMsg := &entity.ConversationMessage{
		Id:             uuid.New(),
		ConversationId: conv.Id,
		Role:           entity.MessageRoleAssistant,
		Content:        opening,
		CreatedAt:      time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ConversationRepository().Create(ctx, conv); err != nil {
		return nil, err
	}
	if err := uow.ConversationMessageRepository().Create(ctx, openingMsg); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.sessionRepo.Save(&store.Session{
		ID:           conv.Id.String(),
		UserID:       userId.String(),
		SystemPrompt: prompt.BuildSystemPrompt(clientCtx, st),
	})

	if s.eventPublisher != nil {
		event := events.NewConversationStartedEvent(conv.Id.String(), userId.String())
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.log.Warn(constant.ModuleCoaching, "Failed to publish conversation event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.CreateConversationResponse{
		Id:             conv.Id,
		Title:          conv.Title,
		OpeningMessage: opening,
		FrameworkState: st,
		CreatedAt:      conv.CreatedAt,
	}, nil
}

func (s *coachingService) ListConversations(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	convs, err := uow.ConversationRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ConversationListResponse, 0, len(convs))
	for _, conv := range convs {
		p := progress.Calculate(conv.FrameworkState)
		result = append(result, &dto.ConversationListResponse{
			Id:        conv.Id,
			Title:     conv.Title,
			Progress:  p.Overall,
			Phase:     string(conv.FrameworkState.CurrentPhase),
			CreatedAt: conv.CreatedAt,
			UpdatedAt: conv.UpdatedAt,
		})
	}
	return result, nil
}

func (s *coachingService) GetConversation(ctx context.Context, userId, conversationId uuid.UUID) (*dto.ConversationDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conv, err := s.ownedConversation(ctx, uow, userId, conversationId)
	if err != nil {
		return nil, err
	}

	resp := &dto.ConversationDetailResponse{
		Id:             conv.Id,
		Title:          conv.Title,
		FrameworkState: conv.FrameworkState,
		CreatedAt:      conv.CreatedAt,
	}

	// Returning to an in-flight conversation gets a fresh welcome-back line.
	if conv.FrameworkState.TotalMessageCount > 0 {
		if clientCtx, user, ctxErr := s.clientContext(ctx, uow, userId); ctxErr == nil {
			resp.OpeningMessage = prompt.GenerateOpeningMessage(clientCtx, conv.FrameworkState, user.FullName, true)
		}
	}

	return resp, nil
}

func (s *coachingService) GetProgress(ctx context.Context, userId, conversationId uuid.UUID) (*dto.ProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conv, err := s.ownedConversation(ctx, uow, userId, conversationId)
	if err != nil {
		return nil, err
	}

	resp := toProgressResponse(conv.FrameworkState)
	return &resp, nil
}

func (s *coachingService) GetMessages(ctx context.Context, userId, conversationId uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedConversation(ctx, uow, userId, conversationId); err != nil {
		return nil, err
	}

	msgs, err := uow.ConversationMessageRepository().FindAll(ctx,
		specification.ByConversation{ConversationID: conversationId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ChatMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		result = append(result, &dto.ChatMessageResponse{
			Id:        m.Id,
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return result, nil
}

// systemPrompt returns the cached coaching prompt for the conversation,
// rebuilding it when the session cache has expired or the state changed.
func (s *coachingService) systemPrompt(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, conv *entity.Conversation) (string, error) {
	if session, ok := s.sessionRepo.Get(conv.Id.String()); ok {
		if session.StateVersion == conv.FrameworkState.TotalMessageCount && session.SystemPrompt != "" {
			return session.SystemPrompt, nil
		}
	}

	clientCtx, _, err := s.clientContext(ctx, uow, userId)
	if err != nil {
		return "", err
	}

	built := prompt.BuildSystemPrompt(clientCtx, conv.FrameworkState)
	s.sessionRepo.Save(&store.Session{
		ID:           conv.Id.String(),
		UserID:       userId.String(),
		SystemPrompt: built,
		StateVersion: conv.FrameworkState.TotalMessageCount,
	})
	return built, nil
}

func (s *coachingService) SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conv, err := s.ownedConversation(ctx, uow, userId, req.ConversationId)
	if err != nil {
		return nil, err
	}

	systemPrompt, err := s.systemPrompt(ctx, uow, userId, conv)
	if err != nil {
		return nil, err
	}

	history, err := uow.ConversationMessageRepository().FindAll(ctx,
		specification.ByConversation{ConversationID: conv.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	if len(history) > chatHistoryLimit {
		history = history[len(history)-chatHistoryLimit:]
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: systemPrompt})
	for _, m := range history {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, llm.Message{Role: "user", Content: req.Message})

	reply, err := s.llmProvider.Chat(ctx, messages, llm.WithTemperature(0.7))
	if err != nil {
		s.log.Error(constant.ModuleCoaching, "Coach model call failed", map[string]interface{}{
			"conversation_id": conv.Id.String(),
			"error":           err.Error(),
		})
		return nil, errors.New("coach is unavailable right now, try again shortly")
	}

	userMsg := &entity.ConversationMessage{
		Id:             uuid.New(),
		ConversationId: conv.Id,
		Role:           entity.MessageRoleUser,
		Content:        req.Message,
		CreatedAt:      time.Now(),
	}
	assistantMsg := &entity.ConversationMessage{
		Id:             uuid.New(),
		ConversationId: conv.Id,
		Role:           entity.MessageRoleAssistant,
		Content:        reply,
		CreatedAt:      time.Now(),
	}

	// One increment per stored message.
	newState := state.Update(conv.FrameworkState, state.Patch{IncrementMessages: true})
	newState = state.Update(newState, state.Patch{IncrementMessages: true})

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ConversationMessageRepository().Create(ctx, userMsg); err != nil {
		return nil, err
	}
	if err := uow.ConversationMessageRepository().Create(ctx, assistantMsg); err != nil {
		return nil, err
	}
	if err := uow.ConversationRepository().UpdateState(ctx, conv.Id, newState); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if session, ok := s.sessionRepo.Get(conv.Id.String()); ok {
		session.StateVersion = newState.TotalMessageCount
		session.LastUserMessage = req.Message
		s.sessionRepo.Save(session)
	}

	return &dto.SendChatResponse{
		ConversationId: conv.Id,
		Sent: &dto.ChatMessageResponse{
			Id:        userMsg.Id,
			Role:      userMsg.Role,
			Content:   userMsg.Content,
			CreatedAt: userMsg.CreatedAt,
		},
		Reply: &dto.ChatMessageResponse{
			Id:        assistantMsg.Id,
			Role:      assistantMsg.Role,
			Content:   assistantMsg.Content,
			CreatedAt: assistantMsg.CreatedAt,
		},
		FrameworkState: newState,
		Progress:       toProgressResponse(newState),
		NextFocus:      progress.SuggestNextFocus(newState),
	}, nil
}

func patchFromRequest(req *dto.PatchStateRequest) state.Patch {
	var p state.Patch

	if req.Phase != nil {
		phase := state.Phase(*req.Phase)
		p.CurrentPhase = &phase
	}
	if req.PillarStarted != nil {
		pillar := state.Pillar(*req.PillarStarted)
		p.PillarStarted = &pillar
	}
	if req.PillarCompleted != nil {
		pillar := state.Pillar(*req.PillarCompleted)
		p.PillarCompleted = &pillar
	}
	if req.CanvasCompleted != nil {
		section := state.CanvasSection(*req.CanvasCompleted)
		p.CanvasSection = &section
	}
	if req.AddInsight != nil {
		p.PillarInsight = &state.PillarInsight{
			Pillar:  state.Pillar(req.AddInsight.Pillar),
			Insight: req.AddInsight.Insight,
		}
	}
	if req.AddBet != nil {
		p.StrategicBet = &state.BetDraft{
			Belief:        req.AddBet.Belief,
			Implication:   req.AddBet.Implication,
			Exploration:   req.AddBet.Exploration,
			SuccessMetric: req.AddBet.SuccessMetric,
			PillarSource:  req.AddBet.PillarSource,
		}
	}
	if req.KeyInsight != nil {
		p.KeyInsight = req.KeyInsight
	}
	p.IncrementMessages = req.IncrementMessages

	return p
}

func (s *coachingService) PatchState(ctx context.Context, userId, conversationId uuid.UUID, req *dto.PatchStateRequest) (*dto.PatchStateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conv, err := s.ownedConversation(ctx, uow, userId, conversationId)
	if err != nil {
		return nil, err
	}

	newState := state.Update(conv.FrameworkState, patchFromRequest(req))

	if err := uow.ConversationRepository().UpdateState(ctx, conv.Id, newState); err != nil {
		return nil, err
	}

	// Cached system prompt embeds the old state; drop it.
	s.sessionRepo.Delete(conv.Id.String())

	if req.PillarCompleted != nil && s.eventPublisher != nil {
		p := progress.Calculate(newState)
		event := events.NewPillarCompletedEvent(conv.Id.String(), *req.PillarCompleted, p.Overall)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.log.Warn(constant.ModuleCoaching, "Failed to publish pillar event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.PatchStateResponse{
		FrameworkState: newState,
		Progress:       toProgressResponse(newState),
		NextFocus:      progress.SuggestNextFocus(newState),
	}, nil
}
