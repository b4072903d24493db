package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"frontera-be/internal/constant"
	"frontera-be/internal/dto"
	"frontera-be/internal/entity"
	"frontera-be/internal/pkg/logger"
	"frontera-be/internal/repository/specification"
	"frontera-be/internal/repository/unitofwork"
	"frontera-be/pkg/coaching/suggest"
	"frontera-be/pkg/embedding"
	"frontera-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	suggestionExcerptLimit    = 5
	suggestionSimilarityFloor = 0.5
	suggestionCacheKeyPrefix  = "suggestion:"
)

type ISuggestionService interface {
	Suggest(ctx context.Context, userId uuid.UUID, req *dto.SuggestionRequest) (*dto.SuggestionResponse, error)
}

type suggestionService struct {
	uowFactory        unitofwork.RepositoryFactory
	llmProvider       llm.LLMProvider
	embeddingProvider embedding.EmbeddingProvider
	rdb               *redis.Client
	log               logger.ILogger
}

func NewSuggestionService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	embeddingProvider embedding.EmbeddingProvider,
	rdb *redis.Client,
	log logger.ILogger,
) ISuggestionService {
	return &suggestionService{
		uowFactory:        uowFactory,
		llmProvider:       llmProvider,
		embeddingProvider: embeddingProvider,
		rdb:               rdb,
		log:               log,
	}
}

// cacheKey hashes the parts of the request that change the output. Two
// clients asking the same questions about the same area share nothing: the
// user id is part of the key.
func suggestionCacheKey(userId uuid.UUID, req *dto.SuggestionRequest) string {
	h := sha256.New()
	// NUL-separate every field so adjacent values cannot run together
	// ("ab"+"c" must not hash like "a"+"bc").
	writeField := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	writeField(userId.String())
	writeField(req.Territory)
	writeField(req.ResearchArea)
	for _, q := range req.Questions {
		writeField(q)
	}
	keys := make([]string, 0, len(req.ExistingResponses))
	for k := range req.ExistingResponses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		writeField(k)
		writeField(req.ExistingResponses[k])
	}
	return suggestionCacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}

// companyData renders the accepted application profile into a compact block
// for the suggestion prompt. Empty when the user has no accepted application.
func companyData(app *entity.Application) string {
	if app == nil {
		return ""
	}
	p := app.Profile

	var b strings.Builder
	b.WriteString("Company: " + p.CompanyName)
	if p.Industry != nil {
		b.WriteString("\nIndustry: " + *p.Industry)
	}
	if p.CompanySize != nil {
		b.WriteString("\nSize: " + *p.CompanySize)
	}
	if p.PainPoints != nil {
		b.WriteString("\nPain points: " + *p.PainPoints)
	}
	if p.TargetOutcomes != nil {
		b.WriteString("\nTarget outcomes: " + *p.TargetOutcomes)
	}
	return b.String()
}

func (s *suggestionService) Suggest(ctx context.Context, userId uuid.UUID, req *dto.SuggestionRequest) (*dto.SuggestionResponse, error) {
	cacheKey := suggestionCacheKey(userId, req)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp dto.SuggestionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				resp.ContextUsed.FromCache = true
				return &resp, nil
			}
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	conv, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: req.ConversationId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, errors.New("conversation not found")
	}

	app, err := uow.ApplicationRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByStatus{Status: string(entity.ApplicationStatusAccepted)},
	)
	if err != nil {
		return nil, err
	}

	excerpts := s.retrieveExcerpts(ctx, uow, req)

	suggestCtx := suggest.Context{
		Territory:         req.Territory,
		ResearchArea:      req.ResearchArea,
		ResearchAreaTitle: req.ResearchAreaTitle,
		CompanyData:       companyData(app),
		DiscoveryExcerpts: excerpts,
		Questions:         req.Questions,
	}
	for area, response := range req.ExistingResponses {
		suggestCtx.PriorResponses = append(suggestCtx.PriorResponses, suggest.PriorResponse{
			Area:     area,
			Response: response,
		})
	}
	sort.Slice(suggestCtx.PriorResponses, func(i, j int) bool {
		return suggestCtx.PriorResponses[i].Area < suggestCtx.PriorResponses[j].Area
	})

	raw, err := s.llmProvider.Generate(ctx, suggest.BuildPrompt(suggestCtx), llm.WithTemperature(0.4))
	if err != nil {
		s.log.Error(constant.ModuleSuggestion, "Suggestion model call failed", map[string]interface{}{"error": err.Error()})
		return nil, errors.New("suggestion generation is unavailable right now")
	}

	suggestions, report := suggest.ParseResponseWithReport(raw, len(req.Questions))
	if report.FallbackCount > 0 {
		s.log.Warn(constant.ModuleSuggestion, "Suggestion parse fell back for some questions", map[string]interface{}{
			"segments_found": report.SegmentsFound,
			"fallback_count": report.FallbackCount,
			"questions":      len(req.Questions),
		})
	}

	resp := &dto.SuggestionResponse{
		Suggestions: suggestions,
		ContextUsed: dto.SuggestionContextUsed{
			ExcerptCount:  len(excerpts),
			CompanyData:   app != nil,
			FromCache:     false,
			FallbackCount: report.FallbackCount,
		},
		GeneratedAt: time.Now(),
	}

	if s.rdb != nil {
		if doc, marshalErr := json.Marshal(resp); marshalErr == nil {
			ttl := time.Duration(constant.SuggestionCacheTTLSeconds) * time.Second
			if err := s.rdb.Set(ctx, cacheKey, doc, ttl).Err(); err != nil {
				s.log.Warn(constant.ModuleSuggestion, "Failed to cache suggestions", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	return resp, nil
}

// retrieveExcerpts pulls the closest knowledge-corpus chunks for the research
// area. Retrieval failures degrade to an empty excerpt list rather than
// failing the whole request.
func (s *suggestionService) retrieveExcerpts(ctx context.Context, uow unitofwork.UnitOfWork, req *dto.SuggestionRequest) []string {
	query := fmt.Sprintf("%s %s %s", req.Territory, req.ResearchArea, strings.Join(req.Questions, " "))

	embRes, err := s.embeddingProvider.Generate(query, constant.TaskTypeQuery)
	if err != nil {
		s.log.Warn(constant.ModuleSuggestion, "Query embedding failed", map[string]interface{}{"error": err.Error()})
		return nil
	}

	chunks, err := uow.KnowledgeEmbeddingRepository().SearchSimilar(ctx,
		embRes.Embedding.Values, req.Territory, suggestionExcerptLimit, suggestionSimilarityFloor)
	if err != nil {
		s.log.Warn(constant.ModuleSuggestion, "Similarity search failed", map[string]interface{}{"error": err.Error()})
		return nil
	}

	excerpts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		excerpts = append(excerpts, fmt.Sprintf("[%s] %s", c.DocTitle, c.Chunk.ChunkText))
	}
	return excerpts
}
