package service

import (
	"strings"
	"testing"

	"frontera-be/internal/dto"
	"frontera-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSuggestionCacheKeyDeterministic(t *testing.T) {
	userId := uuid.New()
	req := &dto.SuggestionRequest{
		Territory:    "customer",
		ResearchArea: "churn-drivers",
		Questions:    []string{"Why do customers leave?", "What almost made you leave?"},
		ExistingResponses: map[string]string{
			"q2": "pricing confusion",
			"q1": "slow support",
		},
	}

	// Map iteration order must not leak into the key.
	k1 := suggestionCacheKey(userId, req)
	k2 := suggestionCacheKey(userId, req)
	assert.Equal(t, k1, k2)
	assert.True(t, strings.HasPrefix(k1, "suggestion:"))
}

func TestSuggestionCacheKeyVariesByUser(t *testing.T) {
	req := &dto.SuggestionRequest{
		Territory:    "customer",
		ResearchArea: "churn-drivers",
		Questions:    []string{"Why do customers leave?"},
	}

	assert.NotEqual(t, suggestionCacheKey(uuid.New(), req), suggestionCacheKey(uuid.New(), req))
}

func TestSuggestionCacheKeyVariesByResponses(t *testing.T) {
	userId := uuid.New()
	base := &dto.SuggestionRequest{
		Territory:    "macroMarket",
		ResearchArea: "regulation",
		Questions:    []string{"Which rules change next year?"},
	}
	withResponses := &dto.SuggestionRequest{
		Territory:         base.Territory,
		ResearchArea:      base.ResearchArea,
		Questions:         base.Questions,
		ExistingResponses: map[string]string{"q1": "GDPR successor"},
	}

	assert.NotEqual(t, suggestionCacheKey(userId, base), suggestionCacheKey(userId, withResponses))
}

func TestSuggestionCacheKeySeparatesAdjacentFields(t *testing.T) {
	userId := uuid.New()

	// Same concatenation, different field boundaries.
	a := &dto.SuggestionRequest{Territory: "customer", ResearchArea: "insights"}
	b := &dto.SuggestionRequest{Territory: "customeri", ResearchArea: "nsights"}
	assert.NotEqual(t, suggestionCacheKey(userId, a), suggestionCacheKey(userId, b))

	// Two questions must not hash like one joined question.
	split := &dto.SuggestionRequest{
		Territory:    "customer",
		ResearchArea: "insights",
		Questions:    []string{"Why do customers", "leave?"},
	}
	joined := &dto.SuggestionRequest{
		Territory:    "customer",
		ResearchArea: "insights",
		Questions:    []string{"Why do customersleave?"},
	}
	assert.NotEqual(t, suggestionCacheKey(userId, split), suggestionCacheKey(userId, joined))
}

func TestCompanyDataRendersProfile(t *testing.T) {
	industry := "logistics"
	pain := "margin compression"
	app := &entity.Application{
		Profile: entity.ClientProfile{
			CompanyName: "Acme Freight",
			Industry:    &industry,
			PainPoints:  &pain,
		},
	}

	block := companyData(app)
	assert.Contains(t, block, "Company: Acme Freight")
	assert.Contains(t, block, "Industry: logistics")
	assert.Contains(t, block, "Pain points: margin compression")
	assert.NotContains(t, block, "Size:")
}

func TestCompanyDataNilApplication(t *testing.T) {
	assert.Equal(t, "", companyData(nil))
}
