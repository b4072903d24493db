package dto

import (
	"time"

	"github.com/google/uuid"

	"frontera-be/pkg/coaching/state"
	"frontera-be/pkg/coaching/suggest"
)

type CreateConversationRequest struct {
	Title string `json:"title,omitempty" validate:"omitempty,max=255"`
}

type CreateConversationResponse struct {
	Id             uuid.UUID   `json:"id"`
	Title          string      `json:"title"`
	OpeningMessage string      `json:"opening_message"`
	FrameworkState state.State `json:"framework_state"`
	CreatedAt      time.Time   `json:"created_at"`
}

type ConversationListResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Progress  int        `json:"progress"`
	Phase     string     `json:"phase"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ConversationDetailResponse struct {
	Id             uuid.UUID   `json:"id"`
	Title          string      `json:"title"`
	FrameworkState state.State `json:"framework_state"`
	OpeningMessage string      `json:"opening_message,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

type ChatMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatRequest struct {
	ConversationId uuid.UUID `json:"conversation_id" validate:"required"`
	Message        string    `json:"message" validate:"required"`
}

type SendChatResponse struct {
	ConversationId uuid.UUID            `json:"conversation_id"`
	Sent           *ChatMessageResponse `json:"sent"`
	Reply          *ChatMessageResponse `json:"reply"`
	FrameworkState state.State          `json:"framework_state"`
	Progress       ProgressResponse     `json:"progress"`
	NextFocus      string               `json:"next_focus"`
}

type ProgressResponse struct {
	Overall  int    `json:"overall"`
	Research int    `json:"research"`
	Canvas   int    `json:"canvas"`
	Summary  string `json:"summary"`
}

// --- Framework state patch DTOs ---

type PatchStateRequest struct {
	PillarStarted     *string      `json:"pillar_started,omitempty" validate:"omitempty,oneof=macroMarket customer colleague"`
	PillarCompleted   *string      `json:"pillar_completed,omitempty" validate:"omitempty,oneof=macroMarket customer colleague"`
	CanvasCompleted   *string      `json:"canvas_completed,omitempty"`
	Phase             *string      `json:"phase,omitempty"`
	AddInsight        *InsightDTO  `json:"add_insight,omitempty"`
	AddBet            *BetDraftDTO `json:"add_bet,omitempty"`
	KeyInsight        *string      `json:"key_insight,omitempty"`
	IncrementMessages bool         `json:"increment_messages,omitempty"`
}

type InsightDTO struct {
	Pillar  string `json:"pillar" validate:"required,oneof=macroMarket customer colleague"`
	Insight string `json:"insight" validate:"required"`
}

type BetDraftDTO struct {
	Belief        string `json:"belief" validate:"required"`
	Implication   string `json:"implication" validate:"required"`
	Exploration   string `json:"exploration" validate:"required"`
	SuccessMetric string `json:"success_metric" validate:"required"`
	PillarSource  string `json:"pillar_source,omitempty"`
}

type PatchStateResponse struct {
	FrameworkState state.State      `json:"framework_state"`
	Progress       ProgressResponse `json:"progress"`
	NextFocus      string           `json:"next_focus"`
}

// --- Coach suggestion DTOs ---

type SuggestionRequest struct {
	ConversationId    uuid.UUID         `json:"conversation_id" validate:"required"`
	Territory         string            `json:"territory" validate:"required"`
	ResearchArea      string            `json:"research_area" validate:"required"`
	ResearchAreaTitle string            `json:"research_area_title,omitempty"`
	Questions         []string          `json:"questions" validate:"required,min=1,max=10"`
	ExistingResponses map[string]string `json:"existing_responses,omitempty"`
}

type SuggestionResponse struct {
	Suggestions []suggest.QuestionSuggestion `json:"suggestions"`
	ContextUsed SuggestionContextUsed        `json:"context_used"`
	GeneratedAt time.Time                    `json:"generated_at"`
}

type SuggestionContextUsed struct {
	ExcerptCount  int  `json:"excerpt_count"`
	CompanyData   bool `json:"company_data"`
	FromCache     bool `json:"from_cache"`
	FallbackCount int  `json:"fallback_count"`
}
