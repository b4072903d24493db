package dto

import (
	"time"

	"github.com/google/uuid"

	"frontera-be/internal/entity"
)

type CreateBetRequest struct {
	JobToBeDone   string       `json:"job_to_be_done" validate:"required"`
	Belief        string       `json:"belief" validate:"required"`
	Bet           string       `json:"bet" validate:"required"`
	SuccessMetric string       `json:"success_metric" validate:"required"`
	KillCriteria  string       `json:"kill_criteria,omitempty"`
	KillDate      *time.Time   `json:"kill_date,omitempty"`
	Scores        BetScoresDTO `json:"scores" validate:"required"`
	EvidenceLinks []string     `json:"evidence_links,omitempty"`
	Risks         *BetRisksDTO `json:"risks,omitempty"`
}

type UpdateBetRequest struct {
	JobToBeDone   *string       `json:"job_to_be_done,omitempty"`
	Belief        *string       `json:"belief,omitempty"`
	Bet           *string       `json:"bet,omitempty"`
	SuccessMetric *string       `json:"success_metric,omitempty"`
	KillCriteria  *string       `json:"kill_criteria,omitempty"`
	KillDate      *time.Time    `json:"kill_date,omitempty"`
	Scores        *BetScoresDTO `json:"scores,omitempty"`
	EvidenceLinks []string      `json:"evidence_links,omitempty"`
	Risks         *BetRisksDTO  `json:"risks,omitempty"`
}

type BetScoresDTO struct {
	ExpectedImpact     int `json:"expected_impact" validate:"required,min=1,max=10"`
	CertaintyOfImpact  int `json:"certainty_of_impact" validate:"required,min=1,max=10"`
	ClarityOfLevers    int `json:"clarity_of_levers" validate:"required,min=1,max=10"`
	UniquenessOfLevers int `json:"uniqueness_of_levers" validate:"required,min=1,max=10"`
}

type BetRisksDTO struct {
	Market      string `json:"market,omitempty"`
	Positioning string `json:"positioning,omitempty"`
	Execution   string `json:"execution,omitempty"`
	Economic    string `json:"economic,omitempty"`
}

type BetResponse struct {
	Id            uuid.UUID             `json:"id"`
	JobToBeDone   string                `json:"job_to_be_done"`
	Belief        string                `json:"belief"`
	Bet           string                `json:"bet"`
	SuccessMetric string                `json:"success_metric"`
	KillCriteria  string                `json:"kill_criteria,omitempty"`
	KillDate      *time.Time            `json:"kill_date,omitempty"`
	Scores        entity.BetScores      `json:"scores"`
	OverallScore  int                   `json:"overall_score"`
	EvidenceLinks []string              `json:"evidence_links,omitempty"`
	Risks         entity.StrategicRisks `json:"risks"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     *time.Time            `json:"updated_at,omitempty"`
}

type CreateThesisRequest struct {
	Statement   string `json:"statement" validate:"required"`
	WhereToPlay string `json:"where_to_play,omitempty"`
	HowToWin    string `json:"how_to_win,omitempty"`
}

type ThesisResponse struct {
	Id          uuid.UUID  `json:"id"`
	Statement   string     `json:"statement"`
	WhereToPlay string     `json:"where_to_play,omitempty"`
	HowToWin    string     `json:"how_to_win,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// PortfolioExportResponse is the strategy package returned once the
// export quality gate passes.
type PortfolioExportResponse struct {
	Theses      []ThesisResponse `json:"theses"`
	Bets        []BetResponse    `json:"bets"`
	ExportedAt  time.Time        `json:"exported_at"`
	BetCount    int              `json:"bet_count"`
	ThesisCount int              `json:"thesis_count"`
}

// ExportBlockedResponse explains which quality-gate checks failed.
type ExportBlockedResponse struct {
	Reasons []string `json:"reasons"`
}
