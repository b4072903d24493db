package entity

import (
	"time"

	"github.com/google/uuid"
)

// BetScores are the four 1-10 conviction scores attached to a strategic bet.
type BetScores struct {
	ExpectedImpact     int `json:"expectedImpact"`
	CertaintyOfImpact  int `json:"certaintyOfImpact"`
	ClarityOfLevers    int `json:"clarityOfLevers"`
	UniquenessOfLevers int `json:"uniquenessOfLevers"`
}

// StrategicRisks are free-text risk assessments per lens.
type StrategicRisks struct {
	Market      string `json:"market,omitempty"`
	Positioning string `json:"positioning,omitempty"`
	Execution   string `json:"execution,omitempty"`
	Economic    string `json:"economic,omitempty"`
}

// StrategicBet is the persisted, fully-scored bet of the newer agent
// workflow: a five-part hypothesis with conviction scores, evidence links,
// and kill criteria.
type StrategicBet struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	JobToBeDone   string
	Belief        string
	Bet           string
	SuccessMetric string
	KillCriteria  string
	KillDate      *time.Time
	Scores        BetScores
	EvidenceLinks []string
	Risks         StrategicRisks
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}

// OverallScore is round(sum of the four scores / 40 * 100).
func (b *StrategicBet) OverallScore() int {
	sum := b.Scores.ExpectedImpact + b.Scores.CertaintyOfImpact +
		b.Scores.ClarityOfLevers + b.Scores.UniquenessOfLevers
	return (sum*100 + 20) / 40 // integer round-half-up of sum/40*100
}

// StrategicThesis is a where-to-play / how-to-win statement the bets roll up
// into.
type StrategicThesis struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Statement   string
	WhereToPlay string
	HowToWin    string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
