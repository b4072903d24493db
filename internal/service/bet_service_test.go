package service

import (
	"testing"

	"frontera-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func gatedBet(name, killCriteria string) *entity.StrategicBet {
	return &entity.StrategicBet{
		Bet:          name,
		KillCriteria: killCriteria,
		Scores: entity.BetScores{
			ExpectedImpact:     7,
			CertaintyOfImpact:  6,
			ClarityOfLevers:    5,
			UniquenessOfLevers: 4,
		},
	}
}

func TestExportGatePasses(t *testing.T) {
	bets := []*entity.StrategicBet{
		gatedBet("expand upmarket", "no enterprise deal in 2 quarters"),
		gatedBet("kill the SMB tier", "churn does not improve by Q3"),
		gatedBet("own onboarding", "activation stays below 40%"),
	}
	theses := []*entity.StrategicThesis{
		{Statement: "Win mid-market ops teams"},
	}

	assert.Empty(t, exportGate(bets, theses))
}

func TestExportGateRequiresMinimumCounts(t *testing.T) {
	reasons := exportGate(nil, nil)

	assert.Len(t, reasons, 2)
	assert.Contains(t, reasons[0], "at least 3 strategic bets")
	assert.Contains(t, reasons[1], "at least 1 strategic thesis")
}

func TestExportGateRejectsMissingKillCriteria(t *testing.T) {
	bets := []*entity.StrategicBet{
		gatedBet("expand upmarket", "no enterprise deal in 2 quarters"),
		gatedBet("kill the SMB tier", "   "),
		gatedBet("own onboarding", ""),
	}
	theses := []*entity.StrategicThesis{
		{Statement: "Win mid-market ops teams"},
	}

	reasons := exportGate(bets, theses)
	assert.Len(t, reasons, 2)
	assert.Contains(t, reasons[0], "kill the SMB tier")
	assert.Contains(t, reasons[1], "own onboarding")
}

func TestExportBlockedError(t *testing.T) {
	err := &ErrExportBlocked{Reasons: []string{"a", "b"}}
	assert.Equal(t, "portfolio export blocked: a; b", err.Error())
}

func TestOverallScoreRounds(t *testing.T) {
	b := gatedBet("x", "y") // scores sum to 22 -> 55%
	assert.Equal(t, 55, b.OverallScore())

	b.Scores = entity.BetScores{ExpectedImpact: 10, CertaintyOfImpact: 10, ClarityOfLevers: 10, UniquenessOfLevers: 10}
	assert.Equal(t, 100, b.OverallScore())
}
