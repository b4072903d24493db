package service

import (
	"testing"

	"frontera-be/internal/dto"
	"frontera-be/pkg/coaching/state"

	"github.com/stretchr/testify/assert"
)

func TestPatchFromRequestEmpty(t *testing.T) {
	p := patchFromRequest(&dto.PatchStateRequest{})

	assert.Nil(t, p.CurrentPhase)
	assert.Nil(t, p.PillarStarted)
	assert.Nil(t, p.PillarCompleted)
	assert.Nil(t, p.CanvasSection)
	assert.Nil(t, p.PillarInsight)
	assert.Nil(t, p.StrategicBet)
	assert.Nil(t, p.KeyInsight)
	assert.False(t, p.IncrementMessages)
}

func TestPatchFromRequestMapsFields(t *testing.T) {
	phase := "research"
	started := "customer"
	completed := "macroMarket"
	canvas := "marketReality"
	insight := "ops teams buy reliability, not features"

	p := patchFromRequest(&dto.PatchStateRequest{
		Phase:           &phase,
		PillarStarted:   &started,
		PillarCompleted: &completed,
		CanvasCompleted: &canvas,
		AddInsight: &dto.InsightDTO{
			Pillar:  "customer",
			Insight: "churn follows onboarding gaps",
		},
		AddBet: &dto.BetDraftDTO{
			Belief:        "mid-market is underserved",
			Implication:   "we can win on service depth",
			Exploration:   "pilot with 3 accounts",
			SuccessMetric: "2 conversions by Q2",
			PillarSource:  "customer",
		},
		KeyInsight:        &insight,
		IncrementMessages: true,
	})

	assert.Equal(t, state.Phase("research"), *p.CurrentPhase)
	assert.Equal(t, state.PillarCustomer, *p.PillarStarted)
	assert.Equal(t, state.PillarMacroMarket, *p.PillarCompleted)
	assert.Equal(t, state.CanvasMarketReality, *p.CanvasSection)
	assert.Equal(t, state.PillarCustomer, p.PillarInsight.Pillar)
	assert.Equal(t, "churn follows onboarding gaps", p.PillarInsight.Insight)
	assert.Equal(t, "mid-market is underserved", p.StrategicBet.Belief)
	assert.Equal(t, "2 conversions by Q2", p.StrategicBet.SuccessMetric)
	assert.Equal(t, insight, *p.KeyInsight)
	assert.True(t, p.IncrementMessages)
}

func TestToProgressResponseFreshState(t *testing.T) {
	resp := toProgressResponse(state.Initialize())

	assert.Equal(t, 0, resp.Overall)
	assert.Equal(t, 0, resp.Research)
	assert.Equal(t, 0, resp.Canvas)
	assert.NotEmpty(t, resp.Summary)
}

func TestStrOrEmpty(t *testing.T) {
	v := "acme"
	assert.Equal(t, "acme", strOrEmpty(&v))
	assert.Equal(t, "", strOrEmpty(nil))
}
