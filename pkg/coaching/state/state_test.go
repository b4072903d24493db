package state

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestInitialize(t *testing.T) {
	s := Initialize()

	if s.Version != 1 {
		t.Errorf("Version = %d, want 1", s.Version)
	}
	if s.CurrentPhase != PhaseDiscovery {
		t.Errorf("CurrentPhase = %s, want discovery", s.CurrentPhase)
	}
	if s.SessionCount != 1 {
		t.Errorf("SessionCount = %d, want 1", s.SessionCount)
	}
	if s.TotalMessageCount != 0 {
		t.Errorf("TotalMessageCount = %d, want 0", s.TotalMessageCount)
	}
	for _, p := range Pillars {
		prog, ok := s.ResearchPillars[p]
		if !ok {
			t.Fatalf("missing pillar %s", p)
		}
		if prog.Started || prog.Completed || len(prog.Insights) != 0 {
			t.Errorf("pillar %s not pristine: %+v", p, prog)
		}
	}
	for _, c := range CanvasSections {
		if s.CanvasProgress[c] {
			t.Errorf("canvas %s should start false", c)
		}
	}
	if len(s.StrategicBets) != 0 || len(s.KeyInsights) != 0 {
		t.Error("bets and insights should start empty")
	}
}

func TestUpdateNeverMutatesInput(t *testing.T) {
	s := Initialize()
	before, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}

	pillar := PillarMacroMarket
	phase := PhaseResearch
	insight := "pricing pressure from new entrants"
	section := CanvasMarketReality
	patches := []Patch{
		{},
		{CurrentPhase: &phase},
		{PillarStarted: &pillar},
		{PillarCompleted: &pillar},
		{PillarInsight: &PillarInsight{Pillar: pillar, Insight: insight}},
		{CanvasSection: &section},
		{StrategicBet: &BetDraft{Belief: "b", Implication: "i", Exploration: "e", SuccessMetric: "m"}},
		{KeyInsight: &insight},
		{IncrementMessages: true},
	}

	for i, p := range patches {
		next := Update(s, p)
		if &next == &s {
			t.Fatalf("patch %d returned the same value address", i)
		}
		after, err := json.Marshal(s)
		if err != nil {
			t.Fatal(err)
		}
		if string(before) != string(after) {
			t.Fatalf("patch %d mutated the input state: %s", i, after)
		}
	}
}

func TestUpdateAppliesAtomically(t *testing.T) {
	s := Initialize()
	phase := PhaseResearch
	pillar := PillarCustomer
	section := CanvasCustomerInsights
	insight := "buyers churn at renewal"

	next := Update(s, Patch{
		CurrentPhase:      &phase,
		PillarStarted:     &pillar,
		CanvasSection:     &section,
		KeyInsight:        &insight,
		IncrementMessages: true,
	})

	if next.CurrentPhase != PhaseResearch {
		t.Errorf("CurrentPhase = %s", next.CurrentPhase)
	}
	if !next.ResearchPillars[pillar].Started {
		t.Error("pillar should be started")
	}
	if next.ResearchPillars[pillar].LastExploredAt == nil {
		t.Error("LastExploredAt should be stamped")
	}
	if !next.CanvasProgress[section] {
		t.Error("canvas section should be true")
	}
	if len(next.KeyInsights) != 1 || next.KeyInsights[0] != insight {
		t.Errorf("KeyInsights = %v", next.KeyInsights)
	}
	if next.TotalMessageCount != 1 {
		t.Errorf("TotalMessageCount = %d, want 1", next.TotalMessageCount)
	}
	if !next.LastActivityAt.After(s.LastActivityAt) && !next.LastActivityAt.Equal(s.LastActivityAt) {
		t.Error("LastActivityAt should be refreshed")
	}
}

func TestUpdateCompletedImpliesStarted(t *testing.T) {
	pillar := PillarColleague
	next := Update(Initialize(), Patch{PillarCompleted: &pillar})

	prog := next.ResearchPillars[pillar]
	if !prog.Started || !prog.Completed {
		t.Errorf("completing a pillar should mark it started too: %+v", prog)
	}
}

func TestUpdateIdempotentCompletion(t *testing.T) {
	pillar := PillarMacroMarket
	once := Update(Initialize(), Patch{PillarCompleted: &pillar})
	twice := Update(once, Patch{PillarCompleted: &pillar})

	// Everything but the activity/explored timestamps must match.
	a, b := once, twice
	a.LastActivityAt = b.LastActivityAt
	pa, pb := a.ResearchPillars[pillar], b.ResearchPillars[pillar]
	pa.LastExploredAt, pb.LastExploredAt = nil, nil
	a.ResearchPillars[pillar], b.ResearchPillars[pillar] = pa, pb
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated completion changed state:\nonce:  %+v\ntwice: %+v", a, b)
	}
}

func TestUpdateAppendsBetWithGeneratedFields(t *testing.T) {
	next := Update(Initialize(), Patch{StrategicBet: &BetDraft{
		Belief:        "mid-market buyers value integration depth",
		Implication:   "platform play beats point solutions",
		Exploration:   "interview 10 churned accounts",
		SuccessMetric: "20% lift in multi-product adoption",
		PillarSource:  string(PillarCustomer),
	}})

	if len(next.StrategicBets) != 1 {
		t.Fatalf("bets = %d, want 1", len(next.StrategicBets))
	}
	bet := next.StrategicBets[0]
	if bet.Id == "" {
		t.Error("bet id should be generated")
	}
	if bet.CreatedAt.IsZero() {
		t.Error("bet createdAt should be stamped")
	}
	if bet.Belief == "" || bet.SuccessMetric == "" {
		t.Errorf("bet fields lost: %+v", bet)
	}
}

func TestUpdateIgnoresUnknownKeys(t *testing.T) {
	bogusPillar := Pillar("competitor")
	bogusSection := CanvasSection("financials")
	next := Update(Initialize(), Patch{
		PillarStarted: &bogusPillar,
		CanvasSection: &bogusSection,
	})

	if len(next.ResearchPillars) != 3 {
		t.Errorf("unknown pillar leaked in: %v", next.ResearchPillars)
	}
	if len(next.CanvasProgress) != 5 {
		t.Errorf("unknown canvas key leaked in: %v", next.CanvasProgress)
	}
}

func TestUpdatePillarInsightAppends(t *testing.T) {
	pillar := PillarMacroMarket
	s := Update(Initialize(), Patch{PillarInsight: &PillarInsight{Pillar: pillar, Insight: "first"}})
	s = Update(s, Patch{PillarInsight: &PillarInsight{Pillar: pillar, Insight: "second"}})

	got := s.ResearchPillars[pillar].Insights
	if !reflect.DeepEqual(got, []string{"first", "second"}) {
		t.Errorf("insights = %v", got)
	}
}

func TestStateJSONRoundTrip(t *testing.T) {
	pillar := PillarCustomer
	s := Update(Initialize(), Patch{PillarCompleted: &pillar, IncrementMessages: true})

	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	var back State
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if back.ResearchPillars[pillar].Completed != true {
		t.Error("completion lost in round trip")
	}
	if back.TotalMessageCount != 1 {
		t.Errorf("TotalMessageCount = %d", back.TotalMessageCount)
	}
}
