package assessment

import "testing"

func TestScoreOperatorProfile(t *testing.T) {
	r := Responses{
		Likert: map[string]int{
			"l-market-1": 2, "l-market-2": 1,
			"l-customer-1": 2, "l-customer-2": 2,
			"l-clarity-1": 2, "l-clarity-2": 2,
			"l-execution-1": 5, "l-execution-2": 5,
			"l-team-1": 5, "l-team-2": 4,
		},
		Situational: map[string]string{
			"s-signal":    "a",
			"s-roadmap":   "b",
			"s-evidence":  "a",
			"s-customer":  "b",
			"s-alignment": "a",
		},
	}

	got := Score(r)

	wantDims := map[Dimension]int{
		DimensionMarketInsight:         17,
		DimensionCustomerUnderstanding: 33,
		DimensionStrategicClarity:      45,
		DimensionExecutionDiscipline:   91,
		DimensionTeamAlignment:         71,
	}
	for d, want := range wantDims {
		if got.Dimensions[d].Score != want {
			t.Errorf("%s = %d, want %d", d, got.Dimensions[d].Score, want)
		}
	}
	if got.OverallMaturity != 51 {
		t.Errorf("OverallMaturity = %d, want 51", got.OverallMaturity)
	}
	if got.Archetype.ID != ArchetypeOperator {
		t.Errorf("Archetype = %s, want operator", got.Archetype.ID)
	}
	if got.Archetype.Strengths[0] != DimensionExecutionDiscipline {
		t.Errorf("operator strengths = %v", got.Archetype.Strengths)
	}
	if got.Archetype.GrowthAreas[0] != DimensionMarketInsight {
		t.Errorf("operator growth areas = %v", got.Archetype.GrowthAreas)
	}
}

func TestScoreHighMaturityProfile(t *testing.T) {
	likert := make(map[string]int, len(LikertQuestions))
	for _, q := range LikertQuestions {
		likert[q.ID] = 5
	}
	r := Responses{
		Likert: likert,
		Situational: map[string]string{
			"s-signal":    "b",
			"s-roadmap":   "a",
			"s-evidence":  "a",
			"s-customer":  "a",
			"s-alignment": "a",
		},
	}

	got := Score(r)

	wantDims := map[Dimension]int{
		DimensionMarketInsight:         93,
		DimensionCustomerUnderstanding: 95,
		DimensionStrategicClarity:      87,
		DimensionExecutionDiscipline:   95,
		DimensionTeamAlignment:         91,
	}
	for d, want := range wantDims {
		if got.Dimensions[d].Score != want {
			t.Errorf("%s = %d, want %d", d, got.Dimensions[d].Score, want)
		}
	}
	if got.OverallMaturity != 92 {
		t.Errorf("OverallMaturity = %d, want 92", got.OverallMaturity)
	}
	// Tie at 95 between customerUnderstanding and executionDiscipline breaks
	// on canonical order; (customerUnderstanding, executionDiscipline) is not
	// a defining pair, so the top dimension's default archetype wins.
	if got.Archetype.ID != ArchetypeAnalyst {
		t.Errorf("Archetype = %s, want analyst", got.Archetype.ID)
	}
}

func TestScoreIsTotalOnEmptyInput(t *testing.T) {
	got := Score(Responses{})

	for _, d := range Dimensions {
		if got.Dimensions[d].Score != 50 {
			t.Errorf("%s = %d, want neutral 50", d, got.Dimensions[d].Score)
		}
	}
	if got.OverallMaturity != 50 {
		t.Errorf("OverallMaturity = %d, want 50", got.OverallMaturity)
	}
	if got.Archetype.ID == "" {
		t.Error("an archetype must always be selected")
	}
}

func TestScoreBoundsAndRange(t *testing.T) {
	cases := []Responses{
		{},
		{Likert: map[string]int{"l-market-1": 99, "l-team-1": -3}},
		{Situational: map[string]string{"s-signal": "not-an-option"}},
	}
	for i, r := range cases {
		got := Score(r)
		for d, s := range got.Dimensions {
			if s.Score < 0 || s.Score > 100 {
				t.Errorf("case %d: %s out of range: %d", i, d, s.Score)
			}
		}
		if got.OverallMaturity < 0 || got.OverallMaturity > 100 {
			t.Errorf("case %d: overall out of range: %d", i, got.OverallMaturity)
		}
	}
}

func TestLikertToScale(t *testing.T) {
	tests := []struct {
		in   int
		want float64
	}{
		{1, 0}, {2, 25}, {3, 50}, {4, 75}, {5, 100},
		{0, 0}, {9, 100},
	}
	for _, tt := range tests {
		if got := likertToScale(tt.in); got != tt.want {
			t.Errorf("likertToScale(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSelectArchetypePairs(t *testing.T) {
	tests := []struct {
		top  [2]Dimension
		want ArchetypeID
	}{
		{[2]Dimension{DimensionExecutionDiscipline, DimensionTeamAlignment}, ArchetypeOperator},
		{[2]Dimension{DimensionMarketInsight, DimensionStrategicClarity}, ArchetypeVisionary},
		{[2]Dimension{DimensionCustomerUnderstanding, DimensionMarketInsight}, ArchetypeAnalyst},
		{[2]Dimension{DimensionTeamAlignment, DimensionCustomerUnderstanding}, ArchetypeDiplomat},
		{[2]Dimension{DimensionStrategicClarity, DimensionExecutionDiscipline}, ArchetypeArchitect},
		// Fallback: pair not in the table uses the top dimension's default.
		{[2]Dimension{DimensionMarketInsight, DimensionTeamAlignment}, ArchetypeVisionary},
	}
	for _, tt := range tests {
		ranked := append(tt.top[:], remaining(tt.top)...)
		got := selectArchetype(ranked)
		if got.ID != tt.want {
			t.Errorf("selectArchetype(%v...) = %s, want %s", tt.top, got.ID, tt.want)
		}
	}
}

func remaining(top [2]Dimension) []Dimension {
	var rest []Dimension
	for _, d := range Dimensions {
		if d != top[0] && d != top[1] {
			rest = append(rest, d)
		}
	}
	return rest
}

func TestQuestionBankIntegrity(t *testing.T) {
	perDimension := make(map[Dimension]int)
	for _, q := range LikertQuestions {
		perDimension[q.Dimension]++
	}
	for _, d := range Dimensions {
		if perDimension[d] == 0 {
			t.Errorf("dimension %s has no likert questions", d)
		}
	}
	for _, q := range SituationalQuestions {
		if len(q.Options) < 2 {
			t.Errorf("question %s needs at least two options", q.ID)
		}
		for _, o := range q.Options {
			if len(o.Weights) == 0 {
				t.Errorf("option %s/%s carries no weights", q.ID, o.ID)
			}
			for d, w := range o.Weights {
				if w < 0 || w > 100 {
					t.Errorf("option %s/%s weight %s out of range: %d", q.ID, o.ID, d, w)
				}
			}
		}
	}
}
