package prompt

import (
	"strings"
	"testing"

	"frontera-be/pkg/coaching/state"
)

func testContext() ClientContext {
	return ClientContext{
		CompanyName:    "Acme Corp",
		Industry:       "Banking",
		CompanySize:    "5000+",
		Tier:           "enterprise",
		StrategicFocus: FocusStrategyToExecution,
		PainPoints:     "Our roadmap never survives contact with quarterly planning. Teams are demoralized.",
		TargetOutcomes: "A strategy the whole leadership team can defend in one sentence.",
	}
}

func TestBuildSystemPromptSections(t *testing.T) {
	got := BuildSystemPrompt(testContext(), state.Initialize())

	sections := []string{
		"# Frontera Strategy Coach",
		"## Client Profile",
		"- Company: Acme Corp",
		"## Research Methodology",
		"### Macro Market Forces",
		"### Customer Research",
		"### Colleague Research",
		"### Cross-Pillar Synthesis",
		"## Strategy Canvas",
		"Where to Play and How to Win",
		"## Strategic Bet Format",
		"## Tone",
		"## Response Guidelines",
		"## Industry Context: Financial Services",
		"## Strategic Focus Guidance",
		"## Current Coaching State",
		"Phase: discovery",
		"## Suggested Next Focus",
		"competitive landscape",
	}
	for _, want := range sections {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildSystemPromptSectionOrder(t *testing.T) {
	got := BuildSystemPrompt(testContext(), state.Initialize())

	ordered := []string{
		"# Frontera Strategy Coach",
		"## Client Profile",
		"## Research Methodology",
		"## Strategy Canvas",
		"## Strategic Bet Format",
		"## Tone",
		"## Response Guidelines",
		"## Industry Context",
		"## Strategic Focus Guidance",
		"## Current Coaching State",
		"## Suggested Next Focus",
	}
	last := -1
	for _, heading := range ordered {
		idx := strings.Index(got, heading)
		if idx < 0 {
			t.Fatalf("prompt missing heading %q", heading)
		}
		if idx < last {
			t.Errorf("heading %q out of order", heading)
		}
		last = idx
	}
}

func TestIndustryClassification(t *testing.T) {
	tests := []struct {
		industry  string
		wantTitle string
	}{
		{"Banking", "Financial Services"},
		{"Life Insurance", "Financial Services"},
		{"Healthcare Providers", "Healthcare"},
		{"Pharmaceuticals", "Healthcare"},
		{"B2B SaaS", "Technology"},
		{"Enterprise Software", "Technology"},
		{"E-commerce", "Retail & E-commerce"},
		{"Consumer Goods", "Retail & E-commerce"},
		{"Aerospace", "Aerospace"}, // generic fallback keeps the raw industry as title
	}
	for _, tt := range tests {
		t.Run(tt.industry, func(t *testing.T) {
			ctx := testContext()
			ctx.Industry = tt.industry
			got := BuildSystemPrompt(ctx, state.Initialize())
			want := "## Industry Context: " + tt.wantTitle
			if !strings.Contains(got, want) {
				t.Errorf("prompt missing %q", want)
			}
		})
	}
}

func TestBuildSystemPromptOmitsEmptyIndustry(t *testing.T) {
	ctx := testContext()
	ctx.Industry = ""
	got := BuildSystemPrompt(ctx, state.Initialize())
	if strings.Contains(got, "## Industry Context") {
		t.Error("empty industry must omit the industry section entirely")
	}
}

func TestBuildSystemPromptOmitsUnknownFocus(t *testing.T) {
	for _, focus := range []string{"", "other"} {
		ctx := testContext()
		ctx.StrategicFocus = focus
		got := BuildSystemPrompt(ctx, state.Initialize())
		if strings.Contains(got, "## Strategic Focus Guidance") {
			t.Errorf("focus %q must omit the guidance section", focus)
		}
	}
}

func TestBuildSystemPromptRecoveryAwareness(t *testing.T) {
	ctx := testContext()
	got := BuildSystemPrompt(ctx, state.Initialize())
	if strings.Contains(got, "Transform Recovery Awareness") {
		t.Error("no previous attempts must omit the recovery section")
	}

	ctx.PreviousAttempts = "A 2023 agile transformation stalled after the consultants left."
	got = BuildSystemPrompt(ctx, state.Initialize())
	if !strings.Contains(got, "## Transform Recovery Awareness") {
		t.Error("previous attempts must add the recovery section")
	}
	if !strings.Contains(got, "2023 agile transformation") {
		t.Error("recovery section must carry the client's history")
	}
}

func TestBuildSystemPromptStateConditionals(t *testing.T) {
	st := state.Initialize()
	got := BuildSystemPrompt(testContext(), st)
	if strings.Contains(got, "Strategic bets captured") {
		t.Error("no bets: bets line must be omitted")
	}
	if strings.Contains(got, "Key insights recorded") {
		t.Error("no insights: insights line must be omitted")
	}
	if strings.Contains(got, "Canvas:") {
		t.Error("canvas at 0%: canvas line must be omitted")
	}

	section := state.CanvasMarketReality
	insight := "switching costs are collapsing"
	st = state.Update(st, state.Patch{
		CanvasSection: &section,
		KeyInsight:    &insight,
		StrategicBet:  &state.BetDraft{Belief: "b", Implication: "i", Exploration: "e", SuccessMetric: "m"},
	})
	got = BuildSystemPrompt(testContext(), st)
	if !strings.Contains(got, "Strategic bets captured so far: 1.") {
		t.Error("bets line missing")
	}
	if !strings.Contains(got, "switching costs are collapsing") {
		t.Error("insights line missing")
	}
	if !strings.Contains(got, "Canvas: 20%") {
		t.Error("canvas line missing")
	}
}

func TestBuildSystemPromptDeterministic(t *testing.T) {
	ctx := testContext()
	st := state.Initialize()
	if BuildSystemPrompt(ctx, st) != BuildSystemPrompt(ctx, st) {
		t.Error("prompt must be deterministic for identical inputs")
	}
}
