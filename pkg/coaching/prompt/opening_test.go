package prompt

import (
	"strings"
	"testing"

	"frontera-be/pkg/coaching/state"
)

func TestOpeningMessageNewConversation(t *testing.T) {
	got := GenerateOpeningMessage(testContext(), state.Initialize(), "John", false)

	if !strings.Contains(got, "Welcome, John") {
		t.Errorf("missing greeting: %q", got)
	}
	if strings.Contains(got, "Welcome back") {
		t.Error("new conversation must not use the resuming greeting")
	}
	if !strings.Contains(got, "Acme Corp") {
		t.Error("greeting must reference the company")
	}
	if !strings.Contains(got, "closing the gap between strategy and execution") {
		t.Error("greeting must describe the strategic focus")
	}
	if !strings.Contains(got, "our roadmap never survives contact with quarterly planning") {
		t.Errorf("pain points should be spliced in lowercased and cut at the first sentence: %q", got)
	}
	if strings.Contains(got, "Teams are demoralized") {
		t.Error("only the first sentence of pain points should appear")
	}
}

func TestOpeningMessageDefaultName(t *testing.T) {
	got := GenerateOpeningMessage(testContext(), state.Initialize(), "", false)
	if !strings.Contains(got, "Welcome, there!") {
		t.Errorf("missing fallback greeting: %q", got)
	}
}

func TestOpeningMessageDefaultsForMissingProfileText(t *testing.T) {
	ctx := testContext()
	ctx.PainPoints = ""
	ctx.TargetOutcomes = ""
	got := GenerateOpeningMessage(ctx, state.Initialize(), "John", false)
	if !strings.Contains(got, defaultPainPoints) {
		t.Error("missing pain points default")
	}
	if !strings.Contains(got, defaultTargetOutcomes) {
		t.Error("missing target outcomes default")
	}
}

func TestOpeningMessageResuming(t *testing.T) {
	pillar := state.PillarMacroMarket
	st := state.Update(state.Initialize(), state.Patch{PillarCompleted: &pillar})
	for i := 0; i < 5; i++ {
		st = state.Update(st, state.Patch{IncrementMessages: true})
	}

	got := GenerateOpeningMessage(testContext(), st, "John", true)

	if !strings.Contains(got, "Welcome back") {
		t.Errorf("missing resuming greeting: %q", got)
	}
	if !strings.Contains(got, "reviewed our previous discussion") {
		t.Error("missing review sentence")
	}
	if !strings.Contains(got, "transformation journey") {
		t.Error("missing journey sentence")
	}
	if !strings.Contains(got, "33% complete") {
		t.Errorf("one completed pillar should read 33%% complete: %q", got)
	}
	if !strings.Contains(got, "Where would you like to pick up?") {
		t.Error("missing closing question")
	}
	// The resume message carries the next-focus suggestion.
	if !strings.Contains(got, "Customer Research") {
		t.Errorf("missing next focus: %q", got)
	}
}

func TestOpeningMessageResumingOmitsZeroProgress(t *testing.T) {
	st := state.Initialize()
	for i := 0; i < 3; i++ {
		st = state.Update(st, state.Patch{IncrementMessages: true})
	}
	got := GenerateOpeningMessage(testContext(), st, "John", true)
	if strings.Contains(got, "% complete") {
		t.Errorf("zero completed pillars must omit the progress sentence: %q", got)
	}
}

func TestOpeningMessageResumeFlagWithFreshState(t *testing.T) {
	// isResuming with zero messages still gets the new-conversation greeting.
	got := GenerateOpeningMessage(testContext(), state.Initialize(), "John", true)
	if !strings.Contains(got, "Welcome, John") || strings.Contains(got, "Welcome back") {
		t.Errorf("fresh state must use the new-conversation branch: %q", got)
	}
}

func TestFirstClause(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"cuts at sentence end", "Strategy drifts. Execution stalls.", "strategy drifts"},
		{"lowercases leading word", "Roadmaps never stick", "roadmaps never stick"},
		{"question mark ends clause", "Why do we keep pivoting? Nobody knows.", "why do we keep pivoting"},
		{
			"respects character budget",
			"An exceptionally long description of organizational dysfunction that keeps going well past any reasonable budget",
			"an exceptionally long description of organizational dysfunction that keeps going",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := firstClause(tt.in, clauseBudget)
			if got != tt.want {
				t.Errorf("firstClause(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
