package progress

import (
	"strings"
	"testing"

	"frontera-be/pkg/coaching/state"
)

func pillarStarted(s state.State, p state.Pillar) state.State {
	return state.Update(s, state.Patch{PillarStarted: &p})
}

func pillarCompleted(s state.State, p state.Pillar) state.State {
	return state.Update(s, state.Patch{PillarCompleted: &p})
}

func canvasDone(s state.State, c state.CanvasSection) state.State {
	return state.Update(s, state.Patch{CanvasSection: &c})
}

func allComplete() state.State {
	s := state.Initialize()
	for _, p := range state.Pillars {
		s = pillarCompleted(s, p)
	}
	for _, c := range state.CanvasSections {
		s = canvasDone(s, c)
	}
	return s
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name         string
		state        state.State
		wantResearch int
		wantCanvas   int
		wantOverall  int
	}{
		{
			name:         "fresh state",
			state:        state.Initialize(),
			wantResearch: 0,
			wantCanvas:   0,
			wantOverall:  0,
		},
		{
			name:         "one pillar started only",
			state:        pillarStarted(state.Initialize(), state.PillarMacroMarket),
			wantResearch: 17,
			wantCanvas:   0,
			wantOverall:  8, // round(17/2), not round(0.5/6*100)
		},
		{
			name:         "one pillar completed",
			state:        pillarCompleted(state.Initialize(), state.PillarMacroMarket),
			wantResearch: 33,
			wantCanvas:   0,
			wantOverall:  16, // halves round to even: 16.5 -> 16, like 8.5 -> 8
		},
		{
			name: "two pillars completed",
			state: pillarCompleted(
				pillarCompleted(state.Initialize(), state.PillarMacroMarket),
				state.PillarCustomer),
			wantResearch: 67,
			wantCanvas:   0,
			wantOverall:  34,
		},
		{
			name:         "three canvas sections only",
			state:        canvasDone(canvasDone(canvasDone(state.Initialize(), state.CanvasMarketReality), state.CanvasCustomerInsights), state.CanvasOrganizationalContext),
			wantResearch: 0,
			wantCanvas:   60,
			wantOverall:  30,
		},
		{
			name:         "everything complete",
			state:        allComplete(),
			wantResearch: 100,
			wantCanvas:   100,
			wantOverall:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.state)
			if got.Research != tt.wantResearch {
				t.Errorf("Research = %d, want %d", got.Research, tt.wantResearch)
			}
			if got.Canvas != tt.wantCanvas {
				t.Errorf("Canvas = %d, want %d", got.Canvas, tt.wantCanvas)
			}
			if got.Overall != tt.wantOverall {
				t.Errorf("Overall = %d, want %d", got.Overall, tt.wantOverall)
			}
			if got.Overall < 0 || got.Overall > 100 || got.Research < 0 || got.Research > 100 || got.Canvas < 0 || got.Canvas > 100 {
				t.Errorf("percentages out of range: %+v", got)
			}
		})
	}
}

func TestSuggestNextFocus(t *testing.T) {
	completedPillars := func() state.State {
		s := state.Initialize()
		for _, p := range state.Pillars {
			s = pillarCompleted(s, p)
		}
		return s
	}

	tests := []struct {
		name     string
		state    state.State
		contains []string
	}{
		{
			name:     "fresh state starts macro market",
			state:    state.Initialize(),
			contains: []string{"Macro Market Forces", "competitive landscape"},
		},
		{
			name:     "macro started continues macro",
			state:    pillarStarted(state.Initialize(), state.PillarMacroMarket),
			contains: []string{"Macro Market Forces", "Continue"},
		},
		{
			name:     "macro complete starts customer",
			state:    pillarCompleted(state.Initialize(), state.PillarMacroMarket),
			contains: []string{"Customer Research", "segmentation", "jobs-to-be-done"},
		},
		{
			name: "customer started continues customer",
			state: pillarStarted(
				pillarCompleted(state.Initialize(), state.PillarMacroMarket),
				state.PillarCustomer),
			contains: []string{"Customer Research", "jobs-to-be-done"},
		},
		{
			name: "customer complete starts colleague",
			state: pillarCompleted(
				pillarCompleted(state.Initialize(), state.PillarMacroMarket),
				state.PillarCustomer),
			contains: []string{"Colleague Research", "leadership"},
		},
		{
			name:     "all pillars complete and canvas untouched",
			state:    completedPillars(),
			contains: []string{"All research pillars complete", "synthesize", "Where to Play"},
		},
		{
			name:     "canvas partially started walks sections in order",
			state:    canvasDone(completedPillars(), state.CanvasMarketReality),
			contains: []string{"Customer Insights"},
		},
		{
			name: "strategic synthesis mentions where to play",
			state: canvasDone(canvasDone(canvasDone(completedPillars(),
				state.CanvasMarketReality), state.CanvasCustomerInsights), state.CanvasOrganizationalContext),
			contains: []string{"Strategic Synthesis", "Where to Play", "How to Win"},
		},
		{
			name:     "everything complete is terminal",
			state:    allComplete(),
			contains: []string{"Review and refine"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestNextFocus(tt.state)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("suggestion %q missing %q", got, want)
				}
			}
		})
	}
}

func TestSuggestNextFocusIsStateless(t *testing.T) {
	s := pillarStarted(state.Initialize(), state.PillarMacroMarket)
	first := SuggestNextFocus(s)
	second := SuggestNextFocus(s)
	if first != second {
		t.Errorf("suggestion not re-derivable: %q vs %q", first, second)
	}
}

func TestSummary(t *testing.T) {
	s := pillarCompleted(state.Initialize(), state.PillarMacroMarket)
	got := Summary(s)
	if !strings.Contains(got, "1 of 3 pillars complete") {
		t.Errorf("Summary = %q", got)
	}
	if strings.Contains(got, "Canvas") {
		t.Errorf("Summary should omit canvas line at 0%%: %q", got)
	}

	s = canvasDone(s, state.CanvasMarketReality)
	got = Summary(s)
	if !strings.Contains(got, "Canvas: 20%") {
		t.Errorf("Summary = %q", got)
	}
}
