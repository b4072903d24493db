package progress

import (
	"fmt"
	"math"
	"strings"

	"frontera-be/pkg/coaching/state"
)

// Progress holds the derived completion percentages for a conversation.
// All three values are 0-100 integers.
type Progress struct {
	Overall  int `json:"overall"`
	Research int `json:"researchProgress"`
	Canvas   int `json:"canvasProgress"`
}

// Calculate derives completion percentages from the framework state.
//
// Each pillar contributes 1.0 when completed, 0.5 when started but not
// completed, 0 otherwise. The research and canvas percentages are rounded
// first, and the overall score is the rounded average of those two already
// rounded numbers. The two-step rounding is load bearing: one started pillar
// must yield research=17 and overall=8, so the final average rounds halves
// to even (8.5 -> 8) rather than away from zero.
func Calculate(s state.State) Progress {
	var pillarSum float64
	for _, p := range state.Pillars {
		prog := s.ResearchPillars[p]
		switch {
		case prog.Completed:
			pillarSum += 1.0
		case prog.Started:
			pillarSum += 0.5
		}
	}
	research := int(math.Round(pillarSum / float64(len(state.Pillars)) * 100))

	done := 0
	for _, c := range state.CanvasSections {
		if s.CanvasProgress[c] {
			done++
		}
	}
	canvas := int(math.Round(float64(done) / float64(len(state.CanvasSections)) * 100))

	overall := int(math.RoundToEven(float64(research)*0.5 + float64(canvas)*0.5))

	return Progress{Overall: overall, Research: research, Canvas: canvas}
}

// Summary renders a one-line human-readable progress description for the
// system prompt.
func Summary(s state.State) string {
	p := Calculate(s)

	completed := 0
	started := 0
	for _, key := range state.Pillars {
		prog := s.ResearchPillars[key]
		if prog.Completed {
			completed++
		} else if prog.Started {
			started++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Overall progress: %d%%. Research: %d%% (%d of %d pillars complete",
		p.Overall, p.Research, completed, len(state.Pillars))
	if started > 0 {
		fmt.Fprintf(&b, ", %d in progress", started)
	}
	b.WriteString(").")
	if p.Canvas > 0 {
		fmt.Fprintf(&b, " Canvas: %d%% documented.", p.Canvas)
	}
	return b.String()
}
