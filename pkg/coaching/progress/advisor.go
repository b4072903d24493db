package progress

import (
	"fmt"

	"frontera-be/pkg/coaching/state"
)

// Human-facing names for the research pillars and canvas sections, used in
// next-focus suggestions and the system prompt.
var PillarTitles = map[state.Pillar]string{
	state.PillarMacroMarket: "Macro Market Forces",
	state.PillarCustomer:    "Customer Research",
	state.PillarColleague:   "Colleague Research",
}

var CanvasTitles = map[state.CanvasSection]string{
	state.CanvasMarketReality:         "Market Reality",
	state.CanvasCustomerInsights:      "Customer Insights",
	state.CanvasOrganizationalContext: "Organizational Context",
	state.CanvasStrategicSynthesis:    "Strategic Synthesis",
	state.CanvasTeamContext:           "Team Context",
}

// SuggestNextFocus maps the framework state to the coach's suggested next
// action. The rules form a fixed-priority decision table: pillars are worked
// in order (macro market, customer, colleague), then the canvas sections in
// their fixed order, with a one-time synthesis hand-off when research hits
// 100% and the canvas is untouched.
func SuggestNextFocus(s state.State) string {
	macro := s.ResearchPillars[state.PillarMacroMarket]
	customer := s.ResearchPillars[state.PillarCustomer]
	colleague := s.ResearchPillars[state.PillarColleague]

	switch {
	case !macro.Started:
		return "Let's begin with Macro Market Forces research: understanding the competitive landscape, market dynamics, and external forces shaping your industry."
	case !macro.Completed:
		return "Continue exploring Macro Market Forces. What else have you learned about the competitive landscape and market trends?"
	case !customer.Started:
		return "Macro market research is complete. Next, let's dig into Customer Research: segmentation, jobs-to-be-done, and what your customers are really trying to achieve."
	case !customer.Completed:
		return "Keep going on Customer Research. Which segments and jobs-to-be-done still need sharper evidence?"
	case !colleague.Started:
		return "Customer research is complete. Now let's start Colleague Research: how leadership and the wider organization see the strategic picture."
	case !colleague.Completed:
		return "Almost there on Colleague Research. Close out the remaining leadership conversations to complete the third pillar."
	}

	// All three pillars complete from here.
	canvasDone := 0
	for _, c := range state.CanvasSections {
		if s.CanvasProgress[c] {
			canvasDone++
		}
	}

	if canvasDone == 0 {
		return "All research pillars complete. Excellent work! Now it's time to synthesize your findings into the strategy canvas, starting with Where to Play and How to Win."
	}

	for _, c := range state.CanvasSections {
		if !s.CanvasProgress[c] {
			if c == state.CanvasStrategicSynthesis {
				return "Next up: Strategic Synthesis. This is where your research converges into Where to Play and How to Win choices."
			}
			return fmt.Sprintf("Let's document the %s section of your strategy canvas next.", CanvasTitles[c])
		}
	}

	return "Review and refine: your research pillars and strategy canvas are complete. Revisit your strategic bets and pressure-test the weakest assumptions."
}
