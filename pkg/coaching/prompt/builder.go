package prompt

import (
	"fmt"
	"strings"

	"frontera-be/pkg/coaching/progress"
	"frontera-be/pkg/coaching/state"
)

// Builder assembles the coach's system prompt from the client context, the
// framework state, and fixed methodology text. The output is deterministic
// for a given pair of inputs.
type Builder struct {
	ctx ClientContext
	st  state.State
}

// NewBuilder creates a system prompt builder.
func NewBuilder(ctx ClientContext, st state.State) *Builder {
	return &Builder{ctx: ctx, st: st}
}

// BuildSystemPrompt is a convenience wrapper around Builder.Build.
func BuildSystemPrompt(ctx ClientContext, st state.State) string {
	return NewBuilder(ctx, st).Build()
}

// Build renders every section in its fixed order.
func (b *Builder) Build() string {
	var p strings.Builder

	b.writeIdentity(&p)
	b.writeClientProfile(&p)
	b.writeMethodology(&p)
	b.writeCanvas(&p)
	b.writeBetFormat(&p)
	b.writeTone(&p)
	b.writeResponseGuidelines(&p)
	b.writeIndustryContext(&p)
	b.writeFocusGuidance(&p)
	b.writeRecoveryAwareness(&p)
	b.writeCurrentState(&p)
	b.writeNextFocus(&p)

	return p.String()
}

func (b *Builder) writeIdentity(p *strings.Builder) {
	p.WriteString("# Frontera Strategy Coach\n\n")
	p.WriteString("You are an experienced strategy coach guiding an enterprise product leadership team through the Frontera methodology: a phased progression from Discovery through Research and Synthesis into Strategic Bets.\n")
	p.WriteString("You coach by asking sharp questions, reflecting the client's own evidence back at them, and capturing insights as they emerge. You never lecture when a question would do.\n\n")
}

func (b *Builder) writeClientProfile(p *strings.Builder) {
	p.WriteString("## Client Profile\n")
	fmt.Fprintf(p, "- Company: %s\n", b.ctx.CompanyName)
	if b.ctx.Industry != "" {
		fmt.Fprintf(p, "- Industry: %s\n", b.ctx.Industry)
	}
	if b.ctx.CompanySize != "" {
		fmt.Fprintf(p, "- Size: %s\n", b.ctx.CompanySize)
	}
	if b.ctx.Tier != "" {
		fmt.Fprintf(p, "- Program tier: %s\n", b.ctx.Tier)
	}
	if desc, ok := focusDescriptions[b.ctx.StrategicFocus]; ok {
		fmt.Fprintf(p, "- Strategic focus: %s\n", desc)
	}
	if b.ctx.PainPoints != "" {
		fmt.Fprintf(p, "- Stated pain points: %s\n", b.ctx.PainPoints)
	}
	if b.ctx.TargetOutcomes != "" {
		fmt.Fprintf(p, "- Target outcomes: %s\n", b.ctx.TargetOutcomes)
	}
	p.WriteString("\n")
}

func (b *Builder) writeMethodology(p *strings.Builder) {
	p.WriteString("## Research Methodology\n")
	p.WriteString("The research phase rests on three pillars, worked in order:\n\n")
	p.WriteString("### Macro Market Forces\n")
	p.WriteString("Map the competitive landscape, market dynamics, regulatory shifts, and technology trends bearing on the client's position. The output is a defensible point of view on where the market is going, not a data dump.\n\n")
	p.WriteString("### Customer Research\n")
	p.WriteString("Segment the customer base and uncover jobs-to-be-done: what customers are hiring the product to achieve, where current alternatives fall short, and which segments are underserved.\n\n")
	p.WriteString("### Colleague Research\n")
	p.WriteString("Interview leadership and the wider organization to surface how the strategy is understood internally, where alignment breaks down, and which constraints are real versus assumed.\n\n")
	p.WriteString("### Cross-Pillar Synthesis\n")
	p.WriteString("Insights gain strategic weight when pillars corroborate each other. Actively connect findings across pillars and flag contradictions between the market view, the customer view, and the internal view.\n\n")
}

func (b *Builder) writeCanvas(p *strings.Builder) {
	p.WriteString("## Strategy Canvas\n")
	p.WriteString("Research converges into five canvas sections:\n\n")
	p.WriteString("1. **Market Reality** - the external forces and competitive truths the strategy must respect.\n")
	p.WriteString("2. **Customer Insights** - the segments, jobs-to-be-done, and unmet needs the strategy serves.\n")
	p.WriteString("3. **Organizational Context** - internal capabilities, constraints, and alignment gaps.\n")
	p.WriteString("4. **Strategic Synthesis** - the Where to Play and How to Win choices that follow from the evidence.\n")
	p.WriteString("5. **Team Context** - how the operating model and team topology must change to execute.\n\n")
}

func (b *Builder) writeBetFormat(p *strings.Builder) {
	p.WriteString("## Strategic Bet Format\n")
	p.WriteString("When the client lands on a strategic hypothesis, capture it in this structure:\n")
	p.WriteString("- **Belief**: the evidence-backed conviction about the market or customer.\n")
	p.WriteString("- **Implication**: what follows for the client's strategy if the belief holds.\n")
	p.WriteString("- **Exploration**: the cheapest next step that tests the belief.\n")
	p.WriteString("- **Success metric**: the observable result that confirms or kills the bet.\n\n")
}

func (b *Builder) writeTone(p *strings.Builder) {
	p.WriteString("## Tone\n")
	p.WriteString("Direct, warm, and evidence-hungry. Challenge vague claims by asking for the underlying observation. Celebrate genuine research progress. Never pad responses with generic strategy platitudes.\n\n")
}

func (b *Builder) writeResponseGuidelines(p *strings.Builder) {
	p.WriteString("## Response Guidelines\n")
	p.WriteString("- Keep responses focused on the current phase and the suggested next focus.\n")
	p.WriteString("- Ask at most two questions per response.\n")
	p.WriteString("- When the client shares a finding, reflect it back as a candidate insight and ask whether to record it.\n")
	p.WriteString("- Reference earlier insights by content, not by number.\n")
	p.WriteString("- Decline requests outside strategy coaching and steer back to the framework.\n\n")
}

func (b *Builder) writeIndustryContext(p *strings.Builder) {
	title, block, ok := classifyIndustry(b.ctx.Industry)
	if !ok {
		return
	}
	fmt.Fprintf(p, "## Industry Context: %s\n", title)
	p.WriteString(block)
	p.WriteString("\n\n")
}

func (b *Builder) writeFocusGuidance(p *strings.Builder) {
	block, ok := focusGuidance[b.ctx.StrategicFocus]
	if !ok {
		return
	}
	p.WriteString("## Strategic Focus Guidance\n")
	p.WriteString(block)
	p.WriteString("\n\n")
}

func (b *Builder) writeRecoveryAwareness(p *strings.Builder) {
	if b.ctx.PreviousAttempts == "" {
		return
	}
	p.WriteString("## Transform Recovery Awareness\n")
	p.WriteString("This client has attempted transformation before:\n")
	p.WriteString(b.ctx.PreviousAttempts)
	p.WriteString("\nAcknowledge the scar tissue. Probe what specifically stalled last time before proposing anything that resembles it, and frame this program as building on, not repeating, earlier work.\n\n")
}

func (b *Builder) writeCurrentState(p *strings.Builder) {
	p.WriteString("## Current Coaching State\n")
	fmt.Fprintf(p, "Phase: %s - %s\n", b.st.CurrentPhase, phaseDescriptions[b.st.CurrentPhase])

	for _, key := range state.Pillars {
		prog := b.st.ResearchPillars[key]
		status := "not started"
		switch {
		case prog.Completed:
			status = "completed"
		case prog.Started:
			status = "in progress"
		}
		fmt.Fprintf(p, "- %s: %s", progress.PillarTitles[key], status)
		if n := len(prog.Insights); n > 0 {
			fmt.Fprintf(p, " (%d insights captured)", n)
		}
		p.WriteString("\n")
	}

	fmt.Fprintf(p, "%s\n", progress.Summary(b.st))

	if len(b.st.StrategicBets) > 0 {
		fmt.Fprintf(p, "Strategic bets captured so far: %d.\n", len(b.st.StrategicBets))
	}
	if len(b.st.KeyInsights) > 0 {
		fmt.Fprintf(p, "Key insights recorded: %s\n", strings.Join(b.st.KeyInsights, "; "))
	}
	p.WriteString("\n")
}

func (b *Builder) writeNextFocus(p *strings.Builder) {
	p.WriteString("## Suggested Next Focus\n")
	p.WriteString(progress.SuggestNextFocus(b.st))
	p.WriteString("\n")
}

var phaseDescriptions = map[state.Phase]string{
	state.PhaseDiscovery:  "getting to know the client's context and framing the engagement",
	state.PhaseResearch:   "working the three research pillars",
	state.PhaseSynthesis:  "converging research into the strategy canvas",
	state.PhasePlanning:   "shaping strategic bets and an activation plan",
	state.PhaseBets:       "capturing and scoring strategic bets",
	state.PhaseActivation: "turning bets into activation work",
	state.PhaseReview:     "reviewing outcomes against success metrics",
}
