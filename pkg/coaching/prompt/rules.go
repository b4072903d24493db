package prompt

import "strings"

// industryRule is one row of the industry classification table: the first
// rule whose substring matches the profile's industry (case-insensitive)
// supplies the guidance block.
type industryRule struct {
	substrings []string
	title      string
	block      string
}

var industryRules = []industryRule{
	{
		substrings: []string{"banking", "insurance", "financial"},
		title:      "Financial Services",
		block: `Regulatory constraints shape what is strategically possible; treat compliance as a design input, not an afterthought.
Legacy core systems and risk committees slow experimentation, so favor bets with contained blast radius.
Trust and security are table stakes; differentiation comes from experience, data leverage, and speed of underwriting decisions.`,
	},
	{
		substrings: []string{"health", "pharma"},
		title:      "Healthcare",
		block: `Clinical evidence cycles and regulatory approval timelines dominate strategic pacing.
Multiple stakeholders (patients, providers, payers) rarely align; be explicit about whose job-to-be-done each bet serves.
Data privacy obligations constrain how customer insight can be gathered and shared.`,
	},
	{
		substrings: []string{"software", "saas"},
		title:      "Technology",
		block: `Competitive moats erode quickly; revisit the macro market pillar more often than the framework minimum.
Product-led growth changes the customer research lens: usage telemetry is a research pillar input, not just a metric.
Platform and ecosystem plays deserve explicit exploration in strategic bets.`,
	},
	{
		substrings: []string{"e-commerce", "consumer"},
		title:      "Retail & E-commerce",
		block: `Margin structures and channel economics should anchor the market reality canvas section.
Customer switching costs are low; jobs-to-be-done shift with seasonality and promotion cycles.
Supply chain and fulfillment constraints are strategic levers, not just operations.`,
	},
}

// classifyIndustry returns the matched title and guidance block, the generic
// fallback for an unrecognized industry, or ok=false when the profile has no
// industry at all.
func classifyIndustry(industry string) (title, block string, ok bool) {
	if industry == "" {
		return "", "", false
	}
	lowered := strings.ToLower(industry)
	for _, rule := range industryRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lowered, sub) {
				return rule.title, rule.block, true
			}
		}
	}
	return industry, "Apply industry-specific knowledge when coaching: ground examples, competitive references, and risks in the realities of this client's sector.", true
}

// focusGuidance maps the intake form's strategic-focus values to coaching
// guidance. "other" and unknown values carry no block.
var focusGuidance = map[string]string{
	FocusStrategyToExecution: `The client's core struggle is turning strategic intent into delivered outcomes.
Push for concrete success metrics on every strategic bet and connect each canvas section back to execution mechanisms.`,
	FocusProductModel: `The client is shifting from project funding to a product operating model.
Anchor coaching in team topology, funding model, and discovery practices; the colleague pillar will surface the hardest resistance.`,
	FocusTeamEmpowerment: `The client wants empowered teams but likely retains top-down decision habits.
Probe how decisions actually get made today and use the team context canvas section to make the gap explicit.`,
	FocusMixed: `The client's transformation spans strategy, operating model, and team empowerment at once.
Keep the phases sequential even when topics overlap, and use key insights to connect threads across pillars.`,
}
