package assessment

// Dimension is one of the five strategic-maturity dimensions every question
// contributes to.
type Dimension string

const (
	DimensionMarketInsight         Dimension = "marketInsight"
	DimensionCustomerUnderstanding Dimension = "customerUnderstanding"
	DimensionStrategicClarity      Dimension = "strategicClarity"
	DimensionExecutionDiscipline   Dimension = "executionDiscipline"
	DimensionTeamAlignment         Dimension = "teamAlignment"
)

// Dimensions lists the dimension keys in canonical order. The order doubles
// as the tie-breaker when ranking dimension scores.
var Dimensions = []Dimension{
	DimensionMarketInsight,
	DimensionCustomerUnderstanding,
	DimensionStrategicClarity,
	DimensionExecutionDiscipline,
	DimensionTeamAlignment,
}

// LikertQuestion is answered on a 1-5 agreement scale and contributes to a
// single dimension via a linear rescale to 0-100.
type LikertQuestion struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Dimension Dimension `json:"dimension"`
}

// SituationalOption is one multiple-choice answer carrying explicit 0-100
// weights into one or more dimensions.
type SituationalOption struct {
	ID      string            `json:"id"`
	Text    string            `json:"text"`
	Weights map[Dimension]int `json:"weights"`
}

// SituationalQuestion is a multiple-choice scenario question.
type SituationalQuestion struct {
	ID      string              `json:"id"`
	Text    string              `json:"text"`
	Options []SituationalOption `json:"options"`
}

// The question bank and its weights are configuration data: archetype labels
// shown to end users depend on these exact numbers, so changes here are
// product decisions, not refactors.

var LikertQuestions = []LikertQuestion{
	{ID: "l-market-1", Text: "We have a current, shared view of where our market is heading over the next three years.", Dimension: DimensionMarketInsight},
	{ID: "l-market-2", Text: "When a competitor makes a major move, we usually saw it coming.", Dimension: DimensionMarketInsight},
	{ID: "l-customer-1", Text: "We can name the top three jobs-to-be-done for each of our key customer segments.", Dimension: DimensionCustomerUnderstanding},
	{ID: "l-customer-2", Text: "Customer research, not internal opinion, settles our product debates.", Dimension: DimensionCustomerUnderstanding},
	{ID: "l-clarity-1", Text: "Any leader here can state our strategy in one or two sentences without notes.", Dimension: DimensionStrategicClarity},
	{ID: "l-clarity-2", Text: "We are explicit about what we have chosen not to do.", Dimension: DimensionStrategicClarity},
	{ID: "l-execution-1", Text: "Our quarterly plans trace directly back to strategic priorities.", Dimension: DimensionExecutionDiscipline},
	{ID: "l-execution-2", Text: "We kill initiatives that miss their success criteria instead of letting them drift.", Dimension: DimensionExecutionDiscipline},
	{ID: "l-team-1", Text: "Teams closest to the customer are trusted to make significant product decisions.", Dimension: DimensionTeamAlignment},
	{ID: "l-team-2", Text: "Cross-functional teams here share goals rather than trading requirements.", Dimension: DimensionTeamAlignment},
}

var SituationalQuestions = []SituationalQuestion{
	{
		ID:   "s-signal",
		Text: "A well-funded startup launches into your core segment. What actually happens next at your company?",
		Options: []SituationalOption{
			{ID: "a", Text: "We match their headline features within two quarters.", Weights: map[Dimension]int{DimensionMarketInsight: 25, DimensionExecutionDiscipline: 70}},
			{ID: "b", Text: "We re-examine the segment's jobs-to-be-done before reacting.", Weights: map[Dimension]int{DimensionMarketInsight: 80, DimensionCustomerUnderstanding: 85}},
			{ID: "c", Text: "Leadership debates it for a quarter without a decision.", Weights: map[Dimension]int{DimensionMarketInsight: 40, DimensionStrategicClarity: 15}},
			{ID: "d", Text: "Nothing changes; we rarely track competitor moves.", Weights: map[Dimension]int{DimensionMarketInsight: 5, DimensionExecutionDiscipline: 30}},
		},
	},
	{
		ID:   "s-roadmap",
		Text: "How did your current product roadmap come to be?",
		Options: []SituationalOption{
			{ID: "a", Text: "Derived from strategic bets with explicit success metrics.", Weights: map[Dimension]int{DimensionStrategicClarity: 90, DimensionExecutionDiscipline: 85}},
			{ID: "b", Text: "Negotiated from stakeholder requests and sales commitments.", Weights: map[Dimension]int{DimensionStrategicClarity: 30, DimensionTeamAlignment: 45}},
			{ID: "c", Text: "Carried over from last year with new dates.", Weights: map[Dimension]int{DimensionStrategicClarity: 15, DimensionExecutionDiscipline: 25}},
			{ID: "d", Text: "Each team sets its own; there is no single roadmap.", Weights: map[Dimension]int{DimensionStrategicClarity: 20, DimensionTeamAlignment: 60}},
		},
	},
	{
		ID:   "s-evidence",
		Text: "A senior executive's pet initiative is underperforming against its metric. What happens?",
		Options: []SituationalOption{
			{ID: "a", Text: "The metric decides: it gets killed or reshaped at the next review.", Weights: map[Dimension]int{DimensionExecutionDiscipline: 95, DimensionStrategicClarity: 70}},
			{ID: "b", Text: "The metric gets redefined so the initiative survives.", Weights: map[Dimension]int{DimensionExecutionDiscipline: 20, DimensionStrategicClarity: 25}},
			{ID: "c", Text: "Teams quietly deprioritize it without a formal decision.", Weights: map[Dimension]int{DimensionExecutionDiscipline: 35, DimensionTeamAlignment: 30}},
			{ID: "d", Text: "Nobody is measuring it closely enough to notice.", Weights: map[Dimension]int{DimensionExecutionDiscipline: 5, DimensionCustomerUnderstanding: 20}},
		},
	},
	{
		ID:   "s-customer",
		Text: "When did a customer conversation last change a significant product decision?",
		Options: []SituationalOption{
			{ID: "a", Text: "Within the last month; it happens routinely.", Weights: map[Dimension]int{DimensionCustomerUnderstanding: 95, DimensionTeamAlignment: 70}},
			{ID: "b", Text: "A few times a year, usually after an escalation.", Weights: map[Dimension]int{DimensionCustomerUnderstanding: 50, DimensionTeamAlignment: 40}},
			{ID: "c", Text: "Research happens, but decisions are made before it lands.", Weights: map[Dimension]int{DimensionCustomerUnderstanding: 30, DimensionStrategicClarity: 35}},
			{ID: "d", Text: "We rely on the sales team to represent the customer.", Weights: map[Dimension]int{DimensionCustomerUnderstanding: 15, DimensionMarketInsight: 25}},
		},
	},
	{
		ID:   "s-alignment",
		Text: "Two teams discover they are building overlapping solutions. How is it resolved?",
		Options: []SituationalOption{
			{ID: "a", Text: "The teams resolve it themselves against shared strategic goals.", Weights: map[Dimension]int{DimensionTeamAlignment: 95, DimensionStrategicClarity: 75}},
			{ID: "b", Text: "It escalates two levels up and takes a quarter.", Weights: map[Dimension]int{DimensionTeamAlignment: 30, DimensionExecutionDiscipline: 40}},
			{ID: "c", Text: "Both keep building; the duplication ships.", Weights: map[Dimension]int{DimensionTeamAlignment: 10, DimensionExecutionDiscipline: 20}},
			{ID: "d", Text: "Whichever team has the stronger executive sponsor wins.", Weights: map[Dimension]int{DimensionTeamAlignment: 25, DimensionStrategicClarity: 30}},
		},
	},
}
