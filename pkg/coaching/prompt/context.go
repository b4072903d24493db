package prompt

// ClientContext is the client profile slice the prompt builder needs. It is
// loaded by the surrounding service from the client's application profile;
// optional fields are empty strings when the profile never captured them.
type ClientContext struct {
	CompanyName      string `json:"companyName"`
	Industry         string `json:"industry,omitempty"`
	CompanySize      string `json:"companySize,omitempty"`
	Tier             string `json:"tier,omitempty"`
	StrategicFocus   string `json:"strategicFocus,omitempty"`
	PainPoints       string `json:"painPoints,omitempty"`
	TargetOutcomes   string `json:"targetOutcomes,omitempty"`
	PreviousAttempts string `json:"previousAttempts,omitempty"`
}

// Strategic focus values the intake form captures. "other" carries no
// dedicated guidance block.
const (
	FocusStrategyToExecution = "strategy_to_execution"
	FocusProductModel        = "product_model"
	FocusTeamEmpowerment     = "team_empowerment"
	FocusMixed               = "mixed"
)

// focusDescriptions render the focus in the opening message.
var focusDescriptions = map[string]string{
	FocusStrategyToExecution: "closing the gap between strategy and execution",
	FocusProductModel:        "moving to a product operating model",
	FocusTeamEmpowerment:     "building empowered product teams",
	FocusMixed:               "a blended transformation across strategy, product model, and teams",
}
