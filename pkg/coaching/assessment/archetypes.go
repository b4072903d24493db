package assessment

// ArchetypeID identifies one of the closed set of strategic archetypes.
type ArchetypeID string

const (
	ArchetypeOperator  ArchetypeID = "operator"
	ArchetypeVisionary ArchetypeID = "visionary"
	ArchetypeAnalyst   ArchetypeID = "analyst"
	ArchetypeDiplomat  ArchetypeID = "diplomat"
	ArchetypeArchitect ArchetypeID = "architect"
)

// Archetype describes a strategic-personality label derived from the two
// strongest dimensions.
type Archetype struct {
	ID          ArchetypeID `json:"id"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
	Strengths   []Dimension `json:"strengths"`
	GrowthAreas []Dimension `json:"growthAreas"`
}

var archetypes = map[ArchetypeID]Archetype{
	ArchetypeOperator: {
		ID:          ArchetypeOperator,
		Label:       "The Operator",
		Description: "You turn plans into shipped outcomes and keep teams moving, but the machine can outrun its map: market shifts and strategic trade-offs get less attention than delivery.",
		Strengths:   []Dimension{DimensionExecutionDiscipline, DimensionTeamAlignment},
		GrowthAreas: []Dimension{DimensionMarketInsight, DimensionStrategicClarity},
	},
	ArchetypeVisionary: {
		ID:          ArchetypeVisionary,
		Label:       "The Visionary",
		Description: "You read the market early and frame compelling strategic direction, but conviction outpaces evidence and execution rhythm, leaving bold bets under-tested and under-delivered.",
		Strengths:   []Dimension{DimensionMarketInsight, DimensionStrategicClarity},
		GrowthAreas: []Dimension{DimensionExecutionDiscipline, DimensionTeamAlignment},
	},
	ArchetypeAnalyst: {
		ID:          ArchetypeAnalyst,
		Label:       "The Analyst",
		Description: "You ground decisions in customer and market evidence, but insight piles up faster than the organization converts it into committed strategic choices.",
		Strengths:   []Dimension{DimensionCustomerUnderstanding, DimensionMarketInsight},
		GrowthAreas: []Dimension{DimensionStrategicClarity, DimensionTeamAlignment},
	},
	ArchetypeDiplomat: {
		ID:          ArchetypeDiplomat,
		Label:       "The Diplomat",
		Description: "You build aligned teams that listen to customers, but harmony is bought with ambiguity: hard where-to-play choices stay unmade to keep everyone on board.",
		Strengths:   []Dimension{DimensionTeamAlignment, DimensionCustomerUnderstanding},
		GrowthAreas: []Dimension{DimensionStrategicClarity, DimensionMarketInsight},
	},
	ArchetypeArchitect: {
		ID:          ArchetypeArchitect,
		Label:       "The Architect",
		Description: "You connect clear strategy to disciplined delivery, but the system is built more from internal logic than from fresh customer and team signal.",
		Strengths:   []Dimension{DimensionStrategicClarity, DimensionExecutionDiscipline},
		GrowthAreas: []Dimension{DimensionCustomerUnderstanding, DimensionTeamAlignment},
	},
}

// archetypeByPair maps the ordered (strongest, second-strongest) dimension
// pair to an archetype. Pairs absent from the table fall back to the top
// dimension's default archetype.
var archetypeByPair = map[[2]Dimension]ArchetypeID{
	{DimensionExecutionDiscipline, DimensionTeamAlignment}:         ArchetypeOperator,
	{DimensionTeamAlignment, DimensionExecutionDiscipline}:         ArchetypeOperator,
	{DimensionMarketInsight, DimensionStrategicClarity}:            ArchetypeVisionary,
	{DimensionStrategicClarity, DimensionMarketInsight}:            ArchetypeVisionary,
	{DimensionCustomerUnderstanding, DimensionMarketInsight}:       ArchetypeAnalyst,
	{DimensionMarketInsight, DimensionCustomerUnderstanding}:       ArchetypeAnalyst,
	{DimensionTeamAlignment, DimensionCustomerUnderstanding}:       ArchetypeDiplomat,
	{DimensionCustomerUnderstanding, DimensionTeamAlignment}:       ArchetypeDiplomat,
	{DimensionStrategicClarity, DimensionExecutionDiscipline}:      ArchetypeArchitect,
	{DimensionExecutionDiscipline, DimensionStrategicClarity}:      ArchetypeArchitect,
}

var defaultArchetypeByDimension = map[Dimension]ArchetypeID{
	DimensionMarketInsight:         ArchetypeVisionary,
	DimensionCustomerUnderstanding: ArchetypeAnalyst,
	DimensionStrategicClarity:      ArchetypeArchitect,
	DimensionExecutionDiscipline:   ArchetypeOperator,
	DimensionTeamAlignment:         ArchetypeDiplomat,
}

// selectArchetype picks the archetype for a ranked dimension list.
func selectArchetype(ranked []Dimension) Archetype {
	if id, ok := archetypeByPair[[2]Dimension{ranked[0], ranked[1]}]; ok {
		return archetypes[id]
	}
	return archetypes[defaultArchetypeByDimension[ranked[0]]]
}
