package state

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the coaching phase a conversation is in. Progression is forward-only
// from the coach's perspective; the API layer may still overwrite it.
type Phase string

const (
	PhaseDiscovery Phase = "discovery"
	PhaseResearch  Phase = "research"
	PhaseSynthesis Phase = "synthesis"
	PhasePlanning  Phase = "planning"

	// Newer agent-variant phases.
	PhaseBets       Phase = "bets"
	PhaseActivation Phase = "activation"
	PhaseReview     Phase = "review"
)

// Pillar identifies one of the three fixed research pillars.
type Pillar string

const (
	PillarMacroMarket Pillar = "macroMarket"
	PillarCustomer    Pillar = "customer"
	PillarColleague   Pillar = "colleague"
)

// Pillars lists the pillar keys in their canonical order.
var Pillars = []Pillar{PillarMacroMarket, PillarCustomer, PillarColleague}

// CanvasSection identifies one of the five strategy canvas sections.
type CanvasSection string

const (
	CanvasMarketReality         CanvasSection = "marketReality"
	CanvasCustomerInsights      CanvasSection = "customerInsights"
	CanvasOrganizationalContext CanvasSection = "organizationalContext"
	CanvasStrategicSynthesis    CanvasSection = "strategicSynthesis"
	CanvasTeamContext           CanvasSection = "teamContext"
)

// CanvasSections lists the canvas keys in the order the coach walks them.
var CanvasSections = []CanvasSection{
	CanvasMarketReality,
	CanvasCustomerInsights,
	CanvasOrganizationalContext,
	CanvasStrategicSynthesis,
	CanvasTeamContext,
}

// PillarProgress tracks one research pillar.
// completed ⇒ started is a convention kept by Update, not enforced by the type.
type PillarProgress struct {
	Started        bool       `json:"started"`
	Completed      bool       `json:"completed"`
	Insights       []string   `json:"insights"`
	LastExploredAt *time.Time `json:"lastExploredAt,omitempty"`
}

// Bet is a strategic bet captured inside the framework state.
type Bet struct {
	Id            string    `json:"id"`
	Belief        string    `json:"belief"`
	Implication   string    `json:"implication"`
	Exploration   string    `json:"exploration"`
	SuccessMetric string    `json:"successMetric"`
	PillarSource  string    `json:"pillarSource,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BetDraft is the caller-supplied part of a Bet. Id and CreatedAt are
// generated at insertion time.
type BetDraft struct {
	Belief        string `json:"belief"`
	Implication   string `json:"implication"`
	Exploration   string `json:"exploration"`
	SuccessMetric string `json:"successMetric"`
	PillarSource  string `json:"pillarSource,omitempty"`
}

// State is the versioned framework-state document kept per conversation.
// It is treated as an immutable value: every change goes through Update,
// which returns a fresh copy.
type State struct {
	Version           int                            `json:"version"`
	CurrentPhase      Phase                          `json:"currentPhase"`
	SessionCount      int                            `json:"sessionCount"`
	TotalMessageCount int                            `json:"totalMessageCount"`
	ResearchPillars   map[Pillar]PillarProgress      `json:"researchPillars"`
	CanvasProgress    map[CanvasSection]bool         `json:"canvasProgress"`
	StrategicBets     []Bet                          `json:"strategicBets"`
	KeyInsights       []string                       `json:"keyInsights"`
	LastActivityAt    time.Time                      `json:"lastActivityAt"`
}

// PillarInsight pairs a pillar with an insight to append to it.
type PillarInsight struct {
	Pillar  Pillar `json:"pillar"`
	Insight string `json:"insight"`
}

// Patch is a sparse set of logical changes. Every non-nil field applies one
// change; all present fields apply atomically into a single new State.
type Patch struct {
	CurrentPhase      *Phase         `json:"currentPhase,omitempty"`
	PillarStarted     *Pillar        `json:"pillarStarted,omitempty"`
	PillarCompleted   *Pillar        `json:"pillarCompleted,omitempty"`
	PillarInsight     *PillarInsight `json:"pillarInsight,omitempty"`
	CanvasSection     *CanvasSection `json:"canvasSection,omitempty"`
	StrategicBet      *BetDraft      `json:"strategicBet,omitempty"`
	KeyInsight        *string        `json:"keyInsight,omitempty"`
	IncrementMessages bool           `json:"incrementMessages,omitempty"`
}

// Initialize returns the framework state a brand-new conversation starts with.
func Initialize() State {
	pillars := make(map[Pillar]PillarProgress, len(Pillars))
	for _, p := range Pillars {
		pillars[p] = PillarProgress{Insights: []string{}}
	}
	canvas := make(map[CanvasSection]bool, len(CanvasSections))
	for _, c := range CanvasSections {
		canvas[c] = false
	}
	return State{
		Version:         1,
		CurrentPhase:    PhaseDiscovery,
		SessionCount:    1,
		ResearchPillars: pillars,
		CanvasProgress:  canvas,
		StrategicBets:   []Bet{},
		KeyInsights:     []string{},
		LastActivityAt:  time.Now().UTC(),
	}
}

// Update applies a patch to a state and returns the resulting state. The input
// is never mutated; slices and maps are copied before any write. Unknown
// pillar or canvas keys in the patch are ignored. An empty patch still yields
// a distinct copy with a refreshed LastActivityAt.
func Update(s State, p Patch) State {
	next := clone(s)
	now := time.Now().UTC()

	if p.CurrentPhase != nil {
		next.CurrentPhase = *p.CurrentPhase
	}

	if p.PillarStarted != nil {
		if prog, ok := next.ResearchPillars[*p.PillarStarted]; ok {
			prog.Started = true
			t := now
			prog.LastExploredAt = &t
			next.ResearchPillars[*p.PillarStarted] = prog
		}
	}

	if p.PillarCompleted != nil {
		if prog, ok := next.ResearchPillars[*p.PillarCompleted]; ok {
			prog.Started = true
			prog.Completed = true
			t := now
			prog.LastExploredAt = &t
			next.ResearchPillars[*p.PillarCompleted] = prog
		}
	}

	if p.PillarInsight != nil {
		if prog, ok := next.ResearchPillars[p.PillarInsight.Pillar]; ok {
			prog.Insights = append(prog.Insights, p.PillarInsight.Insight)
			next.ResearchPillars[p.PillarInsight.Pillar] = prog
		}
	}

	if p.CanvasSection != nil {
		if _, ok := next.CanvasProgress[*p.CanvasSection]; ok {
			next.CanvasProgress[*p.CanvasSection] = true
		}
	}

	if p.StrategicBet != nil {
		next.StrategicBets = append(next.StrategicBets, Bet{
			Id:            uuid.NewString(),
			Belief:        p.StrategicBet.Belief,
			Implication:   p.StrategicBet.Implication,
			Exploration:   p.StrategicBet.Exploration,
			SuccessMetric: p.StrategicBet.SuccessMetric,
			PillarSource:  p.StrategicBet.PillarSource,
			CreatedAt:     now,
		})
	}

	if p.KeyInsight != nil {
		next.KeyInsights = append(next.KeyInsights, *p.KeyInsight)
	}

	if p.IncrementMessages {
		next.TotalMessageCount++
	}

	next.LastActivityAt = now
	return next
}

// clone makes a deep copy so Update can write freely.
func clone(s State) State {
	pillars := make(map[Pillar]PillarProgress, len(s.ResearchPillars))
	for k, v := range s.ResearchPillars {
		insights := make([]string, len(v.Insights))
		copy(insights, v.Insights)
		v.Insights = insights
		if v.LastExploredAt != nil {
			t := *v.LastExploredAt
			v.LastExploredAt = &t
		}
		pillars[k] = v
	}

	canvas := make(map[CanvasSection]bool, len(s.CanvasProgress))
	for k, v := range s.CanvasProgress {
		canvas[k] = v
	}

	bets := make([]Bet, len(s.StrategicBets))
	copy(bets, s.StrategicBets)

	insights := make([]string, len(s.KeyInsights))
	copy(insights, s.KeyInsights)

	s.ResearchPillars = pillars
	s.CanvasProgress = canvas
	s.StrategicBets = bets
	s.KeyInsights = insights
	return s
}
