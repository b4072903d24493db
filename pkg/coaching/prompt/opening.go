package prompt

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"frontera-be/pkg/coaching/progress"
	"frontera-be/pkg/coaching/state"
)

const clauseBudget = 80

const (
	defaultPainPoints     = "the strategic challenges you described in your application"
	defaultTargetOutcomes = "the outcomes your team is aiming for"
)

// GenerateOpeningMessage renders the coach's first message of a session.
// A conversation with no messages yet always gets the new-conversation
// greeting, even when the caller flags it as resuming.
func GenerateOpeningMessage(ctx ClientContext, st state.State, userName string, isResuming bool) string {
	if !isResuming || st.TotalMessageCount == 0 {
		return openingNew(ctx, userName)
	}
	return openingResume(ctx, st)
}

func openingNew(ctx ClientContext, userName string) string {
	name := userName
	if name == "" {
		name = "there"
	}

	focus := "your strategic transformation"
	if desc, ok := focusDescriptions[ctx.StrategicFocus]; ok {
		focus = desc
	}

	pains := defaultPainPoints
	if ctx.PainPoints != "" {
		pains = firstClause(ctx.PainPoints, clauseBudget)
	}
	outcomes := defaultTargetOutcomes
	if ctx.TargetOutcomes != "" {
		outcomes = firstClause(ctx.TargetOutcomes, clauseBudget)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Welcome, %s! I'm your Frontera strategy coach, and I'm looking forward to working with %s on %s.\n\n",
		name, ctx.CompanyName, focus)
	fmt.Fprintf(&b, "From your application I understand you're wrestling with %s, and that success looks like %s.\n\n", pains, outcomes)
	fmt.Fprintf(&b, "Before we dive into research, I'd like to hear it in your own words: what's happening at %s right now that made this the moment to act?", ctx.CompanyName)
	return b.String()
}

func openingResume(ctx ClientContext, st state.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Welcome back! I've reviewed our previous discussion about %s's transformation journey.\n\n", ctx.CompanyName)

	completed := 0
	for _, p := range state.Pillars {
		if st.ResearchPillars[p].Completed {
			completed++
		}
	}
	if completed > 0 {
		pct := int(math.Round(float64(completed) / float64(len(state.Pillars)) * 100))
		fmt.Fprintf(&b, "Your research is %d%% complete (%d of %d pillars).\n\n", pct, completed, len(state.Pillars))
	}

	b.WriteString(progress.SuggestNextFocus(st))
	b.WriteString("\n\nWhere would you like to pick up?")
	return b.String()
}

// firstClause returns the text up to its first sentence-ending punctuation or
// the character budget, whichever is shorter, with the leading word lowercased
// so it splices into a sentence template.
func firstClause(text string, budget int) string {
	text = strings.TrimSpace(text)
	if idx := strings.IndexAny(text, ".!?"); idx >= 0 {
		text = text[:idx]
	}
	runes := []rune(text)
	if len(runes) > budget {
		runes = runes[:budget]
		text = strings.TrimSpace(string(runes))
	}
	if text == "" {
		return text
	}
	r := []rune(text)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
