package suggest

import (
	"fmt"
	"strings"
)

const (
	maxExcerpts      = 3
	excerptBudget    = 1000
	priorReplyBudget = 300
)

// PriorResponse is an earlier territory-insight answer the client already
// gave, included so the model does not repeat it.
type PriorResponse struct {
	Area     string `json:"area"`
	Response string `json:"response"`
}

// Context carries everything the suggestion prompt is assembled from.
type Context struct {
	Territory         string          `json:"territory"`
	ResearchArea      string          `json:"research_area"`
	ResearchAreaTitle string          `json:"research_area_title"`
	CompanyData       string          `json:"company_data,omitempty"`
	DiscoveryExcerpts []string        `json:"discovery_excerpts,omitempty"`
	PriorResponses    []PriorResponse `json:"prior_responses,omitempty"`
	Questions         []string        `json:"questions"`
}

// BuildPrompt assembles the coach-suggestion prompt. Section order is fixed:
// persona, company data, discovery excerpts (at most three, truncated), prior
// responses (truncated), per-question instructions, and the rigid output
// template the parser depends on.
func BuildPrompt(ctx Context) string {
	var p strings.Builder

	p.WriteString("You are a strategy coach preparing draft answers for a client working through the ")
	p.WriteString(ctx.Territory)
	p.WriteString(" territory of their strategy framework, research area: ")
	if ctx.ResearchAreaTitle != "" {
		p.WriteString(ctx.ResearchAreaTitle)
	} else {
		p.WriteString(ctx.ResearchArea)
	}
	p.WriteString(".\nYour suggestions must be grounded in the material below, specific to this client, and honest about uncertainty.\n\n")

	if ctx.CompanyData != "" {
		p.WriteString("<company_data>\n")
		p.WriteString(ctx.CompanyData)
		p.WriteString("\n</company_data>\n\n")
	}

	if len(ctx.DiscoveryExcerpts) > 0 {
		p.WriteString("<discovery_material>\n")
		excerpts := ctx.DiscoveryExcerpts
		if len(excerpts) > maxExcerpts {
			excerpts = excerpts[:maxExcerpts]
		}
		for i, e := range excerpts {
			fmt.Fprintf(&p, "--- Excerpt %d ---\n%s\n", i+1, truncate(e, excerptBudget))
		}
		p.WriteString("</discovery_material>\n\n")
	}

	if len(ctx.PriorResponses) > 0 {
		p.WriteString("<previous_responses>\n")
		p.WriteString("The client already answered these related areas. Do not repeat their content:\n")
		for _, prior := range ctx.PriorResponses {
			fmt.Fprintf(&p, "- %s: %s\n", prior.Area, truncate(prior.Response, priorReplyBudget))
		}
		p.WriteString("</previous_responses>\n\n")
	}

	fmt.Fprintf(&p, "Answer the following %d questions. Each answer must be DISTINCT: do not recycle the same suggestion, competencies, or phrasing across questions.\n\n", len(ctx.Questions))
	for i, q := range ctx.Questions {
		fmt.Fprintf(&p, "Question %d: %s\n", i+1, q)
	}

	p.WriteString("\nFor EACH question, respond using EXACTLY this format, separating questions with a line containing only ---:\n\n")
	p.WriteString("Suggestion: <two to four sentences answering the question for this client>\n")
	p.WriteString("Core Competencies Proposals:\n- <competency>\n- <competency>\n")
	p.WriteString("Core Differentiation Capability:\n- <the single capability that sets this client apart>\n")
	p.WriteString("Key Points:\n- <key point>\n- <key point>\n")
	p.WriteString("Sources Hint:\n- <where in the provided material this is grounded>\n")

	return p.String()
}

// truncate cuts text to a rune budget, appending an ellipsis when it cut.
func truncate(text string, budget int) string {
	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}
	return strings.TrimSpace(string(runes[:budget])) + "..."
}
