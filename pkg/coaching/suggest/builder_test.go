package suggest

import (
	"strings"
	"testing"
)

func testSuggestContext() Context {
	return Context{
		Territory:         "customer",
		ResearchArea:      "segmentation",
		ResearchAreaTitle: "Customer Segmentation",
		CompanyData:       "Acme Corp, 5000 employees, B2B payments platform.",
		DiscoveryExcerpts: []string{"Excerpt one content", "Excerpt two content"},
		PriorResponses: []PriorResponse{
			{Area: "jobs-to-be-done", Response: "Buyers hire us to reconcile payments without finance headcount."},
		},
		Questions: []string{
			"Which customer segments should we prioritize?",
			"What unmet needs define those segments?",
		},
	}
}

func TestBuildPromptSections(t *testing.T) {
	got := BuildPrompt(testSuggestContext())

	for _, want := range []string{
		"Customer Segmentation",
		"<company_data>",
		"Acme Corp",
		"<discovery_material>",
		"--- Excerpt 1 ---",
		"--- Excerpt 2 ---",
		"<previous_responses>",
		"jobs-to-be-done",
		"Question 1: Which customer segments should we prioritize?",
		"Question 2: What unmet needs define those segments?",
		"DISTINCT",
		"Suggestion:",
		"Core Competencies Proposals:",
		"Core Differentiation Capability:",
		"Key Points:",
		"Sources Hint:",
		"---",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptOmitsEmptySections(t *testing.T) {
	ctx := testSuggestContext()
	ctx.CompanyData = ""
	ctx.DiscoveryExcerpts = nil
	ctx.PriorResponses = nil

	got := BuildPrompt(ctx)
	if strings.Contains(got, "<company_data>") {
		t.Error("empty company data should omit the section")
	}
	if strings.Contains(got, "<discovery_material>") {
		t.Error("no excerpts should omit the section")
	}
	if strings.Contains(got, "<previous_responses>") {
		t.Error("no prior responses should omit the section")
	}
}

func TestBuildPromptCapsAndTruncatesExcerpts(t *testing.T) {
	ctx := testSuggestContext()
	ctx.DiscoveryExcerpts = []string{
		strings.Repeat("a", 1500),
		"second", "third", "fourth",
	}
	got := BuildPrompt(ctx)

	if strings.Contains(got, "--- Excerpt 4 ---") {
		t.Error("more than three excerpts must be dropped")
	}
	if strings.Contains(got, strings.Repeat("a", 1001)) {
		t.Error("excerpts must be truncated to the budget")
	}
	if !strings.Contains(got, strings.Repeat("a", 1000)+"...") {
		t.Error("truncated excerpt should end with an ellipsis")
	}
}

func TestBuildPromptTruncatesPriorResponses(t *testing.T) {
	ctx := testSuggestContext()
	ctx.PriorResponses = []PriorResponse{{Area: "area", Response: strings.Repeat("b", 400)}}
	got := BuildPrompt(ctx)
	if strings.Contains(got, strings.Repeat("b", 301)) {
		t.Error("prior responses must be truncated to 300 chars")
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	ctx := testSuggestContext()
	if BuildPrompt(ctx) != BuildPrompt(ctx) {
		t.Error("prompt must be deterministic")
	}
}

func TestBuildPromptFallsBackToResearchArea(t *testing.T) {
	ctx := testSuggestContext()
	ctx.ResearchAreaTitle = ""
	got := BuildPrompt(ctx)
	if !strings.Contains(got, "research area: segmentation") {
		t.Errorf("prompt should fall back to the research area key")
	}
}
