package suggest

import (
	"reflect"
	"strings"
	"testing"
)

const wellFormedResponse = `Suggestion: Focus your macro market research on the two digital-first competitors eroding your mid-market base.
Core Competencies Proposals:
- Rapid competitive intelligence gathering
- Pricing analytics across segments
Core Differentiation Capability:
- Proprietary distribution relationships in regulated markets
Key Points:
- Two competitors grew 40% last year in your core segment
- Your churn concentrates where their coverage overlaps yours
Sources Hint:
- Discovery excerpt 1, competitive landscape notes
---
Suggestion: Anchor customer research on the renewal-risk segment first.
Core Competencies Proposals:
- Jobs-to-be-done interviewing
- Churn cohort analysis
Core Differentiation Capability:
- Direct access to decision makers at renewal accounts
Key Points:
- Renewal-risk accounts share a common unmet integration need
Sources Hint:
- Discovery excerpt 2, customer interview summaries
---
Suggestion: Use colleague research to test whether leadership agrees on the primary segment.
Core Competencies Proposals:
- Structured internal alignment interviews
Core Differentiation Capability:
- A leadership team willing to be challenged
Key Points:
- Prior strategy decks name three different primary segments
Sources Hint:
- Discovery excerpt 3, leadership workshop notes`

func TestParseWellFormedRoundTrip(t *testing.T) {
	got, report := ParseResponseWithReport(wellFormedResponse, 3)

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if report.FallbackCount != 0 {
		t.Errorf("FallbackCount = %d, want 0", report.FallbackCount)
	}
	if report.SegmentsFound != 3 {
		t.Errorf("SegmentsFound = %d, want 3", report.SegmentsFound)
	}

	first := got[0]
	if first.Suggestion != "Focus your macro market research on the two digital-first competitors eroding your mid-market base." {
		t.Errorf("Suggestion = %q", first.Suggestion)
	}
	wantCompetencies := []string{
		"Rapid competitive intelligence gathering",
		"Pricing analytics across segments",
	}
	if !reflect.DeepEqual(first.CoreCompetencies, wantCompetencies) {
		t.Errorf("CoreCompetencies = %v", first.CoreCompetencies)
	}
	if !reflect.DeepEqual(first.CoreDifferentiation, []string{"Proprietary distribution relationships in regulated markets"}) {
		t.Errorf("CoreDifferentiation = %v", first.CoreDifferentiation)
	}
	if len(first.KeyPoints) != 2 || !strings.Contains(first.KeyPoints[0], "40%") {
		t.Errorf("KeyPoints = %v", first.KeyPoints)
	}
	if !reflect.DeepEqual(first.SourcesHint, []string{"Discovery excerpt 1, competitive landscape notes"}) {
		t.Errorf("SourcesHint = %v", first.SourcesHint)
	}

	if got[2].Suggestion != "Use colleague research to test whether leadership agrees on the primary segment." {
		t.Errorf("third Suggestion = %q", got[2].Suggestion)
	}
}

func TestParseToleratesBoldMarkers(t *testing.T) {
	response := `**Suggestion:** Lean into the integration gap.
**Core Competencies Proposals:**
- **API platform engineering**
• Partner ecosystem management
**Core Differentiation Capability:**
- **Depth of integrations**
**Key Points:**
- The gap is defensible
**Sources Hint:**
- Excerpt 1`

	got := ParseResponse(response, 1)
	if got[0].Suggestion != "Lean into the integration gap." {
		t.Errorf("Suggestion = %q", got[0].Suggestion)
	}
	want := []string{"API platform engineering", "Partner ecosystem management"}
	if !reflect.DeepEqual(got[0].CoreCompetencies, want) {
		t.Errorf("CoreCompetencies = %v", got[0].CoreCompetencies)
	}
}

func TestParseAlwaysReturnsRequestedCount(t *testing.T) {
	inputs := []string{
		"",
		"complete garbage with no structure at all",
		wellFormedResponse,                     // 3 segments, asking for more
		"Suggestion: only one answer came back", // 1 segment
		"---\n---\n---",
	}
	for _, in := range inputs {
		got := ParseResponse(in, 3)
		if len(got) != 3 {
			t.Fatalf("input %q: len = %d, want 3", in, len(got))
		}
		for i, s := range got {
			if s.Suggestion == "" {
				t.Errorf("input %q: suggestion %d empty", in, i)
			}
			if len(s.CoreCompetencies) == 0 || len(s.CoreDifferentiation) == 0 ||
				len(s.KeyPoints) == 0 || len(s.SourcesHint) == 0 {
				t.Errorf("input %q: record %d has empty list fields: %+v", in, i, s)
			}
		}
	}
}

func TestParseFallbackUsesRawSegment(t *testing.T) {
	segment := "The model ignored the template and wrote free prose about market positioning instead."
	got, report := ParseResponseWithReport(segment, 1)

	if got[0].Suggestion != segment {
		t.Errorf("fallback suggestion should carry the raw segment: %q", got[0].Suggestion)
	}
	if report.FallbackCount != 1 {
		t.Errorf("FallbackCount = %d, want 1", report.FallbackCount)
	}
	if !reflect.DeepEqual(got[0].CoreCompetencies, defaultCompetencies) {
		t.Errorf("fallback competencies = %v", got[0].CoreCompetencies)
	}
}

func TestParseFallbackTruncatesLongSegments(t *testing.T) {
	long := strings.Repeat("q", 900)
	got := ParseResponse(long, 1)
	if len([]rune(got[0].Suggestion)) > fallbackSuggestionBudget+3 {
		t.Errorf("fallback suggestion not truncated: %d runes", len([]rune(got[0].Suggestion)))
	}
}

func TestParseMissingListFieldGetsDefault(t *testing.T) {
	response := `Suggestion: A clean suggestion with no lists after it.
Key Points:
- Only key points made it`

	got := ParseResponse(response, 1)
	if got[0].Suggestion != "A clean suggestion with no lists after it." {
		t.Errorf("Suggestion = %q", got[0].Suggestion)
	}
	if !reflect.DeepEqual(got[0].CoreCompetencies, defaultCompetencies) {
		t.Errorf("missing competencies should default: %v", got[0].CoreCompetencies)
	}
	if !reflect.DeepEqual(got[0].KeyPoints, []string{"Only key points made it"}) {
		t.Errorf("KeyPoints = %v", got[0].KeyPoints)
	}
}

func TestSplitSegmentsIgnoresBlankSegments(t *testing.T) {
	segments := splitSegments("first\n---\n\n---\nsecond\n-----\nthird")
	if len(segments) != 3 {
		t.Errorf("segments = %v", segments)
	}
}
