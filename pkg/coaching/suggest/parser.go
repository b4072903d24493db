package suggest

import (
	"regexp"
	"strings"
)

// QuestionSuggestion is one parsed per-question suggestion, shaped for the
// JSON response the browser consumes.
type QuestionSuggestion struct {
	Suggestion          string   `json:"suggestion"`
	CoreCompetencies    []string `json:"core_competencies"`
	CoreDifferentiation []string `json:"core_differentiation"`
	KeyPoints           []string `json:"key_points"`
	SourcesHint         []string `json:"sources_hint"`
}

// Report records how the parse went. The external contract always returns
// full records, but the service logs the fallback rate to notice when the
// model's output format drifts.
type Report struct {
	SegmentsFound int `json:"segments_found"`
	FallbackCount int `json:"fallback_count"`
}

const fallbackSuggestionBudget = 500

// Defaults substituted when a segment cannot be parsed. Boilerplate beats a
// parse error here: the client always gets a complete, editable record.
var (
	defaultCompetencies = []string{
		"Deep understanding of your core customer segments",
		"Ability to translate market signals into product decisions",
	}
	defaultDifferentiation = []string{
		"A distinctive capability grounded in your discovery material",
	}
	defaultKeyPoints = []string{
		"Review the discovery material for evidence supporting this area",
		"Validate this suggestion against your own research before adopting it",
	}
	defaultSourcesHint = []string{
		"Based on the discovery material provided",
	}
	defaultSuggestion = "Consider how your discovery research applies to this question, focusing on the evidence most specific to your situation."
)

var headingNames = []string{
	"Suggestion",
	"Core Competencies Proposals",
	"Core Differentiation Capability",
	"Key Points",
	"Sources Hint",
}

var fieldPatterns = buildFieldPatterns()

// buildFieldPatterns compiles one regex per heading capturing the text
// between that heading and the next (or end of segment). Case-insensitive,
// and tolerant of markdown bold markers around the heading.
func buildFieldPatterns() map[string]*regexp.Regexp {
	alternatives := make([]string, len(headingNames))
	for i, h := range headingNames {
		alternatives[i] = regexp.QuoteMeta(h)
	}
	next := `(?:\*{0,2}(?:` + strings.Join(alternatives, "|") + `)\*{0,2}\s*:)`

	patterns := make(map[string]*regexp.Regexp, len(headingNames))
	for _, h := range headingNames {
		patterns[h] = regexp.MustCompile(
			`(?is)\*{0,2}` + regexp.QuoteMeta(h) + `\*{0,2}\s*:\s*(.*?)\s*(?:` + next + `|\z)`,
		)
	}
	return patterns
}

// ParseResponse parses a raw LLM suggestion response into exactly
// questionCount records. It never fails: segments are matched to questions by
// position, missing segments parse as empty, and any field that cannot be
// extracted is replaced by its default.
func ParseResponse(text string, questionCount int) []QuestionSuggestion {
	suggestions, _ := ParseResponseWithReport(text, questionCount)
	return suggestions
}

// ParseResponseWithReport is ParseResponse plus parse diagnostics.
func ParseResponseWithReport(text string, questionCount int) ([]QuestionSuggestion, Report) {
	segments := splitSegments(text)
	report := Report{SegmentsFound: len(segments)}

	suggestions := make([]QuestionSuggestion, questionCount)
	for i := 0; i < questionCount; i++ {
		segment := ""
		if i < len(segments) {
			segment = segments[i]
		}
		parsed, fallback := parseSegment(segment)
		if fallback {
			report.FallbackCount++
		}
		suggestions[i] = parsed
	}
	return suggestions, report
}

// splitSegments splits on separator lines consisting of --- (three or more
// dashes), dropping empty segments.
var separatorPattern = regexp.MustCompile(`(?m)^\s*-{3,}\s*$`)

func splitSegments(text string) []string {
	var segments []string
	for _, s := range separatorPattern.Split(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// parseSegment extracts the five fields from one segment. fallback reports
// whether the Suggestion heading itself could not be matched, in which case
// the raw segment (or the generic default) stands in and all list fields get
// their defaults.
func parseSegment(segment string) (QuestionSuggestion, bool) {
	suggestion, ok := extractField(segment, "Suggestion")
	if !ok || suggestion == "" {
		raw := strings.TrimSpace(segment)
		if raw == "" {
			raw = defaultSuggestion
		} else {
			raw = truncate(raw, fallbackSuggestionBudget)
		}
		return QuestionSuggestion{
			Suggestion:          raw,
			CoreCompetencies:    cloneList(defaultCompetencies),
			CoreDifferentiation: cloneList(defaultDifferentiation),
			KeyPoints:           cloneList(defaultKeyPoints),
			SourcesHint:         cloneList(defaultSourcesHint),
		}, true
	}

	return QuestionSuggestion{
		Suggestion:          suggestion,
		CoreCompetencies:    extractBullets(segment, "Core Competencies Proposals", defaultCompetencies),
		CoreDifferentiation: extractBullets(segment, "Core Differentiation Capability", defaultDifferentiation),
		KeyPoints:           extractBullets(segment, "Key Points", defaultKeyPoints),
		SourcesHint:         extractBullets(segment, "Sources Hint", defaultSourcesHint),
	}, false
}

func extractField(segment, heading string) (string, bool) {
	m := fieldPatterns[heading].FindStringSubmatch(segment)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(stripBold(m[1])), true
}

// extractBullets pulls the bullet lines out of a heading's field text; a
// missing or bullet-less field yields the default list.
func extractBullets(segment, heading string, defaults []string) []string {
	body, ok := extractField(segment, heading)
	if !ok {
		return cloneList(defaults)
	}
	var items []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if after, found := trimBulletMarker(line); found {
			item := strings.TrimSpace(stripBold(after))
			if item != "" {
				items = append(items, item)
			}
		}
	}
	if len(items) == 0 {
		// A non-empty single-line field without bullet markers still counts.
		if body != "" {
			return []string{body}
		}
		return cloneList(defaults)
	}
	return items
}

func trimBulletMarker(line string) (string, bool) {
	switch {
	case strings.HasPrefix(line, "- "):
		return line[2:], true
	case strings.HasPrefix(line, "-"):
		return line[1:], true
	case strings.HasPrefix(line, "• "):
		return line[len("• "):], true
	case strings.HasPrefix(line, "•"):
		return line[len("•"):], true
	case strings.HasPrefix(line, "* "):
		return line[2:], true
	}
	return "", false
}

func stripBold(s string) string {
	return strings.ReplaceAll(s, "**", "")
}

func cloneList(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}
