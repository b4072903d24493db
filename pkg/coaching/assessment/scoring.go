package assessment

import (
	"math"
	"sort"
)

// Responses holds a submitted questionnaire. Likert maps question id to the
// 1-5 answer; Situational maps question id to the chosen option id.
type Responses struct {
	Likert      map[string]int    `json:"likert"`
	Situational map[string]string `json:"situational"`
}

// DimensionScore is a single 0-100 dimension result.
type DimensionScore struct {
	Score int `json:"score"`
}

// Result is the derived assessment outcome. It is computed once per
// submission and never mutated.
type Result struct {
	Dimensions      map[Dimension]DimensionScore `json:"dimensions"`
	OverallMaturity int                          `json:"overallMaturity"`
	Archetype       Archetype                    `json:"archetype"`
}

const neutralContribution = 50

// Score derives dimension scores, overall maturity, and the archetype from a
// response set. The function is total: missing answers, out-of-range Likert
// values, and unknown option ids all degrade to the neutral contribution
// instead of failing, so a partially answered questionnaire still scores.
func Score(r Responses) Result {
	contributions := make(map[Dimension][]float64, len(Dimensions))

	for _, q := range LikertQuestions {
		value, ok := r.Likert[q.ID]
		var c float64
		if !ok {
			c = neutralContribution
		} else {
			c = likertToScale(value)
		}
		contributions[q.Dimension] = append(contributions[q.Dimension], c)
	}

	for _, q := range SituationalQuestions {
		option, ok := findOption(q, r.Situational[q.ID])
		if !ok {
			for _, d := range questionDimensions(q) {
				contributions[d] = append(contributions[d], neutralContribution)
			}
			continue
		}
		for d, w := range option.Weights {
			contributions[d] = append(contributions[d], float64(w))
		}
	}

	dims := make(map[Dimension]DimensionScore, len(Dimensions))
	var total float64
	for _, d := range Dimensions {
		score := roundMean(contributions[d])
		dims[d] = DimensionScore{Score: score}
		total += float64(score)
	}
	overall := int(math.Round(total / float64(len(Dimensions))))

	return Result{
		Dimensions:      dims,
		OverallMaturity: overall,
		Archetype:       selectArchetype(rankDimensions(dims)),
	}
}

// likertToScale rescales a 1-5 answer linearly onto 0-100, clamping
// out-of-range values to the scale ends.
func likertToScale(v int) float64 {
	if v < 1 {
		v = 1
	}
	if v > 5 {
		v = 5
	}
	return float64(v-1) / 4 * 100
}

func findOption(q SituationalQuestion, optionID string) (SituationalOption, bool) {
	for _, o := range q.Options {
		if o.ID == optionID {
			return o, true
		}
	}
	return SituationalOption{}, false
}

// questionDimensions returns the dimensions a situational question can touch,
// in canonical order, so an unanswered question stays neutral on all of them.
func questionDimensions(q SituationalQuestion) []Dimension {
	seen := make(map[Dimension]bool)
	for _, o := range q.Options {
		for d := range o.Weights {
			seen[d] = true
		}
	}
	var dims []Dimension
	for _, d := range Dimensions {
		if seen[d] {
			dims = append(dims, d)
		}
	}
	return dims
}

func roundMean(values []float64) int {
	if len(values) == 0 {
		return neutralContribution
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return int(math.Round(sum / float64(len(values))))
}

// rankDimensions orders dimensions by descending score, breaking ties by the
// canonical dimension order so archetype selection is deterministic.
func rankDimensions(dims map[Dimension]DimensionScore) []Dimension {
	order := make(map[Dimension]int, len(Dimensions))
	for i, d := range Dimensions {
		order[d] = i
	}
	ranked := make([]Dimension, len(Dimensions))
	copy(ranked, Dimensions)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := dims[ranked[i]].Score, dims[ranked[j]].Score
		if si != sj {
			return si > sj
		}
		return order[ranked[i]] < order[ranked[j]]
	})
	return ranked
}
