package types

import "math"

// SubScore is one named component of a ScoreBreakdown together with the
// weight it contributes to the overall score.
type SubScore struct {
	Name   string  `json:"name"`
	Score  int     `json:"score"`
	Weight float64 `json:"weight"`
}

// ScoreBreakdown is a named set of integer sub-scores in [0,100] plus a
// weighted overall. The overall is always a convex combination of the
// sub-scores: NewScoreBreakdown normalizes by the total weight, so the
// invariant holds even if a caller's weights drift from summing to 1.0.
type ScoreBreakdown struct {
	Overall    int        `json:"overall"`
	Components []SubScore `json:"components"`
}

// NewScoreBreakdown builds a breakdown from weighted components. Every
// sub-score is clamped to [0,100] before the overall is computed, and the
// overall is clamped again; out-of-range values are never propagated.
func NewScoreBreakdown(components []SubScore) ScoreBreakdown {
	clamped := make([]SubScore, len(components))
	weightedSum := 0.0
	totalWeight := 0.0
	for i, c := range components {
		c.Score = ClampScore(c.Score)
		clamped[i] = c
		weightedSum += float64(c.Score) * c.Weight
		totalWeight += c.Weight
	}

	overall := 0
	if totalWeight > 0 {
		overall = int(math.Round(weightedSum / totalWeight))
	}

	return ScoreBreakdown{
		Overall:    ClampScore(overall),
		Components: clamped,
	}
}

// Component returns the named sub-score, or 0 if the name is unknown.
func (b ScoreBreakdown) Component(name string) int {
	for _, c := range b.Components {
		if c.Name == name {
			return c.Score
		}
	}
	return 0
}

// ClampScore forces a score into the documented [0,100] range.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
