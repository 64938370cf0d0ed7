// Package readiness quantifies how ready a candidate's skill set is for a
// target role and derives the supporting narrative: strengths, gaps, next
// actions, confidence, and structured "why" reasoning.
package readiness

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Readiness weighting. Core requirements dominate, then the technical
// toolkit, then tools, plus a small base credit so the floor is never zero.
const (
	coreWeight      = 40.0
	technicalWeight = 35.0
	toolsWeight     = 20.0
	baseCredit      = 5
)

// gap list caps per requirement tier.
const (
	coreGapCap      = 3
	technicalGapCap = 3
	toolsGapCap     = 2
)

// Calculate scores a (role, skill set) pair. It is pure, stateless, and
// total: any input produces a valid result, including an empty skill set
// (all gaps, minimum readiness) and a fallback role with no requirements
// (readiness floors at the base credit).
func Calculate(role types.RoleProfile, roleFallback bool, userSkills []string) types.ReadinessComponents {
	coreMatch, coreMatched, coreMissing := matchGroup(role.Requirements.Core, userSkills)
	technicalMatch, technicalMatched, technicalMissing := matchGroup(role.Requirements.Supporting, userSkills)
	toolsMatch, toolsMatched, toolsMissing := matchGroup(role.Requirements.Optional, userSkills)

	score := types.ClampScore(int(coreMatch*coreWeight + technicalMatch*technicalWeight + toolsMatch*toolsWeight + baseCredit))

	matched := []string{}
	matched = append(matched, coreMatched...)
	matched = append(matched, technicalMatched...)
	matched = append(matched, toolsMatched...)

	return types.ReadinessComponents{
		Role:              role,
		RoleFallback:      roleFallback,
		ReadinessScore:    score,
		CoreMatchPct:      pct(coreMatch),
		TechnicalMatchPct: pct(technicalMatch),
		ToolsMatchPct:     pct(toolsMatch),
		MatchedSkills:     matched,
		Strengths:         strengths(coreMatch, technicalMatch, toolsMatch, len(userSkills)),
		Gaps:              gaps(role, coreMissing, technicalMissing, toolsMissing),
		NextActions:       nextActions(score),
		Status:            status(coreMatch, technicalMatch, toolsMatch),
	}
}

// matchGroup computes the match ratio for one requirement tier plus the
// matched and missing requirement names in declaration order. An empty tier
// matches at 0.
func matchGroup(reqs []types.SkillRequirement, userSkills []string) (float64, []string, []string) {
	matched := []string{}
	missing := []string{}
	for _, req := range reqs {
		if skillMatches(req.Name, userSkills) {
			matched = append(matched, req.Name)
		} else {
			missing = append(missing, req.Name)
		}
	}
	if len(reqs) == 0 {
		return 0, matched, missing
	}
	return float64(len(matched)) / float64(len(reqs)), matched, missing
}

// skillMatches reports whether any user skill names the requirement. The
// comparison is a bidirectional case-insensitive substring test, so "python"
// matches "Python Programming" and vice versa.
func skillMatches(requirement string, userSkills []string) bool {
	req := strings.ToLower(requirement)
	for _, skill := range userSkills {
		s := strings.ToLower(skill)
		if s == "" {
			continue
		}
		if strings.Contains(s, req) || strings.Contains(req, s) {
			return true
		}
	}
	return false
}

func pct(ratio float64) int {
	return int(ratio*100 + 0.5)
}

func strengths(coreMatch, technicalMatch, toolsMatch float64, skillCount int) []string {
	out := []string{}
	if coreMatch >= 0.7 {
		out = append(out, "Strong core skills foundation")
	}
	if technicalMatch >= 0.6 {
		out = append(out, "Good technical knowledge")
	}
	if toolsMatch >= 0.5 {
		out = append(out, "Familiar with key tools")
	}
	if skillCount > 0 {
		out = append(out, fmt.Sprintf("%d skills identified", skillCount))
	}
	return out
}

func gaps(role types.RoleProfile, coreMissing, technicalMissing, toolsMissing []string) []string {
	out := []string{}
	if role.Requirements.TotalWeight() == 0 {
		out = append(out, "No skill requirements configured for this role")
		return out
	}
	if len(coreMissing) > 0 {
		out = append(out, fmt.Sprintf("Missing core: %s", strings.Join(capStrings(coreMissing, coreGapCap), ", ")))
	}
	if len(technicalMissing) > 0 {
		out = append(out, fmt.Sprintf("Need to learn: %s", strings.Join(capStrings(technicalMissing, technicalGapCap), ", ")))
	}
	if len(toolsMissing) > 0 {
		out = append(out, fmt.Sprintf("Tool experience: %s", strings.Join(capStrings(toolsMissing, toolsGapCap), ", ")))
	}
	return out
}

// nextActions selects from a fixed action bank keyed by readiness bracket,
// always closing with a resume action.
func nextActions(score int) []string {
	var actions []string
	switch {
	case score < 40:
		actions = []string{
			"Start with foundational courses",
			"Build beginner projects",
			"Join community groups",
		}
	case score < 70:
		actions = []string{
			"Deepen technical knowledge",
			"Build intermediate projects",
			"Get relevant certifications",
		}
	default:
		actions = []string{
			"Specialize in niche areas",
			"Build advanced projects",
			"Contribute to open source",
		}
	}
	return append(actions, "Update resume with proof of skills")
}

func status(coreMatch, technicalMatch, toolsMatch float64) types.SkillStatusReport {
	return types.SkillStatusReport{
		CoreSkillsStatus: ladder(coreMatch, "Mastered", "Learning", "Start here"),
		TechnicalDepth:   ladder(technicalMatch, "Advanced", "Intermediate", "Beginner"),
		ToolsProficiency: ladder(toolsMatch, "Expert", "Proficient", "Novice"),
	}
}

func ladder(ratio float64, high, mid, low string) string {
	switch {
	case ratio >= 0.8:
		return high
	case ratio >= 0.4:
		return mid
	default:
		return low
	}
}

func capStrings(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
