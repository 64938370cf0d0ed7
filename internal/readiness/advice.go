package readiness

import (
	"fmt"

	"github.com/jonathan/career-compass/internal/types"
)

// Confidence bounds. Scores never leave [40,95]: even a perfect match is an
// estimate, and even a poor one is not hopeless.
const (
	confidenceFloor = 40
	confidenceCeil  = 95
)

// baseConfidence is the starting confidence per ladder level. Higher rungs
// start higher because the candidate self-assessed further along.
var baseConfidence = map[types.RoleLevel]int{
	types.RoleLevelBeginner:     60,
	types.RoleLevelJunior:       70,
	types.RoleLevelIntermediate: 80,
	types.RoleLevelSenior:       85,
	types.RoleLevelLead:         90,
}

// levelSuitability is the experience-suitability sentence per ladder level.
var levelSuitability = map[types.RoleLevel]string{
	types.RoleLevelBeginner:     "Perfect entry-level position to start your career in this field.",
	types.RoleLevelJunior:       "Ideal for consolidating your skills and moving into more independent work.",
	types.RoleLevelIntermediate: "Natural progression that leverages your growing expertise.",
	types.RoleLevelSenior:       "Positions you as a senior contributor with leadership potential.",
	types.RoleLevelLead:         "Top-tier role for industry veterans and thought leaders.",
}

// Confidence estimates how confident the recommendation is, from the ladder
// level's base adjusted by how well the user's skills cover the role's core
// requirements. Returns the score and its Low/Medium/High label.
func Confidence(level types.RoleLevel, userSkills []string, core []types.SkillRequirement) (int, string) {
	score, ok := baseConfidence[level]
	if !ok {
		score = 65
	}

	if len(core) > 0 {
		matched := 0
		for _, req := range core {
			if skillMatches(req.Name, userSkills) {
				matched++
			}
		}
		ratio := float64(matched) / float64(len(core))
		if ratio > 0.8 {
			score += 10
		} else if ratio < 0.3 {
			score -= 10
		}
	}

	if score < confidenceFloor {
		score = confidenceFloor
	}
	if score > confidenceCeil {
		score = confidenceCeil
	}

	return score, confidenceLabel(score)
}

func confidenceLabel(score int) string {
	switch {
	case score >= 80:
		return "High"
	case score >= 60:
		return "Medium"
	default:
		return "Low"
	}
}

// Why builds the structured reasoning behind a recommendation: how the
// user's skills align, why the level fits, what the market looks like, and
// how feasible the remaining gap is. The demandInsight sentence comes from
// the role model.
func Why(role types.RoleProfile, userSkills []string, demandInsight string) types.WhyReasoning {
	return types.WhyReasoning{
		SkillAlignment:        skillAlignment(role, userSkills),
		ExperienceSuitability: experienceSuitability(role.Level),
		IndustryDemand:        demandInsight,
		GapFeasibility:        gapFeasibility(role, userSkills),
	}
}

func skillAlignment(role types.RoleProfile, userSkills []string) string {
	core := role.Requirements.Core
	if len(core) == 0 {
		return "Your skills provide a foundation for this role. Specialized training will help."
	}

	matched := 0
	for _, req := range core {
		if skillMatches(req.Name, userSkills) {
			matched++
		}
	}
	total := len(core)
	percent := matched * 100 / total
	ratio := float64(matched) / float64(total)

	switch {
	case ratio > 0.7:
		return fmt.Sprintf("You have %d of %d core skills (%d%%). Strong foundation for %s.", matched, total, percent, role.Title)
	case ratio > 0.4:
		return fmt.Sprintf("You have %d of %d core skills (%d%%). Solid foundation, but some gaps remain.", matched, total, percent)
	default:
		return fmt.Sprintf("You have %d of %d core skills (%d%%). You'll need to develop foundational skills.", matched, total, percent)
	}
}

func experienceSuitability(level types.RoleLevel) string {
	if s, ok := levelSuitability[level]; ok {
		return s
	}
	return "Well-matched for your experience level."
}

// gapFeasibility frames the unmatched high-priority core requirements as a
// learning timeline.
func gapFeasibility(role types.RoleProfile, userSkills []string) string {
	if len(role.Requirements.Core) == 0 {
		return "Clear learning path with manageable skill gaps."
	}

	gapCount := 0
	for _, req := range role.Requirements.Core {
		if req.Priority == "High" && !skillMatches(req.Name, userSkills) {
			gapCount++
		}
	}

	switch {
	case gapCount <= 2:
		return fmt.Sprintf("You need to master %d critical skill(s). This is very achievable with focused effort (3-6 months).", gapCount)
	case gapCount <= 4:
		return fmt.Sprintf("You need to develop %d core skills. This is realistic with a 6-12 month learning plan.", gapCount)
	default:
		return fmt.Sprintf("You need to develop %d core skills. This requires a structured 12+ month learning journey.", gapCount)
	}
}
