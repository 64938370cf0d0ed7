// Package types provides type definitions for structured data used throughout the career-compass engine.
package types

import (
	"fmt"
	"strings"
)

// ExperienceLevel is the career stage used to calibrate resume scoring.
type ExperienceLevel string

// Supported experience levels for resume scoring.
const (
	LevelEntry  ExperienceLevel = "entry"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
)

// experienceLevelAliases maps historical level names onto the canonical enum.
// Scoring components must never dispatch on raw strings; everything goes
// through ParseExperienceLevel.
var experienceLevelAliases = map[string]ExperienceLevel{
	"entry":    LevelEntry,
	"junior":   LevelEntry,
	"mid":      LevelMid,
	"middle":   LevelMid,
	"senior":   LevelSenior,
	"advanced": LevelSenior,
}

// ParseExperienceLevel resolves a user-supplied level name to the canonical
// ExperienceLevel. Unknown names return an error rather than a silent default.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	level, ok := experienceLevelAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown experience level %q (expected entry, mid, or senior)", s)
	}
	return level, nil
}

// RoleLevel is the position on the role-progression ladder. It is distinct
// from ExperienceLevel: scoring calibrates on three career stages, while the
// progression model uses a five-step ladder.
type RoleLevel string

// Role progression ladder, ordered from first rung to last.
const (
	RoleLevelBeginner     RoleLevel = "beginner"
	RoleLevelJunior       RoleLevel = "junior"
	RoleLevelIntermediate RoleLevel = "intermediate"
	RoleLevelSenior       RoleLevel = "senior"
	RoleLevelLead         RoleLevel = "lead"
)

// RoleLevels is the fixed ordered progression sequence used to compute the
// next role for a profile.
var RoleLevels = []RoleLevel{
	RoleLevelBeginner,
	RoleLevelJunior,
	RoleLevelIntermediate,
	RoleLevelSenior,
	RoleLevelLead,
}

// ParseRoleLevel resolves a user-supplied name to a RoleLevel.
func ParseRoleLevel(s string) (RoleLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, level := range RoleLevels {
		if name == string(level) {
			return level, nil
		}
	}
	return "", fmt.Errorf("unknown role level %q (expected one of beginner, junior, intermediate, senior, lead)", s)
}

// Next returns the following level on the ladder, or false at the top tier.
func (l RoleLevel) Next() (RoleLevel, bool) {
	for i, level := range RoleLevels {
		if level == l && i < len(RoleLevels)-1 {
			return RoleLevels[i+1], true
		}
	}
	return "", false
}

// Grade is the human-readable bucket for an overall resume score.
type Grade string

// Score-to-grade ladder, best to worst.
const (
	GradeExcellent Grade = "Excellent"
	GradeStrong    Grade = "Strong"
	GradeGood      Grade = "Good"
	GradeFair      Grade = "Fair"
	GradeNeedsWork Grade = "Needs Work"
)

// GradeForScore maps an overall score onto the fixed grade ladder.
func GradeForScore(score int) Grade {
	switch {
	case score >= 90:
		return GradeExcellent
	case score >= 80:
		return GradeStrong
	case score >= 70:
		return GradeGood
	case score >= 60:
		return GradeFair
	default:
		return GradeNeedsWork
	}
}

// AtLeast reports whether g is the same grade as other or a better one.
func (g Grade) AtLeast(other Grade) bool {
	order := map[Grade]int{
		GradeNeedsWork: 0,
		GradeFair:      1,
		GradeGood:      2,
		GradeStrong:    3,
		GradeExcellent: 4,
	}
	return order[g] >= order[other]
}
