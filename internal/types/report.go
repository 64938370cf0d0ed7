package types

import (
	"time"

	"github.com/google/uuid"
)

// Improvement is one prioritized resume fix in a ReadinessReport.
type Improvement struct {
	Priority string `json:"priority"` // critical, high, medium
	Category string `json:"category"`
	Issue    string `json:"issue"`
	Impact   string `json:"impact"`
	Effort   string `json:"effort"`
}

// ComponentScores holds the five top-level component scores blended into the
// overall resume score.
type ComponentScores struct {
	ATS        int `json:"ats"`
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Structure  int `json:"structure"`
	Impact     int `json:"impact"`
}

// ReportMeta records how an analysis was calibrated, including whether a
// registry fallback was applied so callers never get a silent substitution.
type ReportMeta struct {
	FieldKey        string          `json:"field_key"`
	FieldName       string          `json:"field_name"`
	FieldFallback   bool            `json:"field_fallback"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	AnalysisVersion string          `json:"analysis_version"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

// ReadinessReport is the terminal synthesized artifact of one resume
// analysis. It is immutable after construction; persistence is the caller's
// concern.
type ReadinessReport struct {
	ID                   uuid.UUID       `json:"id"`
	OverallScore         int             `json:"overall_score"`
	Grade                Grade           `json:"grade"`
	Scores               ComponentScores `json:"scores"`
	ATSBreakdown         ScoreBreakdown  `json:"ats_breakdown"`
	SkillsBreakdown      ScoreBreakdown  `json:"skills_breakdown"`
	ExperienceBreakdown  ScoreBreakdown  `json:"experience_breakdown"`
	MatchedSkills        []string        `json:"matched_skills"`
	MissingSkills        []string        `json:"missing_skills"`
	Strengths            []string        `json:"strengths"`
	PriorityImprovements []Improvement   `json:"priority_improvements"`
	QuickWins            []string        `json:"quick_wins"`
	FieldAdvice          []string        `json:"field_advice"`
	Meta                 ReportMeta      `json:"metadata"`
}

// WhyReasoning is the structured explanation attached to a role
// recommendation.
type WhyReasoning struct {
	SkillAlignment        string `json:"skill_alignment"`
	ExperienceSuitability string `json:"experience_suitability"`
	IndustryDemand        string `json:"industry_demand"`
	GapFeasibility        string `json:"gap_feasibility"`
}

// SkillStatusReport labels how far along the candidate is in each
// requirement tier.
type SkillStatusReport struct {
	CoreSkillsStatus  string `json:"core_skills_status"`
	TechnicalDepth    string `json:"technical_depth"`
	ToolsProficiency  string `json:"tools_proficiency"`
}

// ReadinessComponents is the output of the readiness and gap calculator for
// one (role, skill set) pair.
type ReadinessComponents struct {
	Role             RoleProfile       `json:"role"`
	RoleFallback     bool              `json:"role_fallback"`
	ReadinessScore   int               `json:"readiness_score"`
	CoreMatchPct     int               `json:"core_match_pct"`
	TechnicalMatchPct int              `json:"technical_match_pct"`
	ToolsMatchPct    int               `json:"tools_match_pct"`
	MatchedSkills    []string          `json:"matched_skills"`
	Strengths        []string          `json:"strengths"`
	Gaps             []string          `json:"gaps"`
	NextActions      []string          `json:"next_actions"`
	Status           SkillStatusReport `json:"detailed_report"`
	Confidence       int               `json:"confidence"`
	ConfidenceLevel  string            `json:"confidence_level"`
	Why              WhyReasoning      `json:"why_this_role"`
	RoleVariants     []string          `json:"role_variants,omitempty"`
}
