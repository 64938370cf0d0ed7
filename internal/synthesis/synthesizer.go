// Package synthesis folds the component analyses into a single readiness
// report: a field- and level-weighted overall score, a grade, and the
// prioritized recommendation lists a candidate can act on.
package synthesis

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/ats"
	"github.com/jonathan/career-compass/internal/experience"
	"github.com/jonathan/career-compass/internal/skills"
	"github.com/jonathan/career-compass/internal/types"
)

// AnalysisVersion identifies the rubric revision stamped into report
// metadata.
const AnalysisVersion = "2.0"

// Output caps for the recommendation lists.
const (
	strengthsCap    = 5
	improvementsCap = 5
	quickWinsCap    = 3
	adviceCap       = 5
)

// Inputs carries everything the synthesizer needs from the upstream
// components.
type Inputs struct {
	ATS           ats.Result
	Skills        skills.Result
	Experience    experience.Result
	FieldKey      string
	FieldFallback bool
	Config        types.FieldConfig
	Level         types.ExperienceLevel
	GeneratedAt   time.Time
}

// Synthesize blends the component results into the final readiness report.
// The report ID is freshly generated; everything else is deterministic for
// identical inputs.
func Synthesize(in Inputs) types.ReadinessReport {
	scores := types.ComponentScores{
		ATS:        in.ATS.Breakdown.Overall,
		Skills:     in.Skills.Breakdown.Overall,
		Experience: in.Experience.Breakdown.Overall,
		Structure:  in.ATS.Breakdown.Component(ats.ComponentSections),
		Impact:     in.Experience.Breakdown.Component(experience.ComponentImpact),
	}

	overall := overallScore(scores, in.Config, in.Level)

	return types.ReadinessReport{
		ID:                   uuid.New(),
		OverallScore:         overall,
		Grade:                types.GradeForScore(overall),
		Scores:               scores,
		ATSBreakdown:         in.ATS.Breakdown,
		SkillsBreakdown:      in.Skills.Breakdown,
		ExperienceBreakdown:  in.Experience.Breakdown,
		MatchedSkills:        in.Skills.CoreSkillsFound,
		MissingSkills:        in.Skills.MissingCoreSkills,
		Strengths:            collectStrengths(in),
		PriorityImprovements: collectImprovements(in, scores),
		QuickWins:            collectQuickWins(in, scores),
		FieldAdvice:          fieldAdvice(in, scores),
		Meta: types.ReportMeta{
			FieldKey:        in.FieldKey,
			FieldName:       in.Config.Name,
			FieldFallback:   in.FieldFallback,
			ExperienceLevel: in.Level,
			AnalysisVersion: AnalysisVersion,
			GeneratedAt:     in.GeneratedAt,
		},
	}
}

// overallScore blends the five component scores with weights adjusted for
// the field's priorities and the candidate's level. The blend is a convex
// combination, so the overall always lands between the lowest and highest
// component.
func overallScore(scores types.ComponentScores, cfg types.FieldConfig, level types.ExperienceLevel) int {
	weights := map[string]float64{
		"ats":        0.25,
		"skills":     0.20,
		"experience": 0.25,
		"structure":  0.10,
		"impact":     0.20,
	}

	name := cfg.Name
	switch {
	case strings.Contains(name, "Software") || strings.Contains(name, "Data Science"):
		// Technical fields: skills and projects matter more.
		weights["skills"] = 0.25
		weights["experience"] = 0.20
	case strings.Contains(name, "Product") || strings.Contains(name, "Marketing"):
		// Business fields: experience and impact matter more.
		weights["experience"] = 0.30
		weights["impact"] = 0.25
		weights["skills"] = 0.15
	case strings.Contains(name, "Design"):
		// Design: the portfolio behind the experience matters most.
		weights["experience"] = 0.35
		weights["ats"] = 0.15
	}

	switch level {
	case types.LevelEntry:
		weights["skills"] += 0.05
		weights["experience"] -= 0.05
	case types.LevelSenior:
		weights["experience"] += 0.05
		weights["impact"] += 0.05
		weights["skills"] -= 0.05
		weights["structure"] -= 0.05
	}

	blended := types.NewScoreBreakdown([]types.SubScore{
		{Name: "ats", Score: scores.ATS, Weight: weights["ats"]},
		{Name: "skills", Score: scores.Skills, Weight: weights["skills"]},
		{Name: "experience", Score: scores.Experience, Weight: weights["experience"]},
		{Name: "structure", Score: scores.Structure, Weight: weights["structure"]},
		{Name: "impact", Score: scores.Impact, Weight: weights["impact"]},
	})
	return blended.Overall
}

func collectStrengths(in Inputs) []string {
	all := []string{}
	all = append(all, in.ATS.Strengths...)
	all = append(all, in.Skills.Strengths...)
	all = append(all, in.Experience.Strengths...)
	return capStrings(all, strengthsCap)
}

// collectImprovements assembles the prioritized fix list: ATS blockers are
// critical, then high-priority items from each component whose score needs
// the help.
func collectImprovements(in Inputs, scores types.ComponentScores) []types.Improvement {
	improvements := []types.Improvement{}

	for _, blocker := range in.ATS.Blockers {
		improvements = append(improvements, types.Improvement{
			Priority: "critical",
			Category: "ATS Compatibility",
			Issue:    blocker,
			Impact:   "High - May prevent resume from being read",
			Effort:   "Medium",
		})
	}

	for _, issue := range capStrings(in.ATS.Improvements, 2) {
		improvements = append(improvements, types.Improvement{
			Priority: "high",
			Category: "ATS Compatibility",
			Issue:    issue,
			Impact:   "High - Improves parsing and keyword matching",
			Effort:   "Low to Medium",
		})
	}

	if scores.Skills < 70 {
		for _, issue := range capStrings(in.Skills.Improvements, 2) {
			improvements = append(improvements, types.Improvement{
				Priority: "high",
				Category: "Skills",
				Issue:    issue,
				Impact:   "Medium to High - Increases relevance",
				Effort:   "Low",
			})
		}
	}

	if scores.Experience < 70 {
		for _, issue := range capStrings(in.Experience.Improvements, 2) {
			improvements = append(improvements, types.Improvement{
				Priority: "high",
				Category: "Experience",
				Issue:    issue,
				Impact:   "High - Demonstrates value",
				Effort:   "Medium",
			})
		}
	}

	if len(improvements) > improvementsCap {
		improvements = improvements[:improvementsCap]
	}
	return improvements
}

// collectQuickWins picks the low-effort fixes: contact links, header
// formatting, and skills the candidate likely has but never listed.
func collectQuickWins(in Inputs, scores types.ComponentScores) []string {
	wins := []string{}

	if in.ATS.Breakdown.Component(ats.ComponentContact) < 80 {
		for _, improvement := range in.ATS.Improvements {
			lower := strings.ToLower(improvement)
			if strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") {
				wins = append(wins, improvement)
			}
		}
	}

	if in.ATS.Breakdown.Component(ats.ComponentSections) < 75 {
		wins = append(wins, "Use standard section headers in ALL CAPS (EXPERIENCE, EDUCATION, SKILLS)")
	}

	if scores.Skills < 80 && len(in.Skills.MissingCoreSkills) > 0 {
		wins = append(wins, fmt.Sprintf("Add these skills if you have them: %s", strings.Join(capStrings(in.Skills.MissingCoreSkills, 3), ", ")))
	}

	return capStrings(wins, quickWinsCap)
}

func fieldAdvice(in Inputs, scores types.ComponentScores) []string {
	advice := []string{}
	name := in.Config.Name
	impact := in.Experience.Breakdown.Component(experience.ComponentImpact)

	switch {
	case strings.Contains(name, "Software"):
		if !resultMentions(in.ATS, "github") {
			advice = append(advice, "Add GitHub profile - recruiters want to see your code for engineering roles")
		}
		if impact < 70 {
			advice = append(advice, "Quantify technical impact: system scale (requests/sec, users), performance improvements (latency reduction), or reliability metrics (uptime)")
		}
		if scores.Skills < 70 {
			advice = append(advice, "For engineering roles, show both breadth (multiple languages/frameworks) and depth (years of experience, complex projects)")
		}
	case strings.Contains(name, "Data Science"):
		advice = append(advice, "Highlight end-to-end ML projects: data collection, model training, deployment, business impact")
		if impact < 70 {
			advice = append(advice, "Quantify model performance (accuracy, AUC, F1) AND business impact (revenue, cost savings, efficiency)")
		}
		advice = append(advice, "Include both statistical foundations and modern ML tools - recruiters look for both")
	case strings.Contains(name, "Product"):
		if impact < 70 {
			advice = append(advice, "Product roles require clear metrics: user growth (DAU/MAU), engagement, conversion, retention, revenue")
		}
		advice = append(advice, "Emphasize cross-functional leadership and stakeholder management - PMs are connectors")
		advice = append(advice, "Show data-driven decision making: A/B tests, user research, analytics")
	case strings.Contains(name, "Design"):
		if !resultMentions(in.ATS, "portfolio") {
			advice = append(advice, "CRITICAL: Add portfolio link - for design roles, portfolio matters more than resume")
		}
		advice = append(advice, "Show design process, not just final outputs: research, ideation, iteration, validation")
		advice = append(advice, "Highlight user impact: improved task completion, reduced errors, increased satisfaction")
	case strings.Contains(name, "Marketing"):
		if impact < 70 {
			advice = append(advice, "Marketing roles require ROI metrics: CAC, LTV, ROAS, conversion rates, revenue growth")
		}
		advice = append(advice, "Show multi-channel expertise - modern marketers need to work across digital channels")
		advice = append(advice, "Demonstrate data-driven optimization: A/B testing, analytics, attribution")
	}

	switch in.Level {
	case types.LevelEntry:
		advice = append(advice, "For entry-level: emphasize projects, internships, and relevant coursework - show potential and learning ability")
	case types.LevelSenior:
		advice = append(advice, "For senior roles: emphasize leadership, strategic impact, and mentorship - show you can multiply team effectiveness")
	}

	return capStrings(advice, adviceCap)
}

// resultMentions reports whether any textual output of the ATS pass contains
// the given term.
func resultMentions(result ats.Result, term string) bool {
	for _, group := range [][]string{result.Blockers, result.Strengths, result.Improvements} {
		for _, s := range group {
			if strings.Contains(strings.ToLower(s), term) {
				return true
			}
		}
	}
	return false
}

func capStrings(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
