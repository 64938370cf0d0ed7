// Package skills scores skill coverage and depth for a target field. Beyond
// counting keywords, it looks for evidence that claimed skills are real:
// proficiency language, duration mentions, project context, certifications,
// and recency of use.
package skills

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// Sub-score component names in the skills breakdown.
const (
	ComponentCoreCoverage = "core_coverage"
	ComponentDepth        = "depth"
	ComponentSupporting   = "supporting"
	ComponentRecency      = "recency"
)

const (
	weightCoreCoverage = 0.40
	weightDepth        = 0.30
	weightSupporting   = 0.20
	weightRecency      = 0.10
)

// missingCoreCap bounds the ranked missing-skill list handed to the
// recommendation synthesizer.
const missingCoreCap = 5

var (
	yearsRe      = regexp.MustCompile(`(\d+)\+?\s*years?`)
	monthsRe     = regexp.MustCompile(`(\d+)\s*months?`)
	certRe       = regexp.MustCompile(`certified|certification|certificate`)
	recentYearRe = regexp.MustCompile(`\b(20\d{2})\b`)
)

// proficiencyPoints maps proficiency-language tiers to their depth value.
// Tiers and markers mirror the extractor's vocabulary; basic-tier language
// earns no depth credit.
var proficiencyPoints = []struct {
	Points  int
	Markers []string
}{
	{15, []string{"expert", "advanced", "proficient", "mastery", "specialized"}},
	{10, []string{"strong", "extensive", "solid", "deep knowledge"}},
	{5, []string{"experienced", "familiar", "working knowledge", "hands-on"}},
}

// creationVerbs signal a skill was used to build something, not just listed.
var creationVerbs = []string{"built", "developed", "designed", "implemented", "architected"}

// Result is the full output of one skills depth pass.
type Result struct {
	Breakdown         types.ScoreBreakdown `json:"breakdown"`
	CoreSkillsFound   []string             `json:"core_skills_found"`
	MissingCoreSkills []string             `json:"missing_core_skills"`
	Strengths         []string             `json:"strengths"`
	Improvements      []string             `json:"improvements"`
}

// Score runs the skills rubric over resume text and the extracted skill set.
// The asOf time anchors recency scoring so results are reproducible for a
// given (text, asOf) pair. Score is pure and safe for concurrent use.
func Score(text string, extracted types.ExtractedSkillSet, cfg types.FieldConfig, level types.ExperienceLevel, asOf time.Time) Result {
	lower := strings.ToLower(text)

	coreCoverage, coreFound := scoreCoreCoverage(lower, extracted, cfg, level)
	depth := scoreDepth(lower, coreFound)
	supporting := scoreSupporting(lower, extracted, cfg)
	recency := scoreRecency(lower, coreFound, asOf)

	breakdown := types.NewScoreBreakdown([]types.SubScore{
		{Name: ComponentCoreCoverage, Score: coreCoverage, Weight: weightCoreCoverage},
		{Name: ComponentDepth, Score: depth, Weight: weightDepth},
		{Name: ComponentSupporting, Score: supporting, Weight: weightSupporting},
		{Name: ComponentRecency, Score: recency, Weight: weightRecency},
	})

	missing := missingCoreSkills(coreFound, cfg)

	return Result{
		Breakdown:         breakdown,
		CoreSkillsFound:   coreFound,
		MissingCoreSkills: missing,
		Strengths:         identifyStrengths(coreCoverage, depth, coreFound, cfg),
		Improvements:      generateImprovements(coreCoverage, depth, supporting, missing, cfg),
	}
}

// scoreCoreCoverage measures what fraction of the field's core keywords
// appear in the text or the extracted set. Entry-level candidates get a
// leniency multiplier; senior candidates a stricter one, reflecting that the
// same raw coverage signals less at senior level. Found keywords keep
// configuration declaration order.
func scoreCoreCoverage(lower string, extracted types.ExtractedSkillSet, cfg types.FieldConfig, level types.ExperienceLevel) (int, []string) {
	found := []string{}
	for _, kw := range cfg.CoreKeywords {
		if strings.Contains(lower, kw) || extracted.Contains(kw) {
			found = append(found, kw)
		}
	}

	coverage := 0.0
	if len(cfg.CoreKeywords) > 0 {
		coverage = float64(len(found)) / float64(len(cfg.CoreKeywords)) * 100
	}

	switch level {
	case types.LevelEntry:
		coverage *= 1.3
		if coverage > 100 {
			coverage = 100
		}
	case types.LevelSenior:
		coverage *= 0.9
	}

	return int(coverage), found
}

// scoreDepth accumulates evidence of real proficiency. Zero core skills
// means zero depth; there is nothing to be deep in.
func scoreDepth(lower string, coreFound []string) int {
	if len(coreFound) == 0 {
		return 0
	}

	score := 0

	for _, tier := range proficiencyPoints {
		for _, marker := range tier.Markers {
			if strings.Contains(lower, marker) {
				score += tier.Points
			}
		}
	}

	for _, m := range yearsRe.FindAllStringSubmatch(lower, -1) {
		if years, err := strconv.Atoi(m[1]); err == nil {
			score += durationPoints(float64(years))
		}
	}
	for _, m := range monthsRe.FindAllStringSubmatch(lower, -1) {
		if months, err := strconv.Atoi(m[1]); err == nil {
			score += durationPoints(float64(months) / 12)
		}
	}

	for _, skill := range capStrings(coreFound, 10) {
		quoted := regexp.QuoteMeta(skill)
		re, err := regexp.Compile(fmt.Sprintf(`%s.*%s|%s.*%s`, creationVerbAlternation(), quoted, quoted, creationVerbAlternation()))
		if err != nil {
			continue
		}
		if re.MatchString(lower) {
			score += 3
		}
	}

	if certRe.MatchString(lower) {
		score += 10
	}

	return types.ClampScore(score)
}

func creationVerbAlternation() string {
	return "(?:" + strings.Join(creationVerbs, "|") + ")"
}

func durationPoints(years float64) int {
	switch {
	case years >= 5:
		return 15
	case years >= 3:
		return 10
	case years >= 1:
		return 5
	default:
		return 0
	}
}

func scoreSupporting(lower string, extracted types.ExtractedSkillSet, cfg types.FieldConfig) int {
	if len(cfg.SupportingKeywords) == 0 {
		return 0
	}
	found := 0
	for _, kw := range cfg.SupportingKeywords {
		if strings.Contains(lower, kw) || extracted.Contains(kw) {
			found++
		}
	}
	return types.ClampScore(found * 100 / len(cfg.SupportingKeywords))
}

// scoreRecency buckets years-since-most-recent-year into a fixed ladder.
// Text with no detectable years scores a neutral 50.
func scoreRecency(lower string, coreFound []string, asOf time.Time) int {
	if len(coreFound) == 0 {
		return 50
	}

	mostRecent := 0
	for _, m := range recentYearRe.FindAllStringSubmatch(lower, -1) {
		if year, err := strconv.Atoi(m[1]); err == nil && year > mostRecent {
			mostRecent = year
		}
	}
	if mostRecent == 0 {
		return 50
	}

	switch since := asOf.Year() - mostRecent; {
	case since <= 2:
		return 100
	case since <= 4:
		return 75
	case since <= 6:
		return 50
	default:
		return 25
	}
}

// missingCoreSkills lists absent core keywords in declaration order, capped
// for the synthesizer.
func missingCoreSkills(coreFound []string, cfg types.FieldConfig) []string {
	have := make(map[string]bool, len(coreFound))
	for _, kw := range coreFound {
		have[kw] = true
	}
	missing := []string{}
	for _, kw := range cfg.CoreKeywords {
		if !have[kw] {
			missing = append(missing, kw)
		}
		if len(missing) == missingCoreCap {
			break
		}
	}
	return missing
}

func identifyStrengths(coreCoverage, depth int, coreFound []string, cfg types.FieldConfig) []string {
	strengths := []string{}

	if coreCoverage >= 70 {
		strengths = append(strengths, fmt.Sprintf("Strong coverage of %s core skills (%d skills)", cfg.Name, len(coreFound)))
	}
	if depth >= 70 {
		strengths = append(strengths, "Clear evidence of skill proficiency and depth")
	}
	if len(coreFound) >= 15 {
		strengths = append(strengths, "Diverse technical skill set")
	}

	return strengths
}

func generateImprovements(coreCoverage, depth, supporting int, missing []string, cfg types.FieldConfig) []string {
	improvements := []string{}

	if coreCoverage < 60 {
		if len(missing) > 0 {
			improvements = append(improvements, fmt.Sprintf("Add these high-value skills if you have them: %s", strings.Join(capStrings(missing, 3), ", ")))
		}
		improvements = append(improvements, fmt.Sprintf("Increase coverage of %s core skills", cfg.Name))
	}

	if depth < 50 {
		improvements = append(improvements, "Show skill depth - add years of experience, proficiency levels, or certifications")
		improvements = append(improvements, "Demonstrate skills through project descriptions, not just listing them")
	}

	if supporting < 40 {
		improvements = append(improvements, "Add complementary skills that strengthen your core expertise")
	}

	return improvements
}

func capStrings(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
