// Package ats scores how reliably a resume survives automated applicant
// tracking system parsing. The rubric is grounded in real ATS behavior:
// layout parseability, recognizable section structure, keyword coverage
// without stuffing, and extractable contact details.
package ats

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// Sub-score component names in the ATS breakdown.
const (
	ComponentFormat   = "format"
	ComponentSections = "sections"
	ComponentKeywords = "keywords"
	ComponentContact  = "contact"
)

// Component weights reflecting ATS parsing priorities.
const (
	weightFormat   = 0.30
	weightSections = 0.25
	weightKeywords = 0.25
	weightContact  = 0.20
)

// sectionPointBudget is distributed evenly across required sections; the
// remaining points come from header-clarity and ordering bonuses.
const sectionPointBudget = 75

// stuffingThreshold is the repetition count above which a core keyword is
// treated as stuffed rather than used.
const stuffingThreshold = 8

// Parsing blockers real ATS systems struggle with.
var (
	tablesRe   = regexp.MustCompile(`(?i)<table|\\begin\{tabular\}`)
	imagesRe   = regexp.MustCompile(`(?i)<img|\\includegraphics`)
	textBoxRe  = regexp.MustCompile(`(?i)<textbox`)
	columnsRe  = regexp.MustCompile(`(?i)\\begin\{multicols\}`)
	datesRe    = regexp.MustCompile(`\b\d{1,2}/\d{4}\b|\b\d{4}\b|\b[A-Z][a-z]+ \d{4}\b`)
	yearOnlyRe = regexp.MustCompile(`^\d{4}$`)

	capsHeaderRe = regexp.MustCompile(`(?m)^[A-Z][A-Z ]{2,}$`)
	bulletRe     = regexp.MustCompile(`[•\-\*]\s*(.+)`)

	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b|\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
	locationRe = regexp.MustCompile(`\b[A-Z][a-z]+,\s*[A-Z]{2}\b`)
)

// sectionHeaders maps each section in the fixed vocabulary to the header
// phrases ATS systems recognize for it.
var sectionHeaders = map[string][]string{
	types.SectionContact:    {"contact", "personal information"},
	types.SectionSummary:    {"summary", "profile", "objective", "about"},
	types.SectionExperience: {"experience", "work history", "employment", "professional experience"},
	types.SectionEducation:  {"education", "academic", "qualifications"},
	types.SectionSkills:     {"skills", "technical skills", "competencies", "expertise"},
	types.SectionProjects:   {"projects", "work samples"},
	types.SectionPortfolio:  {"portfolio", "behance", "dribbble"},
}

// Result is the full output of one ATS compatibility pass.
type Result struct {
	Breakdown    types.ScoreBreakdown `json:"breakdown"`
	Blockers     []string             `json:"blockers"`
	Strengths    []string             `json:"strengths"`
	Improvements []string             `json:"improvements"`
}

// Score runs the ATS rubric over resume text. It never fails: malformed or
// garbage text produces low sub-scores, not an error. Score is pure and safe
// for concurrent use.
func Score(text string, cfg types.FieldConfig, level types.ExperienceLevel) Result {
	formatScore := scoreFormat(text)
	sectionScore := scoreSections(text, cfg, level)
	keywordScore := scoreKeywords(text, cfg)
	contactScore := scoreContact(text, cfg)

	breakdown := types.NewScoreBreakdown([]types.SubScore{
		{Name: ComponentFormat, Score: formatScore, Weight: weightFormat},
		{Name: ComponentSections, Score: sectionScore, Weight: weightSections},
		{Name: ComponentKeywords, Score: keywordScore, Weight: weightKeywords},
		{Name: ComponentContact, Score: contactScore, Weight: weightContact},
	})

	return Result{
		Breakdown:    breakdown,
		Blockers:     identifyBlockers(text),
		Strengths:    identifyStrengths(formatScore, sectionScore, keywordScore, contactScore, cfg),
		Improvements: generateImprovements(formatScore, sectionScore, keywordScore, contactScore, text, cfg),
	}
}

// scoreFormat starts at 100 and deducts for layout constructs that scramble
// automated parsing, inconsistent date styles, and extreme length.
func scoreFormat(text string) int {
	score := 100

	if tablesRe.MatchString(text) {
		score -= 15
	}
	if imagesRe.MatchString(text) {
		score -= 10
	}
	if textBoxRe.MatchString(text) {
		score -= 10
	}
	if columnsRe.MatchString(text) {
		score -= 10
	}

	if styles := dateStyles(text); len(styles) > 1 {
		score -= 5
	}

	words := len(strings.Fields(text))
	if words < 200 {
		score -= 10
	} else if words > 1500 {
		score -= 5
	}

	return types.ClampScore(score)
}

// dateStyles classifies every date-like token in the text into its format
// family. Mixing families within one document is a parsing hazard.
func dateStyles(text string) map[string]bool {
	styles := make(map[string]bool)
	for _, date := range datesRe.FindAllString(text, -1) {
		switch {
		case strings.Contains(date, "/"):
			styles["slash"] = true
		case yearOnlyRe.MatchString(date):
			styles["year_only"] = true
		default:
			styles["month_year"] = true
		}
	}
	return styles
}

func scoreSections(text string, cfg types.FieldConfig, level types.ExperienceLevel) int {
	score := 0
	lower := strings.ToLower(text)

	perSection := sectionPointBudget / len(cfg.RequiredSections)
	for _, section := range cfg.RequiredSections {
		if sectionFound(lower, section) {
			score += perSection
		}
	}

	if len(capsHeaderRe.FindAllString(text, -1)) >= 3 {
		score += 10
	}

	// Entry-level resumes should lead with education, experienced ones
	// with experience. The wrong order costs what the right order earns.
	expPos := strings.Index(lower, "experience")
	eduPos := strings.Index(lower, "education")
	if expPos != -1 && eduPos != -1 {
		educationFirst := eduPos < expPos
		if (level == types.LevelEntry) == educationFirst {
			score += 5
		} else {
			score -= 5
		}
	}

	return types.ClampScore(score)
}

func sectionFound(lower, section string) bool {
	for _, header := range sectionHeaders[section] {
		if strings.Contains(lower, header) {
			return true
		}
	}
	return false
}

func scoreKeywords(text string, cfg types.FieldConfig) int {
	lower := strings.ToLower(text)

	coreFound := 0
	for _, kw := range cfg.CoreKeywords {
		if strings.Contains(lower, kw) {
			coreFound++
		}
	}
	coreCoverage := 0.0
	if len(cfg.CoreKeywords) > 0 {
		coreCoverage = float64(coreFound) / float64(len(cfg.CoreKeywords)) * 100
	}

	supportingFound := 0
	for _, kw := range cfg.SupportingKeywords {
		if strings.Contains(lower, kw) {
			supportingFound++
		}
	}
	supportingCoverage := 0.0
	if len(cfg.SupportingKeywords) > 0 {
		supportingCoverage = float64(supportingFound) / float64(len(cfg.SupportingKeywords)) * 100
	}

	score := int(coreCoverage*0.70 + supportingCoverage*0.30)

	for _, kw := range firstN(cfg.CoreKeywords, 10) {
		if strings.Count(lower, kw) > stuffingThreshold {
			score -= 5
		}
	}

	// Keywords inside experience bullets signal use in context rather
	// than a bare list.
	inContext := 0
	for _, m := range bulletRe.FindAllStringSubmatch(text, -1) {
		bullet := strings.ToLower(m[1])
		for _, kw := range firstN(cfg.CoreKeywords, 20) {
			if strings.Contains(bullet, kw) {
				inContext++
			}
		}
	}
	if inContext > 5 {
		score += 10
	}

	return types.ClampScore(score)
}

func scoreContact(text string, cfg types.FieldConfig) int {
	score := 0

	if emailRe.MatchString(text) {
		score += 30
	}
	if phoneRe.MatchString(text) {
		score += 25
	}
	if linkedinRe.MatchString(text) {
		score += 25
	}

	switch {
	case engineeringField(cfg):
		if githubRe.MatchString(text) {
			score += 20
		}
	case designField(cfg):
		lower := strings.ToLower(text)
		for _, kw := range []string{"portfolio", "behance", "dribbble"} {
			if strings.Contains(lower, kw) {
				score += 20
				break
			}
		}
	default:
		score += 10
	}

	if locationRe.MatchString(text) {
		score += 10
	}

	return types.ClampScore(score)
}

func engineeringField(cfg types.FieldConfig) bool {
	return strings.HasPrefix(cfg.Name, "Software") || strings.Contains(cfg.Name, "Data Science")
}

func designField(cfg types.FieldConfig) bool {
	return strings.Contains(cfg.Name, "Design")
}

func identifyBlockers(text string) []string {
	blockers := []string{}

	if tablesRe.MatchString(text) {
		blockers = append(blockers, "Table-based layout detected - ATS may misread content order")
	}
	if imagesRe.MatchString(text) {
		blockers = append(blockers, "Images or graphics detected - ATS cannot parse visual content")
	}
	if columnsRe.MatchString(text) {
		blockers = append(blockers, "Multi-column layout detected - text order may be scrambled by ATS")
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 10 {
		header := strings.ToLower(strings.Join(lines[:3], " "))
		if strings.Contains(header, "page") || strings.Contains(header, "resume") {
			blockers = append(blockers, "Contact information may be in header - ATS often ignores headers")
		}
	}

	return blockers
}

func identifyStrengths(format, sections, keywords, contact int, cfg types.FieldConfig) []string {
	strengths := []string{}

	if format >= 90 {
		strengths = append(strengths, "Clean, parseable format - ATS will read this easily")
	}
	if sections >= 85 {
		strengths = append(strengths, "Well-organized sections with clear headers")
	}
	if keywords >= 70 {
		strengths = append(strengths, fmt.Sprintf("Strong keyword coverage for %s", cfg.Name))
	}
	if contact >= 90 {
		strengths = append(strengths, "Complete contact information - easy for recruiters to reach you")
	}

	return strengths
}

func generateImprovements(format, sections, keywords, contact int, text string, cfg types.FieldConfig) []string {
	improvements := []string{}
	lower := strings.ToLower(text)

	if format < 80 {
		if tablesRe.MatchString(text) {
			improvements = append(improvements, "Remove table-based layout - use simple text formatting with clear section breaks")
		}
		if columnsRe.MatchString(text) {
			improvements = append(improvements, "Convert multi-column layout to single column - ATS reads left-to-right, top-to-bottom")
		}
	}

	if sections < 70 {
		missing := []string{}
		for _, section := range cfg.RequiredSections {
			if !sectionFound(lower, section) {
				missing = append(missing, titleCase(section))
			}
		}
		if len(missing) > 0 {
			improvements = append(improvements, fmt.Sprintf("Add missing sections: %s", strings.Join(missing, ", ")))
		}
		improvements = append(improvements, "Use standard section headers in ALL CAPS or bold (e.g., EXPERIENCE, EDUCATION, SKILLS)")
	}

	if keywords < 60 {
		suggest := firstN(cfg.CoreKeywords, 5)
		improvements = append(improvements, fmt.Sprintf("Increase relevant keyword coverage - consider adding: %s", strings.Join(suggest, ", ")))
		improvements = append(improvements, "Incorporate keywords naturally in your experience bullets, not just in a skills list")
	}

	if contact < 80 {
		if !linkedinRe.MatchString(text) {
			improvements = append(improvements, "Add LinkedIn profile URL")
		}
		if !emailRe.MatchString(text) {
			improvements = append(improvements, "Ensure email address is clearly visible")
		}
		if strings.HasPrefix(cfg.Name, "Software") && !githubRe.MatchString(text) {
			improvements = append(improvements, "Add GitHub profile to showcase your code")
		}
	}

	return improvements
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}
