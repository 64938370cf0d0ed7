// Package experience scores work-history quality: whether past roles align
// with the target field, whether impact is quantified, whether the career
// shows progression, and how recent the experience is.
package experience

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// Sub-score component names in the experience breakdown.
const (
	ComponentAlignment   = "alignment"
	ComponentImpact      = "impact"
	ComponentProgression = "progression"
	ComponentRelevance   = "relevance"
)

const (
	weightAlignment   = 0.30
	weightImpact      = 0.30
	weightProgression = 0.20
	weightRelevance   = 0.20
)

// actionVerbs are the strong verbs recruiters read as ownership, grouped by
// what they signal.
var actionVerbs = map[string][]string{
	"leadership":  {"led", "directed", "managed", "coordinated", "mentored", "guided", "supervised"},
	"creation":    {"built", "developed", "designed", "architected", "created", "established", "launched"},
	"improvement": {"optimized", "enhanced", "streamlined", "improved", "increased", "reduced", "accelerated"},
	"analysis":    {"analyzed", "evaluated", "assessed", "investigated", "researched", "identified"},
	"delivery":    {"shipped", "delivered", "implemented", "deployed", "released", "executed"},
}

// weakVerbs are the phrases that bury ownership.
var weakVerbs = []string{
	"responsible for", "worked on", "helped with", "involved in",
	"participated in", "assisted", "did", "made", "used",
}

// metricPatterns detect quantified achievements.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\$\d+[KMB]?`),
	regexp.MustCompile(`(?i)\d+[KMB]\+?\s*(users|requests|records|customers)`),
	regexp.MustCompile(`\d+x`),
	regexp.MustCompile(`(?i)\d+\s*(hours|days|weeks|months)`),
}

var (
	titleRe      = regexp.MustCompile(`([A-Z][a-z]+\s+)*(Engineer|Developer|Manager|Designer|Analyst|Scientist|Lead|Senior|Junior|Associate)`)
	recentYearRe = regexp.MustCompile(`\b(20\d{2})\b`)
)

// seniorityLevels ordered from junior to senior; two or more appearing in
// one resume reads as progression.
var seniorityLevels = []string{"junior", "associate", "mid", "senior", "lead", "principal", "staff", "director"}

var responsibilityIndicators = []string{"led team", "managed", "mentored", "architected", "directed"}

var experienceHeaders = []string{"experience", "work history", "employment", "professional experience"}
var followingSections = []string{"education", "skills", "projects", "certifications"}

// roleIndicators maps field-name fragments to the job titles that signal
// direct experience in that field.
var roleIndicators = []struct {
	FieldFragment string
	Titles        []string
}{
	{"Software Engineering", []string{"engineer", "developer", "programmer", "architect"}},
	{"Data Science", []string{"data scientist", "ml engineer", "analyst", "researcher"}},
	{"Product Management", []string{"product manager", "product owner", "pm"}},
	{"UX/UI Design", []string{"designer", "ux", "ui", "product designer"}},
	{"Marketing", []string{"marketing", "growth", "demand gen", "content"}},
}

// Result is the full output of one experience quality pass.
type Result struct {
	Breakdown    types.ScoreBreakdown `json:"breakdown"`
	Strengths    []string             `json:"strengths"`
	Improvements []string             `json:"improvements"`
}

// Score runs the experience rubric over resume text. The asOf time anchors
// relevance scoring. Score is pure and safe for concurrent use.
func Score(text string, cfg types.FieldConfig, asOf time.Time) Result {
	alignment := scoreAlignment(text, cfg)
	impact := scoreImpact(text, cfg)
	progression := scoreProgression(text)
	relevance := scoreRelevance(text, asOf)

	breakdown := types.NewScoreBreakdown([]types.SubScore{
		{Name: ComponentAlignment, Score: alignment, Weight: weightAlignment},
		{Name: ComponentImpact, Score: impact, Weight: weightImpact},
		{Name: ComponentProgression, Score: progression, Weight: weightProgression},
		{Name: ComponentRelevance, Score: relevance, Weight: weightRelevance},
	})

	return Result{
		Breakdown:    breakdown,
		Strengths:    identifyStrengths(alignment, impact, progression, cfg),
		Improvements: generateImprovements(alignment, impact, progression, text, cfg),
	}
}

// scoreAlignment measures how much of the experience section speaks the
// target field's language.
func scoreAlignment(text string, cfg types.FieldConfig) int {
	lower := strings.ToLower(text)
	section := experienceSection(lower)
	if section == "" {
		return 30
	}

	found := 0
	for _, kw := range cfg.CoreKeywords {
		if strings.Contains(section, kw) {
			found++
		}
	}
	score := 0
	if len(cfg.CoreKeywords) > 0 {
		score = found * 100 / len(cfg.CoreKeywords)
	}

	for _, ri := range roleIndicators {
		if strings.Contains(cfg.Name, ri.FieldFragment) {
			for _, title := range ri.Titles {
				if strings.Contains(section, title) {
					score += 15
					break
				}
			}
			break
		}
	}

	return types.ClampScore(score)
}

func scoreImpact(text string, cfg types.FieldConfig) int {
	score := 0

	metricCount := 0
	for _, re := range metricPatterns {
		metricCount += len(re.FindAllString(text, -1))
	}
	switch {
	case metricCount >= 10:
		score += 40
	case metricCount >= 6:
		score += 30
	case metricCount >= 3:
		score += 20
	case metricCount >= 1:
		score += 10
	}

	strongVerbs := 0
	for _, verbs := range actionVerbs {
		for _, verb := range verbs {
			re := regexp.MustCompile(`(?i)\b` + verb + `\b`)
			strongVerbs += len(re.FindAllString(text, -1))
		}
	}
	switch {
	case strongVerbs >= 15:
		score += 30
	case strongVerbs >= 10:
		score += 20
	case strongVerbs >= 5:
		score += 10
	}

	if weakVerbCount(text) > 5 {
		score -= 10
	}

	lower := strings.ToLower(text)
	impactMetrics := 0
	for _, metric := range cfg.ImpactMetrics {
		if strings.Contains(lower, strings.ToLower(metric)) {
			impactMetrics++
		}
	}
	switch {
	case impactMetrics >= 3:
		score += 20
	case impactMetrics >= 1:
		score += 10
	}

	return types.ClampScore(score)
}

// scoreProgression looks for growth and widening responsibility across the
// roles in the resume. Fewer than two detectable titles is a neutral 50.
func scoreProgression(text string) int {
	if len(titleRe.FindAllString(text, -1)) < 2 {
		return 50
	}

	score := 50
	lower := strings.ToLower(text)

	levelsFound := 0
	for _, level := range seniorityLevels {
		if strings.Contains(lower, level) {
			levelsFound++
		}
	}
	if levelsFound >= 2 {
		score += 25
	}

	for _, indicator := range responsibilityIndicators {
		if strings.Contains(lower, indicator) {
			score += 25
			break
		}
	}

	return types.ClampScore(score)
}

func scoreRelevance(text string, asOf time.Time) int {
	mostRecent := 0
	for _, m := range recentYearRe.FindAllStringSubmatch(text, -1) {
		if year, err := strconv.Atoi(m[1]); err == nil && year > mostRecent {
			mostRecent = year
		}
	}
	if mostRecent == 0 {
		return 50
	}

	switch since := asOf.Year() - mostRecent; {
	case since <= 1:
		return 100
	case since <= 2:
		return 90
	case since <= 3:
		return 75
	case since <= 5:
		return 60
	default:
		return 40
	}
}

// experienceSection returns the slice of lowered text between the experience
// header and the next major section, or the full text when no header is
// present.
func experienceSection(lower string) string {
	start := -1
	for _, header := range experienceHeaders {
		if pos := strings.Index(lower, header); pos != -1 {
			start = pos
			break
		}
	}
	if start == -1 {
		return lower
	}
	rest := start + 10
	if rest >= len(lower) {
		return lower[start:]
	}

	end := len(lower)
	for _, section := range followingSections {
		if pos := strings.Index(lower[rest:], section); pos != -1 && rest+pos < end {
			end = rest + pos
		}
	}

	return lower[start:end]
}

func weakVerbCount(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, verb := range weakVerbs {
		count += strings.Count(lower, verb)
	}
	return count
}

func identifyStrengths(alignment, impact, progression int, cfg types.FieldConfig) []string {
	strengths := []string{}

	if alignment >= 75 {
		strengths = append(strengths, fmt.Sprintf("Experience strongly aligns with %s", cfg.Name))
	}
	if impact >= 70 {
		strengths = append(strengths, "Clear demonstration of quantified impact and achievements")
	}
	if progression >= 75 {
		strengths = append(strengths, "Strong career progression and increasing responsibility")
	}

	return strengths
}

func generateImprovements(alignment, impact, progression int, text string, cfg types.FieldConfig) []string {
	improvements := []string{}

	if impact < 60 {
		improvements = append(improvements, "Add specific metrics to quantify your impact (e.g., '40% faster', '2M users', '$500K saved')")
		if weakVerbCount(text) > 3 {
			improvements = append(improvements, "Replace weak phrases like 'responsible for' with strong action verbs like 'led', 'built', 'optimized'")
		}
	}

	if alignment < 60 {
		improvements = append(improvements, fmt.Sprintf("Highlight experience more relevant to %s", cfg.Name))
		improvements = append(improvements, "Emphasize projects and achievements that match the target role")
	}

	if progression < 50 {
		improvements = append(improvements, "Show career growth - highlight increasing scope, leadership, or technical complexity")
	}

	return improvements
}
