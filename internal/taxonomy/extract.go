package taxonomy

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

// depthWindow is how many characters around a skill mention are inspected
// for proficiency, duration, and certification language.
const depthWindow = 90

var (
	yearsNearSkillRe = regexp.MustCompile(`(\d+)\+?\s*years?`)
	certificationRe  = regexp.MustCompile(`(?i)certified|certification|certificate`)
)

// proficiencyTiers lists proficiency markers from strongest to weakest. The
// first tier with a marker inside the skill's context window wins.
var proficiencyTiers = []struct {
	Tier    string
	Markers []string
}{
	{"expert", []string{"expert", "advanced", "proficient", "mastery", "specialized"}},
	{"strong", []string{"strong", "extensive", "solid", "deep knowledge"}},
	{"experienced", []string{"experienced", "familiar", "working knowledge", "hands-on"}},
	{"basic", []string{"basic", "beginner", "learning", "exposure to"}},
}

// Extract scans the text for every canonical skill in the taxonomy and
// returns the detected set in taxonomy declaration order. Empty or
// whitespace-only text yields an empty set; that is a valid "no skills
// found" outcome, not an error. Extract is a pure function and safe for
// concurrent use.
func (t *Taxonomy) Extract(text string) types.ExtractedSkillSet {
	set := types.ExtractedSkillSet{Skills: []types.ExtractedSkill{}}
	if strings.TrimSpace(text) == "" {
		return set
	}

	lower := strings.ToLower(text)

	for _, category := range t.Categories {
		for _, skill := range category.Skills {
			for _, re := range t.matchers[matcherKey(category.Name, skill.Name)] {
				loc := re.FindStringIndex(lower)
				if loc == nil {
					continue
				}
				set.Skills = append(set.Skills, types.ExtractedSkill{
					Name:     skill.Name,
					Category: category.Name,
					Depth:    depthSignal(lower, loc[0], loc[1]),
				})
				break // first matching variant is sufficient
			}
		}
	}

	return set
}

// depthSignal inspects the window around a skill mention for evidence of
// real proficiency. Returns nil when no signal is present.
func depthSignal(lower string, start, end int) *types.DepthSignal {
	from := start - depthWindow
	if from < 0 {
		from = 0
	}
	to := end + depthWindow
	if to > len(lower) {
		to = len(lower)
	}
	window := lower[from:to]

	signal := types.DepthSignal{}
	found := false

	for _, tier := range proficiencyTiers {
		for _, marker := range tier.Markers {
			if strings.Contains(window, marker) {
				signal.ProficiencyTier = tier.Tier
				found = true
				break
			}
		}
		if found {
			break
		}
	}

	if m := yearsNearSkillRe.FindStringSubmatch(window); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			signal.Years = float64(years)
			found = true
		}
	}

	if certificationRe.MatchString(window) {
		signal.Certified = true
		found = true
	}

	if !found {
		return nil
	}
	return &signal
}
