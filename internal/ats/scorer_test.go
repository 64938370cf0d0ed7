package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-compass/internal/types"
)

func backendConfig() types.FieldConfig {
	return types.FieldConfig{
		Key:                "software_backend",
		Name:               "Software Engineering (Backend)",
		CoreKeywords:       []string{"python", "sql", "java", "rust"},
		SupportingKeywords: []string{"docker", "aws"},
		RequiredSections:   []string{types.SectionExperience, types.SectionSkills, types.SectionEducation},
	}
}

func marketingConfig() types.FieldConfig {
	return types.FieldConfig{
		Key:                "marketing",
		Name:               "Marketing",
		CoreKeywords:       []string{"seo"},
		SupportingKeywords: []string{"analytics"},
		RequiredSections:   []string{types.SectionExperience, types.SectionSkills},
	}
}

func TestScoreFormat_CleanText(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta epsilon ", 50)

	assert.Equal(t, 100, scoreFormat(text))
}

func TestScoreFormat_TablePenaltyAndShortText(t *testing.T) {
	text := "<table> short resume content"

	// 100 - 15 (table) - 10 (under 200 words)
	assert.Equal(t, 75, scoreFormat(text))
}

func TestScoreFormat_MixedDateStyles(t *testing.T) {
	body := strings.Repeat("word ", 200)
	text := body + "January 2020 to 03/2021"

	assert.Equal(t, 95, scoreFormat(text))
}

func TestDateStyles_ClassifiesFamilies(t *testing.T) {
	styles := dateStyles("January 2020 to 03/2021, graduated 2019")

	assert.True(t, styles["month_year"])
	assert.True(t, styles["slash"])
	assert.True(t, styles["year_only"])
}

func TestDateStyles_ConsistentMonthYear(t *testing.T) {
	styles := dateStyles("January 2020 to March 2022")

	assert.Equal(t, map[string]bool{"month_year": true}, styles)
}

func TestScoreSections_AllPresentWithCapsHeaders(t *testing.T) {
	text := "EXPERIENCE\nBuilt things\nSKILLS\nPython\nEDUCATION\nBS"

	// 25 per section + 10 caps bonus + 5 experience-first bonus for mid
	assert.Equal(t, 90, scoreSections(text, backendConfig(), types.LevelMid))
}

func TestScoreSections_OrderingPenaltyForEntry(t *testing.T) {
	text := "EXPERIENCE\nBuilt things\nSKILLS\nPython\nEDUCATION\nBS"

	// Entry level wants education before experience
	assert.Equal(t, 80, scoreSections(text, backendConfig(), types.LevelEntry))
}

func TestScoreSections_NothingFound(t *testing.T) {
	assert.Equal(t, 0, scoreSections("just some text", backendConfig(), types.LevelMid))
}

func TestScoreKeywords_FullCoverage(t *testing.T) {
	text := "python sql java rust docker aws"

	assert.Equal(t, 100, scoreKeywords(text, backendConfig()))
}

func TestScoreKeywords_PartialCoverage(t *testing.T) {
	text := "python and sql daily"

	// core 2/4 -> 50*0.70 = 35, supporting 0
	assert.Equal(t, 35, scoreKeywords(text, backendConfig()))
}

func TestScoreKeywords_BulletContextBonus(t *testing.T) {
	text := "python and sql daily\n" +
		"• built python services\n• tuned sql queries\n• python tooling\n" +
		"• sql migrations\n• python scripts\n• sql reports\n"

	// 35 base + 10 in-context bonus
	assert.Equal(t, 45, scoreKeywords(text, backendConfig()))
}

func TestScoreKeywords_StuffingPenalty(t *testing.T) {
	text := strings.Repeat("python ", 12)

	// core 1/4 -> 25*0.70 = 17 (int truncation), minus 5 stuffing
	assert.Equal(t, 12, scoreKeywords(text, backendConfig()))
}

func TestScoreContact_FullEngineeringProfile(t *testing.T) {
	text := "john@example.com 555-123-4567 linkedin.com/in/john github.com/john Seattle, WA"

	assert.Equal(t, 100, scoreContact(text, backendConfig()))
}

func TestScoreContact_EmailAndLinkedInOnly(t *testing.T) {
	text := "Reach me at john@example.com or linkedin.com/in/john"

	assert.Equal(t, 55, scoreContact(text, backendConfig()))
}

func TestScoreContact_NonTechnicalFlatBonus(t *testing.T) {
	text := "Contact: jane@example.com"

	// 30 email + 10 flat bonus for non-engineering, non-design fields
	assert.Equal(t, 40, scoreContact(text, marketingConfig()))
}

func TestIdentifyBlockers_HeaderContact(t *testing.T) {
	lines := append([]string{"Resume of John Doe", "john@example.com", "Seattle"},
		strings.Split(strings.Repeat("line\n", 10), "\n")...)
	text := strings.Join(lines, "\n")

	blockers := identifyBlockers(text)

	assert.Len(t, blockers, 1)
	assert.Contains(t, blockers[0], "header")
}

func TestIdentifyBlockers_CleanText(t *testing.T) {
	assert.Empty(t, identifyBlockers("EXPERIENCE\nBuilt backend services in Python"))
}

func TestScore_GarbageTextStaysInRange(t *testing.T) {
	result := Score("zzzz", backendConfig(), types.LevelMid)

	assert.GreaterOrEqual(t, result.Breakdown.Overall, 0)
	assert.LessOrEqual(t, result.Breakdown.Overall, 100)
	for _, c := range result.Breakdown.Components {
		assert.GreaterOrEqual(t, c.Score, 0)
		assert.LessOrEqual(t, c.Score, 100)
	}
}

func TestScore_Deterministic(t *testing.T) {
	text := "EXPERIENCE\n• Built python services\nSKILLS\npython, sql\nEDUCATION\nBS\njohn@example.com"

	first := Score(text, backendConfig(), types.LevelMid)
	second := Score(text, backendConfig(), types.LevelMid)

	assert.Equal(t, first, second)
}

func TestGenerateImprovements_MissingContactAndSections(t *testing.T) {
	improvements := generateImprovements(90, 40, 40, 40, "plain text", backendConfig())

	joined := strings.Join(improvements, " | ")
	assert.Contains(t, joined, "Add missing sections")
	assert.Contains(t, joined, "LinkedIn")
	assert.Contains(t, joined, "GitHub")
}
