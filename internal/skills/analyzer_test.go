package skills

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-compass/internal/types"
)

var asOf = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func backendConfig() types.FieldConfig {
	return types.FieldConfig{
		Key:                "software_backend",
		Name:               "Software Engineering (Backend)",
		CoreKeywords:       []string{"python", "sql", "java", "rust"},
		SupportingKeywords: []string{"docker", "aws"},
		RequiredSections:   []string{types.SectionExperience, types.SectionSkills},
	}
}

func TestScoreCoreCoverage_TextMatches(t *testing.T) {
	score, found := scoreCoreCoverage("wrote python and sql daily", types.ExtractedSkillSet{}, backendConfig(), types.LevelMid)

	assert.Equal(t, 50, score)
	assert.Equal(t, []string{"python", "sql"}, found)
}

func TestScoreCoreCoverage_ExtractedSetCounts(t *testing.T) {
	extracted := types.ExtractedSkillSet{Skills: []types.ExtractedSkill{
		{Name: "Python", Category: "Programming"},
	}}

	score, found := scoreCoreCoverage("no keywords here", extracted, backendConfig(), types.LevelMid)

	assert.Equal(t, 25, score)
	assert.Equal(t, []string{"python"}, found)
}

func TestScoreCoreCoverage_EntryLeniency(t *testing.T) {
	// 50% raw coverage * 1.3 entry multiplier = 65
	score, _ := scoreCoreCoverage("python and sql", types.ExtractedSkillSet{}, backendConfig(), types.LevelEntry)

	assert.Equal(t, 65, score)
}

func TestScoreCoreCoverage_EntryCapAt100(t *testing.T) {
	score, _ := scoreCoreCoverage("python sql java rust", types.ExtractedSkillSet{}, backendConfig(), types.LevelEntry)

	assert.Equal(t, 100, score)
}

func TestScoreCoreCoverage_SeniorStrictness(t *testing.T) {
	// 100% raw coverage * 0.9 senior multiplier = 90
	score, _ := scoreCoreCoverage("python sql java rust", types.ExtractedSkillSet{}, backendConfig(), types.LevelSenior)

	assert.Equal(t, 90, score)
}

func TestScoreDepth_ZeroWithoutCoreSkills(t *testing.T) {
	assert.Equal(t, 0, scoreDepth("expert with 10 years of experience, certified", nil))
}

func TestScoreDepth_ProficiencyAndDuration(t *testing.T) {
	lower := "expert in python with 6 years of backend work"

	// 15 (expert marker) + 15 (6 years duration)
	score := scoreDepth(lower, []string{"python"})

	assert.Equal(t, 30, score)
}

func TestScoreDepth_CreationVerbBonus(t *testing.T) {
	lower := "built services in python"

	assert.Equal(t, 3, scoreDepth(lower, []string{"python"}))
}

func TestScoreDepth_CertificationBonus(t *testing.T) {
	lower := "aws certified developer using python"

	assert.Equal(t, 10, scoreDepth(lower, []string{"python"}))
}

func TestScoreDepth_PunctuatedSkillDoesNotPanic(t *testing.T) {
	score := scoreDepth("built systems in c++", []string{"c++"})

	assert.Equal(t, 3, score)
}

func TestScoreSupporting_Coverage(t *testing.T) {
	assert.Equal(t, 50, scoreSupporting("docker everywhere", types.ExtractedSkillSet{}, backendConfig()))
	assert.Equal(t, 100, scoreSupporting("docker and aws", types.ExtractedSkillSet{}, backendConfig()))
	assert.Equal(t, 0, scoreSupporting("nothing relevant", types.ExtractedSkillSet{}, backendConfig()))
}

func TestScoreRecency_Ladder(t *testing.T) {
	found := []string{"python"}

	assert.Equal(t, 100, scoreRecency("python work through 2025", found, asOf))
	assert.Equal(t, 75, scoreRecency("python work until 2023", found, asOf))
	assert.Equal(t, 50, scoreRecency("python work until 2020", found, asOf))
	assert.Equal(t, 25, scoreRecency("python work until 2015", found, asOf))
}

func TestScoreRecency_NeutralWithoutYears(t *testing.T) {
	assert.Equal(t, 50, scoreRecency("python work, undated", []string{"python"}, asOf))
	assert.Equal(t, 50, scoreRecency("text from 2025", nil, asOf))
}

func TestMissingCoreSkills_DeclarationOrderAndCap(t *testing.T) {
	cfg := backendConfig()
	cfg.CoreKeywords = []string{"a", "b", "c", "d", "e", "f", "g"}

	missing := missingCoreSkills([]string{"b"}, cfg)

	assert.Equal(t, []string{"a", "c", "d", "e", "f"}, missing)
}

func TestScore_FullFieldCoverage(t *testing.T) {
	text := "EXPERIENCE\nExpert python developer, 6 years sql, built java services on aws with docker through 2025. AWS certified."

	result := Score(text, types.ExtractedSkillSet{}, backendConfig(), types.LevelMid, asOf)

	assert.GreaterOrEqual(t, result.Breakdown.Component(ComponentCoreCoverage), 70)
	assert.Greater(t, result.Breakdown.Component(ComponentDepth), 0)
	assert.Equal(t, 100, result.Breakdown.Component(ComponentSupporting))
	assert.Equal(t, 100, result.Breakdown.Component(ComponentRecency))
	assert.Contains(t, result.MissingCoreSkills, "rust")
}

func TestScore_Deterministic(t *testing.T) {
	text := "python sql developer since 2020, built data pipelines"

	first := Score(text, types.ExtractedSkillSet{}, backendConfig(), types.LevelMid, asOf)
	second := Score(text, types.ExtractedSkillSet{}, backendConfig(), types.LevelMid, asOf)

	assert.Equal(t, first, second)
}

func TestGenerateImprovements_LowEverything(t *testing.T) {
	improvements := generateImprovements(30, 20, 10, []string{"python", "sql", "java", "rust"}, backendConfig())

	joined := strings.Join(improvements, " | ")
	assert.Contains(t, joined, "python, sql, java")
	assert.Contains(t, joined, "Show skill depth")
	assert.Contains(t, joined, "complementary skills")
}
