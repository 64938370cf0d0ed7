package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func loadTestModel(t *testing.T) *Model {
	t.Helper()
	model, err := Load()
	require.NoError(t, err)
	return model
}

func TestLoad_EmbeddedModel(t *testing.T) {
	model := loadTestModel(t)

	assert.Contains(t, model.Interests(), "backend")
	assert.Contains(t, model.Interests(), "ml")
	assert.Contains(t, model.Interests(), "design")
}

func TestProfile_KnownInterest(t *testing.T) {
	model := loadTestModel(t)

	profile, fallback := model.Profile("backend", types.RoleLevelBeginner)

	assert.False(t, fallback)
	assert.Equal(t, "Junior Backend Engineer", profile.Title)
	assert.Equal(t, "Backend Engineer", profile.NextRole)
	assert.Equal(t, "High", profile.MarketDemand)
	assert.NotEmpty(t, profile.Requirements.Core)
}

func TestProfile_TopTierHasNoNextRole(t *testing.T) {
	model := loadTestModel(t)

	profile, fallback := model.Profile("backend", types.RoleLevelLead)

	assert.False(t, fallback)
	assert.Empty(t, profile.NextRole)
}

func TestProfile_UnknownInterestFallsBack(t *testing.T) {
	model := loadTestModel(t)

	profile, fallback := model.Profile("underwater_basket_weaving", types.RoleLevelJunior)

	assert.True(t, fallback)
	assert.Equal(t, "Career Assistant", profile.Title)
	assert.Empty(t, profile.Requirements.Core)
}

func TestProfile_NormalizesInterestKey(t *testing.T) {
	model := loadTestModel(t)

	profile, fallback := model.Profile("  Backend  ", types.RoleLevelJunior)

	assert.False(t, fallback)
	assert.Equal(t, "Backend Engineer", profile.Title)
}

func TestVariants_KnownGroup(t *testing.T) {
	model := loadTestModel(t)

	variants := model.Variants("backend", types.RoleLevelBeginner)

	assert.Contains(t, variants, "Junior Developer")
}

func TestVariants_UnknownInterest(t *testing.T) {
	model := loadTestModel(t)

	assert.Nil(t, model.Variants("nope", types.RoleLevelBeginner))
}

func TestDemandInsight_FallsBackToGeneric(t *testing.T) {
	model := loadTestModel(t)

	known := model.DemandInsight("backend")
	unknown := model.DemandInsight("nope")

	assert.NotEmpty(t, known)
	assert.Equal(t, "This role has strong industry demand.", unknown)
}

func TestAllProfiles_CoversFullLadder(t *testing.T) {
	model := loadTestModel(t)

	profiles := model.AllProfiles()

	assert.Len(t, profiles, len(model.Interests())*len(types.RoleLevels))
	for _, profile := range profiles {
		assert.NotEmpty(t, profile.Title)
	}
}

func TestLoadBytes_RejectsMissingLevel(t *testing.T) {
	payload := []byte(`{
		"fallback_role": "Career Assistant",
		"interests": [
			{
				"key": "backend", "name": "Backend", "group": "tech",
				"demand_insight": "High demand.",
				"levels": {
					"beginner": {"title": "Junior", "time_to_ready_months": 3, "market_demand": "High"}
				},
				"requirements": {"core": [], "supporting": [], "optional": []}
			}
		],
		"variants": {"tech": {"beginner": ["Junior Developer"], "junior": [], "intermediate": [], "senior": [], "lead": []}}
	}`)

	_, err := LoadBytes(payload)

	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadBytes_RejectsUnknownVariantGroup(t *testing.T) {
	payload := []byte(`{
		"fallback_role": "Career Assistant",
		"interests": [
			{
				"key": "backend", "name": "Backend", "group": "ghost",
				"demand_insight": "High demand.",
				"levels": {
					"beginner": {"title": "Junior", "time_to_ready_months": 3, "market_demand": "High"},
					"junior": {"title": "Mid", "time_to_ready_months": 6, "market_demand": "High"},
					"intermediate": {"title": "Intermediate", "time_to_ready_months": 12, "market_demand": "High"},
					"senior": {"title": "Senior", "time_to_ready_months": 24, "market_demand": "High"},
					"lead": {"title": "Lead", "time_to_ready_months": 36, "market_demand": "High"}
				},
				"requirements": {"core": [], "supporting": [], "optional": []}
			}
		],
		"variants": {"tech": {"beginner": [], "junior": [], "intermediate": [], "senior": [], "lead": []}}
	}`)

	_, err := LoadBytes(payload)

	assert.Error(t, err)
}
