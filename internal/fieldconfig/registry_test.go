package fieldconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedConfigs(t *testing.T) {
	registry, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "software_backend", registry.DefaultKey())
	assert.Contains(t, registry.Keys(), "data_science")
	assert.Contains(t, registry.Keys(), "ux_ui_design")
}

func TestRegistryGet_KnownKey(t *testing.T) {
	registry, err := Load()
	require.NoError(t, err)

	cfg, fallback := registry.Get("data_science")

	assert.False(t, fallback)
	assert.Equal(t, "data_science", cfg.Key)
	assert.Equal(t, "Data Science / Machine Learning", cfg.Name)
	assert.NotEmpty(t, cfg.CoreKeywords)
}

func TestRegistryGet_UnknownKeyFallsBack(t *testing.T) {
	registry, err := Load()
	require.NoError(t, err)

	cfg, fallback := registry.Get("xyz_unknown_field")

	assert.True(t, fallback)
	assert.Equal(t, registry.DefaultKey(), cfg.Key)
}

func TestLoadBytes_RejectsDuplicateKey(t *testing.T) {
	payload := []byte(`{
		"default_field": "a",
		"fields": [
			{"key": "a", "name": "A", "core_keywords": ["x"], "supporting_keywords": ["y"], "required_sections": ["skills"], "impact_metrics": [], "red_flags": [], "experience_expectations": {"entry": ["e"], "mid": ["m"], "senior": ["s"]}},
			{"key": "a", "name": "A again", "core_keywords": ["x"], "supporting_keywords": ["y"], "required_sections": ["skills"], "impact_metrics": [], "red_flags": [], "experience_expectations": {"entry": ["e"], "mid": ["m"], "senior": ["s"]}}
		]
	}`)

	_, err := LoadBytes(payload)

	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadBytes_RejectsMissingDefault(t *testing.T) {
	payload := []byte(`{
		"default_field": "missing",
		"fields": [
			{"key": "a", "name": "A", "core_keywords": ["x"], "supporting_keywords": ["y"], "required_sections": ["skills"], "impact_metrics": [], "red_flags": [], "experience_expectations": {"entry": ["e"], "mid": ["m"], "senior": ["s"]}}
		]
	}`)

	_, err := LoadBytes(payload)

	assert.Error(t, err)
}

func TestLoadBytes_RejectsOverlappingKeywords(t *testing.T) {
	payload := []byte(`{
		"default_field": "a",
		"fields": [
			{"key": "a", "name": "A", "core_keywords": ["x"], "supporting_keywords": ["x"], "required_sections": ["skills"], "impact_metrics": [], "red_flags": [], "experience_expectations": {"entry": ["e"], "mid": ["m"], "senior": ["s"]}}
		]
	}`)

	_, err := LoadBytes(payload)

	assert.Error(t, err)
}

func TestEmbeddedConfigs_KeywordSetsDisjoint(t *testing.T) {
	registry, err := Load()
	require.NoError(t, err)

	for _, key := range registry.Keys() {
		cfg, _ := registry.Get(key)
		core := make(map[string]bool)
		for _, kw := range cfg.CoreKeywords {
			core[kw] = true
		}
		for _, kw := range cfg.SupportingKeywords {
			assert.False(t, core[kw], "field %s: keyword %q in both sets", key, kw)
		}
	}
}
