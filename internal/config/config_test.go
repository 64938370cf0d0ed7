package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"resume": "resume.txt",
		"field": "software_backend",
		"level": "mid",
		"interest": "backend",
		"role_level": "junior",
		"as_of": "2026-03-01",
		"verbose": true,
		"log_level": "debug",
		"log_format": "json"
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "resume.txt", cfg.Resume)
	assert.Equal(t, "software_backend", cfg.Field)
	assert.Equal(t, "mid", cfg.Level)
	assert.Equal(t, "backend", cfg.Interest)
	assert.Equal(t, "junior", cfg.Role)
	assert.Equal(t, "2026-03-01", cfg.AsOf)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_PartialFields(t *testing.T) {
	content := `{"field": "data_science"}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "data_science", cfg.Field)
	assert.Empty(t, cfg.Resume)
	assert.Empty(t, cfg.Level)
	assert.False(t, cfg.Verbose)
}

func TestValidate_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_AsOfFormat(t *testing.T) {
	valid := &Config{AsOf: "2026-03-01"}
	assert.NoError(t, valid.Validate())

	invalid := &Config{AsOf: "03/01/2026"}
	err := invalid.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "as_of")
}

func TestValidate_LogFormat(t *testing.T) {
	for _, format := range []string{"json", "pretty", ""} {
		cfg := &Config{LogFormat: format}
		assert.NoError(t, cfg.Validate(), "format %q", format)
	}

	cfg := &Config{LogFormat: "xml"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_format")
}

func TestValidate_ResumeFileMustExist(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "resume.txt")
	err := os.WriteFile(tmpFile, []byte("resume text"), 0644)
	require.NoError(t, err)

	exists := &Config{Resume: tmpFile}
	assert.NoError(t, exists.Validate())

	missing := &Config{Resume: filepath.Join(t.TempDir(), "nope.txt")}
	err = missing.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestMergeWithDefaults_FillsEmptyStrings(t *testing.T) {
	cfg := Config{Field: "marketing"}
	defaults := Config{
		Resume:    "default.txt",
		Field:     "software_backend",
		Level:     "mid",
		LogLevel:  "warn",
		LogFormat: "pretty",
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Explicit value wins over the default
	assert.Equal(t, "marketing", merged.Field)
	assert.Equal(t, "default.txt", merged.Resume)
	assert.Equal(t, "mid", merged.Level)
	assert.Equal(t, "warn", merged.LogLevel)
	assert.Equal(t, "pretty", merged.LogFormat)
}

func TestMergeWithDefaults_BoolsNotMerged(t *testing.T) {
	cfg := Config{}
	defaults := Config{Verbose: true}

	merged := cfg.MergeWithDefaults(defaults)

	assert.False(t, merged.Verbose)
}
