package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/career-compass/internal/logger"
	"github.com/jonathan/career-compass/internal/pipeline"
)

// newEngine builds the analysis engine from the embedded registries.
func newEngine() (*pipeline.Engine, error) {
	engine, err := pipeline.NewDefault(pipeline.WithLogger(logger.Logger))
	if err != nil {
		return nil, fmt.Errorf("failed to load analysis engine: %w", err)
	}
	return engine, nil
}

// readResume loads extracted resume text from a file path.
func readResume(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no resume file given: pass --resume or set \"resume\" in the config file")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	return string(content), nil
}

// parseAsOf parses the optional scoring date. Empty means "now".
func parseAsOf(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	asOf, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of date %q, want YYYY-MM-DD: %w", value, err)
	}
	return asOf, nil
}

// writeJSON marshals v with indentation and writes it to path, creating the
// parent directory if needed.
func writeJSON(path string, v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, payload, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// splitSkills parses a comma-separated skill list, dropping empty entries.
func splitSkills(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
