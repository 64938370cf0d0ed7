// Package taxonomy provides the static skill taxonomy and the skill
// extractor that scans resume text against it.
package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/career-compass/internal/schemas"
)

//go:embed data/taxonomy.json
var taxonomyJSON []byte

//go:embed data/taxonomy.schema.json
var taxonomySchema []byte

// SkillEntry is one canonical skill with its recognized text variants.
type SkillEntry struct {
	Name     string   `json:"name"`
	Variants []string `json:"variants"`
}

// Category groups related skills under one label.
type Category struct {
	Name   string       `json:"name"`
	Skills []SkillEntry `json:"skills"`
}

// Taxonomy is the immutable skill taxonomy, loaded once at process start.
// Categories and skills keep their declaration order; extraction output is
// ordered the same way.
type Taxonomy struct {
	Categories []Category `json:"categories"`

	// matchers holds one compiled pattern per variant, keyed by
	// "category index / skill index" iteration order at extract time.
	matchers map[string][]*regexp.Regexp
}

// ConfigError reports an invalid taxonomy payload. It is a programming
// error detected at load time and must abort initialization.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("taxonomy config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Load parses and validates the embedded taxonomy payload.
func Load() (*Taxonomy, error) {
	return LoadBytes(taxonomyJSON)
}

// LoadBytes parses a taxonomy payload, validates it against the taxonomy
// schema, enforces the no-duplicate-variant invariant, and compiles the
// word-boundary matchers.
func LoadBytes(payload []byte) (*Taxonomy, error) {
	if err := schemas.ValidateBytes("taxonomy", taxonomySchema, payload); err != nil {
		return nil, &ConfigError{Message: "schema validation failed", Cause: err}
	}

	var t Taxonomy
	if err := json.Unmarshal(payload, &t); err != nil {
		return nil, &ConfigError{Message: "failed to parse taxonomy JSON", Cause: err}
	}

	// A variant appearing under two canonical names would make extraction
	// order-dependent, so it is rejected outright.
	seen := make(map[string]string)
	for _, category := range t.Categories {
		for _, skill := range category.Skills {
			for _, variant := range skill.Variants {
				key := strings.ToLower(strings.TrimSpace(variant))
				if key == "" {
					return nil, &ConfigError{Message: fmt.Sprintf("skill %q has an empty variant", skill.Name)}
				}
				if owner, dup := seen[key]; dup {
					return nil, &ConfigError{Message: fmt.Sprintf("variant %q appears under both %q and %q", variant, owner, skill.Name)}
				}
				seen[key] = skill.Name
			}
		}
	}

	t.matchers = make(map[string][]*regexp.Regexp)
	for _, category := range t.Categories {
		for _, skill := range category.Skills {
			patterns := make([]*regexp.Regexp, 0, len(skill.Variants))
			for _, variant := range skill.Variants {
				re, err := regexp.Compile(variantPattern(variant))
				if err != nil {
					return nil, &ConfigError{Message: fmt.Sprintf("variant %q does not compile", variant), Cause: err}
				}
				patterns = append(patterns, re)
			}
			t.matchers[matcherKey(category.Name, skill.Name)] = patterns
		}
	}

	return &t, nil
}

// SkillCount returns the number of canonical skills in the taxonomy.
func (t *Taxonomy) SkillCount() int {
	count := 0
	for _, category := range t.Categories {
		count += len(category.Skills)
	}
	return count
}

func matcherKey(category, skill string) string {
	return category + "/" + skill
}

// variantPattern builds a case-insensitive whole-word pattern for a variant.
// Word boundaries are only anchored on sides that start or end with a word
// character, so variants like "c++" and "c#" still match.
func variantPattern(variant string) string {
	quoted := regexp.QuoteMeta(strings.ToLower(variant))

	var sb strings.Builder
	sb.WriteString("(?i)")
	if isWordByte(variant[0]) {
		sb.WriteString(`\b`)
	}
	sb.WriteString(quoted)
	if isWordByte(variant[len(variant)-1]) {
		sb.WriteString(`\b`)
	}
	return sb.String()
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
