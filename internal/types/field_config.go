package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Resume section vocabulary. FieldConfig.RequiredSections may only name
// sections from this fixed set.
const (
	SectionContact    = "contact"
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
	SectionPortfolio  = "portfolio"
)

// KnownSections is the fixed section vocabulary recognized by the ATS scorer.
var KnownSections = []string{
	SectionContact,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionPortfolio,
}

// FieldConfig is the static scoring rubric for one career field. Keyword
// slices keep their declaration order so scoring stays deterministic.
type FieldConfig struct {
	Key                string                       `json:"key" validate:"required"`
	Name               string                       `json:"name" validate:"required"`
	CoreKeywords       []string                     `json:"core_keywords" validate:"required,min=1"`
	SupportingKeywords []string                     `json:"supporting_keywords" validate:"required,min=1"`
	RequiredSections   []string                     `json:"required_sections" validate:"required,min=1"`
	ImpactMetrics      []string                     `json:"impact_metrics"`
	RedFlags           []string                     `json:"red_flags"`
	Expectations       map[ExperienceLevel][]string `json:"experience_expectations"`
}

// Validate enforces the FieldConfig construction invariants: struct-level
// requirements, core/supporting disjointness, and the fixed section
// vocabulary. Violations are configuration errors that must abort startup.
func (c *FieldConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("field %q: %w", c.Key, err)
	}

	core := make(map[string]bool, len(c.CoreKeywords))
	for _, kw := range c.CoreKeywords {
		core[kw] = true
	}
	for _, kw := range c.SupportingKeywords {
		if core[kw] {
			return fmt.Errorf("field %q: keyword %q appears in both core and supporting sets", c.Key, kw)
		}
	}

	known := make(map[string]bool, len(KnownSections))
	for _, s := range KnownSections {
		known[s] = true
	}
	for _, s := range c.RequiredSections {
		if !known[s] {
			return fmt.Errorf("field %q: required section %q is not in the section vocabulary", c.Key, s)
		}
	}

	return nil
}
