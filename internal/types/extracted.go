package types

import "strings"

// DepthSignal annotates an extracted skill with evidence that the mention
// reflects real proficiency rather than a bare keyword.
type DepthSignal struct {
	ProficiencyTier string  `json:"proficiency_tier,omitempty"` // expert, strong, experienced, basic
	Years           float64 `json:"years,omitempty"`
	Certified       bool    `json:"certified,omitempty"`
}

// ExtractedSkill is one canonical skill detected in a resume.
type ExtractedSkill struct {
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Depth    *DepthSignal `json:"depth,omitempty"`
}

// ExtractedSkillSet is the ordered set of canonical skills detected in one
// resume. Order follows taxonomy declaration order, never discovery order,
// so downstream scoring is reproducible for identical input.
type ExtractedSkillSet struct {
	Skills []ExtractedSkill `json:"skills"`
}

// Names returns the canonical skill names in declaration order.
func (s ExtractedSkillSet) Names() []string {
	names := make([]string, len(s.Skills))
	for i, skill := range s.Skills {
		names[i] = skill.Name
	}
	return names
}

// Contains reports whether the set holds the named skill, case-insensitively.
func (s ExtractedSkillSet) Contains(name string) bool {
	needle := strings.ToLower(name)
	for _, skill := range s.Skills {
		if strings.ToLower(skill.Name) == needle {
			return true
		}
	}
	return false
}

// Len returns the number of detected skills.
func (s ExtractedSkillSet) Len() int {
	return len(s.Skills)
}
