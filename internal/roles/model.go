// Package roles provides the role-progression model: the mapping from a
// career interest and ladder level to a concrete role, its market metadata,
// skill requirements, and alternative role variants.
package roles

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
)

//go:embed data/roles.json
var rolesJSON []byte

//go:embed data/roles.schema.json
var rolesSchema []byte

// ConfigError reports an invalid role model payload. It is a programming
// error detected at load time and must abort initialization.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("role model config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("role model config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

type levelEntry struct {
	Title             string `json:"title"`
	TimeToReadyMonths int    `json:"time_to_ready_months"`
	MarketDemand      string `json:"market_demand"`
}

type interestEntry struct {
	Key           string                         `json:"key"`
	Name          string                         `json:"name"`
	Group         string                         `json:"group"`
	DemandInsight string                         `json:"demand_insight"`
	Levels        map[types.RoleLevel]levelEntry `json:"levels"`
	Requirements  types.RoleSkillRequirements    `json:"requirements"`
}

type modelFile struct {
	FallbackRole string                                  `json:"fallback_role"`
	Interests    []interestEntry                         `json:"interests"`
	Variants     map[string]map[types.RoleLevel][]string `json:"variants"`
}

// Model is the immutable role-progression model, loaded once at process
// start. Every (interest, level) pair it declares resolves to a full
// RoleProfile; anything else resolves to the fallback role.
type Model struct {
	fallbackRole string
	keys         []string
	interests    map[string]interestEntry
	variants     map[string]map[types.RoleLevel][]string
}

// Load parses and validates the embedded role model payload.
func Load() (*Model, error) {
	return LoadBytes(rolesJSON)
}

// LoadBytes parses a role model payload, validates it against the model
// schema, and checks that every interest covers the full level ladder.
func LoadBytes(payload []byte) (*Model, error) {
	if err := schemas.ValidateBytes("role model", rolesSchema, payload); err != nil {
		return nil, &ConfigError{Message: "schema validation failed", Cause: err}
	}

	var file modelFile
	if err := json.Unmarshal(payload, &file); err != nil {
		return nil, &ConfigError{Message: "failed to parse role model JSON", Cause: err}
	}

	m := &Model{
		fallbackRole: file.FallbackRole,
		keys:         make([]string, 0, len(file.Interests)),
		interests:    make(map[string]interestEntry, len(file.Interests)),
		variants:     file.Variants,
	}
	for _, entry := range file.Interests {
		if _, dup := m.interests[entry.Key]; dup {
			return nil, &ConfigError{Message: fmt.Sprintf("interest %q declared twice", entry.Key)}
		}
		for _, level := range types.RoleLevels {
			if _, ok := entry.Levels[level]; !ok {
				return nil, &ConfigError{Message: fmt.Sprintf("interest %q is missing level %q", entry.Key, level)}
			}
		}
		if _, ok := m.variants[entry.Group]; !ok {
			return nil, &ConfigError{Message: fmt.Sprintf("interest %q names unknown variant group %q", entry.Key, entry.Group)}
		}
		profile := buildProfile(entry, types.RoleLevelBeginner)
		if err := profile.Validate(); err != nil {
			return nil, &ConfigError{Message: "invalid role profile", Cause: err}
		}
		m.keys = append(m.keys, entry.Key)
		m.interests[entry.Key] = entry
	}

	return m, nil
}

func buildProfile(entry interestEntry, level types.RoleLevel) types.RoleProfile {
	at := entry.Levels[level]
	profile := types.RoleProfile{
		Interest:          entry.Key,
		Level:             level,
		Title:             at.Title,
		TimeToReadyMonths: at.TimeToReadyMonths,
		MarketDemand:      at.MarketDemand,
		Requirements:      entry.Requirements,
	}
	if next, ok := level.Next(); ok {
		profile.NextRole = entry.Levels[next].Title
	}
	return profile
}

// Profile resolves an (interest, level) pair to a role profile. Unknown
// interests resolve to the fallback role with empty requirements; the second
// return value reports whether the fallback was taken.
func (m *Model) Profile(interest string, level types.RoleLevel) (types.RoleProfile, bool) {
	entry, ok := m.interests[strings.ToLower(strings.TrimSpace(interest))]
	if !ok {
		return types.RoleProfile{
			Interest: interest,
			Level:    level,
			Title:    m.fallbackRole,
		}, true
	}
	return buildProfile(entry, level), false
}

// Variants returns the alternative role titles for an (interest, level)
// pair. Unknown interests return nil.
func (m *Model) Variants(interest string, level types.RoleLevel) []string {
	entry, ok := m.interests[strings.ToLower(strings.TrimSpace(interest))]
	if !ok {
		return nil
	}
	ladder, ok := m.variants[entry.Group]
	if !ok {
		return nil
	}
	out := make([]string, len(ladder[level]))
	copy(out, ladder[level])
	return out
}

// DemandInsight returns the market-demand sentence for an interest, or a
// generic sentence for unknown interests.
func (m *Model) DemandInsight(interest string) string {
	entry, ok := m.interests[strings.ToLower(strings.TrimSpace(interest))]
	if !ok {
		return "This role has strong industry demand."
	}
	return entry.DemandInsight
}

// InterestName returns the display name for an interest key, or the key
// itself when unknown.
func (m *Model) InterestName(interest string) string {
	entry, ok := m.interests[strings.ToLower(strings.TrimSpace(interest))]
	if !ok {
		return interest
	}
	return entry.Name
}

// Interests returns every declared interest key in declaration order.
func (m *Model) Interests() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// AllProfiles returns every (interest, level) profile in declaration order,
// levels ordered bottom to top.
func (m *Model) AllProfiles() []types.RoleProfile {
	out := make([]types.RoleProfile, 0, len(m.keys)*len(types.RoleLevels))
	for _, key := range m.keys {
		entry := m.interests[key]
		for _, level := range types.RoleLevels {
			out = append(out, buildProfile(entry, level))
		}
	}
	return out
}
