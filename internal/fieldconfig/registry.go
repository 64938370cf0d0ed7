// Package fieldconfig provides the registry of per-field scoring rubrics.
// Configs are embedded at build time and validated once at process start.
package fieldconfig

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
)

//go:embed data/fields.json
var fieldsJSON []byte

//go:embed data/fields.schema.json
var fieldsSchema []byte

// ConfigError reports an invalid field configuration payload. It is a
// programming error detected at load time and must abort initialization.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("field config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("field config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

type registryFile struct {
	DefaultField string              `json:"default_field"`
	Fields       []types.FieldConfig `json:"fields"`
}

// Registry holds every known field rubric. Lookup for an unknown key falls
// back to the default field and reports the fallback to the caller.
type Registry struct {
	defaultKey string
	keys       []string
	byKey      map[string]types.FieldConfig
}

// Load parses and validates the embedded field configuration payload.
func Load() (*Registry, error) {
	return LoadBytes(fieldsJSON)
}

// LoadBytes parses a field configuration payload, validates it against the
// registry schema, and runs each config's construction invariants.
func LoadBytes(payload []byte) (*Registry, error) {
	if err := schemas.ValidateBytes("field configs", fieldsSchema, payload); err != nil {
		return nil, &ConfigError{Message: "schema validation failed", Cause: err}
	}

	var file registryFile
	if err := json.Unmarshal(payload, &file); err != nil {
		return nil, &ConfigError{Message: "failed to parse field config JSON", Cause: err}
	}

	r := &Registry{
		defaultKey: file.DefaultField,
		keys:       make([]string, 0, len(file.Fields)),
		byKey:      make(map[string]types.FieldConfig, len(file.Fields)),
	}
	for i := range file.Fields {
		cfg := file.Fields[i]
		if err := cfg.Validate(); err != nil {
			return nil, &ConfigError{Message: "invalid field config", Cause: err}
		}
		if _, dup := r.byKey[cfg.Key]; dup {
			return nil, &ConfigError{Message: fmt.Sprintf("field key %q declared twice", cfg.Key)}
		}
		r.keys = append(r.keys, cfg.Key)
		r.byKey[cfg.Key] = cfg
	}

	if _, ok := r.byKey[r.defaultKey]; !ok {
		return nil, &ConfigError{Message: fmt.Sprintf("default field %q is not declared", r.defaultKey)}
	}

	return r, nil
}

// Get returns the config for key, or the default config when key is unknown.
// The second return value reports whether the fallback was taken.
func (r *Registry) Get(key string) (types.FieldConfig, bool) {
	if cfg, ok := r.byKey[key]; ok {
		return cfg, false
	}
	return r.byKey[r.defaultKey], true
}

// DefaultKey returns the key served to unknown-field lookups.
func (r *Registry) DefaultKey() string {
	return r.defaultKey
}

// Keys returns every declared field key in declaration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}
