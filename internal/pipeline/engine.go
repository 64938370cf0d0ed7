// Package pipeline wires the static registries and scoring components into
// the resume analysis engine consumed by the CLI and by embedding services.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/ats"
	"github.com/jonathan/career-compass/internal/experience"
	"github.com/jonathan/career-compass/internal/fieldconfig"
	"github.com/jonathan/career-compass/internal/readiness"
	"github.com/jonathan/career-compass/internal/roles"
	"github.com/jonathan/career-compass/internal/skills"
	"github.com/jonathan/career-compass/internal/synthesis"
	"github.com/jonathan/career-compass/internal/taxonomy"
	"github.com/jonathan/career-compass/internal/types"
)

// minResumeLength is the smallest resume text the engine will score.
const minResumeLength = 50

// InvalidInputError reports a resume text that cannot be analyzed. It is a
// per-request failure, never a process-level one.
type InvalidInputError struct {
	Reason string
	Length int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s (got %d characters, need at least %d)",
		e.Reason, e.Length, minResumeLength)
}

// AnalyzeRequest carries one resume analysis job. Warnings from upstream
// document extraction are informational and never fail the request.
type AnalyzeRequest struct {
	ResumeText string
	FieldKey   string
	Level      types.ExperienceLevel
	AsOf       time.Time
	Warnings   []string
}

// Engine holds the read-only registries and runs analyses against them. It
// is safe for concurrent use; all scoring is pure over immutable inputs.
type Engine struct {
	taxonomy *taxonomy.Taxonomy
	fields   *fieldconfig.Registry
	roles    *roles.Model
	log      zerolog.Logger
	now      func() time.Time
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithLogger attaches a logger for per-request events.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithClock overrides the wall clock, used by tests to pin recency scoring.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New builds an Engine around already-loaded registries.
func New(tax *taxonomy.Taxonomy, fields *fieldconfig.Registry, model *roles.Model, opts ...Option) *Engine {
	e := &Engine{
		taxonomy: tax,
		fields:   fields,
		roles:    model,
		log:      zerolog.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewDefault loads the embedded taxonomy, field, and role data. Any
// configuration error aborts construction.
func NewDefault(opts ...Option) (*Engine, error) {
	tax, err := taxonomy.Load()
	if err != nil {
		return nil, err
	}
	fields, err := fieldconfig.Load()
	if err != nil {
		return nil, err
	}
	model, err := roles.Load()
	if err != nil {
		return nil, err
	}
	return New(tax, fields, model, opts...), nil
}

// Analyze runs the full scoring pipeline over one resume. The ATS, skills,
// and experience scorers share only read-only inputs and run concurrently.
func (e *Engine) Analyze(ctx context.Context, req AnalyzeRequest) (types.ReadinessReport, error) {
	text := strings.TrimSpace(req.ResumeText)
	if len(text) < minResumeLength {
		return types.ReadinessReport{}, &InvalidInputError{
			Reason: "resume text is too short to analyze",
			Length: len(text),
		}
	}

	cfg, fallback := e.fields.Get(req.FieldKey)
	if fallback {
		e.log.Warn().
			Str("field_key", req.FieldKey).
			Str("default_key", e.fields.DefaultKey()).
			Msg("unknown field key, using default config")
	}
	for _, w := range req.Warnings {
		e.log.Info().Str("warning", w).Msg("extraction warning")
	}

	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = e.now()
	}

	extracted := e.taxonomy.Extract(text)

	var (
		atsResult ats.Result
		skillsRes skills.Result
		expResult experience.Result
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		atsResult = ats.Score(text, cfg, req.Level)
		return nil
	})
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		skillsRes = skills.Score(text, extracted, cfg, req.Level, asOf)
		return nil
	})
	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		expResult = experience.Score(text, cfg, asOf)
		return nil
	})
	if err := g.Wait(); err != nil {
		return types.ReadinessReport{}, err
	}

	fieldKey := req.FieldKey
	if fallback {
		fieldKey = e.fields.DefaultKey()
	}
	report := synthesis.Synthesize(synthesis.Inputs{
		ATS:           atsResult,
		Skills:        skillsRes,
		Experience:    expResult,
		FieldKey:      fieldKey,
		FieldFallback: fallback,
		Config:        cfg,
		Level:         req.Level,
		GeneratedAt:   asOf,
	})

	e.log.Info().
		Str("report_id", report.ID.String()).
		Str("field_key", fieldKey).
		Bool("field_fallback", fallback).
		Int("overall_score", report.OverallScore).
		Str("grade", string(report.Grade)).
		Msg("resume analyzed")
	return report, nil
}

// ExtractSkills extracts taxonomy skills from text. It is total: empty text
// yields an empty set.
func (e *Engine) ExtractSkills(text string) types.ExtractedSkillSet {
	return e.taxonomy.Extract(text)
}

// ScoreATS scores a resume's ATS compatibility against one field. The bool
// reports whether the field key fell back to the default config.
func (e *Engine) ScoreATS(text, fieldKey string, level types.ExperienceLevel) (types.ScoreBreakdown, bool) {
	cfg, fallback := e.fields.Get(fieldKey)
	return ats.Score(text, cfg, level).Breakdown, fallback
}

// ScoreDepth scores claimed-skill depth against one field. The bool reports
// whether the field key fell back to the default config.
func (e *Engine) ScoreDepth(text string, extracted types.ExtractedSkillSet, fieldKey string, level types.ExperienceLevel, asOf time.Time) (types.ScoreBreakdown, bool) {
	cfg, fallback := e.fields.Get(fieldKey)
	if asOf.IsZero() {
		asOf = e.now()
	}
	return skills.Score(text, extracted, cfg, level, asOf).Breakdown, fallback
}

// Readiness computes the readiness components for one target role. Unknown
// interests resolve to the fallback role with RoleFallback set, so the
// result is always a complete structure.
func (e *Engine) Readiness(interest string, level types.RoleLevel, userSkills []string) types.ReadinessComponents {
	role, fallback := e.roles.Profile(interest, level)
	components := readiness.Calculate(role, fallback, userSkills)

	confidence, label := readiness.Confidence(level, userSkills, role.Requirements.Core)
	components.Confidence = confidence
	components.ConfidenceLevel = label
	components.Why = readiness.Why(role, userSkills, e.roles.DemandInsight(interest))
	components.RoleVariants = e.roles.Variants(interest, level)

	e.log.Debug().
		Str("interest", interest).
		Str("level", string(level)).
		Bool("role_fallback", fallback).
		Int("readiness_score", components.ReadinessScore).
		Msg("readiness calculated")
	return components
}

// Fields lists the configured field keys in declaration order.
func (e *Engine) Fields() []string {
	return e.fields.Keys()
}

// DefaultField returns the key of the default field config.
func (e *Engine) DefaultField() string {
	return e.fields.DefaultKey()
}

// FieldConfig resolves a field key. The bool reports fallback to default.
func (e *Engine) FieldConfig(key string) (types.FieldConfig, bool) {
	return e.fields.Get(key)
}

// Interests lists the configured career interest keys in sorted order.
func (e *Engine) Interests() []string {
	return e.roles.Interests()
}

// InterestName returns the display name for an interest key.
func (e *Engine) InterestName(interest string) string {
	return e.roles.InterestName(interest)
}

// Profiles returns every configured role profile across all ladders.
func (e *Engine) Profiles() []types.RoleProfile {
	return e.roles.AllProfiles()
}
