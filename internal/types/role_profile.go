package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SkillRequirement is one skill a role asks for, carrying the explanation
// strings used for "why" output in gap reports.
type SkillRequirement struct {
	Name     string `json:"name" validate:"required"`
	Priority string `json:"priority" validate:"required,oneof=High Medium Low"`
	Weight   int    `json:"weight" validate:"gte=0,lte=100"`
	Reason   string `json:"reason,omitempty"`
	Impact   string `json:"impact,omitempty"`
}

// RoleSkillRequirements groups a role's skill requirements by matching tier.
// Core carries the most weight in readiness scoring, supporting covers the
// technical toolkit, and optional lists tools that round the profile out.
type RoleSkillRequirements struct {
	Core       []SkillRequirement `json:"core"`
	Supporting []SkillRequirement `json:"supporting"`
	Optional   []SkillRequirement `json:"optional"`
}

// TotalWeight sums the weights across every requirement tier.
func (r RoleSkillRequirements) TotalWeight() int {
	total := 0
	for _, group := range [][]SkillRequirement{r.Core, r.Supporting, r.Optional} {
		for _, req := range group {
			total += req.Weight
		}
	}
	return total
}

// RoleProfile is one node of the role-progression model: the role a given
// (interest, level) pair maps to, plus its market metadata and skill
// requirements. NextRole is empty at the top tier.
type RoleProfile struct {
	Interest         string                `json:"interest" validate:"required"`
	Level            RoleLevel             `json:"level" validate:"required"`
	Title            string                `json:"title" validate:"required"`
	NextRole         string                `json:"next_role,omitempty"`
	TimeToReadyMonths int                  `json:"time_to_ready_months" validate:"gte=0"`
	MarketDemand     string                `json:"market_demand,omitempty"`
	Requirements     RoleSkillRequirements `json:"requirements"`
}

// Validate enforces the RoleProfile construction invariants.
func (p *RoleProfile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("role %s/%s: %w", p.Interest, p.Level, err)
	}
	for _, group := range [][]SkillRequirement{p.Requirements.Core, p.Requirements.Supporting, p.Requirements.Optional} {
		for _, req := range group {
			if err := validate.Struct(req); err != nil {
				return fmt.Errorf("role %s/%s requirement %q: %w", p.Interest, p.Level, req.Name, err)
			}
		}
	}
	return nil
}
