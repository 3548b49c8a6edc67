package entity

import "strings"

// Plan is a subscription plan a company is provisioned with.
type Plan string

const (
	PlanBasic    Plan = "BASIC"
	PlanStandard Plan = "STANDARD"
	PlanPro      Plan = "PRO"
)

// ParsePlan normalizes a submitted plan name. Unknown or empty values fall back to BASIC.
func ParsePlan(s string) Plan {
	p := Plan(strings.ToUpper(strings.TrimSpace(s)))
	if p.IsValid() {
		return p
	}

	return PlanBasic
}

// IsValid checks if the Plan is a valid value.
func (p Plan) IsValid() bool {
	switch p {
	case PlanBasic, PlanStandard, PlanPro:
		return true
	}

	return false
}
