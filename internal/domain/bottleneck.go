package domain

import "time"

// Priority is the qualitative severity of a bottleneck.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Annual cost thresholds for priority assignment.
const (
	criticalCostThreshold = 100000
	highCostThreshold     = 50000
	mediumCostThreshold   = 10000
)

// PriorityForAnnualCost maps an annualized cost impact to a priority label.
// Pure function: identical inputs always yield identical labels.
func PriorityForAnnualCost(annualCost float64) Priority {
	switch {
	case annualCost > criticalCostThreshold:
		return PriorityCritical
	case annualCost > highCostThreshold:
		return PriorityHigh
	case annualCost > mediumCostThreshold:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Bottleneck is an identified operational inefficiency with quantified weekly
// time and cost impact. Immutable once stored.
type Bottleneck struct {
	ID                  string    `json:"id"`
	ConsultationID      string    `json:"consultation_id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Category            string    `json:"category"`
	TimeImpactHours     float64   `json:"time_impact_hours"`    // per week
	CostImpact          float64   `json:"cost_impact"`          // per week
	AutomationPotential float64   `json:"automation_potential"` // 0-1
	Priority            Priority  `json:"priority"`
	CreatedAt           time.Time `json:"created_at"`
}

// AnnualHoursImpact annualizes the weekly time impact.
func (b Bottleneck) AnnualHoursImpact() float64 {
	return b.TimeImpactHours * 52
}

// AnnualCostImpact annualizes the weekly cost impact.
func (b Bottleneck) AnnualCostImpact() float64 {
	return b.CostImpact * 52
}
