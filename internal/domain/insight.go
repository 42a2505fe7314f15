package domain

import "time"

// Effort is the estimated implementation effort of acting on an insight.
type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

var effortMultipliers = map[Effort]float64{
	EffortLow:    1.5,
	EffortMedium: 1.0,
	EffortHigh:   0.5,
}

// Insight is a derived observation about the business, produced at report time
// from bottlenecks and benchmark comparisons. Immutable once stored.
type Insight struct {
	ID             string    `json:"id"`
	ConsultationID string    `json:"consultation_id"`
	Category       string    `json:"category"`
	Text           string    `json:"text"`
	Confidence     float64   `json:"confidence"` // 0-1
	PotentialValue float64   `json:"potential_value"`
	Effort         Effort    `json:"implementation_effort"`
	CreatedAt      time.Time `json:"created_at"`
}

// PriorityScore ranks insights by value weighted by confidence and effort.
func (i Insight) PriorityScore() float64 {
	multiplier, ok := effortMultipliers[i.Effort]
	if !ok {
		multiplier = 1.0
	}
	return i.PotentialValue * i.Confidence * multiplier
}
