package domain

import "time"

// ConsultationStatus is the lifecycle status of a consultation. Transitions are
// monotone: in_progress -> completed, never back.
type ConsultationStatus string

const (
	StatusInProgress ConsultationStatus = "in_progress"
	StatusCompleted  ConsultationStatus = "completed"
)

// Stage is a phase of the intake conversation. Progression is linear.
type Stage string

const (
	StageOpening   Stage = "opening"
	StageDiscovery Stage = "discovery"
	StageDeepDive  Stage = "deep_dive"
	StageSynthesis Stage = "synthesis"
	StageCompleted Stage = "completed"
)

// StageOrder lists the stages in progression order.
var StageOrder = []Stage{
	StageOpening,
	StageDiscovery,
	StageDeepDive,
	StageSynthesis,
	StageCompleted,
}

// Next returns the stage that follows s. The terminal stage returns itself.
func (s Stage) Next() Stage {
	for i, stage := range StageOrder {
		if stage == s && i < len(StageOrder)-1 {
			return StageOrder[i+1]
		}
	}
	return StageCompleted
}

// Index returns the position of s in the progression, or -1 for an unknown stage.
func (s Stage) Index() int {
	for i, stage := range StageOrder {
		if stage == s {
			return i
		}
	}
	return -1
}

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is a single turn in the consultation transcript.
type Message struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// Consultation is one end-to-end intake session with a prospective client.
// StageTurns and StageInformative count client turns within the current stage
// and reset on every stage advancement.
type Consultation struct {
	ID               string             `json:"id"`
	ClientID         string             `json:"client_id"`
	CompanyName      string             `json:"company_name"`
	Status           ConsultationStatus `json:"status"`
	Stage            Stage              `json:"stage"`
	StageTurns       int                `json:"stage_turns"`
	StageInformative int                `json:"stage_informative"`
	Transcript       []Message          `json:"transcript"`
	Metrics          CompanyMetrics     `json:"metrics"`
	StartTime        time.Time          `json:"start_time"`
	EndTime          *time.Time         `json:"end_time,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// TurnResult is what a processed turn reports back to the caller.
type TurnResult struct {
	ConsultationID  string `json:"consultation_id"`
	Stage           Stage  `json:"stage"`
	Prompt          string `json:"prompt"`
	FactsFound      int    `json:"facts_found"`
	BottlenecksNew  int    `json:"bottlenecks_new"`
	BottleneckCount int    `json:"bottleneck_count"`
	Completed       bool   `json:"completed"`
}
