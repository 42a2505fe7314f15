package intake

import (
	"github.com/vfg2006/business-doctor-api/internal/config"
	"github.com/vfg2006/business-doctor-api/internal/domain"
)

// Prompt pools per stage. Prompts are consumed in order within a stage; once
// a pool runs out the machine falls back to the generic probe.
var stagePrompts = map[domain.Stage][]string{
	domain.StageOpening: {
		"Tell me a bit about your company. What do you do and roughly how many people work there?",
		"What industry are you in, and what does a typical week look like for your team?",
		"Before we dig in, how would you describe the business in a couple of sentences?",
	},
	domain.StageDiscovery: {
		"What part of your operation eats the most time right now?",
		"Which tasks does your team complain about the most?",
		"Where do things tend to fall through the cracks?",
	},
	domain.StageDeepDive: {
		"Walk me through that process step by step. Who touches it and how long does each step take?",
		"How many hours a week would you say that costs you across the team?",
		"What happens when that process goes wrong? What does a bad week look like?",
	},
	domain.StageSynthesis: {
		"If you could wave a magic wand and fix one thing tomorrow, what would it be?",
		"Of everything we discussed, which problem hurts revenue the most?",
		"Is there anything important about the business we have not covered yet?",
	},
}

const fallbackPrompt = "Interesting. Can you tell me more about how that affects the business day to day?"

// StageMachine drives a consultation through its stages. Stages only move
// forward; there is no path back from a later stage to an earlier one.
type StageMachine struct {
	minInformative int
	turnCeiling    int
}

func NewStageMachine(cfg config.Intake) *StageMachine {
	return &StageMachine{
		minInformative: cfg.MinInformativeExchanges,
		turnCeiling:    cfg.StageTurnCeiling,
	}
}

// ShouldAdvance reports whether the current stage has done its job: either
// enough informative exchanges happened, or the turn ceiling forces the
// conversation onward so it never stalls on an unresponsive client.
func (m *StageMachine) ShouldAdvance(informativeExchanges, turnsInStage int) bool {
	if informativeExchanges >= m.minInformative {
		return true
	}
	return turnsInStage >= m.turnCeiling
}

// Advance returns the stage after the given one. Completed is terminal.
func (m *StageMachine) Advance(stage domain.Stage) domain.Stage {
	return stage.Next()
}

// Prompt picks the next consultant question for the stage. turnsInStage
// indexes into the stage pool so a question is never repeated within a stage.
func (m *StageMachine) Prompt(stage domain.Stage, turnsInStage int) string {
	pool, ok := stagePrompts[stage]
	if !ok || turnsInStage < 0 || turnsInStage >= len(pool) {
		return fallbackPrompt
	}
	return pool[turnsInStage]
}
