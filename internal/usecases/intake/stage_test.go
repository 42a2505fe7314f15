package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/business-doctor-api/internal/config"
	"github.com/vfg2006/business-doctor-api/internal/domain"
)

func newTestStageMachine() *StageMachine {
	return NewStageMachine(config.Intake{
		MinInformativeExchanges: 2,
		StageTurnCeiling:        6,
	})
}

func TestStageMachine_ShouldAdvance(t *testing.T) {
	machine := newTestStageMachine()

	tests := []struct {
		name        string
		informative int
		turns       int
		want        bool
	}{
		{
			name:        "not enough information and few turns",
			informative: 1,
			turns:       3,
			want:        false,
		},
		{
			name:        "informative threshold reached",
			informative: 2,
			turns:       2,
			want:        true,
		},
		{
			name:        "turn ceiling forces advancement",
			informative: 0,
			turns:       6,
			want:        true,
		},
		{
			name:        "fresh stage",
			informative: 0,
			turns:       0,
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, machine.ShouldAdvance(tt.informative, tt.turns))
		})
	}
}

func TestStageMachine_AdvanceIsMonotonic(t *testing.T) {
	machine := newTestStageMachine()

	for _, stage := range domain.StageOrder {
		next := machine.Advance(stage)
		assert.GreaterOrEqual(t, next.Index(), stage.Index(),
			"advance from %s must never move backwards", stage)
	}

	assert.Equal(t, domain.StageCompleted, machine.Advance(domain.StageCompleted))
}

func TestStageMachine_AdvanceFollowsOrder(t *testing.T) {
	machine := newTestStageMachine()

	stage := domain.StageOpening
	seen := []domain.Stage{stage}
	for stage != domain.StageCompleted {
		stage = machine.Advance(stage)
		seen = append(seen, stage)
	}

	assert.Equal(t, domain.StageOrder, seen)
}

func TestStageMachine_Prompt(t *testing.T) {
	machine := newTestStageMachine()

	t.Run("no repeats within a stage pool", func(t *testing.T) {
		used := map[string]bool{}
		for turn := 0; turn < len(stagePrompts[domain.StageDiscovery]); turn++ {
			prompt := machine.Prompt(domain.StageDiscovery, turn)
			assert.False(t, used[prompt], "prompt repeated: %s", prompt)
			used[prompt] = true
		}
	})

	t.Run("exhausted pool falls back to generic probe", func(t *testing.T) {
		prompt := machine.Prompt(domain.StageOpening, len(stagePrompts[domain.StageOpening]))
		assert.Equal(t, fallbackPrompt, prompt)
	})

	t.Run("terminal stage has no pool", func(t *testing.T) {
		assert.Equal(t, fallbackPrompt, machine.Prompt(domain.StageCompleted, 0))
	})
}
