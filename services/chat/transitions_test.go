package chat

import (
	"testing"

	"mahatta/models"

	"github.com/stretchr/testify/assert"
)

var allSteps = []models.Step{
	models.StepRoom,
	models.StepPattern,
	models.StepColor,
	models.StepMood,
	models.StepGenerating,
	models.StepSuggestions,
	models.StepIdle,
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from models.Step
		ev   event
		to   models.Step
		ok   bool
	}{
		{models.StepRoom, evSelectRoom, models.StepPattern, true},
		{models.StepPattern, evTogglePattern, models.StepPattern, true},
		{models.StepPattern, evConfirmPatterns, models.StepColor, true},
		{models.StepColor, evToggleColor, models.StepColor, true},
		{models.StepColor, evConfirmColors, models.StepMood, true},
		{models.StepMood, evSelectMood, models.StepGenerating, true},
		{models.StepGenerating, evResultsReady, models.StepSuggestions, true},
		{models.StepSuggestions, evQuickAction, models.StepSuggestions, true},
		{models.StepSuggestions, evAddToCart, models.StepIdle, true},
		{models.StepIdle, evQuickAction, models.StepIdle, true},
		{models.StepIdle, evAddToCart, models.StepIdle, true},

		{models.StepRoom, evSelectMood, "", false},
		{models.StepPattern, evToggleColor, "", false},
		{models.StepColor, evConfirmPatterns, "", false},
		{models.StepGenerating, evQuickAction, "", false},
		{models.StepGenerating, evAddToCart, "", false},
		{models.StepMood, evAddToCart, "", false},
		{models.StepSuggestions, evSelectRoom, "", false},
		{models.StepIdle, evResultsReady, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.ev), func(t *testing.T) {
			to, ok := transition(tt.from, tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestRestartIsLegalEverywhere(t *testing.T) {
	for _, step := range allSteps {
		to, ok := transition(step, evRestart)
		assert.True(t, ok, step)
		assert.Equal(t, models.StepRoom, to, step)
	}
}

func TestParseQuickAction(t *testing.T) {
	for _, a := range quickActions {
		got, err := ParseQuickAction(string(a))
		assert.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseQuickAction("Dance party")
	assert.ErrorIs(t, err, ErrUnknownQuickAction)
}
