package chat

import "mahatta/models"

type event string

const (
	evRestart         event = "restart"
	evSelectRoom      event = "select-room"
	evTogglePattern   event = "toggle-pattern"
	evConfirmPatterns event = "confirm-patterns"
	evToggleColor     event = "toggle-color"
	evConfirmColors   event = "confirm-colors"
	evSelectMood      event = "select-mood"
	evResultsReady    event = "results-ready"
	evQuickAction     event = "quick-action"
	evAddToCart       event = "add-to-cart"
)

type edge struct {
	from models.Step
	ev   event
}

// transitions is the whole dialogue state table. Restart is legal from every step and is
// handled in transition.
var transitions = map[edge]models.Step{
	{models.StepRoom, evSelectRoom}:         models.StepPattern,
	{models.StepPattern, evTogglePattern}:   models.StepPattern,
	{models.StepPattern, evConfirmPatterns}: models.StepColor,
	{models.StepColor, evToggleColor}:       models.StepColor,
	{models.StepColor, evConfirmColors}:     models.StepMood,
	{models.StepMood, evSelectMood}:         models.StepGenerating,
	{models.StepGenerating, evResultsReady}: models.StepSuggestions,
	{models.StepSuggestions, evQuickAction}: models.StepSuggestions,
	{models.StepSuggestions, evAddToCart}:   models.StepIdle,
	{models.StepIdle, evQuickAction}:        models.StepIdle,
	{models.StepIdle, evAddToCart}:          models.StepIdle,
}

// transition returns the step reached by ev from step, and false when ev is not legal there.
func transition(from models.Step, ev event) (models.Step, bool) {
	if ev == evRestart {
		return models.StepRoom, true
	}
	to, ok := transitions[edge{from, ev}]
	return to, ok
}
