package chat

import (
	"errors"
	"fmt"
)

var ErrUnknownQuickAction = errors.New("unknown quick action")

// QuickAction is one of the fixed follow-up buttons offered after results and after a cart add.
type QuickAction string

const (
	ActionShowDifferent QuickAction = "Show different options"
	ActionExploreAll    QuickAction = "Explore all wallpapers"
	ActionStartOver     QuickAction = "Start over"
	ActionDesignAnother QuickAction = "Design another room"
	ActionViewCart      QuickAction = "View my cart"
	ActionBrowse        QuickAction = "Browse collection"
)

var quickActions = []QuickAction{
	ActionShowDifferent,
	ActionExploreAll,
	ActionStartOver,
	ActionDesignAnother,
	ActionViewCart,
	ActionBrowse,
}

// ParseQuickAction validates a label received from a client.
func ParseQuickAction(label string) (QuickAction, error) {
	for _, a := range quickActions {
		if string(a) == label {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQuickAction, label)
}
