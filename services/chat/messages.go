package chat

import (
	"fmt"
	"strings"
	"time"

	"mahatta/models"
	"mahatta/services/catalog"
)

// Pacing between messages, before PACING_SCALE is applied.
const (
	roomPromptDelay  = 700 * time.Millisecond
	ackDelay         = 400 * time.Millisecond
	promptDelay      = 1000 * time.Millisecond
	loadingDelay     = 400 * time.Millisecond
	revealDelay      = 2200 * time.Millisecond
	shuffleDelay     = 400 * time.Millisecond
	cartConfirmDelay = 300 * time.Millisecond
	navigateDelay    = 800 * time.Millisecond
	browseDelay      = 600 * time.Millisecond
)

const shuffleSize = 3

const (
	greetingText       = "Hi! I'm NUR ✨ — your personal wallpaper design guide. Let's find the perfect wallpaper for your space."
	roomPromptText     = "Which room are we designing today?"
	patternAckText     = "Excellent taste! Now let's talk color palette."
	patternPromptText  = "What kind of patterns speak to you? Pick all that you like:"
	colorPromptText    = "Which colors feel right for your space? Select all that appeal to you:"
	colorAckText       = "Beautiful palette! One last thing —"
	moodPromptText     = "What mood do you want your room to evoke?"
	loadingText        = "Curating your perfect wallpapers..."
	resultsActionsText = "Love any of these? Or want me to refine the search?"
	shuffleText        = "Here are some fresh alternatives for you:"
	exploreText        = "Taking you to our full collection! 🛍️"
	viewCartText       = "Here's your cart. Happy designing! 🛒"
)

func roomAckText(room string) string {
	return fmt.Sprintf("Great choice! A %s sets the tone for the entire home. 🎨", strings.ToLower(room))
}

func cartConfirmText(name string) string {
	return fmt.Sprintf("\"%s\" is in your cart! 🛒 Shall we keep designing?", name)
}

// echo renders selections the way the shopper picked them, with the option emoji when there is one.
func echo(options []models.Option, labels []string) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		if o, ok := catalog.FindOption(options, l); ok && o.Emoji != "" {
			parts = append(parts, o.Emoji+" "+l)
			continue
		}
		parts = append(parts, l)
	}
	return strings.Join(parts, ", ")
}

func actionOptions(actions ...QuickAction) []models.Option {
	out := make([]models.Option, 0, len(actions))
	for _, a := range actions {
		out = append(out, models.Option{Label: string(a)})
	}
	return out
}
