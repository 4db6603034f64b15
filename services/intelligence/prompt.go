package ai

import (
	"fmt"
	"strings"

	"mahatta/models"
)

// BuildPrompt asks for a one-sentence rationale for the curated wallpapers.
func BuildPrompt(prefs models.Preferences, picks []models.Wallpaper) string {
	names := make([]string, 0, len(picks))
	for _, w := range picks {
		names = append(names, w.Name)
	}

	var b strings.Builder
	b.WriteString("You are NUR, a friendly AI wallpaper design assistant for MahattaArt.\n")
	fmt.Fprintf(&b, "A customer wants wallpapers for their %s. They like %s patterns, prefer %s colors, and want a %s feel.\n",
		prefs.Room,
		joinOr(prefs.Patterns, "various"),
		joinOr(prefs.Colors, "neutral"),
		or(prefs.Mood, "balanced"),
	)
	fmt.Fprintf(&b, "I've curated these for them: %s.\n", strings.Join(names, ", "))
	b.WriteString(`Write ONE warm, enthusiastic sentence (max 20 words) explaining why these match perfectly. No markdown. Start with "I've curated..."`)
	return b.String()
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
