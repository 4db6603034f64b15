package catalog

import "mahatta/models"

var (
	RoomOptions = []models.Option{
		{Label: "Living Room", Emoji: "🛋️"},
		{Label: "Bedroom", Emoji: "🛏️"},
		{Label: "Office", Emoji: "💼"},
		{Label: "Kids Room", Emoji: "🎨"},
		{Label: "Dining Room", Emoji: "🍽️"},
		{Label: "Others", Emoji: "🏠"},
	}

	PatternOptions = []models.Option{
		{Label: "Floral", Emoji: "🌸"},
		{Label: "Geometric", Emoji: "⬡"},
		{Label: "Modern", Emoji: "◈"},
		{Label: "Abstract", Emoji: "〰"},
		{Label: "Classic", Emoji: "✦"},
		{Label: "Scenic", Emoji: "🌿"},
	}

	ColorOptions = []models.Option{
		{Label: "Warm White", Hex: "#F5F0E8"},
		{Label: "Beige", Hex: "#C9B99A"},
		{Label: "Soft Grey", Hex: "#9E9B97"},
		{Label: "Navy Blue", Hex: "#1B3A5C", Dark: true},
		{Label: "Forest Green", Hex: "#2D6A4F", Dark: true},
		{Label: "Blush Pink", Hex: "#F4A0B0"},
		{Label: "Burgundy", Hex: "#7C1034", Dark: true},
		{Label: "Golden", Hex: "#D4A017"},
		{Label: "Charcoal", Hex: "#3D3D3D", Dark: true},
		{Label: "Teal", Hex: "#2D7D7D", Dark: true},
	}

	MoodOptions = []models.Option{
		{Label: "Calm", Description: "Serene & peaceful", ColorClass: "bg-sky-50 border-sky-200 text-sky-900"},
		{Label: "Bold", Description: "Striking & dramatic", ColorClass: "bg-red-50 border-red-200 text-red-900"},
		{Label: "Playful", Description: "Fun & vibrant", ColorClass: "bg-yellow-50 border-yellow-200 text-yellow-900"},
		{Label: "Luxury", Description: "Elegant & refined", ColorClass: "bg-purple-50 border-purple-200 text-purple-900"},
		{Label: "Rustic", Description: "Earthy & natural", ColorClass: "bg-amber-50 border-amber-200 text-amber-900"},
		{Label: "Sophisticated", Description: "Timeless & classic", ColorClass: "bg-rose-50 border-rose-200 text-rose-900"},
	}
)

// FindOption returns the option with the given label.
func FindOption(options []models.Option, label string) (models.Option, bool) {
	for _, o := range options {
		if o.Label == label {
			return o, true
		}
	}
	return models.Option{}, false
}
