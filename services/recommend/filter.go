// Package recommend maps questionnaire answers onto the wallpaper catalog.
package recommend

import (
	"strings"

	"mahatta/models"
)

const (
	MaxResults   = 5
	MinResults   = 2
	FallbackSize = 3
)

// roomToType maps the assistant's room answers onto catalog room types. "Others" does not filter.
var roomToType = map[string]string{
	"Living Room": "Living Room",
	"Bedroom":     "Bedroom",
	"Office":      "Home Offices / Studio",
	"Kids Room":   "Kids Room",
	"Dining Room": "Dining Room",
	"Others":      "",
}

// patternToCategories maps a pattern answer onto every catalog category it covers.
var patternToCategories = map[string][]string{
	"Floral":    {"Florals"},
	"Geometric": {"Modern", "Abstract & Geometric"},
	"Modern":    {"Modern"},
	"Abstract":  {"Abstract"},
	"Classic":   {"Classic & Vintage"},
	"Scenic":    {"Scenic", "Nature"},
}

// Stage records what one preference filter did to the candidate set.
type Stage struct {
	Name      string `json:"name"`
	Before    int    `json:"before"`
	Matched   int    `json:"matched"`
	Discarded bool   `json:"discarded"` // the filter matched nothing and was dropped
	After     int    `json:"after"`
}

type stage struct {
	name string
	keep func(models.Wallpaper) bool
}

// stagesFor returns the active filters in preference order: room, pattern, mood, colour.
func stagesFor(prefs models.Preferences) []stage {
	var stages []stage

	if roomType := roomToType[prefs.Room]; roomType != "" {
		stages = append(stages, stage{"room", func(w models.Wallpaper) bool {
			return w.RoomType == roomType
		}})
	}

	var cats []string
	for _, p := range prefs.Patterns {
		cats = append(cats, patternToCategories[p]...)
	}
	if len(cats) > 0 {
		stages = append(stages, stage{"pattern", func(w models.Wallpaper) bool {
			for _, c := range cats {
				if strings.Contains(w.Category, c) {
					return true
				}
			}
			return false
		}})
	}

	if prefs.Mood != "" {
		stages = append(stages, stage{"mood", func(w models.Wallpaper) bool {
			return strings.EqualFold(w.Mood, prefs.Mood)
		}})
	}

	if len(prefs.Colors) > 0 {
		keywords := make([]string, 0, len(prefs.Colors))
		for _, c := range prefs.Colors {
			keywords = append(keywords, colorKeyword(c))
		}
		stages = append(stages, stage{"color", func(w models.Wallpaper) bool {
			color := strings.ToLower(w.Color)
			for _, kw := range keywords {
				if strings.Contains(color, kw) {
					return true
				}
			}
			return false
		}})
	}
	return stages
}

// colorKeyword is the last word of a colour name, so "Forest Green" matches "Green".
func colorKeyword(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// Explain runs the narrowing filters and reports every stage. The returned slice is the
// candidate set before the minimum-size fallback and the result cap are applied.
func Explain(prefs models.Preferences, entries []models.Wallpaper) ([]models.Wallpaper, []Stage) {
	results := append([]models.Wallpaper(nil), entries...)
	stages := stagesFor(prefs)
	trace := make([]Stage, 0, len(stages))

	for _, s := range stages {
		filtered := make([]models.Wallpaper, 0, len(results))
		for _, w := range results {
			if s.keep(w) {
				filtered = append(filtered, w)
			}
		}
		st := Stage{Name: s.name, Before: len(results), Matched: len(filtered)}
		if len(filtered) > 0 {
			results = filtered
		} else {
			st.Discarded = true
		}
		st.After = len(results)
		trace = append(trace, st)
	}
	return results, trace
}

// Filter returns at most MaxResults wallpapers in catalog order. Filters that would empty the
// set are skipped; fewer than MinResults survivors fall back to the first FallbackSize entries.
func Filter(prefs models.Preferences, entries []models.Wallpaper) []models.Wallpaper {
	results, _ := Explain(prefs, entries)
	return settle(results, entries)
}

func settle(results, entries []models.Wallpaper) []models.Wallpaper {
	if len(results) < MinResults {
		results = head(entries, FallbackSize)
	}
	return head(results, MaxResults)
}

func head(ws []models.Wallpaper, n int) []models.Wallpaper {
	if len(ws) > n {
		ws = ws[:n]
	}
	return append([]models.Wallpaper(nil), ws...)
}
