package recommend

import (
	"testing"

	"mahatta/models"
	"mahatta/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ws []models.Wallpaper) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.ID)
	}
	return out
}

func TestFilterSingleMatchLeadsResults(t *testing.T) {
	entries := []models.Wallpaper{
		{ID: "fringed", Name: "Abstract Fringed Vertical Blue", Category: "Modern", RoomType: "Bedroom", Mood: "Bold", Color: "Blue"},
		{ID: "calm", Category: "Abstract", RoomType: "Living Room", Mood: "Calm", Color: "Beige"},
		{ID: "kids", Category: "Modern", RoomType: "Kids Room", Mood: "Playful", Color: "Pink"},
		{ID: "vintage", Category: "Classic & Vintage", RoomType: "Living Room", Mood: "Bold", Color: "Beige"},
	}
	prefs := models.Preferences{Room: "Bedroom", Patterns: []string{"Modern"}, Colors: []string{"Navy Blue"}, Mood: "Bold"}

	got := Filter(prefs, entries)
	require.NotEmpty(t, got)
	assert.Equal(t, "Abstract Fringed Vertical Blue", got[0].Name)
}

func TestFilterDiscardsEmptyMoodStage(t *testing.T) {
	prefs := models.Preferences{
		Room:     "Living Room",
		Patterns: []string{"Abstract", "Classic"},
		Colors:   []string{"Beige"},
		Mood:     "Rustic",
	}
	all := catalog.Default().All()

	survivors, stages := Explain(prefs, all)
	assert.Equal(t, []string{"2", "4"}, ids(survivors))

	require.Len(t, stages, 4)
	assert.Equal(t, "mood", stages[2].Name)
	assert.True(t, stages[2].Discarded)
	assert.Equal(t, stages[2].Before, stages[2].After)

	assert.Equal(t, []string{"2", "4"}, ids(Filter(prefs, all)))
}

func TestFilterFallsBackToCatalogHead(t *testing.T) {
	prefs := models.Preferences{Room: "Bedroom", Patterns: []string{"Modern"}, Colors: []string{"Navy Blue"}, Mood: "Bold"}
	got := Filter(prefs, catalog.Default().All())
	assert.Equal(t, []string{"1", "2", "3"}, ids(got))
}

func TestFilterCapsResults(t *testing.T) {
	var entries []models.Wallpaper
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		entries = append(entries, models.Wallpaper{ID: id, RoomType: "Living Room", Category: "Modern", Mood: "Calm", Color: "Grey"})
	}
	got := Filter(models.Preferences{Room: "Living Room", Mood: "Calm"}, entries)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(got))
}

func TestFilterOthersRoomDoesNotConstrain(t *testing.T) {
	_, stages := Explain(models.Preferences{Room: "Others"}, catalog.Default().All())
	assert.Empty(t, stages)
	assert.Len(t, Filter(models.Preferences{Room: "Others"}, catalog.Default().All()), 5)
}

func TestFilterPatternMapsToSeveralCategories(t *testing.T) {
	entries := []models.Wallpaper{
		{ID: "1", Category: "Abstract & Geometric"},
		{ID: "2", Category: "Florals"},
		{ID: "3", Category: "Modern"},
		{ID: "4", Category: "Nature"},
	}
	assert.Equal(t, []string{"1", "3"}, ids(Filter(models.Preferences{Patterns: []string{"Geometric"}}, entries)))
	assert.Equal(t, []string{"1", "2", "3"}, ids(Filter(models.Preferences{Patterns: []string{"Scenic"}}, entries)))
	assert.Equal(t, []string{"2", "4"}, ids(Filter(models.Preferences{Patterns: []string{"Floral", "Scenic"}}, entries)))
}

func TestFilterColorMatchesLastWord(t *testing.T) {
	entries := []models.Wallpaper{
		{ID: "1", Color: "Green"},
		{ID: "2", Color: "Dark Green"},
		{ID: "3", Color: "Beige"},
	}
	got := Filter(models.Preferences{Colors: []string{"Forest Green"}}, entries)
	assert.Equal(t, []string{"1", "2"}, ids(got))
}

func TestFilterMoodIsCaseInsensitive(t *testing.T) {
	entries := []models.Wallpaper{
		{ID: "1", Mood: "BOLD"},
		{ID: "2", Mood: "bold"},
		{ID: "3", Mood: "Calm"},
	}
	assert.Equal(t, []string{"1", "2"}, ids(Filter(models.Preferences{Mood: "Bold"}, entries)))
}

func TestFilterNeverEmptyForAnyAnswerCombination(t *testing.T) {
	all := catalog.Default().All()
	for _, room := range catalog.RoomOptions {
		for _, pattern := range catalog.PatternOptions {
			for _, color := range catalog.ColorOptions {
				for _, mood := range catalog.MoodOptions {
					prefs := models.Preferences{
						Room:     room.Label,
						Patterns: []string{pattern.Label},
						Colors:   []string{color.Label},
						Mood:     mood.Label,
					}
					got := Filter(prefs, all)
					require.NotEmpty(t, got, "prefs %+v", prefs)
					require.LessOrEqual(t, len(got), MaxResults)
				}
			}
		}
	}
}

func TestExplainStagesNeverGrow(t *testing.T) {
	all := catalog.Default().All()
	for _, room := range catalog.RoomOptions {
		for _, mood := range catalog.MoodOptions {
			prefs := models.Preferences{
				Room:     room.Label,
				Patterns: []string{"Modern", "Abstract"},
				Colors:   []string{"Beige", "Navy Blue"},
				Mood:     mood.Label,
			}
			_, stages := Explain(prefs, all)
			for _, st := range stages {
				assert.LessOrEqual(t, st.After, st.Before, "stage %s for %+v", st.Name, prefs)
				if !st.Discarded {
					assert.Equal(t, st.Matched, st.After)
				} else {
					assert.Zero(t, st.Matched)
				}
			}
		}
	}
}

func TestFilterDoesNotMutateCatalog(t *testing.T) {
	cat := catalog.Default()
	before := cat.All()
	got := Filter(models.Preferences{Room: "Living Room"}, cat.All())
	got[0].Name = "changed"
	assert.Equal(t, before, cat.All())
}
