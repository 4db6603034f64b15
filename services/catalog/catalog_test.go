package catalog

import (
	"testing"

	"mahatta/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogOrderAndLookup(t *testing.T) {
	c := Default()
	all := c.All()
	require.Len(t, all, 6)
	for i, w := range all {
		assert.Equal(t, string(rune('1'+i)), w.ID)
	}

	w, err := c.ByID("3")
	require.NoError(t, err)
	assert.Equal(t, "Abstract Fringed Vertical Blue", w.Name)

	_, err = c.ByID("nope")
	assert.ErrorIs(t, err, ErrWallpaperNotFound)
}

func TestCatalogIsReadOnly(t *testing.T) {
	src := []models.Wallpaper{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	c := NewStaticCatalog(src)
	src[0].Name = "mutated"

	all := c.All()
	all[1].Name = "mutated too"

	fresh := c.All()
	assert.Equal(t, "A", fresh[0].Name)
	assert.Equal(t, "B", fresh[1].Name)
}

func TestListingApply(t *testing.T) {
	entries := []models.Wallpaper{
		{ID: "1", Category: "Modern", RoomType: "Bedroom", Mood: "Bold", Price: 30},
		{ID: "2", Category: "Modern", RoomType: "Living Room", Mood: "Calm", Price: 10},
		{ID: "3", Category: "Abstract", RoomType: "Bedroom", Mood: "Bold", Price: 20},
	}

	tests := []struct {
		name    string
		listing Listing
		want    []string
	}{
		{"all", Listing{Category: "all", RoomType: "all", Mood: "all"}, []string{"1", "2", "3"}},
		{"category", Listing{Category: "Modern"}, []string{"1", "2"}},
		{"room and mood", Listing{RoomType: "Bedroom", Mood: "Bold"}, []string{"1", "3"}},
		{"price ascending", Listing{Sort: SortPriceAsc}, []string{"2", "3", "1"}},
		{"price descending", Listing{Sort: SortPriceDesc}, []string{"1", "3", "2"}},
		{"no match", Listing{Mood: "Rustic"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.listing.Apply(entries)
			ids := make([]string, 0, len(got))
			for _, w := range got {
				ids = append(ids, w.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestListingFor(t *testing.T) {
	assert.Equal(t, Listing{RoomType: "Bedroom"}, ListingFor("roomType", "Bedroom"))
	assert.Equal(t, Listing{Category: "Modern"}, ListingFor("category", "Modern"))
	assert.Equal(t, Listing{}, ListingFor("all", "all"))
}

func TestFindOption(t *testing.T) {
	o, ok := FindOption(ColorOptions, "Navy Blue")
	require.True(t, ok)
	assert.True(t, o.Dark)
	assert.Equal(t, "#1B3A5C", o.Hex)

	_, ok = FindOption(RoomOptions, "Garage")
	assert.False(t, ok)
}
