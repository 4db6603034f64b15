package catalog

import (
	"sort"

	"mahatta/models"
)

// Sort orders for the listing page.
const (
	SortRelevance = "relevance"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// FilterAll as a filter type or value leaves the listing unconstrained.
const FilterAll = "all"

// Listing narrows the catalog for the listing page. Empty or "all" fields do not constrain.
type Listing struct {
	Category string `form:"category"`
	RoomType string `form:"roomType"`
	Mood     string `form:"mood"`
	Sort     string `form:"sort"`
}

// ListingFor builds the listing a navigation directive points at.
func ListingFor(filterType, filterValue string) Listing {
	var l Listing
	switch filterType {
	case "category":
		l.Category = filterValue
	case "roomType":
		l.RoomType = filterValue
	case "mood":
		l.Mood = filterValue
	}
	return l
}

// Apply returns the matching wallpapers; relevance keeps catalog order.
func (l Listing) Apply(entries []models.Wallpaper) []models.Wallpaper {
	out := make([]models.Wallpaper, 0, len(entries))
	for _, w := range entries {
		if constrained(l.Category) && w.Category != l.Category {
			continue
		}
		if constrained(l.RoomType) && w.RoomType != l.RoomType {
			continue
		}
		if constrained(l.Mood) && w.Mood != l.Mood {
			continue
		}
		out = append(out, w)
	}

	switch l.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

func constrained(v string) bool {
	return v != "" && v != FilterAll
}
