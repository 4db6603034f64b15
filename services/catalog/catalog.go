// Package catalog serves the read-only wallpaper catalog and the questionnaire option tables.
package catalog

import (
	"errors"
	"fmt"

	"mahatta/models"
)

var ErrWallpaperNotFound = errors.New("wallpaper not found")

// Catalog is the ordered, read-only wallpaper collection consulted by the assistant.
type Catalog interface {
	All() []models.Wallpaper
	ByID(id string) (models.Wallpaper, error)
}

// StaticCatalog holds an immutable, ordered wallpaper list in memory.
type StaticCatalog struct {
	entries []models.Wallpaper
	byID    map[string]int
}

// NewStaticCatalog copies entries so later mutation by the caller cannot leak in.
func NewStaticCatalog(entries []models.Wallpaper) *StaticCatalog {
	c := &StaticCatalog{
		entries: append([]models.Wallpaper(nil), entries...),
		byID:    make(map[string]int, len(entries)),
	}
	for i, w := range c.entries {
		if _, dup := c.byID[w.ID]; !dup {
			c.byID[w.ID] = i
		}
	}
	return c
}

// Default returns the storefront's built-in catalog.
func Default() *StaticCatalog {
	return NewStaticCatalog(defaultWallpapers)
}

func (c *StaticCatalog) All() []models.Wallpaper {
	return append([]models.Wallpaper(nil), c.entries...)
}

func (c *StaticCatalog) ByID(id string) (models.Wallpaper, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Wallpaper{}, fmt.Errorf("%w: %q", ErrWallpaperNotFound, id)
	}
	return c.entries[i], nil
}

func (c *StaticCatalog) Len() int {
	return len(c.entries)
}

const imageBase = "https://images.unsplash.com/"

var defaultWallpapers = []models.Wallpaper{
	{ID: "1", Name: "Black Beige Textured Horizontal", Price: 75.65, Image: imageBase + "photo-1620641788421-7a1c342ea42e?auto=format&fit=crop&q=80&w=600", Category: "Abstract", RoomType: "Home Offices / Studio", Collection: "Concept Design", Surface: "Matte", Mood: "Bold", Color: "Beige"},
	{ID: "2", Name: "Distressed Vertical Texture Beige", Price: 75.65, Image: imageBase + "photo-1615529182904-14819c35db37?auto=format&fit=crop&q=80&w=600", Category: "Abstract", RoomType: "Living Room", Collection: "Concept Design", Surface: "Matte", Mood: "Calm", Color: "Beige"},
	{ID: "3", Name: "Abstract Fringed Vertical Blue", Price: 75.65, Image: imageBase + "photo-1614850523296-d8c1af93d400?auto=format&fit=crop&q=80&w=600", Category: "Modern", RoomType: "Bedroom", Collection: "Concept Design", Surface: "Glossy", Mood: "Bold", Color: "Blue"},
	{ID: "4", Name: "Geometric Tribal Pattern Beige", Price: 75.65, Image: imageBase + "photo-1544457070-4cd773b4d71e?auto=format&fit=crop&q=80&w=600", Category: "Classic & Vintage", RoomType: "Living Room", Collection: "Concept Design", Surface: "Matte", Mood: "Bold", Color: "Beige"},
	{ID: "5", Name: "Abstract Geometric Kilim Grey", Price: 75.65, Image: imageBase + "photo-1618005182384-a83a8bd57fbe?auto=format&fit=crop&q=80&w=600", Category: "Modern", RoomType: "Living Room", Collection: "Concept Design", Surface: "Matte", Mood: "Sophisticated", Color: "Grey"},
	{ID: "6", Name: "Geometric Pattern Teal Pink", Price: 75.65, Image: imageBase + "photo-1614850715649-1d0106293bd1?auto=format&fit=crop&q=80&w=600", Category: "Modern", RoomType: "Kids Room", Collection: "Pattern Design", Surface: "Glossy", Mood: "Playful", Color: "Pink"},
}
