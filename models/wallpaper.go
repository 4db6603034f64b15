package models

// Wallpaper is one sellable catalog entry.
type Wallpaper struct {
	ID         string  `json:"id" bson:"id"`
	Name       string  `json:"name" bson:"name"`
	Price      float64 `json:"price" bson:"price"`
	Image      string  `json:"image" bson:"image"`           // media reference: URL or Cloudinary public id
	Category   string  `json:"category" bson:"category"`     // e.g. "Modern", "Classic & Vintage"
	RoomType   string  `json:"roomType" bson:"roomType"`     // e.g. "Bedroom", "Home Offices / Studio"
	Collection string  `json:"collection" bson:"collection"` // e.g. "Concept Design"
	Surface    string  `json:"surface" bson:"surface"`       // "Matte" or "Glossy"
	Mood       string  `json:"mood" bson:"mood"`
	Color      string  `json:"color" bson:"color"` // dominant colour
}

// CartLine is a wallpaper held in a shopper's cart.
type CartLine struct {
	Wallpaper Wallpaper `json:"wallpaper"`
	Quantity  int64     `json:"quantity"`
}
