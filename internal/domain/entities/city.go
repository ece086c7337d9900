package entities

import "strings"

// placeholderImageMarker identifies stock placeholder hosts
// (placehold.co, via.placeholder.com and friends).
const placeholderImageMarker = "placehold"

// City represents a destination city
type City struct {
	CityID      string   `json:"city_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Province    *string  `json:"province,omitempty"`
	Country     string   `json:"country"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Image       *string  `json:"image,omitempty"`
}

// HasDisplayableImage reports whether the city carries a real image.
// Cities without one are hidden from all city reads, regardless of the
// data source they came from.
func (c *City) HasDisplayableImage() bool {
	if c.Image == nil {
		return false
	}
	image := strings.TrimSpace(*c.Image)
	if image == "" {
		return false
	}
	return !strings.Contains(strings.ToLower(image), placeholderImageMarker)
}
