package entities

// Place represents a visitable place inside a city. Features and Images are
// denormalized from child tables on the remote backend and are always
// non-nil, empty when the place has no child rows.
type Place struct {
	PlaceID     string   `json:"place_id"`
	CityID      string   `json:"city_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	MapURL      *string  `json:"map_url,omitempty"`
	Features    []string `json:"features"`
	Images      []string `json:"images"`
}
