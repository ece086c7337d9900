package repositories

import (
	"context"

	"github.com/hamsafar-mirza/backend/internal/domain/entities"
)

// CityRepository defines the read interface for cities. All reads apply the
// displayable-image policy: cities without a real image are invisible, both
// in listings and by-id lookups, whatever the data source.
type CityRepository interface {
	// GetAll retrieves every visible city
	GetAll(ctx context.Context) ([]entities.City, error)

	// GetByID retrieves a visible city by id
	GetByID(ctx context.Context, cityID string) (*entities.City, error)

	// GetByIDs retrieves the visible cities matching the given ids
	GetByIDs(ctx context.Context, cityIDs []string) ([]entities.City, error)
}
