package repositories

import (
	"context"

	"github.com/hamsafar-mirza/backend/internal/domain/entities"
)

// PlaceRepository defines the read interface for places
type PlaceRepository interface {
	// GetAll retrieves every place
	GetAll(ctx context.Context) ([]entities.Place, error)

	// GetByID retrieves a place by id
	GetByID(ctx context.Context, placeID string) (*entities.Place, error)

	// GetByIDs retrieves the places matching the given ids
	GetByIDs(ctx context.Context, placeIDs []string) ([]entities.Place, error)

	// GetByCityID retrieves the places inside a city
	GetByCityID(ctx context.Context, cityID string) ([]entities.Place, error)
}
