package database

import (
	"context"
	"errors"

	"github.com/hamsafar-mirza/backend/internal/adapters/mockdata"
	"github.com/hamsafar-mirza/backend/internal/datasource"
	"github.com/hamsafar-mirza/backend/internal/domain/entities"
	"github.com/hamsafar-mirza/backend/internal/domain/repositories"
	"github.com/hamsafar-mirza/backend/internal/infrastructure/clients/supabase"
)

// placeSelection embeds the feature and image child tables so one request
// returns the fully denormalized place.
var placeSelection = []string{"*", "place_features(feature)", "place_images(image_url)"}

// PlaceAdapter implements PlaceRepository over the resolved data source
type PlaceAdapter struct {
	resolver *datasource.Resolver
	client   *supabase.Client
	mock     *mockdata.Dataset
}

// NewPlaceAdapter creates a new place adapter
func NewPlaceAdapter(resolver *datasource.Resolver, client *supabase.Client, mock *mockdata.Dataset) repositories.PlaceRepository {
	return &PlaceAdapter{resolver: resolver, client: client, mock: mock}
}

// GetAll retrieves every place
func (a *PlaceAdapter) GetAll(ctx context.Context) ([]entities.Place, error) {
	return fetch(ctx, a.resolver, "places", "list",
		func() ([]entities.Place, error) {
			out := make([]entities.Place, len(a.mock.Places))
			copy(out, a.mock.Places)
			return out, nil
		},
		func(ctx context.Context) ([]entities.Place, error) {
			var rows []placeRow
			if err := a.client.From("places").Select(placeSelection...).Get(ctx, &rows); err != nil {
				return nil, err
			}
			return placeEntities(rows), nil
		},
	)
}

// GetByID retrieves a place by id; a missing place yields (nil, nil)
func (a *PlaceAdapter) GetByID(ctx context.Context, placeID string) (*entities.Place, error) {
	return fetch(ctx, a.resolver, "places", "get",
		func() (*entities.Place, error) {
			return a.mock.PlaceByID(placeID), nil
		},
		func(ctx context.Context) (*entities.Place, error) {
			var row placeRow
			err := a.client.From("places").Select(placeSelection...).Eq("place_id", placeID).Single().Get(ctx, &row)
			if errors.Is(err, supabase.ErrNoRows) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			place := row.toEntity()
			return &place, nil
		},
	)
}

// GetByIDs retrieves the places matching the given ids
func (a *PlaceAdapter) GetByIDs(ctx context.Context, placeIDs []string) ([]entities.Place, error) {
	if len(placeIDs) == 0 {
		return []entities.Place{}, nil
	}
	return fetch(ctx, a.resolver, "places", "batch_get",
		func() ([]entities.Place, error) {
			return a.mock.PlacesByIDs(placeIDs), nil
		},
		func(ctx context.Context) ([]entities.Place, error) {
			var rows []placeRow
			if err := a.client.From("places").Select(placeSelection...).In("place_id", placeIDs).Get(ctx, &rows); err != nil {
				return nil, err
			}
			return placeEntities(rows), nil
		},
	)
}

// GetByCityID retrieves the places inside a city
func (a *PlaceAdapter) GetByCityID(ctx context.Context, cityID string) ([]entities.Place, error) {
	return fetch(ctx, a.resolver, "places", "list_by_city",
		func() ([]entities.Place, error) {
			return a.mock.PlacesByCityID(cityID), nil
		},
		func(ctx context.Context) ([]entities.Place, error) {
			var rows []placeRow
			if err := a.client.From("places").Select(placeSelection...).Eq("city_id", cityID).Get(ctx, &rows); err != nil {
				return nil, err
			}
			return placeEntities(rows), nil
		},
	)
}

func placeEntities(rows []placeRow) []entities.Place {
	out := make([]entities.Place, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEntity())
	}
	return out
}
