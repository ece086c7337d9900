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

// CityAdapter implements CityRepository. Every read, single or batch, from
// either data source, hides cities without a displayable image.
type CityAdapter struct {
	resolver *datasource.Resolver
	client   *supabase.Client
	mock     *mockdata.Dataset
}

// NewCityAdapter creates a new city adapter
func NewCityAdapter(resolver *datasource.Resolver, client *supabase.Client, mock *mockdata.Dataset) repositories.CityRepository {
	return &CityAdapter{resolver: resolver, client: client, mock: mock}
}

// GetAll retrieves every displayable city
func (a *CityAdapter) GetAll(ctx context.Context) ([]entities.City, error) {
	return fetch(ctx, a.resolver, "cities", "list",
		func() ([]entities.City, error) {
			return displayableCities(a.mock.Cities), nil
		},
		func(ctx context.Context) ([]entities.City, error) {
			var rows []cityRow
			if err := a.client.From("cities").Select("*").Get(ctx, &rows); err != nil {
				return nil, err
			}
			cities := make([]entities.City, 0, len(rows))
			for _, r := range rows {
				cities = append(cities, r.toEntity())
			}
			return displayableCities(cities), nil
		},
	)
}

// GetByID retrieves a city by id. A missing city and a city without a
// displayable image both yield (nil, nil).
func (a *CityAdapter) GetByID(ctx context.Context, cityID string) (*entities.City, error) {
	return fetch(ctx, a.resolver, "cities", "get",
		func() (*entities.City, error) {
			return displayableCity(a.mock.CityByID(cityID)), nil
		},
		func(ctx context.Context) (*entities.City, error) {
			var row cityRow
			err := a.client.From("cities").Select("*").Eq("city_id", cityID).Single().Get(ctx, &row)
			if errors.Is(err, supabase.ErrNoRows) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			city := row.toEntity()
			return displayableCity(&city), nil
		},
	)
}

// GetByIDs retrieves the displayable cities matching the given ids
func (a *CityAdapter) GetByIDs(ctx context.Context, cityIDs []string) ([]entities.City, error) {
	if len(cityIDs) == 0 {
		return []entities.City{}, nil
	}
	return fetch(ctx, a.resolver, "cities", "batch_get",
		func() ([]entities.City, error) {
			return displayableCities(a.mock.CitiesByIDs(cityIDs)), nil
		},
		func(ctx context.Context) ([]entities.City, error) {
			var rows []cityRow
			if err := a.client.From("cities").Select("*").In("city_id", cityIDs).Get(ctx, &rows); err != nil {
				return nil, err
			}
			cities := make([]entities.City, 0, len(rows))
			for _, r := range rows {
				cities = append(cities, r.toEntity())
			}
			return displayableCities(cities), nil
		},
	)
}

func displayableCities(cities []entities.City) []entities.City {
	out := []entities.City{}
	for _, c := range cities {
		if c.HasDisplayableImage() {
			out = append(out, c)
		}
	}
	return out
}

func displayableCity(city *entities.City) *entities.City {
	if city == nil || !city.HasDisplayableImage() {
		return nil
	}
	return city
}
