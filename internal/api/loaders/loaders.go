// Package loaders batches the per-item reads the list handlers need when
// hydrating posts and companion requests with their authors, places and
// cities. One loader set is built per request so nothing is cached across
// requests.
package loaders

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/hamsafar-mirza/backend/internal/domain/entities"
	"github.com/hamsafar-mirza/backend/internal/domain/repositories"
)

type ctxKey string

const loadersKey ctxKey = "dataloaders"

// Loaders contains all the dataloaders for the application. A key that
// matches nothing resolves to nil data without an error; absent referenced
// rows are normal, not failures.
type Loaders struct {
	UserLoader  *dataloader.Loader[string, *entities.User]
	PlaceLoader *dataloader.Loader[string, *entities.Place]
	CityLoader  *dataloader.Loader[string, *entities.City]
}

// New creates a new instance of Loaders
func New(
	userRepo repositories.UserRepository,
	placeRepo repositories.PlaceRepository,
	cityRepo repositories.CityRepository,
) *Loaders {
	return &Loaders{
		UserLoader: dataloader.NewBatchedLoader(func(ctx context.Context, keys []string) []*dataloader.Result[*entities.User] {
			results := make([]*dataloader.Result[*entities.User], len(keys))
			users, err := userRepo.GetByIDs(ctx, keys)

			userMap := make(map[string]*entities.User)
			if err == nil {
				for i := range users {
					userMap[users[i].UserID] = &users[i]
				}
			}

			for i, key := range keys {
				if err != nil {
					results[i] = &dataloader.Result[*entities.User]{Error: err}
				} else {
					results[i] = &dataloader.Result[*entities.User]{Data: userMap[key]}
				}
			}
			return results
		}),
		PlaceLoader: dataloader.NewBatchedLoader(func(ctx context.Context, keys []string) []*dataloader.Result[*entities.Place] {
			results := make([]*dataloader.Result[*entities.Place], len(keys))
			places, err := placeRepo.GetByIDs(ctx, keys)

			placeMap := make(map[string]*entities.Place)
			if err == nil {
				for i := range places {
					placeMap[places[i].PlaceID] = &places[i]
				}
			}

			for i, key := range keys {
				if err != nil {
					results[i] = &dataloader.Result[*entities.Place]{Error: err}
				} else {
					results[i] = &dataloader.Result[*entities.Place]{Data: placeMap[key]}
				}
			}
			return results
		}),
		CityLoader: dataloader.NewBatchedLoader(func(ctx context.Context, keys []string) []*dataloader.Result[*entities.City] {
			results := make([]*dataloader.Result[*entities.City], len(keys))
			cities, err := cityRepo.GetByIDs(ctx, keys)

			cityMap := make(map[string]*entities.City)
			if err == nil {
				for i := range cities {
					cityMap[cities[i].CityID] = &cities[i]
				}
			}

			for i, key := range keys {
				if err != nil {
					results[i] = &dataloader.Result[*entities.City]{Error: err}
				} else {
					results[i] = &dataloader.Result[*entities.City]{Data: cityMap[key]}
				}
			}
			return results
		}),
	}
}

// For returns the loaders for a given context
func For(ctx context.Context) *Loaders {
	return ctx.Value(loadersKey).(*Loaders)
}

// WithLoaders returns a new context with the loaders attached
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}
