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

// ProfileAdapter implements ProfileRepository. Remote reads go through the
// profiles_with_counts view so follower and following counts arrive already
// aggregated; mock reads recompute them from the follow set.
type ProfileAdapter struct {
	resolver *datasource.Resolver
	client   *supabase.Client
	mock     *mockdata.Dataset
}

// NewProfileAdapter creates a new profile adapter
func NewProfileAdapter(resolver *datasource.Resolver, client *supabase.Client, mock *mockdata.Dataset) repositories.ProfileRepository {
	return &ProfileAdapter{resolver: resolver, client: client, mock: mock}
}

// GetAll retrieves every profile
func (a *ProfileAdapter) GetAll(ctx context.Context) ([]entities.Profile, error) {
	return fetch(ctx, a.resolver, "profiles", "list",
		func() ([]entities.Profile, error) {
			return a.mock.AllProfiles(), nil
		},
		func(ctx context.Context) ([]entities.Profile, error) {
			var rows []profileRow
			if err := a.client.From("profiles_with_counts").Select("*").Get(ctx, &rows); err != nil {
				return nil, err
			}
			out := make([]entities.Profile, 0, len(rows))
			for _, r := range rows {
				out = append(out, r.toEntity())
			}
			return out, nil
		},
	)
}

// GetByUserID retrieves the profile of a user; a missing profile yields (nil, nil)
func (a *ProfileAdapter) GetByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	return fetch(ctx, a.resolver, "profiles", "get",
		func() (*entities.Profile, error) {
			return a.mock.ProfileByUserID(userID), nil
		},
		func(ctx context.Context) (*entities.Profile, error) {
			var row profileRow
			err := a.client.From("profiles_with_counts").Select("*").Eq("user_id", userID).Single().Get(ctx, &row)
			if errors.Is(err, supabase.ErrNoRows) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			profile := row.toEntity()
			return &profile, nil
		},
	)
}
