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

// UserAdapter implements UserRepository over the resolved data source
type UserAdapter struct {
	resolver *datasource.Resolver
	client   *supabase.Client
	mock     *mockdata.Dataset
}

// NewUserAdapter creates a new user adapter. client may be nil when the
// remote backend is not configured.
func NewUserAdapter(resolver *datasource.Resolver, client *supabase.Client, mock *mockdata.Dataset) repositories.UserRepository {
	return &UserAdapter{resolver: resolver, client: client, mock: mock}
}

// GetAll retrieves every user
func (a *UserAdapter) GetAll(ctx context.Context) ([]entities.User, error) {
	return fetch(ctx, a.resolver, "users", "list",
		func() ([]entities.User, error) {
			out := make([]entities.User, len(a.mock.Users))
			copy(out, a.mock.Users)
			return out, nil
		},
		func(ctx context.Context) ([]entities.User, error) {
			var rows []userRow
			if err := a.client.From("users").Select("*").Get(ctx, &rows); err != nil {
				return nil, err
			}
			out := make([]entities.User, 0, len(rows))
			for _, r := range rows {
				out = append(out, r.toEntity())
			}
			return out, nil
		},
	)
}

// GetByID retrieves a user by id; a missing user yields (nil, nil)
func (a *UserAdapter) GetByID(ctx context.Context, userID string) (*entities.User, error) {
	return fetch(ctx, a.resolver, "users", "get",
		func() (*entities.User, error) {
			return a.mock.UserByID(userID), nil
		},
		func(ctx context.Context) (*entities.User, error) {
			var row userRow
			err := a.client.From("users").Select("*").Eq("user_id", userID).Single().Get(ctx, &row)
			if errors.Is(err, supabase.ErrNoRows) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			user := row.toEntity()
			return &user, nil
		},
	)
}

// GetByIDs retrieves the users matching the given ids
func (a *UserAdapter) GetByIDs(ctx context.Context, userIDs []string) ([]entities.User, error) {
	if len(userIDs) == 0 {
		return []entities.User{}, nil
	}
	return fetch(ctx, a.resolver, "users", "batch_get",
		func() ([]entities.User, error) {
			return a.mock.UsersByIDs(userIDs), nil
		},
		func(ctx context.Context) ([]entities.User, error) {
			var rows []userRow
			if err := a.client.From("users").Select("*").In("user_id", userIDs).Get(ctx, &rows); err != nil {
				return nil, err
			}
			out := make([]entities.User, 0, len(rows))
			for _, r := range rows {
				out = append(out, r.toEntity())
			}
			return out, nil
		},
	)
}

// GetRegularUserByUserID retrieves the regular-user role record
func (a *UserAdapter) GetRegularUserByUserID(ctx context.Context, userID string) (*entities.RegularUser, error) {
	return fetch(ctx, a.resolver, "regular_users", "get",
		func() (*entities.RegularUser, error) {
			return a.mock.RegularUserByUserID(userID), nil
		},
		func(ctx context.Context) (*entities.RegularUser, error) {
			var row regularUserRow
			err := a.client.From("regular_users").Select("*").Eq("user_id", userID).Single().Get(ctx, &row)
			if errors.Is(err, supabase.ErrNoRows) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			record := row.toEntity()
			return &record, nil
		},
	)
}

// GetModeratorByUserID retrieves the moderator role record
func (a *UserAdapter) GetModeratorByUserID(ctx context.Context, userID string) (*entities.Moderator, error) {
	return fetch(ctx, a.resolver, "moderators", "get",
		func() (*entities.Moderator, error) {
			return a.mock.ModeratorByUserID(userID), nil
		},
		func(ctx context.Context) (*entities.Moderator, error) {
			var row moderatorRow
			err := a.client.From("moderators").Select("*").Eq("user_id", userID).Single().Get(ctx, &row)
			if errors.Is(err, supabase.ErrNoRows) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			record := row.toEntity()
			return &record, nil
		},
	)
}

// GetAdminByUserID retrieves the admin role record
func (a *UserAdapter) GetAdminByUserID(ctx context.Context, userID string) (*entities.Admin, error) {
	return fetch(ctx, a.resolver, "admins", "get",
		func() (*entities.Admin, error) {
			return a.mock.AdminByUserID(userID), nil
		},
		func(ctx context.Context) (*entities.Admin, error) {
			var row adminRow
			err := a.client.From("admins").Select("*").Eq("user_id", userID).Single().Get(ctx, &row)
			if errors.Is(err, supabase.ErrNoRows) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			record := row.toEntity()
			return &record, nil
		},
	)
}
