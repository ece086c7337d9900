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

// postSelection reads the posts_with_rating view and embeds post_images.
var postSelection = []string{"*", "post_images(image_url)"}

// PostAdapter implements PostRepository over the resolved data source.
// Remote reads use the posts_with_rating view so avg_rating and
// rating_count arrive precomputed; mock reads recompute them from the
// rating set.
type PostAdapter struct {
	resolver *datasource.Resolver
	client   *supabase.Client
	mock     *mockdata.Dataset
}

// NewPostAdapter creates a new post adapter
func NewPostAdapter(resolver *datasource.Resolver, client *supabase.Client, mock *mockdata.Dataset) repositories.PostRepository {
	return &PostAdapter{resolver: resolver, client: client, mock: mock}
}

// GetAll retrieves every post, newest first
func (a *PostAdapter) GetAll(ctx context.Context) ([]entities.Post, error) {
	return fetch(ctx, a.resolver, "posts", "list",
		func() ([]entities.Post, error) {
			return a.mock.AllPosts(), nil
		},
		func(ctx context.Context) ([]entities.Post, error) {
			var rows []postRow
			err := a.client.From("posts_with_rating").
				Select(postSelection...).
				Order("created_at", false).
				Get(ctx, &rows)
			if err != nil {
				return nil, err
			}
			return postEntities(rows), nil
		},
	)
}

// GetByID retrieves a post by id; a missing post yields (nil, nil)
func (a *PostAdapter) GetByID(ctx context.Context, postID string) (*entities.Post, error) {
	return fetch(ctx, a.resolver, "posts", "get",
		func() (*entities.Post, error) {
			return a.mock.PostByID(postID), nil
		},
		func(ctx context.Context) (*entities.Post, error) {
			var row postRow
			err := a.client.From("posts_with_rating").
				Select(postSelection...).
				Eq("post_id", postID).
				Single().
				Get(ctx, &row)
			if errors.Is(err, supabase.ErrNoRows) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			post := row.toEntity()
			return &post, nil
		},
	)
}

// GetByUserID retrieves the posts authored by a user, newest first
func (a *PostAdapter) GetByUserID(ctx context.Context, userID string) ([]entities.Post, error) {
	return fetch(ctx, a.resolver, "posts", "list_by_user",
		func() ([]entities.Post, error) {
			return a.mock.PostsByUserID(userID), nil
		},
		func(ctx context.Context) ([]entities.Post, error) {
			var rows []postRow
			err := a.client.From("posts_with_rating").
				Select(postSelection...).
				Eq("user_id", userID).
				Order("created_at", false).
				Get(ctx, &rows)
			if err != nil {
				return nil, err
			}
			return postEntities(rows), nil
		},
	)
}

func postEntities(rows []postRow) []entities.Post {
	out := make([]entities.Post, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEntity())
	}
	return out
}
