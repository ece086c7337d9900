package database

import (
	"context"

	"github.com/hamsafar-mirza/backend/internal/adapters/mockdata"
	"github.com/hamsafar-mirza/backend/internal/datasource"
	"github.com/hamsafar-mirza/backend/internal/domain/entities"
	"github.com/hamsafar-mirza/backend/internal/domain/repositories"
	"github.com/hamsafar-mirza/backend/internal/infrastructure/clients/supabase"
)

// CommentAdapter implements CommentRepository over the resolved data source
type CommentAdapter struct {
	resolver *datasource.Resolver
	client   *supabase.Client
	mock     *mockdata.Dataset
}

// NewCommentAdapter creates a new comment adapter
func NewCommentAdapter(resolver *datasource.Resolver, client *supabase.Client, mock *mockdata.Dataset) repositories.CommentRepository {
	return &CommentAdapter{resolver: resolver, client: client, mock: mock}
}

// GetByPostID retrieves the comments of one post, oldest first
func (a *CommentAdapter) GetByPostID(ctx context.Context, postID string) ([]entities.Comment, error) {
	return fetch(ctx, a.resolver, "comments", "list_by_post",
		func() ([]entities.Comment, error) {
			return a.mock.CommentsByPostID(postID), nil
		},
		func(ctx context.Context) ([]entities.Comment, error) {
			var rows []commentRow
			err := a.client.From("comments").
				Select("*").
				Eq("post_id", postID).
				Order("created_at", true).
				Get(ctx, &rows)
			if err != nil {
				return nil, err
			}
			return commentEntities(rows), nil
		},
	)
}

// GetByPostIDs retrieves the comments of many posts in one request, grouped
// by post id. Posts without comments are absent from the map. An empty id
// list returns an empty map without touching the backend.
func (a *CommentAdapter) GetByPostIDs(ctx context.Context, postIDs []string) (map[string][]entities.Comment, error) {
	if len(postIDs) == 0 {
		return map[string][]entities.Comment{}, nil
	}
	return fetch(ctx, a.resolver, "comments", "batch_list_by_post",
		func() (map[string][]entities.Comment, error) {
			grouped := map[string][]entities.Comment{}
			for _, postID := range postIDs {
				if comments := a.mock.CommentsByPostID(postID); len(comments) > 0 {
					grouped[postID] = comments
				}
			}
			return grouped, nil
		},
		func(ctx context.Context) (map[string][]entities.Comment, error) {
			var rows []commentRow
			err := a.client.From("comments").
				Select("*").
				In("post_id", postIDs).
				Order("created_at", true).
				Get(ctx, &rows)
			if err != nil {
				return nil, err
			}
			grouped := map[string][]entities.Comment{}
			for _, r := range rows {
				grouped[r.PostID] = append(grouped[r.PostID], r.toEntity())
			}
			return grouped, nil
		},
	)
}

func commentEntities(rows []commentRow) []entities.Comment {
	out := make([]entities.Comment, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEntity())
	}
	return out
}
