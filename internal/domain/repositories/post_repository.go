package repositories

import (
	"context"

	"github.com/hamsafar-mirza/backend/internal/domain/entities"
)

// PostRepository defines the read interface for posts. Listings are ordered
// newest first.
type PostRepository interface {
	// GetAll retrieves every post
	GetAll(ctx context.Context) ([]entities.Post, error)

	// GetByID retrieves a post by id
	GetByID(ctx context.Context, postID string) (*entities.Post, error)

	// GetByUserID retrieves the posts authored by a user
	GetByUserID(ctx context.Context, userID string) ([]entities.Post, error)
}

// CommentRepository defines the read interface for post comments, ordered
// oldest first within a post.
type CommentRepository interface {
	// GetByPostID retrieves the comments of one post
	GetByPostID(ctx context.Context, postID string) ([]entities.Comment, error)

	// GetByPostIDs retrieves the comments of many posts at once, grouped by
	// post id. An empty id list yields an empty map without touching the
	// backend.
	GetByPostIDs(ctx context.Context, postIDs []string) (map[string][]entities.Comment, error)
}
