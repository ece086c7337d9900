package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hamsafar-mirza/backend/internal/domain/entities"
	"github.com/hamsafar-mirza/backend/internal/domain/providers"
	"github.com/hamsafar-mirza/backend/internal/domain/repositories"
)

// CachedPostAdapter wraps PostAdapter with caching. The feed is the hottest
// read path, so it gets the cache; everything else hits the data source.
type CachedPostAdapter struct {
	adapter repositories.PostRepository
	cache   providers.CacheProvider
}

// NewCachedPostAdapter creates a new cached post adapter
func NewCachedPostAdapter(adapter repositories.PostRepository, cache providers.CacheProvider) repositories.PostRepository {
	return &CachedPostAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// Cache TTLs (in seconds)
const (
	postByIDTTL    = 300 // 5 minutes for single post
	postsListTTL   = 120 // 2 minutes for the feed
	postsByUserTTL = 180 // 3 minutes for per-author listings
)

func postCacheKey(id string) string {
	return fmt.Sprintf("post:%s", id)
}

func postsListCacheKey() string {
	return "posts:list"
}

func postsByUserCacheKey(userID string) string {
	return fmt.Sprintf("posts:user:%s", userID)
}

// GetAll retrieves every post with caching
func (a *CachedPostAdapter) GetAll(ctx context.Context) ([]entities.Post, error) {
	cacheKey := postsListCacheKey()

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var posts []entities.Post
		if err := json.Unmarshal(cached, &posts); err == nil {
			return posts, nil
		}
		log.Warn().Err(err).Msg("Failed to unmarshal cached post list")
	}

	posts, err := a.adapter.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously to avoid blocking the response
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(posts); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, postsListTTL); err != nil {
				log.Warn().Err(err).Msg("Failed to cache post list")
			}
		}
	}()

	return posts, nil
}

// GetByID retrieves a post by id with caching
func (a *CachedPostAdapter) GetByID(ctx context.Context, postID string) (*entities.Post, error) {
	cacheKey := postCacheKey(postID)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var post entities.Post
		if err := json.Unmarshal(cached, &post); err == nil {
			return &post, nil
		}
		log.Warn().Err(err).Str("post_id", postID).Msg("Failed to unmarshal cached post")
	}

	post, err := a.adapter.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		// Absent rows are not cached; they stay cheap to re-check
		return nil, nil
	}

	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(post); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, postByIDTTL); err != nil {
				log.Warn().Err(err).Str("post_id", postID).Msg("Failed to cache post")
			}
		}
	}()

	return post, nil
}

// GetByUserID retrieves the posts authored by a user with caching
func (a *CachedPostAdapter) GetByUserID(ctx context.Context, userID string) ([]entities.Post, error) {
	cacheKey := postsByUserCacheKey(userID)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var posts []entities.Post
		if err := json.Unmarshal(cached, &posts); err == nil {
			return posts, nil
		}
		log.Warn().Err(err).Str("user_id", userID).Msg("Failed to unmarshal cached user posts")
	}

	posts, err := a.adapter.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(posts); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, postsByUserTTL); err != nil {
				log.Warn().Err(err).Str("user_id", userID).Msg("Failed to cache user posts")
			}
		}
	}()

	return posts, nil
}
