package database_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamsafar-mirza/backend/internal/adapters/database"
	"github.com/hamsafar-mirza/backend/internal/adapters/mockdata"
	"github.com/hamsafar-mirza/backend/internal/datasource"
)

// memoryCache is an in-process CacheProvider. Writes are signalled on a
// channel so tests can wait for the adapter's asynchronous cache updates.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	written chan string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		entries: make(map[string][]byte),
		written: make(chan string, 16),
	}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return value, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ int) error {
	c.mu.Lock()
	c.entries[key] = value
	c.mu.Unlock()
	c.written <- key
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *memoryCache) Exists(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok, nil
}

func (c *memoryCache) waitForWrite(t *testing.T, key string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case written := <-c.written:
			if written == key {
				return
			}
		case <-deadline:
			t.Fatalf("no cache write for key %q", key)
		}
	}
}

func TestCachedPostAdapter_SecondReadServedFromCache(t *testing.T) {
	resolver := datasource.NewResolver(datasource.ModeMock, false)
	inner := database.NewPostAdapter(resolver, nil, mockdata.Default())
	cache := newMemoryCache()
	adapter := database.NewCachedPostAdapter(inner, cache)

	post, err := adapter.GetByID(context.Background(), "post-1")
	require.NoError(t, err)
	require.NotNil(t, post)
	cache.waitForWrite(t, "post:post-1")

	exists, err := cache.Exists(context.Background(), "post:post-1")
	require.NoError(t, err)
	assert.True(t, exists)

	again, err := adapter.GetByID(context.Background(), "post-1")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, post.PostID, again.PostID)
	assert.Equal(t, post.AvgRating, again.AvgRating)
}

func TestCachedPostAdapter_MissingPostNotCached(t *testing.T) {
	resolver := datasource.NewResolver(datasource.ModeMock, false)
	inner := database.NewPostAdapter(resolver, nil, mockdata.Default())
	cache := newMemoryCache()
	adapter := database.NewCachedPostAdapter(inner, cache)

	post, err := adapter.GetByID(context.Background(), "post-404")
	require.NoError(t, err)
	assert.Nil(t, post)

	exists, err := cache.Exists(context.Background(), "post:post-404")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCachedPostAdapter_ListCachedUnderSharedKey(t *testing.T) {
	resolver := datasource.NewResolver(datasource.ModeMock, false)
	inner := database.NewPostAdapter(resolver, nil, mockdata.Default())
	cache := newMemoryCache()
	adapter := database.NewCachedPostAdapter(inner, cache)

	posts, err := adapter.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 5)
	cache.waitForWrite(t, "posts:list")

	again, err := adapter.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, again, 5)
	assert.Equal(t, posts[0].PostID, again[0].PostID)
}

func TestCachedPostAdapter_CorruptEntryFallsThrough(t *testing.T) {
	resolver := datasource.NewResolver(datasource.ModeMock, false)
	inner := database.NewPostAdapter(resolver, nil, mockdata.Default())
	cache := newMemoryCache()
	adapter := database.NewCachedPostAdapter(inner, cache)

	require.NoError(t, cache.Set(context.Background(), "post:post-1", []byte("{not json"), 60))
	<-cache.written

	post, err := adapter.GetByID(context.Background(), "post-1")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "post-1", post.PostID)
}
