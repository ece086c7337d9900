package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamsafar-mirza/backend/internal/domain/entities"
)

func TestDefault_RatingSummaryRecomputed(t *testing.T) {
	data := Default()

	// post-1 carries ratings 5, 4, 5
	post := data.PostByID("post-1")
	require.NotNil(t, post)
	assert.InDelta(t, 14.0/3.0, post.AvgRating, 1e-9)
	assert.Equal(t, 3, post.RatingCount)
}

func TestDataset_RatingSummaryWithoutRatings(t *testing.T) {
	data := Default()
	avg, count := data.RatingSummary("post-unrated")
	assert.Zero(t, avg)
	assert.Zero(t, count)
}

func TestDataset_FollowCountsRecomputed(t *testing.T) {
	data := &Dataset{
		Profiles: []entities.Profile{
			{ProfileID: "profile-1", UserID: "user-1", Interests: []string{}},
		},
		Follows: []entities.Follow{
			{FollowerID: "user-1", FollowingID: "user-2"},
			{FollowerID: "user-2", FollowingID: "user-1"},
		},
	}

	profile := data.ProfileByUserID("user-1")
	require.NotNil(t, profile)
	assert.Equal(t, 1, profile.FollowersCount)
	assert.Equal(t, 1, profile.FollowingCount)
}

func TestDefault_ProfileCountsMatchFollowSet(t *testing.T) {
	data := Default()

	// user-1 is followed by user-2, user-3 and user-5, and follows user-2
	profile := data.ProfileByUserID("user-1")
	require.NotNil(t, profile)
	assert.Equal(t, 3, profile.FollowersCount)
	assert.Equal(t, 1, profile.FollowingCount)
}

func TestDataset_PostsOrderedNewestFirst(t *testing.T) {
	data := Default()
	posts := data.AllPosts()
	require.NotEmpty(t, posts)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i-1].CreatedAt.Before(posts[i].CreatedAt))
	}
	assert.Equal(t, "post-5", posts[0].PostID)
}

func TestDataset_CommentsOrderedOldestFirst(t *testing.T) {
	data := Default()
	comments := data.CommentsByPostID("post-1")
	require.Len(t, comments, 2)
	assert.Equal(t, "comment-1", comments[0].CommentID)
	assert.Equal(t, "comment-2", comments[1].CommentID)
}

func TestDataset_MissingLookupsReturnNil(t *testing.T) {
	data := Default()
	assert.Nil(t, data.UserByID("user-404"))
	assert.Nil(t, data.CityByID("city-404"))
	assert.Nil(t, data.PostByID("post-404"))
	assert.Nil(t, data.ProfileByUserID("user-404"))
}

func TestDataset_CollectionsNeverNil(t *testing.T) {
	data := Default()
	assert.NotNil(t, data.PostsByUserID("user-404"))
	assert.NotNil(t, data.CommentsByPostID("post-404"))
	assert.NotNil(t, data.MatchesByRequestID("request-404"))
	assert.NotNil(t, data.CompanionRequestsByUserID("user-404"))
	assert.NotNil(t, data.UsersByIDs(nil))
}

func TestDefault_AllCitiesDisplayable(t *testing.T) {
	data := Default()
	require.Len(t, data.Cities, 5)
	for _, city := range data.Cities {
		assert.True(t, city.HasDisplayableImage(), city.CityID)
	}
}

func TestDataset_RequestsOrderedNewestFirst(t *testing.T) {
	data := Default()
	requests := data.AllCompanionRequests()
	require.Len(t, requests, 3)
	assert.Equal(t, "request-1", requests[0].RequestID)
	assert.Equal(t, "request-3", requests[2].RequestID)
}
