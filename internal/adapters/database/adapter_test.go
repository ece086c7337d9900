package database_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamsafar-mirza/backend/internal/adapters/database"
	"github.com/hamsafar-mirza/backend/internal/adapters/mockdata"
	"github.com/hamsafar-mirza/backend/internal/datasource"
	"github.com/hamsafar-mirza/backend/internal/infrastructure/clients/supabase"
	apperrors "github.com/hamsafar-mirza/backend/pkg/errors"
)

// countingServer answers every request with the given status and body and
// counts how many requests it saw.
func countingServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func remoteClient(t *testing.T, server *httptest.Server) *supabase.Client {
	t.Helper()
	client, err := supabase.NewClient(server.URL, "test-key")
	require.NoError(t, err)
	return client
}

func TestUserAdapter_MockModeNeverTouchesRemote(t *testing.T) {
	server, calls := countingServer(t, http.StatusOK, `[]`)
	resolver := datasource.NewResolver(datasource.ModeMock, true)
	adapter := database.NewUserAdapter(resolver, remoteClient(t, server), mockdata.Default())

	users, err := adapter.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 5)
	assert.Zero(t, calls.Load())
}

func TestUserAdapter_SupabaseModeUnconfiguredFailsBeforeHTTP(t *testing.T) {
	resolver := datasource.NewResolver(datasource.ModeSupabase, false)
	adapter := database.NewUserAdapter(resolver, nil, mockdata.Default())

	_, err := adapter.GetAll(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConfiguration))
}

func TestUserAdapter_AutoModeFallsBackOnce(t *testing.T) {
	server, calls := countingServer(t, http.StatusInternalServerError, `boom`)
	resolver := datasource.NewResolver(datasource.ModeAuto, true)
	adapter := database.NewUserAdapter(resolver, remoteClient(t, server), mockdata.Default())

	users, err := adapter.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 5)
	assert.Equal(t, int64(1), calls.Load())
}

func TestUserAdapter_SupabaseModeSurfacesQueryFailure(t *testing.T) {
	server, _ := countingServer(t, http.StatusInternalServerError, `boom`)
	resolver := datasource.NewResolver(datasource.ModeSupabase, true)
	adapter := database.NewUserAdapter(resolver, remoteClient(t, server), mockdata.Default())

	_, err := adapter.GetAll(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeQueryFailure))
	assert.Contains(t, err.Error(), "users")
}

func TestUserAdapter_GetByIDMissingIsNilNil(t *testing.T) {
	resolver := datasource.NewResolver(datasource.ModeMock, false)
	adapter := database.NewUserAdapter(resolver, nil, mockdata.Default())

	user, err := adapter.GetByID(context.Background(), "user-404")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserAdapter_RemoteSingleNoRowsIsNilNil(t *testing.T) {
	server, _ := countingServer(t, http.StatusNotAcceptable, `{"code":"PGRST116"}`)
	resolver := datasource.NewResolver(datasource.ModeSupabase, true)
	adapter := database.NewUserAdapter(resolver, remoteClient(t, server), mockdata.Default())

	user, err := adapter.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserAdapter_GetByIDsEmptyInputSkipsBackend(t *testing.T) {
	server, calls := countingServer(t, http.StatusOK, `[]`)
	resolver := datasource.NewResolver(datasource.ModeSupabase, true)
	adapter := database.NewUserAdapter(resolver, remoteClient(t, server), mockdata.Default())

	users, err := adapter.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Zero(t, calls.Load())
}

func TestCityAdapter_FilterAppliedToMockReads(t *testing.T) {
	resolver := datasource.NewResolver(datasource.ModeMock, false)
	mock := mockdata.Default()
	// Strip the image from one fixture city
	mock.Cities[0].Image = nil
	adapter := database.NewCityAdapter(resolver, nil, mock)

	cities, err := adapter.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, cities, 4)

	hidden, err := adapter.GetByID(context.Background(), mock.Cities[0].CityID)
	require.NoError(t, err)
	assert.Nil(t, hidden)
}

func TestCityAdapter_FilterAppliedToRemoteReads(t *testing.T) {
	body := `[
		{"city_id":"c1","name":"A","country":"IR","image":"https://cdn.example.com/a.jpg"},
		{"city_id":"c2","name":"B","country":"IR","image":"https://placehold.co/800x400"},
		{"city_id":"c3","name":"C","country":"IR","image":null},
		{"city_id":"c4","name":"D","country":"IR","image":"   "}
	]`
	server, _ := countingServer(t, http.StatusOK, body)
	resolver := datasource.NewResolver(datasource.ModeSupabase, true)
	adapter := database.NewCityAdapter(resolver, remoteClient(t, server), mockdata.Default())

	cities, err := adapter.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "c1", cities[0].CityID)
}

func TestPostAdapter_RemoteRowsNormalized(t *testing.T) {
	// Views may serialize aggregates as strings, and null when no ratings
	body := `[
		{"post_id":"p1","user_id":"u1","title":"t","content":"c",
		 "experience_type":"visited","approval_status":"approved",
		 "created_at":"2024-02-20T15:30:00Z",
		 "avg_rating":"4.5","rating_count":"2",
		 "post_images":[{"image_url":"https://cdn.example.com/1.jpg"}]},
		{"post_id":"p2","user_id":"u2","title":"t2","content":"c2",
		 "experience_type":"imagined","approval_status":"approved",
		 "created_at":"2024-02-21T15:30:00Z",
		 "avg_rating":null,"rating_count":null}
	]`
	server, _ := countingServer(t, http.StatusOK, body)
	resolver := datasource.NewResolver(datasource.ModeSupabase, true)
	adapter := database.NewPostAdapter(resolver, remoteClient(t, server), mockdata.Default())

	posts, err := adapter.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.InDelta(t, 4.5, posts[0].AvgRating, 1e-9)
	assert.Equal(t, 2, posts[0].RatingCount)
	assert.Equal(t, []string{"https://cdn.example.com/1.jpg"}, posts[0].Images)

	assert.Zero(t, posts[1].AvgRating)
	assert.Zero(t, posts[1].RatingCount)
	assert.NotNil(t, posts[1].Images)
	assert.Empty(t, posts[1].Images)
}

func TestPostAdapter_MockRecomputesAggregates(t *testing.T) {
	resolver := datasource.NewResolver(datasource.ModeMock, false)
	adapter := database.NewPostAdapter(resolver, nil, mockdata.Default())

	post, err := adapter.GetByID(context.Background(), "post-1")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.InDelta(t, 14.0/3.0, post.AvgRating, 1e-9)
	assert.Equal(t, 3, post.RatingCount)
}

func TestPlaceAdapter_RemoteChildRowsDenormalized(t *testing.T) {
	body := `[
		{"place_id":"p1","city_id":"c1","name":"A",
		 "place_features":[{"feature":"garden"},{"feature":"museum"}],
		 "place_images":[{"image_url":"https://cdn.example.com/a.jpg"}]},
		{"place_id":"p2","city_id":"c1","name":"B"}
	]`
	server, _ := countingServer(t, http.StatusOK, body)
	resolver := datasource.NewResolver(datasource.ModeSupabase, true)
	adapter := database.NewPlaceAdapter(resolver, remoteClient(t, server), mockdata.Default())

	places, err := adapter.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 2)

	assert.Equal(t, []string{"garden", "museum"}, places[0].Features)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, places[0].Images)

	// Absent child rows become empty slices, never nil
	assert.NotNil(t, places[1].Features)
	assert.NotNil(t, places[1].Images)
	assert.Empty(t, places[1].Features)
}

func TestCommentAdapter_BatchEmptyInputSkipsBackend(t *testing.T) {
	server, calls := countingServer(t, http.StatusOK, `[]`)
	resolver := datasource.NewResolver(datasource.ModeSupabase, true)
	adapter := database.NewCommentAdapter(resolver, remoteClient(t, server), mockdata.Default())

	grouped, err := adapter.GetByPostIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, grouped)
	assert.Zero(t, calls.Load())
}

func TestCommentAdapter_BatchGroupsByPost(t *testing.T) {
	resolver := datasource.NewResolver(datasource.ModeMock, false)
	adapter := database.NewCommentAdapter(resolver, nil, mockdata.Default())

	grouped, err := adapter.GetByPostIDs(context.Background(), []string{"post-1", "post-2", "post-404"})
	require.NoError(t, err)
	assert.Len(t, grouped["post-1"], 2)
	assert.Len(t, grouped["post-2"], 1)
	_, ok := grouped["post-404"]
	assert.False(t, ok)
}

func TestCompanionAdapter_MockRequestsOrderedNewestFirst(t *testing.T) {
	resolver := datasource.NewResolver(datasource.ModeMock, false)
	adapter := database.NewCompanionAdapter(resolver, nil, mockdata.Default())

	requests, err := adapter.GetAllRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 3)
	assert.Equal(t, "request-1", requests[0].RequestID)

	matches, err := adapter.GetMatchesByRequestID(context.Background(), "request-1")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestProfileAdapter_MockCountsDerived(t *testing.T) {
	resolver := datasource.NewResolver(datasource.ModeMock, false)
	adapter := database.NewProfileAdapter(resolver, nil, mockdata.Default())

	profile, err := adapter.GetByUserID(context.Background(), "user-2")
	require.NoError(t, err)
	require.NotNil(t, profile)
	// user-2 is followed by user-1, user-3 and user-5, and follows user-1
	assert.Equal(t, 3, profile.FollowersCount)
	assert.Equal(t, 1, profile.FollowingCount)
}
