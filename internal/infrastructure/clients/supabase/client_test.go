package supabase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamsafar-mirza/backend/internal/infrastructure/clients/supabase"
)

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := supabase.NewClient("", "key")
	assert.Error(t, err)

	_, err = supabase.NewClient("https://project.supabase.co", "")
	assert.Error(t, err)
}

func TestQuery_BuildsRequestAndHeaders(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"city_id":"c1"}]`))
	}))
	defer server.Close()

	client, err := supabase.NewClient(server.URL, "anon-key")
	require.NoError(t, err)

	var out []map[string]string
	err = client.From("cities").
		Select("*").
		Eq("country", "IR").
		Order("name", true).
		Get(context.Background(), &out)
	require.NoError(t, err)
	require.NotNil(t, captured)

	assert.Equal(t, "/rest/v1/cities", captured.URL.Path)
	query := captured.URL.Query()
	assert.Equal(t, "*", query.Get("select"))
	assert.Equal(t, "eq.IR", query.Get("country"))
	assert.Equal(t, "name.asc", query.Get("order"))

	assert.Equal(t, "anon-key", captured.Header.Get("apikey"))
	assert.Equal(t, "Bearer anon-key", captured.Header.Get("Authorization"))

	require.Len(t, out, 1)
	assert.Equal(t, "c1", out[0]["city_id"])
}

func TestQuery_InFilterQuotesValues(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := supabase.NewClient(server.URL, "anon-key")
	require.NoError(t, err)

	var out []map[string]string
	err = client.From("users").Select("*").In("user_id", []string{"u1", "u2"}).Get(context.Background(), &out)
	require.NoError(t, err)

	assert.Equal(t, `in.("u1","u2")`, captured.URL.Query().Get("user_id"))
}

func TestQuery_SingleSetsAcceptAndMapsNoRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/vnd.pgrst.object+json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusNotAcceptable)
		w.Write([]byte(`{"code":"PGRST116"}`))
	}))
	defer server.Close()

	client, err := supabase.NewClient(server.URL, "anon-key")
	require.NoError(t, err)

	var out map[string]string
	err = client.From("users").Select("*").Eq("user_id", "missing").Single().Get(context.Background(), &out)
	assert.ErrorIs(t, err, supabase.ErrNoRows)
}

func TestQuery_ServerErrorSurfacesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	defer server.Close()

	client, err := supabase.NewClient(server.URL, "anon-key")
	require.NoError(t, err)

	var out []map[string]string
	err = client.From("posts").Select("*").Get(context.Background(), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "posts")
}

func TestUpsert_SetsConflictAndPreferHeaders(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client, err := supabase.NewClient(server.URL, "service-key")
	require.NoError(t, err)

	rows := []map[string]string{{"user_id": "u1"}}
	err = client.Upsert(context.Background(), "users", rows, supabase.UpsertOptions{OnConflict: "user_id"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/rest/v1/users", captured.URL.Path)
	assert.Equal(t, "user_id", captured.URL.Query().Get("on_conflict"))
	assert.Equal(t, "resolution=merge-duplicates,return=minimal", captured.Header.Get("Prefer"))
}

func TestUpsert_IgnoreDuplicates(t *testing.T) {
	var prefer string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prefer = r.Header.Get("Prefer")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client, err := supabase.NewClient(server.URL, "service-key")
	require.NoError(t, err)

	rows := []map[string]string{{"place_id": "p1", "feature": "f"}}
	err = client.Upsert(context.Background(), "place_features", rows, supabase.UpsertOptions{
		OnConflict:       "place_id,feature",
		IgnoreDuplicates: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "resolution=ignore-duplicates,return=minimal", prefer)
}
