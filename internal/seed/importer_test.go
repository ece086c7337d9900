package seed_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamsafar-mirza/backend/internal/adapters/mockdata"
	"github.com/hamsafar-mirza/backend/internal/domain/entities"
	"github.com/hamsafar-mirza/backend/internal/infrastructure/clients/supabase"
	"github.com/hamsafar-mirza/backend/internal/seed"
)

// fakeBackend records every upsert it receives.
type fakeBackend struct {
	mu       sync.Mutex
	upserts  []upsertCall
	failCity bool
}

type upsertCall struct {
	table  string
	rows   []map[string]interface{}
	prefer string
}

func (f *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")

		if r.Method == http.MethodGet {
			// Profile id lookup after the profiles upsert
			if table == "profiles" {
				f.mu.Lock()
				var lookup []map[string]string
				for _, call := range f.upserts {
					if call.table != "profiles" {
						continue
					}
					for i, row := range call.rows {
						lookup = append(lookup, map[string]string{
							"profile_id": fmt.Sprintf("profile-uuid-%d", i+1),
							"user_id":    row["user_id"].(string),
						})
					}
				}
				f.mu.Unlock()
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(lookup)
				return
			}
			w.Write([]byte(`[]`))
			return
		}

		var rows []map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		f.mu.Lock()
		firstCityAttempt := table == "cities" && f.failCity
		if firstCityAttempt {
			f.failCity = false
		} else {
			f.upserts = append(f.upserts, upsertCall{
				table:  table,
				rows:   rows,
				prefer: r.Header.Get("Prefer"),
			})
		}
		f.mu.Unlock()

		if firstCityAttempt {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"column cities.image does not exist"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
}

func (f *fakeBackend) tables() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.upserts))
	for _, call := range f.upserts {
		out = append(out, call.table)
	}
	return out
}

func (f *fakeBackend) calls(table string) []upsertCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []upsertCall
	for _, call := range f.upserts {
		if call.table == table {
			out = append(out, call)
		}
	}
	return out
}

func newImporter(t *testing.T, backend *fakeBackend) *seed.Importer {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)
	client, err := supabase.NewClient(server.URL, "service-key")
	require.NoError(t, err)
	return seed.NewImporter(client)
}

func TestImporter_TablesWrittenInDependencyOrder(t *testing.T) {
	backend := &fakeBackend{}
	importer := newImporter(t, backend)

	err := importer.Run(context.Background(), mockdata.Default())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"users",
		"profiles",
		"profile_interests",
		"cities",
		"places",
		"place_features",
		"place_images",
		"posts",
		"post_images",
		"comments",
		"ratings",
		"follows",
		"companion_requests",
		"request_conditions",
		"companion_matches",
		"regular_users",
		"moderators",
		"admins",
	}, backend.tables())
}

func TestImporter_IDsMappedAndChildTablesIgnoreDuplicates(t *testing.T) {
	backend := &fakeBackend{}
	importer := newImporter(t, backend)

	err := importer.Run(context.Background(), mockdata.Default())
	require.NoError(t, err)

	users := backend.calls("users")
	require.Len(t, users, 1)
	assert.Equal(t, "10000000-0000-4000-8000-000000000001", users[0].rows[0]["user_id"])
	assert.Contains(t, users[0].prefer, "merge-duplicates")

	features := backend.calls("place_features")
	require.Len(t, features, 1)
	assert.Contains(t, features[0].prefer, "ignore-duplicates")

	conditions := backend.calls("request_conditions")
	require.Len(t, conditions, 1)
	assert.Contains(t, conditions[0].prefer, "ignore-duplicates")
}

func TestImporter_CitiesRetriedWithoutImageColumn(t *testing.T) {
	backend := &fakeBackend{failCity: true}
	importer := newImporter(t, backend)

	err := importer.Run(context.Background(), mockdata.Default())
	require.NoError(t, err)

	cities := backend.calls("cities")
	require.Len(t, cities, 1)
	for _, row := range cities[0].rows {
		_, hasImage := row["image"]
		assert.False(t, hasImage)
	}
}

func TestImporter_ChunksLargeTables(t *testing.T) {
	backend := &fakeBackend{}
	importer := newImporter(t, backend)

	users := make([]entities.User, 1200)
	for i := range users {
		users[i] = entities.User{
			UserID:   fmt.Sprintf("user-%d", i+1),
			Name:     fmt.Sprintf("User %d", i+1),
			Username: fmt.Sprintf("user_%d", i+1),
			Email:    fmt.Sprintf("user%d@example.com", i+1),
			UserType: entities.UserTypeRegular,
		}
	}
	data := &mockdata.Dataset{Users: users}
	err := importer.Run(context.Background(), data)
	require.NoError(t, err)

	calls := backend.calls("users")
	require.Len(t, calls, 3)
	assert.Len(t, calls[0].rows, 500)
	assert.Len(t, calls[1].rows, 500)
	assert.Len(t, calls[2].rows, 200)
}

func TestImporter_ChunkFailureNamesTheTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	t.Cleanup(server.Close)
	client, err := supabase.NewClient(server.URL, "service-key")
	require.NoError(t, err)

	importer := seed.NewImporter(client)
	err = importer.Run(context.Background(), mockdata.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "users")
}
