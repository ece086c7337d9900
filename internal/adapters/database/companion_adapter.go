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

// requestSelection embeds the request_conditions child table.
var requestSelection = []string{"*", "request_conditions(condition)"}

// CompanionAdapter implements CompanionRepository over the resolved data source
type CompanionAdapter struct {
	resolver *datasource.Resolver
	client   *supabase.Client
	mock     *mockdata.Dataset
}

// NewCompanionAdapter creates a new companion adapter
func NewCompanionAdapter(resolver *datasource.Resolver, client *supabase.Client, mock *mockdata.Dataset) repositories.CompanionRepository {
	return &CompanionAdapter{resolver: resolver, client: client, mock: mock}
}

// GetAllRequests retrieves every companion request, newest first
func (a *CompanionAdapter) GetAllRequests(ctx context.Context) ([]entities.CompanionRequest, error) {
	return fetch(ctx, a.resolver, "companion_requests", "list",
		func() ([]entities.CompanionRequest, error) {
			return a.mock.AllCompanionRequests(), nil
		},
		func(ctx context.Context) ([]entities.CompanionRequest, error) {
			var rows []requestRow
			err := a.client.From("companion_requests").
				Select(requestSelection...).
				Order("created_at", false).
				Get(ctx, &rows)
			if err != nil {
				return nil, err
			}
			return requestEntities(rows), nil
		},
	)
}

// GetRequestByID retrieves a companion request by id; a missing request
// yields (nil, nil)
func (a *CompanionAdapter) GetRequestByID(ctx context.Context, requestID string) (*entities.CompanionRequest, error) {
	return fetch(ctx, a.resolver, "companion_requests", "get",
		func() (*entities.CompanionRequest, error) {
			return a.mock.CompanionRequestByID(requestID), nil
		},
		func(ctx context.Context) (*entities.CompanionRequest, error) {
			var row requestRow
			err := a.client.From("companion_requests").
				Select(requestSelection...).
				Eq("request_id", requestID).
				Single().
				Get(ctx, &row)
			if errors.Is(err, supabase.ErrNoRows) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			request := row.toEntity()
			return &request, nil
		},
	)
}

// GetRequestsByUserID retrieves the requests opened by a user, newest first
func (a *CompanionAdapter) GetRequestsByUserID(ctx context.Context, userID string) ([]entities.CompanionRequest, error) {
	return fetch(ctx, a.resolver, "companion_requests", "list_by_user",
		func() ([]entities.CompanionRequest, error) {
			return a.mock.CompanionRequestsByUserID(userID), nil
		},
		func(ctx context.Context) ([]entities.CompanionRequest, error) {
			var rows []requestRow
			err := a.client.From("companion_requests").
				Select(requestSelection...).
				Eq("user_id", userID).
				Order("created_at", false).
				Get(ctx, &rows)
			if err != nil {
				return nil, err
			}
			return requestEntities(rows), nil
		},
	)
}

// GetMatchesByRequestID retrieves the candidate matches of a request
func (a *CompanionAdapter) GetMatchesByRequestID(ctx context.Context, requestID string) ([]entities.CompanionMatch, error) {
	return fetch(ctx, a.resolver, "companion_matches", "list_by_request",
		func() ([]entities.CompanionMatch, error) {
			return a.mock.MatchesByRequestID(requestID), nil
		},
		func(ctx context.Context) ([]entities.CompanionMatch, error) {
			var rows []matchRow
			err := a.client.From("companion_matches").
				Select("*").
				Eq("request_id", requestID).
				Get(ctx, &rows)
			if err != nil {
				return nil, err
			}
			out := make([]entities.CompanionMatch, 0, len(rows))
			for _, r := range rows {
				out = append(out, r.toEntity())
			}
			return out, nil
		},
	)
}

func requestEntities(rows []requestRow) []entities.CompanionRequest {
	out := make([]entities.CompanionRequest, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEntity())
	}
	return out
}
