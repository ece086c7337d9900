package repositories

import (
	"context"

	"github.com/hamsafar-mirza/backend/internal/domain/entities"
)

// CompanionRepository defines the read interface for companion requests and
// their candidate matches. Request listings are ordered newest first.
type CompanionRepository interface {
	// GetAllRequests retrieves every companion request
	GetAllRequests(ctx context.Context) ([]entities.CompanionRequest, error)

	// GetRequestByID retrieves a companion request by id
	GetRequestByID(ctx context.Context, requestID string) (*entities.CompanionRequest, error)

	// GetRequestsByUserID retrieves the requests opened by a user
	GetRequestsByUserID(ctx context.Context, userID string) ([]entities.CompanionRequest, error)

	// GetMatchesByRequestID retrieves the candidate matches of a request
	GetMatchesByRequestID(ctx context.Context, requestID string) ([]entities.CompanionMatch, error)
}
