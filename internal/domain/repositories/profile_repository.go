package repositories

import (
	"context"

	"github.com/hamsafar-mirza/backend/internal/domain/entities"
)

// ProfileRepository defines the read interface for profiles. Follower and
// following counts are always populated, derived from the follow set.
type ProfileRepository interface {
	// GetAll retrieves every profile
	GetAll(ctx context.Context) ([]entities.Profile, error)

	// GetByUserID retrieves the profile belonging to a user
	GetByUserID(ctx context.Context, userID string) (*entities.Profile, error)
}
