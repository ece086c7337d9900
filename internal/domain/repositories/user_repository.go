package repositories

import (
	"context"

	"github.com/hamsafar-mirza/backend/internal/domain/entities"
)

// UserRepository defines the read interface for users and their role
// records. Lookups that match nothing return a nil entity with a nil error.
type UserRepository interface {
	// GetAll retrieves every user
	GetAll(ctx context.Context) ([]entities.User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, userID string) (*entities.User, error)

	// GetByIDs retrieves the users matching the given ids; missing ids are
	// simply absent from the result
	GetByIDs(ctx context.Context, userIDs []string) ([]entities.User, error)

	// GetRegularUserByUserID retrieves the regular-user role record
	GetRegularUserByUserID(ctx context.Context, userID string) (*entities.RegularUser, error)

	// GetModeratorByUserID retrieves the moderator role record
	GetModeratorByUserID(ctx context.Context, userID string) (*entities.Moderator, error)

	// GetAdminByUserID retrieves the admin role record
	GetAdminByUserID(ctx context.Context, userID string) (*entities.Admin, error)
}
