package entities

import "time"

// UserType tags a user with its role specialization.
type UserType string

const (
	UserTypeRegular   UserType = "regular"
	UserTypeModerator UserType = "moderator"
	UserTypeAdmin     UserType = "admin"
)

// User represents an account in the system
type User struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	PasswordHash string    `json:"password_hash"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UserType     UserType  `json:"user_type"`
}

// RegularUser holds the role-specific attributes of a regular user.
// Every user carries exactly one role record matching its UserType.
type RegularUser struct {
	UserID            string   `json:"user_id"`
	TravelPreferences []string `json:"travel_preferences"`
	ExperienceLevel   string   `json:"experience_level"`
}

// Moderator holds the role-specific attributes of a moderator
type Moderator struct {
	UserID          string   `json:"user_id"`
	AssignedRegions []string `json:"assigned_regions"`
	ApprovalCount   int      `json:"approval_count"`
}

// Admin holds the role-specific attributes of an administrator
type Admin struct {
	UserID          string     `json:"user_id"`
	AccessLevel     int        `json:"access_level"`
	LastAdminAction *time.Time `json:"last_admin_action,omitempty"`
}

// UserWithProfile bundles a user with its profile and role record for detail views
type UserWithProfile struct {
	User
	Profile     *Profile     `json:"profile,omitempty"`
	RegularUser *RegularUser `json:"regular_user,omitempty"`
	Moderator   *Moderator   `json:"moderator,omitempty"`
	Admin       *Admin       `json:"admin,omitempty"`
}
