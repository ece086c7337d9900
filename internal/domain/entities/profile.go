package entities

// Profile is the public-facing profile attached 1:1 to a user.
// FollowersCount and FollowingCount are derived from the follow set and are
// never authoritative on the row itself.
type Profile struct {
	ProfileID      string   `json:"profile_id"`
	UserID         string   `json:"user_id"`
	Bio            *string  `json:"bio,omitempty"`
	CoverImage     *string  `json:"cover_image,omitempty"`
	Interests      []string `json:"interests"`
	FollowersCount int      `json:"followers_count"`
	FollowingCount int      `json:"following_count"`
}
