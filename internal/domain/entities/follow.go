package entities

import "time"

// Follow is a directed edge between users, keyed on (follower, following).
type Follow struct {
	FollowerID  string    `json:"follower_id"`
	FollowingID string    `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
