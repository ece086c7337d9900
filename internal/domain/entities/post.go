package entities

import "time"

// ExperienceType distinguishes real trips from imagined ones.
type ExperienceType string

const (
	ExperienceVisited  ExperienceType = "visited"
	ExperienceImagined ExperienceType = "imagined"
)

// ApprovalStatus is the moderation state of a post.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Post is a travel experience published by a user. AvgRating and RatingCount
// are derived from the rating set; a post with no ratings reports 0 for both.
type Post struct {
	PostID         string         `json:"post_id"`
	UserID         string         `json:"user_id"`
	PlaceID        *string        `json:"place_id,omitempty"`
	CityID         *string        `json:"city_id,omitempty"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	ExperienceType ExperienceType `json:"experience_type"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	CreatedAt      time.Time      `json:"created_at"`
	Images         []string       `json:"images"`
	AvgRating      float64        `json:"avg_rating"`
	RatingCount    int            `json:"rating_count"`
}

// Comment is a child of Post
type Comment struct {
	CommentID string    `json:"comment_id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Rating is a 1-5 score a user gave a post, one per (user, post) pair.
type Rating struct {
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// PostWithDetails hydrates a post with its referenced rows for detail views
type PostWithDetails struct {
	Post
	Author   *User     `json:"author,omitempty"`
	Place    *Place    `json:"place,omitempty"`
	City     *City     `json:"city,omitempty"`
	Comments []Comment `json:"comments,omitempty"`
}
