package database

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/hamsafar-mirza/backend/internal/domain/entities"
)

// PostgREST views compute aggregates in SQL, and depending on the column
// type they arrive as JSON numbers or as numeric strings. looseFloat and
// looseInt accept both, and treat null or junk as zero rather than failing
// the whole read.

type looseFloat float64

func (f *looseFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = looseFloat(parsed)
	return nil
}

type looseInt int

func (i *looseInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*i = 0
		return nil
	}
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*i = 0
		return nil
	}
	*i = looseInt(parsed)
	return nil
}

type userRow struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone"`
	PasswordHash string    `json:"password_hash"`
	ProfileImage *string   `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
	UserType     string    `json:"user_type"`
}

func (r userRow) toEntity() entities.User {
	return entities.User{
		UserID:       r.UserID,
		Name:         r.Name,
		Username:     r.Username,
		Email:        r.Email,
		Phone:        r.Phone,
		PasswordHash: r.PasswordHash,
		ProfileImage: r.ProfileImage,
		CreatedAt:    r.CreatedAt,
		UserType:     entities.UserType(r.UserType),
	}
}

type regularUserRow struct {
	UserID            string   `json:"user_id"`
	TravelPreferences []string `json:"travel_preferences"`
	ExperienceLevel   string   `json:"experience_level"`
}

func (r regularUserRow) toEntity() entities.RegularUser {
	prefs := r.TravelPreferences
	if prefs == nil {
		prefs = []string{}
	}
	return entities.RegularUser{
		UserID:            r.UserID,
		TravelPreferences: prefs,
		ExperienceLevel:   r.ExperienceLevel,
	}
}

type moderatorRow struct {
	UserID          string   `json:"user_id"`
	AssignedRegions []string `json:"assigned_regions"`
	ApprovalCount   looseInt `json:"approval_count"`
}

func (r moderatorRow) toEntity() entities.Moderator {
	regions := r.AssignedRegions
	if regions == nil {
		regions = []string{}
	}
	return entities.Moderator{
		UserID:          r.UserID,
		AssignedRegions: regions,
		ApprovalCount:   int(r.ApprovalCount),
	}
}

type adminRow struct {
	UserID          string     `json:"user_id"`
	AccessLevel     looseInt   `json:"access_level"`
	LastAdminAction *time.Time `json:"last_admin_action"`
}

func (r adminRow) toEntity() entities.Admin {
	return entities.Admin{
		UserID:          r.UserID,
		AccessLevel:     int(r.AccessLevel),
		LastAdminAction: r.LastAdminAction,
	}
}

// profileRow reads the profiles_with_counts view, where the follow edges
// are already aggregated into the two count columns.
type profileRow struct {
	ProfileID      string   `json:"profile_id"`
	UserID         string   `json:"user_id"`
	Bio            *string  `json:"bio"`
	CoverImage     *string  `json:"cover_image"`
	Interests      []string `json:"interests"`
	FollowersCount looseInt `json:"followers_count"`
	FollowingCount looseInt `json:"following_count"`
}

func (r profileRow) toEntity() entities.Profile {
	interests := r.Interests
	if interests == nil {
		interests = []string{}
	}
	return entities.Profile{
		ProfileID:      r.ProfileID,
		UserID:         r.UserID,
		Bio:            r.Bio,
		CoverImage:     r.CoverImage,
		Interests:      interests,
		FollowersCount: int(r.FollowersCount),
		FollowingCount: int(r.FollowingCount),
	}
}

type cityRow struct {
	CityID      string   `json:"city_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Province    *string  `json:"province"`
	Country     string   `json:"country"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Image       *string  `json:"image"`
}

func (r cityRow) toEntity() entities.City {
	return entities.City{
		CityID:      r.CityID,
		Name:        r.Name,
		Description: r.Description,
		Province:    r.Province,
		Country:     r.Country,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Image:       r.Image,
	}
}

// placeRow carries the embedded place_features and place_images child rows.
type placeRow struct {
	PlaceID     string   `json:"place_id"`
	CityID      string   `json:"city_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	MapURL      *string  `json:"map_url"`
	Features    []struct {
		Feature string `json:"feature"`
	} `json:"place_features"`
	Images []struct {
		ImageURL string `json:"image_url"`
	} `json:"place_images"`
}

func (r placeRow) toEntity() entities.Place {
	features := make([]string, 0, len(r.Features))
	for _, f := range r.Features {
		features = append(features, f.Feature)
	}
	images := make([]string, 0, len(r.Images))
	for _, i := range r.Images {
		images = append(images, i.ImageURL)
	}
	return entities.Place{
		PlaceID:     r.PlaceID,
		CityID:      r.CityID,
		Name:        r.Name,
		Description: r.Description,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		MapURL:      r.MapURL,
		Features:    features,
		Images:      images,
	}
}

// postRow reads the posts_with_rating view plus embedded post_images.
type postRow struct {
	PostID         string     `json:"post_id"`
	UserID         string     `json:"user_id"`
	PlaceID        *string    `json:"place_id"`
	CityID         *string    `json:"city_id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	ExperienceType string     `json:"experience_type"`
	ApprovalStatus string     `json:"approval_status"`
	CreatedAt      time.Time  `json:"created_at"`
	AvgRating      looseFloat `json:"avg_rating"`
	RatingCount    looseInt   `json:"rating_count"`
	Images         []struct {
		ImageURL string `json:"image_url"`
	} `json:"post_images"`
}

func (r postRow) toEntity() entities.Post {
	images := make([]string, 0, len(r.Images))
	for _, i := range r.Images {
		images = append(images, i.ImageURL)
	}
	return entities.Post{
		PostID:         r.PostID,
		UserID:         r.UserID,
		PlaceID:        r.PlaceID,
		CityID:         r.CityID,
		Title:          r.Title,
		Content:        r.Content,
		ExperienceType: entities.ExperienceType(r.ExperienceType),
		ApprovalStatus: entities.ApprovalStatus(r.ApprovalStatus),
		CreatedAt:      r.CreatedAt,
		Images:         images,
		AvgRating:      float64(r.AvgRating),
		RatingCount:    int(r.RatingCount),
	}
}

type commentRow struct {
	CommentID string    `json:"comment_id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (r commentRow) toEntity() entities.Comment {
	return entities.Comment(r)
}

// requestRow carries the embedded request_conditions child rows.
type requestRow struct {
	RequestID          string    `json:"request_id"`
	UserID             string    `json:"user_id"`
	DestinationPlaceID *string   `json:"destination_place_id"`
	DestinationCityID  *string   `json:"destination_city_id"`
	TravelDate         string    `json:"travel_date"`
	Description        *string   `json:"description"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	Conditions         []struct {
		Condition string `json:"condition"`
	} `json:"request_conditions"`
}

func (r requestRow) toEntity() entities.CompanionRequest {
	conditions := make([]string, 0, len(r.Conditions))
	for _, c := range r.Conditions {
		conditions = append(conditions, c.Condition)
	}
	return entities.CompanionRequest{
		RequestID:          r.RequestID,
		UserID:             r.UserID,
		DestinationPlaceID: r.DestinationPlaceID,
		DestinationCityID:  r.DestinationCityID,
		TravelDate:         r.TravelDate,
		Description:        r.Description,
		Status:             entities.RequestStatus(r.Status),
		CreatedAt:          r.CreatedAt,
		Conditions:         conditions,
	}
}

type matchRow struct {
	MatchID         string    `json:"match_id"`
	RequestID       string    `json:"request_id"`
	CompanionUserID string    `json:"companion_user_id"`
	Status          string    `json:"status"`
	Message         *string   `json:"message"`
	CreatedAt       time.Time `json:"created_at"`
}

func (r matchRow) toEntity() entities.CompanionMatch {
	return entities.CompanionMatch{
		MatchID:         r.MatchID,
		RequestID:       r.RequestID,
		CompanionUserID: r.CompanionUserID,
		Status:          entities.MatchStatus(r.Status),
		Message:         r.Message,
		CreatedAt:       r.CreatedAt,
	}
}

// ensure the tolerant decoders keep satisfying json.Unmarshaler
var (
	_ json.Unmarshaler = (*looseFloat)(nil)
	_ json.Unmarshaler = (*looseInt)(nil)
)
