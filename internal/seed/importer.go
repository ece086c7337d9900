package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hamsafar-mirza/backend/internal/adapters/mockdata"
	"github.com/hamsafar-mirza/backend/internal/infrastructure/clients/supabase"
)

// chunkSize caps the rows per upsert request.
const chunkSize = 500

// Importer writes the dataset into a Supabase project. Rows are upserted in
// dependency order, parents before children, so foreign keys always resolve.
type Importer struct {
	client *supabase.Client
}

// NewImporter creates a new importer
func NewImporter(client *supabase.Client) *Importer {
	return &Importer{client: client}
}

type userSeedRow struct {
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

type profileSeedRow struct {
	UserID     string  `json:"user_id"`
	Bio        *string `json:"bio"`
	CoverImage *string `json:"cover_image"`
}

type profileInterestSeedRow struct {
	ProfileID string `json:"profile_id"`
	Interest  string `json:"interest"`
}

type citySeedRow struct {
	CityID      string   `json:"city_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Province    *string  `json:"province"`
	Country     string   `json:"country"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Image       *string  `json:"image,omitempty"`
}

type placeSeedRow struct {
	PlaceID     string   `json:"place_id"`
	CityID      string   `json:"city_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	MapURL      *string  `json:"map_url"`
}

type placeFeatureSeedRow struct {
	PlaceID string `json:"place_id"`
	Feature string `json:"feature"`
}

type placeImageSeedRow struct {
	PlaceID  string `json:"place_id"`
	ImageURL string `json:"image_url"`
}

type postSeedRow struct {
	PostID         string    `json:"post_id"`
	UserID         string    `json:"user_id"`
	PlaceID        *string   `json:"place_id"`
	CityID         *string   `json:"city_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	ExperienceType string    `json:"experience_type"`
	ApprovalStatus string    `json:"approval_status"`
	CreatedAt      time.Time `json:"created_at"`
}

type postImageSeedRow struct {
	PostID   string `json:"post_id"`
	ImageURL string `json:"image_url"`
}

type commentSeedRow struct {
	CommentID string    `json:"comment_id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ratingSeedRow struct {
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

type followSeedRow struct {
	FollowerID  string    `json:"follower_id"`
	FollowingID string    `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type requestSeedRow struct {
	RequestID          string    `json:"request_id"`
	UserID             string    `json:"user_id"`
	DestinationPlaceID *string   `json:"destination_place_id"`
	DestinationCityID  *string   `json:"destination_city_id"`
	TravelDate         string    `json:"travel_date"`
	Description        *string   `json:"description"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

type requestConditionSeedRow struct {
	RequestID string `json:"request_id"`
	Condition string `json:"condition"`
}

type matchSeedRow struct {
	MatchID         string    `json:"match_id"`
	RequestID       string    `json:"request_id"`
	CompanionUserID string    `json:"companion_user_id"`
	Status          string    `json:"status"`
	Message         *string   `json:"message"`
	CreatedAt       time.Time `json:"created_at"`
}

type regularUserSeedRow struct {
	UserID            string   `json:"user_id"`
	TravelPreferences []string `json:"travel_preferences"`
	ExperienceLevel   string   `json:"experience_level"`
}

type moderatorSeedRow struct {
	UserID          string   `json:"user_id"`
	AssignedRegions []string `json:"assigned_regions"`
	ApprovalCount   int      `json:"approval_count"`
}

type adminSeedRow struct {
	UserID          string     `json:"user_id"`
	AccessLevel     int        `json:"access_level"`
	LastAdminAction *time.Time `json:"last_admin_action"`
}

// Run imports the whole dataset. A failed chunk aborts the run naming its
// table; the one exception is the cities image column, which is retried
// without images when the backend does not have it yet.
func (i *Importer) Run(ctx context.Context, data *mockdata.Dataset) error {
	log.Info().Msg("Seeding users")
	userRows, err := i.userRows(data)
	if err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "users", userRows, supabase.UpsertOptions{OnConflict: "user_id"}); err != nil {
		return err
	}

	log.Info().Msg("Seeding profiles")
	profileRows, err := i.profileRows(data)
	if err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "profiles", profileRows, supabase.UpsertOptions{OnConflict: "user_id"}); err != nil {
		return err
	}

	log.Info().Msg("Seeding profile interests")
	interestRows, err := i.profileInterestRows(ctx, data, profileRows)
	if err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "profile_interests", interestRows, supabase.UpsertOptions{
		OnConflict:       "profile_id,interest",
		IgnoreDuplicates: true,
	}); err != nil {
		return err
	}

	log.Info().Msg("Seeding cities")
	if err := i.seedCities(ctx, data); err != nil {
		return err
	}

	log.Info().Msg("Seeding places")
	placeRows, featureRows, imageRows, err := i.placeRows(data)
	if err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "places", placeRows, supabase.UpsertOptions{OnConflict: "place_id"}); err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "place_features", featureRows, supabase.UpsertOptions{
		OnConflict:       "place_id,feature",
		IgnoreDuplicates: true,
	}); err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "place_images", imageRows, supabase.UpsertOptions{
		OnConflict:       "place_id,image_url",
		IgnoreDuplicates: true,
	}); err != nil {
		return err
	}

	log.Info().Msg("Seeding posts")
	postRows, postImageRows, err := i.postRows(data)
	if err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "posts", postRows, supabase.UpsertOptions{OnConflict: "post_id"}); err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "post_images", postImageRows, supabase.UpsertOptions{
		OnConflict:       "post_id,image_url",
		IgnoreDuplicates: true,
	}); err != nil {
		return err
	}

	log.Info().Msg("Seeding comments")
	commentRows, err := i.commentRows(data)
	if err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "comments", commentRows, supabase.UpsertOptions{OnConflict: "comment_id"}); err != nil {
		return err
	}

	log.Info().Msg("Seeding ratings")
	ratingRows, err := i.ratingRows(data)
	if err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "ratings", ratingRows, supabase.UpsertOptions{OnConflict: "user_id,post_id"}); err != nil {
		return err
	}

	log.Info().Msg("Seeding follows")
	followRows, err := i.followRows(data)
	if err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "follows", followRows, supabase.UpsertOptions{OnConflict: "follower_id,following_id"}); err != nil {
		return err
	}

	log.Info().Msg("Seeding companion requests")
	requestRows, conditionRows, err := i.requestRows(data)
	if err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "companion_requests", requestRows, supabase.UpsertOptions{OnConflict: "request_id"}); err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "request_conditions", conditionRows, supabase.UpsertOptions{
		OnConflict:       "request_id,condition",
		IgnoreDuplicates: true,
	}); err != nil {
		return err
	}

	log.Info().Msg("Seeding companion matches")
	matchRows, err := i.matchRows(data)
	if err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "companion_matches", matchRows, supabase.UpsertOptions{OnConflict: "match_id"}); err != nil {
		return err
	}

	log.Info().Msg("Seeding role records")
	regularRows, moderatorRows, adminRows, err := i.roleRows(data)
	if err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "regular_users", regularRows, supabase.UpsertOptions{OnConflict: "user_id"}); err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "moderators", moderatorRows, supabase.UpsertOptions{OnConflict: "user_id"}); err != nil {
		return err
	}
	if err := upsertBatches(ctx, i.client, "admins", adminRows, supabase.UpsertOptions{OnConflict: "user_id"}); err != nil {
		return err
	}

	log.Info().Msg("Seed complete")
	return nil
}

func (i *Importer) userRows(data *mockdata.Dataset) ([]userSeedRow, error) {
	rows := make([]userSeedRow, 0, len(data.Users))
	for _, u := range data.Users {
		id, err := ToUUID(KindUser, u.UserID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, userSeedRow{
			UserID:       id,
			Name:         u.Name,
			Username:     u.Username,
			Email:        u.Email,
			Phone:        u.Phone,
			PasswordHash: u.PasswordHash,
			ProfileImage: u.ProfileImage,
			CreatedAt:    u.CreatedAt,
			UserType:     string(u.UserType),
		})
	}
	return rows, nil
}

func (i *Importer) profileRows(data *mockdata.Dataset) ([]profileSeedRow, error) {
	rows := make([]profileSeedRow, 0, len(data.Profiles))
	for _, p := range data.Profiles {
		userID, err := ToUUID(KindUser, p.UserID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, profileSeedRow{
			UserID:     userID,
			Bio:        p.Bio,
			CoverImage: p.CoverImage,
		})
	}
	return rows, nil
}

// profileInterestRows needs the backend-assigned profile ids, so it reads
// them back after the profiles upsert.
func (i *Importer) profileInterestRows(ctx context.Context, data *mockdata.Dataset, profiles []profileSeedRow) ([]profileInterestSeedRow, error) {
	if len(profiles) == 0 {
		return nil, nil
	}
	userIDs := make([]string, 0, len(profiles))
	for _, p := range profiles {
		userIDs = append(userIDs, p.UserID)
	}

	var lookup []struct {
		ProfileID string `json:"profile_id"`
		UserID    string `json:"user_id"`
	}
	if err := i.client.From("profiles").Select("profile_id", "user_id").In("user_id", userIDs).Get(ctx, &lookup); err != nil {
		return nil, fmt.Errorf("profiles: %w", err)
	}
	profileIDByUserID := make(map[string]string, len(lookup))
	for _, row := range lookup {
		profileIDByUserID[row.UserID] = row.ProfileID
	}

	rows := []profileInterestSeedRow{}
	for _, p := range data.Profiles {
		userID, err := ToUUID(KindUser, p.UserID)
		if err != nil {
			return nil, err
		}
		profileID, ok := profileIDByUserID[userID]
		if !ok {
			continue
		}
		for _, interest := range p.Interests {
			rows = append(rows, profileInterestSeedRow{ProfileID: profileID, Interest: interest})
		}
	}
	return rows, nil
}

func (i *Importer) seedCities(ctx context.Context, data *mockdata.Dataset) error {
	withImage := make([]citySeedRow, 0, len(data.Cities))
	for _, c := range data.Cities {
		id, err := ToUUID(KindCity, c.CityID)
		if err != nil {
			return err
		}
		withImage = append(withImage, citySeedRow{
			CityID:      id,
			Name:        c.Name,
			Description: c.Description,
			Province:    c.Province,
			Country:     c.Country,
			Latitude:    c.Latitude,
			Longitude:   c.Longitude,
			Image:       c.Image,
		})
	}

	err := upsertBatches(ctx, i.client, "cities", withImage, supabase.UpsertOptions{OnConflict: "city_id"})
	if err == nil {
		return nil
	}
	if !strings.Contains(strings.ToLower(err.Error()), "image") {
		return err
	}

	// Older schemas lack cities.image; seed the rest of the columns anyway
	withoutImage := make([]citySeedRow, len(withImage))
	copy(withoutImage, withImage)
	for idx := range withoutImage {
		withoutImage[idx].Image = nil
	}
	if err := upsertBatches(ctx, i.client, "cities", withoutImage, supabase.UpsertOptions{OnConflict: "city_id"}); err != nil {
		return err
	}
	log.Warn().Msg("cities.image column not found; inserted without images")
	return nil
}

func (i *Importer) placeRows(data *mockdata.Dataset) ([]placeSeedRow, []placeFeatureSeedRow, []placeImageSeedRow, error) {
	rows := make([]placeSeedRow, 0, len(data.Places))
	features := []placeFeatureSeedRow{}
	images := []placeImageSeedRow{}
	for _, p := range data.Places {
		placeID, err := ToUUID(KindPlace, p.PlaceID)
		if err != nil {
			return nil, nil, nil, err
		}
		cityID, err := ToUUID(KindCity, p.CityID)
		if err != nil {
			return nil, nil, nil, err
		}
		rows = append(rows, placeSeedRow{
			PlaceID:     placeID,
			CityID:      cityID,
			Name:        p.Name,
			Description: p.Description,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
			MapURL:      p.MapURL,
		})
		for _, feature := range p.Features {
			features = append(features, placeFeatureSeedRow{PlaceID: placeID, Feature: feature})
		}
		for _, image := range p.Images {
			images = append(images, placeImageSeedRow{PlaceID: placeID, ImageURL: image})
		}
	}
	return rows, features, images, nil
}

func (i *Importer) postRows(data *mockdata.Dataset) ([]postSeedRow, []postImageSeedRow, error) {
	rows := make([]postSeedRow, 0, len(data.Posts))
	images := []postImageSeedRow{}
	for _, p := range data.Posts {
		postID, err := ToUUID(KindPost, p.PostID)
		if err != nil {
			return nil, nil, err
		}
		userID, err := ToUUID(KindUser, p.UserID)
		if err != nil {
			return nil, nil, err
		}
		placeID, err := ToUUIDPtr(KindPlace, p.PlaceID)
		if err != nil {
			return nil, nil, err
		}
		cityID, err := ToUUIDPtr(KindCity, p.CityID)
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, postSeedRow{
			PostID:         postID,
			UserID:         userID,
			PlaceID:        placeID,
			CityID:         cityID,
			Title:          p.Title,
			Content:        p.Content,
			ExperienceType: string(p.ExperienceType),
			ApprovalStatus: string(p.ApprovalStatus),
			CreatedAt:      p.CreatedAt,
		})
		for _, image := range p.Images {
			images = append(images, postImageSeedRow{PostID: postID, ImageURL: image})
		}
	}
	return rows, images, nil
}

func (i *Importer) commentRows(data *mockdata.Dataset) ([]commentSeedRow, error) {
	rows := make([]commentSeedRow, 0, len(data.Comments))
	for _, c := range data.Comments {
		commentID, err := ToUUID(KindComment, c.CommentID)
		if err != nil {
			return nil, err
		}
		postID, err := ToUUID(KindPost, c.PostID)
		if err != nil {
			return nil, err
		}
		userID, err := ToUUID(KindUser, c.UserID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, commentSeedRow{
			CommentID: commentID,
			PostID:    postID,
			UserID:    userID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	return rows, nil
}

func (i *Importer) ratingRows(data *mockdata.Dataset) ([]ratingSeedRow, error) {
	rows := make([]ratingSeedRow, 0, len(data.Ratings))
	for _, r := range data.Ratings {
		userID, err := ToUUID(KindUser, r.UserID)
		if err != nil {
			return nil, err
		}
		postID, err := ToUUID(KindPost, r.PostID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ratingSeedRow{
			UserID:    userID,
			PostID:    postID,
			Score:     r.Score,
			CreatedAt: r.CreatedAt,
		})
	}
	return rows, nil
}

func (i *Importer) followRows(data *mockdata.Dataset) ([]followSeedRow, error) {
	rows := make([]followSeedRow, 0, len(data.Follows))
	for _, f := range data.Follows {
		followerID, err := ToUUID(KindUser, f.FollowerID)
		if err != nil {
			return nil, err
		}
		followingID, err := ToUUID(KindUser, f.FollowingID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, followSeedRow{
			FollowerID:  followerID,
			FollowingID: followingID,
			CreatedAt:   f.CreatedAt,
		})
	}
	return rows, nil
}

func (i *Importer) requestRows(data *mockdata.Dataset) ([]requestSeedRow, []requestConditionSeedRow, error) {
	rows := make([]requestSeedRow, 0, len(data.CompanionRequests))
	conditions := []requestConditionSeedRow{}
	for _, r := range data.CompanionRequests {
		requestID, err := ToUUID(KindRequest, r.RequestID)
		if err != nil {
			return nil, nil, err
		}
		userID, err := ToUUID(KindUser, r.UserID)
		if err != nil {
			return nil, nil, err
		}
		placeID, err := ToUUIDPtr(KindPlace, r.DestinationPlaceID)
		if err != nil {
			return nil, nil, err
		}
		cityID, err := ToUUIDPtr(KindCity, r.DestinationCityID)
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, requestSeedRow{
			RequestID:          requestID,
			UserID:             userID,
			DestinationPlaceID: placeID,
			DestinationCityID:  cityID,
			TravelDate:         r.TravelDate,
			Description:        r.Description,
			Status:             string(r.Status),
			CreatedAt:          r.CreatedAt,
		})
		for _, condition := range r.Conditions {
			conditions = append(conditions, requestConditionSeedRow{RequestID: requestID, Condition: condition})
		}
	}
	return rows, conditions, nil
}

func (i *Importer) matchRows(data *mockdata.Dataset) ([]matchSeedRow, error) {
	rows := make([]matchSeedRow, 0, len(data.CompanionMatches))
	for _, m := range data.CompanionMatches {
		matchID, err := ToUUID(KindMatch, m.MatchID)
		if err != nil {
			return nil, err
		}
		requestID, err := ToUUID(KindRequest, m.RequestID)
		if err != nil {
			return nil, err
		}
		userID, err := ToUUID(KindUser, m.CompanionUserID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, matchSeedRow{
			MatchID:         matchID,
			RequestID:       requestID,
			CompanionUserID: userID,
			Status:          string(m.Status),
			Message:         m.Message,
			CreatedAt:       m.CreatedAt,
		})
	}
	return rows, nil
}

func (i *Importer) roleRows(data *mockdata.Dataset) ([]regularUserSeedRow, []moderatorSeedRow, []adminSeedRow, error) {
	regulars := make([]regularUserSeedRow, 0, len(data.RegularUsers))
	for _, r := range data.RegularUsers {
		userID, err := ToUUID(KindUser, r.UserID)
		if err != nil {
			return nil, nil, nil, err
		}
		regulars = append(regulars, regularUserSeedRow{
			UserID:            userID,
			TravelPreferences: r.TravelPreferences,
			ExperienceLevel:   r.ExperienceLevel,
		})
	}

	moderators := make([]moderatorSeedRow, 0, len(data.Moderators))
	for _, m := range data.Moderators {
		userID, err := ToUUID(KindUser, m.UserID)
		if err != nil {
			return nil, nil, nil, err
		}
		moderators = append(moderators, moderatorSeedRow{
			UserID:          userID,
			AssignedRegions: m.AssignedRegions,
			ApprovalCount:   m.ApprovalCount,
		})
	}

	admins := make([]adminSeedRow, 0, len(data.Admins))
	for _, a := range data.Admins {
		userID, err := ToUUID(KindUser, a.UserID)
		if err != nil {
			return nil, nil, nil, err
		}
		admins = append(admins, adminSeedRow{
			UserID:          userID,
			AccessLevel:     a.AccessLevel,
			LastAdminAction: a.LastAdminAction,
		})
	}

	return regulars, moderators, admins, nil
}

func chunk[T any](items []T, size int) [][]T {
	var batches [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}

func upsertBatches[T any](ctx context.Context, client *supabase.Client, table string, rows []T, opts supabase.UpsertOptions) error {
	if len(rows) == 0 {
		return nil
	}
	for _, batch := range chunk(rows, chunkSize) {
		if err := client.Upsert(ctx, table, batch, opts); err != nil {
			return fmt.Errorf("%s: %w", table, err)
		}
	}
	return nil
}
