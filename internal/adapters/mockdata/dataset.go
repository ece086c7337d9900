// Package mockdata carries the static in-memory dataset used when no remote
// backend is selected. The dataset is built once and read-only afterwards;
// derived values (rating aggregates, follower counts) are recomputed from
// the rating and follow sets on every read rather than stored.
package mockdata

import (
	"sort"

	"github.com/hamsafar-mirza/backend/internal/domain/entities"
)

// Dataset is a fixed snapshot of every entity collection.
type Dataset struct {
	Users             []entities.User
	RegularUsers      []entities.RegularUser
	Moderators        []entities.Moderator
	Admins            []entities.Admin
	Profiles          []entities.Profile
	Cities            []entities.City
	Places            []entities.Place
	Posts             []entities.Post
	Comments          []entities.Comment
	Ratings           []entities.Rating
	Follows           []entities.Follow
	CompanionRequests []entities.CompanionRequest
	CompanionMatches  []entities.CompanionMatch
}

// UserByID returns the user with the given id, or nil.
func (d *Dataset) UserByID(userID string) *entities.User {
	for i := range d.Users {
		if d.Users[i].UserID == userID {
			u := d.Users[i]
			return &u
		}
	}
	return nil
}

// UsersByIDs returns the users matching the given ids, in dataset order.
func (d *Dataset) UsersByIDs(userIDs []string) []entities.User {
	wanted := toSet(userIDs)
	out := []entities.User{}
	for _, u := range d.Users {
		if wanted[u.UserID] {
			out = append(out, u)
		}
	}
	return out
}

// RegularUserByUserID returns the regular-user role record, or nil.
func (d *Dataset) RegularUserByUserID(userID string) *entities.RegularUser {
	for i := range d.RegularUsers {
		if d.RegularUsers[i].UserID == userID {
			r := d.RegularUsers[i]
			return &r
		}
	}
	return nil
}

// ModeratorByUserID returns the moderator role record, or nil.
func (d *Dataset) ModeratorByUserID(userID string) *entities.Moderator {
	for i := range d.Moderators {
		if d.Moderators[i].UserID == userID {
			m := d.Moderators[i]
			return &m
		}
	}
	return nil
}

// AdminByUserID returns the admin role record, or nil.
func (d *Dataset) AdminByUserID(userID string) *entities.Admin {
	for i := range d.Admins {
		if d.Admins[i].UserID == userID {
			a := d.Admins[i]
			return &a
		}
	}
	return nil
}

// AllProfiles returns every profile with follower and following counts
// computed from the follow set.
func (d *Dataset) AllProfiles() []entities.Profile {
	out := make([]entities.Profile, 0, len(d.Profiles))
	for _, p := range d.Profiles {
		p.FollowersCount = d.FollowerCount(p.UserID)
		p.FollowingCount = d.FollowingCount(p.UserID)
		out = append(out, p)
	}
	return out
}

// ProfileByUserID returns the profile of a user with computed counts, or nil.
func (d *Dataset) ProfileByUserID(userID string) *entities.Profile {
	for i := range d.Profiles {
		if d.Profiles[i].UserID == userID {
			p := d.Profiles[i]
			p.FollowersCount = d.FollowerCount(userID)
			p.FollowingCount = d.FollowingCount(userID)
			return &p
		}
	}
	return nil
}

// FollowerCount counts follow edges pointing at the user.
func (d *Dataset) FollowerCount(userID string) int {
	n := 0
	for _, f := range d.Follows {
		if f.FollowingID == userID {
			n++
		}
	}
	return n
}

// FollowingCount counts follow edges leaving the user.
func (d *Dataset) FollowingCount(userID string) int {
	n := 0
	for _, f := range d.Follows {
		if f.FollowerID == userID {
			n++
		}
	}
	return n
}

// CityByID returns the city with the given id, or nil. Visibility filtering
// is the adapter's concern, not the dataset's.
func (d *Dataset) CityByID(cityID string) *entities.City {
	for i := range d.Cities {
		if d.Cities[i].CityID == cityID {
			c := d.Cities[i]
			return &c
		}
	}
	return nil
}

// CitiesByIDs returns the cities matching the given ids.
func (d *Dataset) CitiesByIDs(cityIDs []string) []entities.City {
	wanted := toSet(cityIDs)
	out := []entities.City{}
	for _, c := range d.Cities {
		if wanted[c.CityID] {
			out = append(out, c)
		}
	}
	return out
}

// PlaceByID returns the place with the given id, or nil.
func (d *Dataset) PlaceByID(placeID string) *entities.Place {
	for i := range d.Places {
		if d.Places[i].PlaceID == placeID {
			p := d.Places[i]
			return &p
		}
	}
	return nil
}

// PlacesByIDs returns the places matching the given ids.
func (d *Dataset) PlacesByIDs(placeIDs []string) []entities.Place {
	wanted := toSet(placeIDs)
	out := []entities.Place{}
	for _, p := range d.Places {
		if wanted[p.PlaceID] {
			out = append(out, p)
		}
	}
	return out
}

// PlacesByCityID returns the places inside a city.
func (d *Dataset) PlacesByCityID(cityID string) []entities.Place {
	out := []entities.Place{}
	for _, p := range d.Places {
		if p.CityID == cityID {
			out = append(out, p)
		}
	}
	return out
}

// AllPosts returns every post, newest first, with rating aggregates
// computed from the rating set.
func (d *Dataset) AllPosts() []entities.Post {
	out := make([]entities.Post, 0, len(d.Posts))
	for _, p := range d.Posts {
		p.AvgRating, p.RatingCount = d.RatingSummary(p.PostID)
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// PostByID returns the post with the given id and computed aggregates, or nil.
func (d *Dataset) PostByID(postID string) *entities.Post {
	for i := range d.Posts {
		if d.Posts[i].PostID == postID {
			p := d.Posts[i]
			p.AvgRating, p.RatingCount = d.RatingSummary(postID)
			return &p
		}
	}
	return nil
}

// PostsByUserID returns the posts authored by a user, newest first.
func (d *Dataset) PostsByUserID(userID string) []entities.Post {
	out := []entities.Post{}
	for _, p := range d.Posts {
		if p.UserID == userID {
			p.AvgRating, p.RatingCount = d.RatingSummary(p.PostID)
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// RatingSummary computes the mean score and rating count of a post. A post
// with no ratings yields (0, 0).
func (d *Dataset) RatingSummary(postID string) (float64, int) {
	sum, count := 0, 0
	for _, r := range d.Ratings {
		if r.PostID == postID {
			sum += r.Score
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	return float64(sum) / float64(count), count
}

// CommentsByPostID returns the comments of a post, oldest first.
func (d *Dataset) CommentsByPostID(postID string) []entities.Comment {
	out := []entities.Comment{}
	for _, c := range d.Comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// AllCompanionRequests returns every companion request, newest first.
func (d *Dataset) AllCompanionRequests() []entities.CompanionRequest {
	out := make([]entities.CompanionRequest, len(d.CompanionRequests))
	copy(out, d.CompanionRequests)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// CompanionRequestByID returns the request with the given id, or nil.
func (d *Dataset) CompanionRequestByID(requestID string) *entities.CompanionRequest {
	for i := range d.CompanionRequests {
		if d.CompanionRequests[i].RequestID == requestID {
			r := d.CompanionRequests[i]
			return &r
		}
	}
	return nil
}

// CompanionRequestsByUserID returns the requests opened by a user, newest first.
func (d *Dataset) CompanionRequestsByUserID(userID string) []entities.CompanionRequest {
	out := []entities.CompanionRequest{}
	for _, r := range d.CompanionRequests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// MatchesByRequestID returns the candidate matches of a request.
func (d *Dataset) MatchesByRequestID(requestID string) []entities.CompanionMatch {
	out := []entities.CompanionMatch{}
	for _, m := range d.CompanionMatches {
		if m.RequestID == requestID {
			out = append(out, m)
		}
	}
	return out
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
