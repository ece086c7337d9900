package entities

import "time"

// RequestStatus is the lifecycle state of a companion request.
type RequestStatus string

const (
	RequestActive    RequestStatus = "active"
	RequestCompleted RequestStatus = "completed"
	RequestCancelled RequestStatus = "cancelled"
)

// MatchStatus is the state of a candidate companion's offer.
type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
)

// CompanionRequest is a call for travel companions. TravelDate is a plain
// calendar date, kept as the backend's YYYY-MM-DD string. Conditions are
// denormalized from a child table and always non-nil.
type CompanionRequest struct {
	RequestID          string        `json:"request_id"`
	UserID             string        `json:"user_id"`
	DestinationPlaceID *string       `json:"destination_place_id,omitempty"`
	DestinationCityID  *string       `json:"destination_city_id,omitempty"`
	TravelDate         string        `json:"travel_date"`
	Description        *string       `json:"description,omitempty"`
	Status             RequestStatus `json:"status"`
	CreatedAt          time.Time     `json:"created_at"`
	Conditions         []string      `json:"conditions"`
}

// CompanionMatch is a candidate companion's response to a request
type CompanionMatch struct {
	MatchID         string      `json:"match_id"`
	RequestID       string      `json:"request_id"`
	CompanionUserID string      `json:"companion_user_id"`
	Status          MatchStatus `json:"status"`
	Message         *string     `json:"message,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// CompanionRequestWithDetails hydrates a request with its referenced rows
type CompanionRequestWithDetails struct {
	CompanionRequest
	Requester        *User  `json:"requester,omitempty"`
	DestinationPlace *Place `json:"destination_place,omitempty"`
	DestinationCity  *City  `json:"destination_city,omitempty"`
}
