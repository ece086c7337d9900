package handlers

import (
	"context"
	"net/http"

	"github.com/hamsafar-mirza/backend/internal/api/loaders"
	"github.com/hamsafar-mirza/backend/internal/domain/entities"
	"github.com/hamsafar-mirza/backend/internal/domain/repositories"
)

// CompanionHandler handles companion-request HTTP requests
type CompanionHandler struct {
	repo repositories.CompanionRepository
}

// NewCompanionHandler creates a new companion handler
func NewCompanionHandler(repo repositories.CompanionRepository) *CompanionHandler {
	return &CompanionHandler{repo: repo}
}

// ListRequests handles GET /api/companion-requests, hydrating each request
// with its requester and destination through the request's loaders
func (h *CompanionHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requests, err := h.repo.GetAllRequests(ctx)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	details, err := hydrateRequests(ctx, requests)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"requests": details,
		"count":    len(details),
	})
}

// GetRequest handles GET /api/companion-requests/{id}
func (h *CompanionHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestID := r.PathValue("id")
	if requestID == "" {
		respondWithError(w, http.StatusBadRequest, "request ID is required")
		return
	}
	ctx := r.Context()

	request, err := h.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	if request == nil {
		respondWithError(w, http.StatusNotFound, "companion request not found")
		return
	}

	details, err := hydrateRequests(ctx, []entities.CompanionRequest{*request})
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, details[0])
}

// GetRequestMatches handles GET /api/companion-requests/{id}/matches
func (h *CompanionHandler) GetRequestMatches(w http.ResponseWriter, r *http.Request) {
	requestID := r.PathValue("id")
	if requestID == "" {
		respondWithError(w, http.StatusBadRequest, "request ID is required")
		return
	}

	matches, err := h.repo.GetMatchesByRequestID(r.Context(), requestID)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"matches": matches,
		"count":   len(matches),
	})
}

func hydrateRequests(ctx context.Context, requests []entities.CompanionRequest) ([]entities.CompanionRequestWithDetails, error) {
	l := loaders.For(ctx)

	userThunks := make([]func() (*entities.User, error), len(requests))
	placeThunks := make([]func() (*entities.Place, error), len(requests))
	cityThunks := make([]func() (*entities.City, error), len(requests))
	for i, request := range requests {
		userThunks[i] = l.UserLoader.Load(ctx, request.UserID)
		if request.DestinationPlaceID != nil {
			placeThunks[i] = l.PlaceLoader.Load(ctx, *request.DestinationPlaceID)
		}
		if request.DestinationCityID != nil {
			cityThunks[i] = l.CityLoader.Load(ctx, *request.DestinationCityID)
		}
	}

	details := make([]entities.CompanionRequestWithDetails, len(requests))
	for i, request := range requests {
		detail := entities.CompanionRequestWithDetails{CompanionRequest: request}

		requester, err := userThunks[i]()
		if err != nil {
			return nil, err
		}
		detail.Requester = requester

		if placeThunks[i] != nil {
			place, err := placeThunks[i]()
			if err != nil {
				return nil, err
			}
			detail.DestinationPlace = place
		}
		if cityThunks[i] != nil {
			city, err := cityThunks[i]()
			if err != nil {
				return nil, err
			}
			detail.DestinationCity = city
		}

		details[i] = detail
	}
	return details, nil
}
