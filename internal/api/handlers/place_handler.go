package handlers

import (
	"net/http"

	"github.com/hamsafar-mirza/backend/internal/domain/repositories"
)

// PlaceHandler handles place-related HTTP requests
type PlaceHandler struct {
	repo repositories.PlaceRepository
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(repo repositories.PlaceRepository) *PlaceHandler {
	return &PlaceHandler{repo: repo}
}

// ListPlaces handles GET /api/places, optionally filtered by city_id
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	if cityID := r.URL.Query().Get("city_id"); cityID != "" {
		places, err := h.repo.GetByCityID(r.Context(), cityID)
		if err != nil {
			respondWithInternalError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"places": places,
			"count":  len(places),
		})
		return
	}

	places, err := h.repo.GetAll(r.Context())
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"places": places,
		"count":  len(places),
	})
}

// GetPlace handles GET /api/places/{id}
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	placeID := r.PathValue("id")
	if placeID == "" {
		respondWithError(w, http.StatusBadRequest, "place ID is required")
		return
	}

	place, err := h.repo.GetByID(r.Context(), placeID)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	if place == nil {
		respondWithError(w, http.StatusNotFound, "place not found")
		return
	}

	respondWithJSON(w, http.StatusOK, place)
}
