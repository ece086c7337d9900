package handlers

import (
	"net/http"

	"github.com/hamsafar-mirza/backend/internal/domain/repositories"
)

// CityHandler handles city-related HTTP requests
type CityHandler struct {
	repo repositories.CityRepository
}

// NewCityHandler creates a new city handler
func NewCityHandler(repo repositories.CityRepository) *CityHandler {
	return &CityHandler{repo: repo}
}

// ListCities handles GET /api/cities
func (h *CityHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.repo.GetAll(r.Context())
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"cities": cities,
		"count":  len(cities),
	})
}

// GetCity handles GET /api/cities/{id}. Hidden cities are indistinguishable
// from missing ones.
func (h *CityHandler) GetCity(w http.ResponseWriter, r *http.Request) {
	cityID := r.PathValue("id")
	if cityID == "" {
		respondWithError(w, http.StatusBadRequest, "city ID is required")
		return
	}

	city, err := h.repo.GetByID(r.Context(), cityID)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	if city == nil {
		respondWithError(w, http.StatusNotFound, "city not found")
		return
	}

	respondWithJSON(w, http.StatusOK, city)
}
