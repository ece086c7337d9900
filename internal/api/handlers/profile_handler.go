package handlers

import (
	"net/http"

	"github.com/hamsafar-mirza/backend/internal/domain/repositories"
)

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	repo repositories.ProfileRepository
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(repo repositories.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{repo: repo}
}

// ListProfiles handles GET /api/profiles
func (h *ProfileHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.repo.GetAll(r.Context())
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"profiles": profiles,
		"count":    len(profiles),
	})
}
