package handlers

import (
	"net/http"

	"github.com/hamsafar-mirza/backend/internal/domain/entities"
	"github.com/hamsafar-mirza/backend/internal/domain/repositories"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	postRepo      repositories.PostRepository
	companionRepo repositories.CompanionRepository
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	postRepo repositories.PostRepository,
	companionRepo repositories.CompanionRepository,
) *UserHandler {
	return &UserHandler{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		postRepo:      postRepo,
		companionRepo: companionRepo,
	}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.GetAll(r.Context())
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"count": len(users),
	})
}

// GetUser handles GET /api/users/{id}. The response bundles the user with
// its profile and the role record matching its user type.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "user ID is required")
		return
	}

	user, err := h.userRepo.GetByID(r.Context(), userID)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	if user == nil {
		respondWithError(w, http.StatusNotFound, "user not found")
		return
	}

	detail := entities.UserWithProfile{User: *user}

	profile, err := h.profileRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	detail.Profile = profile

	switch user.UserType {
	case entities.UserTypeRegular:
		detail.RegularUser, err = h.userRepo.GetRegularUserByUserID(r.Context(), userID)
	case entities.UserTypeModerator:
		detail.Moderator, err = h.userRepo.GetModeratorByUserID(r.Context(), userID)
	case entities.UserTypeAdmin:
		detail.Admin, err = h.userRepo.GetAdminByUserID(r.Context(), userID)
	}
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, detail)
}

// GetUserProfile handles GET /api/users/{id}/profile
func (h *UserHandler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "user ID is required")
		return
	}

	profile, err := h.profileRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}
	if profile == nil {
		respondWithError(w, http.StatusNotFound, "profile not found")
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}

// GetUserPosts handles GET /api/users/{id}/posts
func (h *UserHandler) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "user ID is required")
		return
	}

	posts, err := h.postRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"count": len(posts),
	})
}

// GetUserRequests handles GET /api/users/{id}/requests
func (h *UserHandler) GetUserRequests(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "user ID is required")
		return
	}

	requests, err := h.companionRepo.GetRequestsByUserID(r.Context(), userID)
	if err != nil {
		respondWithInternalError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"requests": requests,
		"count":    len(requests),
	})
}
