package routes

import (
	"net/http"
	"os"
	"strings"

	"github.com/rs/cors"

	"github.com/hamsafar-mirza/backend/internal/api/handlers"
	"github.com/hamsafar-mirza/backend/internal/api/middleware"
	"github.com/hamsafar-mirza/backend/internal/domain/repositories"
	"github.com/hamsafar-mirza/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	healthHandler    *handlers.HealthHandler
	userHandler      *handlers.UserHandler
	profileHandler   *handlers.ProfileHandler
	cityHandler      *handlers.CityHandler
	placeHandler     *handlers.PlaceHandler
	postHandler      *handlers.PostHandler
	companionHandler *handlers.CompanionHandler

	userRepo  repositories.UserRepository
	placeRepo repositories.PlaceRepository
	cityRepo  repositories.CityRepository

	metrics *observability.Metrics
}

// NewRouter creates a new router. The repositories are needed alongside the
// handlers to build the per-request loader set.
func NewRouter(
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	profileHandler *handlers.ProfileHandler,
	cityHandler *handlers.CityHandler,
	placeHandler *handlers.PlaceHandler,
	postHandler *handlers.PostHandler,
	companionHandler *handlers.CompanionHandler,
	userRepo repositories.UserRepository,
	placeRepo repositories.PlaceRepository,
	cityRepo repositories.CityRepository,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		healthHandler:    healthHandler,
		userHandler:      userHandler,
		profileHandler:   profileHandler,
		cityHandler:      cityHandler,
		placeHandler:     placeHandler,
		postHandler:      postHandler,
		companionHandler: companionHandler,
		userRepo:         userRepo,
		placeRepo:        placeRepo,
		cityRepo:         cityRepo,
		metrics:          metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", r.healthHandler.Health)

	// User endpoints
	r.mux.HandleFunc("GET /api/users", r.userHandler.ListUsers)
	r.mux.HandleFunc("GET /api/users/{id}", r.userHandler.GetUser)
	r.mux.HandleFunc("GET /api/users/{id}/profile", r.userHandler.GetUserProfile)
	r.mux.HandleFunc("GET /api/users/{id}/posts", r.userHandler.GetUserPosts)
	r.mux.HandleFunc("GET /api/users/{id}/requests", r.userHandler.GetUserRequests)

	// Profile endpoints
	r.mux.HandleFunc("GET /api/profiles", r.profileHandler.ListProfiles)

	// City endpoints
	r.mux.HandleFunc("GET /api/cities", r.cityHandler.ListCities)
	r.mux.HandleFunc("GET /api/cities/{id}", r.cityHandler.GetCity)

	// Place endpoints
	r.mux.HandleFunc("GET /api/places", r.placeHandler.ListPlaces)
	r.mux.HandleFunc("GET /api/places/{id}", r.placeHandler.GetPlace)

	// Post endpoints
	r.mux.HandleFunc("GET /api/posts", r.postHandler.ListPosts)
	r.mux.HandleFunc("GET /api/posts/{id}", r.postHandler.GetPost)
	r.mux.HandleFunc("GET /api/posts/{id}/comments", r.postHandler.GetPostComments)

	// Companion request endpoints
	r.mux.HandleFunc("GET /api/companion-requests", r.companionHandler.ListRequests)
	r.mux.HandleFunc("GET /api/companion-requests/{id}", r.companionHandler.GetRequest)
	r.mux.HandleFunc("GET /api/companion-requests/{id}/matches", r.companionHandler.GetRequestMatches)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoaderMiddleware(r.userRepo, r.placeRepo, r.cityRepo)(handler)
	handler = middleware.LoggingMiddleware(handler)
	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}

	// CORS wraps everything
	handler = cors.New(cors.Options{
		AllowedOrigins: allowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(handler)

	return handler
}

func allowedOrigins() []string {
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		return strings.Split(env, ",")
	}
	return []string{"*"}
}
