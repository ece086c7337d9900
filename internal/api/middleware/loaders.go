package middleware

import (
	"net/http"

	"github.com/hamsafar-mirza/backend/internal/api/loaders"
	"github.com/hamsafar-mirza/backend/internal/domain/repositories"
)

// LoaderMiddleware attaches a fresh loader set to every request, so batching
// and memoization never leak across requests.
func LoaderMiddleware(
	userRepo repositories.UserRepository,
	placeRepo repositories.PlaceRepository,
	cityRepo repositories.CityRepository,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := loaders.WithLoaders(r.Context(), loaders.New(userRepo, placeRepo, cityRepo))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
