package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hamsafar-mirza/backend/internal/infrastructure/observability"
)

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithInternalError logs the cause and answers with a generic
// message. Backend errors never leak to clients.
func respondWithInternalError(w http.ResponseWriter, r *http.Request, err error) {
	observability.LoggerFromContext(r.Context()).Error().
		Err(err).
		Str("path", r.URL.Path).
		Msg("Request failed")
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
