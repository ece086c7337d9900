package handlers

import (
	"net/http"

	"github.com/hamsafar-mirza/backend/internal/datasource"
)

// HealthHandler reports process liveness and the resolved data source
type HealthHandler struct {
	resolver *datasource.Resolver
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(resolver *datasource.Resolver) *HealthHandler {
	return &HealthHandler{resolver: resolver}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	source := "supabase"
	if h.resolver.UseMock() {
		source = "mock"
	}
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"data_source": source,
		"mode":        string(h.resolver.Mode()),
	})
}
