package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/forgo/roam/api/internal/database"
)

// HealthHandler reports service and store health
type HealthHandler struct {
	db database.Database
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db database.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live handles GET /healthz
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /readyz, verifying the store answers
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"store":  err.Error(),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
