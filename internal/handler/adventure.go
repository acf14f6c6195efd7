package handler

import (
	"net/http"
	"strconv"

	"github.com/forgo/roam/api/internal/middleware"
	"github.com/forgo/roam/api/internal/model"
	"github.com/forgo/roam/api/internal/service"
)

// AdventureHandler handles adventure HTTP requests
type AdventureHandler struct {
	svc *service.AdventureService
}

// NewAdventureHandler creates a new adventure handler
func NewAdventureHandler(svc *service.AdventureService) *AdventureHandler {
	return &AdventureHandler{svc: svc}
}

// Create handles POST /v1/adventures
func (h *AdventureHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateAdventureRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	adventure, err := h.svc.Create(ctx, userID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, adventure)
}

// Feed handles GET /v1/feed. Guests get the guest view.
func (h *AdventureHandler) Feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	viewerID := middleware.GetUserID(ctx)
	limit, offset := paginationParams(r)

	adventures, err := h.svc.Feed(ctx, viewerID, limit, offset)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, adventures, &PaginationInfo{Limit: limit, Offset: offset})
}

// GetByID handles GET /v1/adventures/{adventureId}
func (h *AdventureHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	viewerID := middleware.GetUserID(ctx)
	adventureID := r.PathValue("adventureId")

	adventure, err := h.svc.Get(ctx, viewerID, adventureID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, adventure)
}

// ListByAuthor handles GET /v1/users/{userId}/adventures
func (h *AdventureHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	viewerID := middleware.GetUserID(ctx)
	authorID := r.PathValue("userId")
	limit, offset := paginationParams(r)

	adventures, err := h.svc.ListByAuthor(ctx, viewerID, authorID, limit, offset)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, adventures, &PaginationInfo{Limit: limit, Offset: offset})
}

// SetInterested handles PUT /v1/adventures/{adventureId}/interest
func (h *AdventureHandler) SetInterested(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}
	adventureID := r.PathValue("adventureId")

	var req struct {
		Interested bool `json:"interested"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if err := h.svc.SetInterested(ctx, userID, adventureID, req.Interested); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// paginationParams reads limit/offset query parameters with defaults
func paginationParams(r *http.Request) (int, int) {
	limit := 20
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
