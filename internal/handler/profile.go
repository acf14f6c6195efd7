package handler

import (
	"net/http"

	"github.com/forgo/roam/api/internal/middleware"
	"github.com/forgo/roam/api/internal/model"
	"github.com/forgo/roam/api/internal/service"
)

// ProfileHandler handles user profile HTTP requests
type ProfileHandler struct {
	svc *service.UserService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(svc *service.UserService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Get handles GET /v1/users/{userId}
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	viewerID := middleware.GetUserID(ctx)
	userID := r.PathValue("userId")

	public, full, err := h.svc.GetProfile(ctx, viewerID, userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	if full != nil {
		WriteData(w, http.StatusOK, full)
		return
	}
	WriteData(w, http.StatusOK, public)
}

// GetMe handles GET /v1/users/me
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	_, full, err := h.svc.GetProfile(ctx, userID, userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, full)
}

// UpdateProfile handles PATCH /v1/users/me/profile
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.UpdateProfileRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.svc.UpdateProfile(ctx, userID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, user)
}

// UpdatePrivacy handles PATCH /v1/users/me/privacy
func (h *ProfileHandler) UpdatePrivacy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.UpdatePrivacyRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	user, err := h.svc.UpdatePrivacy(ctx, userID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, user)
}
