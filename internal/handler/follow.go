package handler

import (
	"net/http"

	"github.com/forgo/roam/api/internal/middleware"
	"github.com/forgo/roam/api/internal/model"
	"github.com/forgo/roam/api/internal/service"
)

// FollowHandler handles follow graph HTTP requests
type FollowHandler struct {
	svc *service.FollowService
}

// NewFollowHandler creates a new follow handler
func NewFollowHandler(svc *service.FollowService) *FollowHandler {
	return &FollowHandler{svc: svc}
}

// Toggle handles POST /v1/users/{userId}/follow
func (h *FollowHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}
	targetID := r.PathValue("userId")

	following, err := h.svc.ToggleFollow(ctx, userID, targetID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, map[string]bool{"following": following})
}

// RemoveFollower handles DELETE /v1/users/{userId}/followers/{followerId}
func (h *FollowHandler) RemoveFollower(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}
	ownerID := r.PathValue("userId")
	followerID := r.PathValue("followerId")

	if err := h.svc.RemoveFollower(ctx, userID, ownerID, followerID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
