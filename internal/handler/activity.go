package handler

import (
	"net/http"

	"github.com/forgo/roam/api/internal/middleware"
	"github.com/forgo/roam/api/internal/model"
	"github.com/forgo/roam/api/internal/observability"
	"github.com/forgo/roam/api/internal/service"
)

// ActivityHandler handles attendance workflow HTTP requests
type ActivityHandler struct {
	svc *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// MarkDone handles POST /v1/adventures/{adventureId}/done
func (h *ActivityHandler) MarkDone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}
	adventureID := r.PathValue("adventureId")

	if err := h.svc.MarkDone(ctx, userID, adventureID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	observability.RecordWorkflowTransition("mark_done")
	WriteData(w, http.StatusAccepted, map[string]string{"status": string(model.ActivityStatusPending)})
}

// Confirm handles POST /v1/notifications/{notificationId}/confirm
func (h *ActivityHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}
	notificationID := r.PathValue("notificationId")

	if err := h.svc.Confirm(ctx, userID, notificationID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	observability.RecordWorkflowTransition("confirm")
	WriteNoContent(w)
}

// Deny handles POST /v1/notifications/{notificationId}/deny
func (h *ActivityHandler) Deny(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}
	notificationID := r.PathValue("notificationId")

	if err := h.svc.Deny(ctx, userID, notificationID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	observability.RecordWorkflowTransition("deny")
	WriteNoContent(w)
}

// SubmitRating handles POST /v1/adventures/{adventureId}/rating
func (h *ActivityHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}
	adventureID := r.PathValue("adventureId")

	var req struct {
		Rating int `json:"rating"`
	}
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	author, err := h.svc.SubmitRating(ctx, userID, adventureID, req.Rating)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	observability.RecordWorkflowTransition("rate")
	WriteData(w, http.StatusOK, author.ToPublic())
}
