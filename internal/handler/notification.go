package handler

import (
	"net/http"

	"github.com/forgo/roam/api/internal/middleware"
	"github.com/forgo/roam/api/internal/model"
	"github.com/forgo/roam/api/internal/service"
)

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	svc *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List handles GET /v1/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}
	limit, offset := paginationParams(r)

	notifications, err := h.svc.List(ctx, userID, limit, offset)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, notifications, &PaginationInfo{Limit: limit, Offset: offset})
}

// MarkAllRead handles POST /v1/notifications/read
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	if err := h.svc.MarkAllRead(ctx, userID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
