package handler

import (
	"net/http"

	"github.com/forgo/roam/api/internal/middleware"
	"github.com/forgo/roam/api/internal/model"
	"github.com/forgo/roam/api/internal/service"
)

// TwinsHandler handles birthday twin HTTP requests
type TwinsHandler struct {
	svc *service.TwinService
}

// NewTwinsHandler creates a new twins handler
func NewTwinsHandler(svc *service.TwinService) *TwinsHandler {
	return &TwinsHandler{svc: svc}
}

// Find handles GET /v1/twins?mode=exact|day_and_month
func (h *TwinsHandler) Find(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	mode := service.TwinMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = service.TwinModeDayAndMonth
	}

	twins, err := h.svc.FindTwins(ctx, userID, mode)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	public := make([]*model.UserPublic, 0, len(twins))
	for _, twin := range twins {
		public = append(public, twin.ToPublic())
	}

	WriteData(w, http.StatusOK, public)
}
