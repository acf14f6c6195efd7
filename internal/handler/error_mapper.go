package handler

import (
	"errors"

	"github.com/forgo/roam/api/internal/database"
	"github.com/forgo/roam/api/internal/model"
	"github.com/forgo/roam/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrAdventureNotFound):
		return model.NewNotFoundError("adventure")
	case errors.Is(err, service.ErrNotificationNotFound):
		return model.NewNotFoundError("notification")

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotAdventureAuthor),
		errors.Is(err, service.ErrNotFollowListOwner),
		errors.Is(err, service.ErrNoRateInvite):
		return model.NewForbiddenError(err.Error())

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrAlreadyMarked),
		errors.Is(err, service.ErrAttendanceNotPending):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	// Self-action prevention
	case errors.Is(err, service.ErrCannotFollowSelf),
		errors.Is(err, service.ErrCannotMarkOwn):
		return model.NewValidationError([]model.FieldError{{Field: "target", Message: err.Error()}})

	// State errors
	case errors.Is(err, service.ErrEventNotEnded):
		return model.NewValidationError([]model.FieldError{{Field: "state", Message: err.Error()}})

	// Format/input validation
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrTitleTooLong),
		errors.Is(err, service.ErrDescriptionLong),
		errors.Is(err, service.ErrInvalidPrivacy),
		errors.Is(err, service.ErrInvalidTimeRange):
		return model.NewValidationError([]model.FieldError{{Field: "adventure", Message: err.Error()}})

	case errors.Is(err, service.ErrInvalidRating):
		return model.NewValidationError([]model.FieldError{{Field: "rating", Message: err.Error()}})

	case errors.Is(err, service.ErrMissingBirthday),
		errors.Is(err, service.ErrInvalidTwinMode):
		return model.NewValidationError([]model.FieldError{{Field: "twins", Message: err.Error()}})

	case errors.Is(err, service.ErrInvalidBirthday):
		return model.NewValidationError([]model.FieldError{{Field: "birthday", Message: err.Error()}})

	// ===== Store Unavailable → 503 =====
	case database.Unavailable(err):
		return model.NewUnavailableError("")

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
