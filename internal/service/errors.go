package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable. Every rejection maps
// to exactly one sentinel; nothing collapses into a generic catch-all.

// ===== Lookup Errors =====
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrAdventureNotFound    = errors.New("adventure not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

// ===== Follow Graph Errors =====
var (
	ErrCannotFollowSelf   = errors.New("cannot follow yourself")
	ErrNotFollowListOwner = errors.New("only the list owner may remove a follower")
)

// ===== Attendance Workflow Errors =====
var (
	ErrCannotMarkOwn        = errors.New("cannot mark your own adventure as done")
	ErrAlreadyMarked        = errors.New("adventure already marked as done")
	ErrEventNotEnded        = errors.New("adventure has not ended yet")
	ErrAttendanceNotPending = errors.New("attendance entry is not pending")
	ErrNotAdventureAuthor   = errors.New("not the adventure's author")
)

// ===== Rating Errors =====
var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrNoRateInvite  = errors.New("no standing invitation to rate this adventure")
)

// ===== Twin Search Errors =====
var (
	ErrMissingBirthday = errors.New("birthday must be set to search for twins")
	ErrInvalidTwinMode = errors.New("invalid twin search mode")
)

// ===== Adventure Errors =====
var (
	ErrTitleRequired    = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title exceeds maximum length")
	ErrDescriptionLong  = errors.New("description exceeds maximum length")
	ErrInvalidPrivacy   = errors.New("invalid privacy scope")
	ErrInvalidTimeRange = errors.New("end date must not be before start date")
)

// ===== Profile Errors =====
var (
	ErrInvalidBirthday = errors.New("birthday must be a valid YYYY-MM-DD date")
)
