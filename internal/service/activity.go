package service

import (
	"context"
	"time"

	"github.com/forgo/roam/api/internal/model"
)

// ActivityUserRepository defines the user storage needed by the workflow engine
type ActivityUserRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// ActivityAdventureRepository defines the adventure storage needed by the
// workflow engine
type ActivityAdventureRepository interface {
	GetByID(ctx context.Context, id string) (*model.Adventure, error)
}

// ActivityNotificationRepository defines notification lookups for the
// workflow engine
type ActivityNotificationRepository interface {
	GetByID(ctx context.Context, id string) (*model.Notification, error)
	RateInvites(ctx context.Context, recipientID, adventureID string) ([]*model.Notification, error)
}

// ActivityWorkflowRepository persists workflow transitions atomically
type ActivityWorkflowRepository interface {
	MarkDone(ctx context.Context, attendeeID string, log model.ActivityLog, request *model.Notification) error
	Confirm(ctx context.Context, attendeeID string, log model.ActivityLog, requestID string, confirmed, rateInvite *model.Notification) error
	Deny(ctx context.Context, attendeeID string, log model.ActivityLog, requestID string) error
	ApplyRating(ctx context.Context, authorID string, average float64, count int, inviteIDs []string) error
}

// ActivityService drives the attendance workflow per (user, adventure) pair:
//
//	Absent -> Pending -> Confirmed
//	                  -> Absent (denial deletes the entry; re-attempt allowed)
//
// Preconditions are checked against state read immediately before mutating,
// and every transition's mutations commit as one unit, so a rejected call
// leaves no trace and a concurrent duplicate mark-done resolves to exactly
// one log entry.
type ActivityService struct {
	users         ActivityUserRepository
	adventures    ActivityAdventureRepository
	notifications ActivityNotificationRepository
	workflow      ActivityWorkflowRepository
	now           func() time.Time
}

// ActivityServiceConfig holds configuration for the activity service
type ActivityServiceConfig struct {
	Users         ActivityUserRepository
	Adventures    ActivityAdventureRepository
	Notifications ActivityNotificationRepository
	Workflow      ActivityWorkflowRepository
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewActivityService creates a new activity service
func NewActivityService(cfg ActivityServiceConfig) *ActivityService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &ActivityService{
		users:         cfg.Users,
		adventures:    cfg.Adventures,
		notifications: cfg.Notifications,
		workflow:      cfg.Workflow,
		now:           now,
	}
}

// MarkDone logs the caller's attendance as pending and asks the author to
// confirm it. Rejected when the caller authored the adventure, already
// logged it in any status, or the adventure's effective end has not passed.
func (s *ActivityService) MarkDone(ctx context.Context, callerID, adventureID string) error {
	adventure, err := s.adventures.GetByID(ctx, adventureID)
	if err != nil {
		return err
	}
	if adventure == nil {
		return ErrAdventureNotFound
	}
	if adventure.AuthorID == callerID {
		return ErrCannotMarkOwn
	}

	caller, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		return err
	}
	if caller == nil {
		return ErrUserNotFound
	}
	if caller.HasLogged(adventure.ID) {
		return ErrAlreadyMarked
	}
	if !adventure.HasEnded(s.now()) {
		return ErrEventNotEnded
	}

	log := caller.ActivityLog.Clone()
	log[adventure.ID] = model.ActivityStatusPending

	request := &model.Notification{
		Type:        model.NotificationAttendanceRequest,
		RecipientID: adventure.AuthorID,
		SenderID:    callerID,
		AdventureID: &adventure.ID,
	}
	return s.workflow.MarkDone(ctx, callerID, log, request)
}

// Confirm resolves a pending attendance request in the attendee's favor.
// Only the adventure's author may confirm, referencing the request
// notification they received. The attendee gains a confirmed log entry plus
// attendance_confirmed and rate_experience notifications, and the actioned
// request leaves the author's queue.
func (s *ActivityService) Confirm(ctx context.Context, callerID, notificationID string) error {
	request, adventure, attendee, err := s.resolveRequest(ctx, callerID, notificationID)
	if err != nil {
		return err
	}

	log := attendee.ActivityLog.Clone()
	log[adventure.ID] = model.ActivityStatusConfirmed

	confirmed := &model.Notification{
		Type:        model.NotificationAttendanceConfirmed,
		RecipientID: attendee.ID,
		SenderID:    callerID,
		AdventureID: &adventure.ID,
	}
	rateInvite := &model.Notification{
		Type:        model.NotificationRateExperience,
		RecipientID: attendee.ID,
		SenderID:    callerID,
		AdventureID: &adventure.ID,
	}
	return s.workflow.Confirm(ctx, attendee.ID, log, request.ID, confirmed, rateInvite)
}

// Deny resolves a pending attendance request against the attendee. The log
// entry is deleted, returning the pair to the initial state so the attendee
// may mark done again later. Denial is silent: no notification reaches the
// attendee, and the actioned request leaves the author's queue.
func (s *ActivityService) Deny(ctx context.Context, callerID, notificationID string) error {
	request, adventure, attendee, err := s.resolveRequest(ctx, callerID, notificationID)
	if err != nil {
		return err
	}

	log := attendee.ActivityLog.Clone()
	delete(log, adventure.ID)

	return s.workflow.Deny(ctx, attendee.ID, log, request.ID)
}

// SubmitRating rates the adventure's author. The caller must hold a
// rate_experience notification for the adventure; the author's aggregate is
// recomputed and the invitation(s) consumed. The attendee's log entry stays
// confirmed.
func (s *ActivityService) SubmitRating(ctx context.Context, callerID, adventureID string, rating int) (*model.User, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}

	adventure, err := s.adventures.GetByID(ctx, adventureID)
	if err != nil {
		return nil, err
	}
	if adventure == nil {
		return nil, ErrAdventureNotFound
	}

	invites, err := s.notifications.RateInvites(ctx, callerID, adventure.ID)
	if err != nil {
		return nil, err
	}
	if len(invites) == 0 {
		return nil, ErrNoRateInvite
	}

	author, err := s.users.GetByID(ctx, adventure.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	average, count, err := ApplyRating(author.AverageRating, author.TotalRatings, rating)
	if err != nil {
		return nil, err
	}

	inviteIDs := make([]string, 0, len(invites))
	for _, invite := range invites {
		inviteIDs = append(inviteIDs, invite.ID)
	}
	if err := s.workflow.ApplyRating(ctx, author.ID, average, count, inviteIDs); err != nil {
		return nil, err
	}

	author.AverageRating = &average
	author.TotalRatings = count
	return author, nil
}

// resolveRequest validates that notificationID names an attendance_request
// actionable by callerID and loads the referenced adventure and attendee.
func (s *ActivityService) resolveRequest(ctx context.Context, callerID, notificationID string) (*model.Notification, *model.Adventure, *model.User, error) {
	request, err := s.notifications.GetByID(ctx, notificationID)
	if err != nil {
		return nil, nil, nil, err
	}
	if request == nil || request.Type != model.NotificationAttendanceRequest || request.AdventureID == nil {
		return nil, nil, nil, ErrNotificationNotFound
	}
	if request.RecipientID != callerID {
		return nil, nil, nil, ErrNotAdventureAuthor
	}

	adventure, err := s.adventures.GetByID(ctx, *request.AdventureID)
	if err != nil {
		return nil, nil, nil, err
	}
	if adventure == nil {
		return nil, nil, nil, ErrAdventureNotFound
	}
	if adventure.AuthorID != callerID {
		return nil, nil, nil, ErrNotAdventureAuthor
	}

	attendee, err := s.users.GetByID(ctx, request.SenderID)
	if err != nil {
		return nil, nil, nil, err
	}
	if attendee == nil {
		return nil, nil, nil, ErrUserNotFound
	}
	if attendee.ActivityLog[adventure.ID] != model.ActivityStatusPending {
		return nil, nil, nil, ErrAttendanceNotPending
	}

	return request, adventure, attendee, nil
}
