package model

import "time"

// NotificationType represents what triggered a notification
type NotificationType string

const (
	// NotificationNewFollower fires when a user gains a follower. It is
	// never emitted on unfollow.
	NotificationNewFollower NotificationType = "new_follower"
	// NotificationAttendanceRequest asks an adventure's author to confirm
	// or deny an attendee's mark-done.
	NotificationAttendanceRequest NotificationType = "attendance_request"
	// NotificationAttendanceConfirmed tells an attendee the author
	// confirmed their attendance.
	NotificationAttendanceConfirmed NotificationType = "attendance_confirmed"
	// NotificationRateExperience invites a confirmed attendee to rate the
	// adventure's author.
	NotificationRateExperience NotificationType = "rate_experience"
)

// Notification represents a single entry in a user's notification queue.
// Rows are created once and never mutated except for the read flag.
type Notification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	RecipientID string           `json:"recipient_id"`
	SenderID    string           `json:"sender_id"`
	AdventureID *string          `json:"adventure_id,omitempty"`
	Read        bool             `json:"read"`
	CreatedOn   time.Time        `json:"created_on"`
}
