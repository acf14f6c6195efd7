package model

import "time"

// BirthdayLayout is the calendar-date format stored on user records.
const BirthdayLayout = "2006-01-02"

// PrivacySettings holds the per-user visibility flags
type PrivacySettings struct {
	ShowFollowLists         bool `json:"show_follow_lists"`
	ShowStats               bool `json:"show_stats"`
	ShowCompletedActivities bool `json:"show_completed_activities"`
	AllowTwinSearch         bool `json:"allow_twin_search"`
}

// DefaultPrivacySettings returns the settings applied to new accounts
func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		ShowFollowLists:         true,
		ShowStats:               true,
		ShowCompletedActivities: true,
		AllowTwinSearch:         false,
	}
}

// ActivityStatus represents the attendee-side state of a logged adventure
type ActivityStatus string

const (
	ActivityStatusPending   ActivityStatus = "pending"   // Awaiting author confirmation
	ActivityStatusConfirmed ActivityStatus = "confirmed" // Author confirmed attendance
)

// ActivityLog maps adventure id to the attendee's current status. One entry
// per adventure; an absent key means the adventure was never marked done
// (or the author denied it).
type ActivityLog map[string]ActivityStatus

// Clone returns an independent copy of the log.
func (l ActivityLog) Clone() ActivityLog {
	out := make(ActivityLog, len(l))
	for id, status := range l {
		out[id] = status
	}
	return out
}

// User represents a user account
type User struct {
	ID              string          `json:"id"`
	Username        *string         `json:"username,omitempty"`
	DisplayName     *string         `json:"display_name,omitempty"`
	IsPrivate       bool            `json:"is_private"`
	PrivacySettings PrivacySettings `json:"privacy_settings"`
	Birthday        *string         `json:"birthday,omitempty"` // YYYY-MM-DD
	Following       IDSet           `json:"following"`
	Followers       IDSet           `json:"followers"`
	ActivityLog     ActivityLog     `json:"activity_log"`
	AverageRating   *float64        `json:"average_rating,omitempty"`
	TotalRatings    int             `json:"total_ratings"`
	CreatedOn       time.Time       `json:"created_on"`
	UpdatedOn       time.Time       `json:"updated_on"`
}

// IsFollowedBy reports whether the given user is in this user's followers
func (u *User) IsFollowedBy(userID string) bool {
	return u.Followers.Contains(userID)
}

// IsFollowing reports whether this user follows the given user
func (u *User) IsFollowing(userID string) bool {
	return u.Following.Contains(userID)
}

// HasLogged reports whether the user already logged the adventure, in any status
func (u *User) HasLogged(adventureID string) bool {
	_, ok := u.ActivityLog[adventureID]
	return ok
}

// BirthdayMonthDay returns the MM-DD component of the user's birthday.
// The second return is false when no valid birthday is set.
func (u *User) BirthdayMonthDay() (string, bool) {
	if u.Birthday == nil || len(*u.Birthday) != len(BirthdayLayout) {
		return "", false
	}
	return (*u.Birthday)[5:], true
}

// ValidBirthday reports whether b is a parseable YYYY-MM-DD date
func ValidBirthday(b string) bool {
	_, err := time.Parse(BirthdayLayout, b)
	return err == nil
}

// UserPublic represents a user for API responses, holding only fields the
// profile owner has agreed to expose
type UserPublic struct {
	ID             string   `json:"id"`
	Username       *string  `json:"username,omitempty"`
	DisplayName    *string  `json:"display_name,omitempty"`
	IsPrivate      bool     `json:"is_private"`
	FollowingCount *int     `json:"following_count,omitempty"`
	FollowerCount  *int     `json:"follower_count,omitempty"`
	AverageRating  *float64 `json:"average_rating,omitempty"`
	TotalRatings   *int     `json:"total_ratings,omitempty"`
}

// ToPublic converts a User to its public representation, honoring the
// owner's privacy settings
func (u *User) ToPublic() *UserPublic {
	p := &UserPublic{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		IsPrivate:   u.IsPrivate,
	}
	if u.PrivacySettings.ShowFollowLists {
		following := u.Following.Len()
		followers := u.Followers.Len()
		p.FollowingCount = &following
		p.FollowerCount = &followers
	}
	if u.PrivacySettings.ShowStats {
		p.AverageRating = u.AverageRating
		total := u.TotalRatings
		p.TotalRatings = &total
	}
	return p
}

// UpdateProfileRequest is the payload for profile updates
type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Birthday    *string `json:"birthday,omitempty"` // YYYY-MM-DD
}

// UpdatePrivacyRequest is the payload for privacy settings updates
type UpdatePrivacyRequest struct {
	IsPrivate               *bool `json:"is_private,omitempty"`
	ShowFollowLists         *bool `json:"show_follow_lists,omitempty"`
	ShowStats               *bool `json:"show_stats,omitempty"`
	ShowCompletedActivities *bool `json:"show_completed_activities,omitempty"`
	AllowTwinSearch         *bool `json:"allow_twin_search,omitempty"`
}
