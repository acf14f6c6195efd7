package model

import "time"

// AdventurePrivacy represents who can see an adventure
type AdventurePrivacy string

const (
	AdventurePrivacyPublic    AdventurePrivacy = "public"    // Anyone, including guests
	AdventurePrivacyFollowers AdventurePrivacy = "followers" // Author's followers only
	AdventurePrivacyTwins     AdventurePrivacy = "twins"     // Birthday twins of the author only
)

// ValidAdventurePrivacy reports whether p is a known privacy scope.
// Unknown values are treated as not visible everywhere else; this exists
// so writes can reject them up front.
func ValidAdventurePrivacy(p AdventurePrivacy) bool {
	switch p {
	case AdventurePrivacyPublic, AdventurePrivacyFollowers, AdventurePrivacyTwins:
		return true
	default:
		return false
	}
}

// Adventure represents a user-authored activity post with a time window,
// privacy scope, and attendance tracking
type Adventure struct {
	ID              string           `json:"id"`
	AuthorID        string           `json:"author_id"`
	Title           string           `json:"title"`
	Description     *string          `json:"description,omitempty"`
	Privacy         AdventurePrivacy `json:"privacy"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         *time.Time       `json:"end_date,omitempty"`
	Location        *string          `json:"location,omitempty"`
	InterestedUsers IDSet            `json:"interested_users"`
	CreatedOn       time.Time        `json:"created_on"`
	UpdatedOn       time.Time        `json:"updated_on"`
}

// EffectiveEnd returns the instant after which attendance may be logged:
// the end date when one is set, otherwise the start date.
func (a *Adventure) EffectiveEnd() time.Time {
	if a.EndDate != nil {
		return *a.EndDate
	}
	return a.StartDate
}

// HasEnded reports whether the adventure's effective end has passed at now
func (a *Adventure) HasEnded(now time.Time) bool {
	return !now.Before(a.EffectiveEnd())
}

// CreateAdventureRequest is the payload for publishing an adventure
type CreateAdventureRequest struct {
	Title       string           `json:"title"`
	Description *string          `json:"description,omitempty"`
	Privacy     AdventurePrivacy `json:"privacy"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
	Location    *string          `json:"location,omitempty"`
}

// Constraints
const (
	MaxAdventureTitleLength = 100
	MaxAdventureDescLength  = 1000
)
