package service

import (
	"github.com/forgo/roam/api/internal/model"
)

// IsVisible reports whether viewer may see the adventure authored by author.
// A nil viewer is a guest. The function is pure and total: malformed input
// fails closed, never open.
//
// Rules, first match wins:
//  1. Authors always see their own content.
//  2. A private account hides everything from non-followers and guests,
//     regardless of per-post privacy.
//  3. Otherwise the post's own scope decides: public is visible to anyone,
//     followers requires the viewer in the author's followers, twins
//     requires a month-and-day birthday match. Guests never pass 3b or 3c.
//  4. Unknown scopes are not visible.
func IsVisible(viewer *model.User, adventure *model.Adventure, author *model.User) bool {
	if adventure == nil || author == nil {
		return false
	}

	if viewer != nil && viewer.ID == author.ID {
		return true
	}

	if author.IsPrivate {
		if viewer == nil || !author.IsFollowedBy(viewer.ID) {
			return false
		}
	}

	switch adventure.Privacy {
	case model.AdventurePrivacyPublic:
		return true
	case model.AdventurePrivacyFollowers:
		return viewer != nil && author.IsFollowedBy(viewer.ID)
	case model.AdventurePrivacyTwins:
		if viewer == nil {
			return false
		}
		return birthdaysShareMonthDay(viewer, author)
	default:
		return false
	}
}

// FilterFeed returns the adventures viewer may see, preserving input order.
// Adventures whose author is missing from authors are dropped: an
// unresolvable author means visibility cannot be established, so the post
// fails closed.
func FilterFeed(viewer *model.User, adventures []*model.Adventure, authors map[string]*model.User) []*model.Adventure {
	visible := make([]*model.Adventure, 0, len(adventures))
	for _, adventure := range adventures {
		author := authors[adventure.AuthorID]
		if IsVisible(viewer, adventure, author) {
			visible = append(visible, adventure)
		}
	}
	return visible
}

// birthdaysShareMonthDay reports whether both users have a birthday set
// and the MM-DD components are equal
func birthdaysShareMonthDay(a, b *model.User) bool {
	amd, ok := a.BirthdayMonthDay()
	if !ok {
		return false
	}
	bmd, ok := b.BirthdayMonthDay()
	if !ok {
		return false
	}
	return amd == bmd
}
