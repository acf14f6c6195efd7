package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/forgo/roam/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdventureService(adventures *mockAdventureRepo, users *mockUserRepo) *AdventureService {
	return NewAdventureService(AdventureServiceConfig{
		Adventures: adventures,
		Users:      users,
	})
}

func TestAdventureCreate_Valid(t *testing.T) {
	author := testUser("user:author")
	adventures := newMockAdventureRepo()
	svc := newAdventureService(adventures, newMockUserRepo(author))

	req := &model.CreateAdventureRequest{
		Title:     "Sunrise hike",
		Privacy:   model.AdventurePrivacyPublic,
		StartDate: time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC),
	}

	created, err := svc.Create(context.Background(), author.ID, req)
	require.NoError(t, err)
	assert.Equal(t, author.ID, created.AuthorID)
	assert.Equal(t, "Sunrise hike", created.Title)
	assert.NotNil(t, created.InterestedUsers)
	assert.Len(t, adventures.adventures, 1)
}

func TestAdventureCreate_Validation(t *testing.T) {
	author := testUser("user:author")
	svc := newAdventureService(newMockAdventureRepo(), newMockUserRepo(author))
	start := time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		req  *model.CreateAdventureRequest
		want error
	}{
		{
			name: "empty title",
			req:  &model.CreateAdventureRequest{Privacy: model.AdventurePrivacyPublic, StartDate: start},
			want: ErrTitleRequired,
		},
		{
			name: "title too long",
			req: &model.CreateAdventureRequest{
				Title:     strings.Repeat("x", model.MaxAdventureTitleLength+1),
				Privacy:   model.AdventurePrivacyPublic,
				StartDate: start,
			},
			want: ErrTitleTooLong,
		},
		{
			name: "description too long",
			req: &model.CreateAdventureRequest{
				Title:       "ok",
				Description: strPtr(strings.Repeat("x", model.MaxAdventureDescLength+1)),
				Privacy:     model.AdventurePrivacyPublic,
				StartDate:   start,
			},
			want: ErrDescriptionLong,
		},
		{
			name: "unknown privacy",
			req:  &model.CreateAdventureRequest{Title: "ok", Privacy: "secret", StartDate: start},
			want: ErrInvalidPrivacy,
		},
		{
			name: "end before start",
			req: &model.CreateAdventureRequest{
				Title:     "ok",
				Privacy:   model.AdventurePrivacyPublic,
				StartDate: start,
				EndDate:   timePtr(start.Add(-time.Hour)),
			},
			want: ErrInvalidTimeRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), author.ID, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAdventureGet_HiddenReportsNotFound(t *testing.T) {
	author := testUser("user:author")
	author.IsPrivate = true
	stranger := testUser("user:stranger")
	adventure := testAdventure("adventure:1", author.ID, model.AdventurePrivacyPublic)

	svc := newAdventureService(newMockAdventureRepo(adventure), newMockUserRepo(author, stranger))

	_, err := svc.Get(context.Background(), stranger.ID, adventure.ID)
	assert.ErrorIs(t, err, ErrAdventureNotFound,
		"hidden adventures should be indistinguishable from missing ones")

	got, err := svc.Get(context.Background(), author.ID, adventure.ID)
	require.NoError(t, err)
	assert.Equal(t, adventure.ID, got.ID)
}

func TestAdventureFeed_GuestViewer(t *testing.T) {
	author := testUser("user:author")
	pub := testAdventure("adventure:1", author.ID, model.AdventurePrivacyPublic)
	followersOnly := testAdventure("adventure:2", author.ID, model.AdventurePrivacyFollowers)

	svc := newAdventureService(newMockAdventureRepo(pub, followersOnly), newMockUserRepo(author))

	feed, err := svc.Feed(context.Background(), "", 20, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, pub.ID, feed[0].ID)
}

func TestSetInterested_RequiresVisibility(t *testing.T) {
	author := testUser("user:author")
	author.IsPrivate = true
	stranger := testUser("user:stranger")
	adventure := testAdventure("adventure:1", author.ID, model.AdventurePrivacyPublic)

	adventures := newMockAdventureRepo(adventure)
	svc := newAdventureService(adventures, newMockUserRepo(author, stranger))

	err := svc.SetInterested(context.Background(), stranger.ID, adventure.ID, true)
	assert.ErrorIs(t, err, ErrAdventureNotFound)
	assert.False(t, adventure.InterestedUsers.Contains(stranger.ID))
}

func TestSetInterested_Toggles(t *testing.T) {
	author := testUser("user:author")
	viewer := testUser("user:viewer")
	adventure := testAdventure("adventure:1", author.ID, model.AdventurePrivacyPublic)

	svc := newAdventureService(newMockAdventureRepo(adventure), newMockUserRepo(author, viewer))

	require.NoError(t, svc.SetInterested(context.Background(), viewer.ID, adventure.ID, true))
	assert.True(t, adventure.InterestedUsers.Contains(viewer.ID))

	require.NoError(t, svc.SetInterested(context.Background(), viewer.ID, adventure.ID, false))
	assert.False(t, adventure.InterestedUsers.Contains(viewer.ID))
}
