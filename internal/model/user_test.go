package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDSet_JSONRoundTrip(t *testing.T) {
	s := NewIDSet("user:b", "user:a", "user:a")
	assert.Equal(t, 2, s.Len())

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["user:a","user:b"]`, string(data))

	var decoded IDSet
	require.NoError(t, json.Unmarshal([]byte(`["x","y","x"]`), &decoded))
	assert.Equal(t, 2, decoded.Len())
	assert.True(t, decoded.Contains("x"))
}

func TestBirthdayMonthDay(t *testing.T) {
	b := "1990-03-15"
	u := &User{Birthday: &b}

	md, ok := u.BirthdayMonthDay()
	assert.True(t, ok)
	assert.Equal(t, "03-15", md)

	_, ok = (&User{}).BirthdayMonthDay()
	assert.False(t, ok)

	malformed := "15/03/1990 extra"
	_, ok = (&User{Birthday: &malformed}).BirthdayMonthDay()
	assert.False(t, ok)
}

func TestToPublic_HidesOptedOutFields(t *testing.T) {
	name := "alice"
	rating := 4.5
	u := &User{
		ID:            "user:alice",
		Username:      &name,
		Following:     NewIDSet("user:b"),
		Followers:     NewIDSet("user:c", "user:d"),
		AverageRating: &rating,
		TotalRatings:  10,
		PrivacySettings: PrivacySettings{
			ShowFollowLists: false,
			ShowStats:       true,
		},
	}

	p := u.ToPublic()
	assert.Nil(t, p.FollowingCount)
	assert.Nil(t, p.FollowerCount)
	require.NotNil(t, p.AverageRating)
	assert.Equal(t, 4.5, *p.AverageRating)
	require.NotNil(t, p.TotalRatings)
	assert.Equal(t, 10, *p.TotalRatings)

	u.PrivacySettings.ShowFollowLists = true
	u.PrivacySettings.ShowStats = false
	p = u.ToPublic()
	require.NotNil(t, p.FollowingCount)
	assert.Equal(t, 1, *p.FollowingCount)
	require.NotNil(t, p.FollowerCount)
	assert.Equal(t, 2, *p.FollowerCount)
	assert.Nil(t, p.AverageRating)
	assert.Nil(t, p.TotalRatings)
}

func TestAdventureEffectiveEnd(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	withEnd := &Adventure{StartDate: start, EndDate: &end}
	assert.Equal(t, end, withEnd.EffectiveEnd())

	withoutEnd := &Adventure{StartDate: start}
	assert.Equal(t, start, withoutEnd.EffectiveEnd())

	// The boundary instant itself counts as ended
	assert.True(t, withoutEnd.HasEnded(start))
	assert.False(t, withoutEnd.HasEnded(start.Add(-time.Second)))
	assert.False(t, withEnd.HasEnded(start.Add(time.Hour)))
	assert.True(t, withEnd.HasEnded(end))
}

func TestValidBirthday(t *testing.T) {
	assert.True(t, ValidBirthday("1990-03-15"))
	assert.True(t, ValidBirthday("2000-02-29"))

	for _, b := range []string{"", "1990-3-15", "1990-13-01", "1990-02-30", "not-a-date"} {
		assert.False(t, ValidBirthday(b), "birthday %q", b)
	}
}
