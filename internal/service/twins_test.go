package service

import (
	"context"
	"testing"

	"github.com/forgo/roam/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTwins_ExactVersusDayAndMonth(t *testing.T) {
	viewer := testUser("user:viewer")
	viewer.Birthday = strPtr("1990-03-15")

	// Same month and day, different year, opted in
	userA := testUser("user:a")
	userA.Birthday = strPtr("1985-03-15")
	userA.PrivacySettings.AllowTwinSearch = true

	// Identical birthday but opted out
	userB := testUser("user:b")
	userB.Birthday = strPtr("1990-03-15")
	userB.PrivacySettings.AllowTwinSearch = false

	candidates := []*model.User{userA, userB}

	exact, err := FindTwins(viewer, candidates, TwinModeExact)
	require.NoError(t, err)
	assert.Empty(t, exact, "exact mode: A differs by year, B is opted out")

	dayAndMonth, err := FindTwins(viewer, candidates, TwinModeDayAndMonth)
	require.NoError(t, err)
	require.Len(t, dayAndMonth, 1)
	assert.Equal(t, userA.ID, dayAndMonth[0].ID)
}

func TestFindTwins_ExactMatch(t *testing.T) {
	viewer := testUser("user:viewer")
	viewer.Birthday = strPtr("1990-03-15")

	twin := testUser("user:twin")
	twin.Birthday = strPtr("1990-03-15")
	twin.PrivacySettings.AllowTwinSearch = true

	twins, err := FindTwins(viewer, []*model.User{twin}, TwinModeExact)
	require.NoError(t, err)
	require.Len(t, twins, 1)
	assert.Equal(t, twin.ID, twins[0].ID)
}

func TestFindTwins_SkipsSelfAndBirthdayless(t *testing.T) {
	viewer := testUser("user:viewer")
	viewer.Birthday = strPtr("1990-03-15")
	viewer.PrivacySettings.AllowTwinSearch = true

	noBirthday := testUser("user:empty")
	noBirthday.PrivacySettings.AllowTwinSearch = true

	twins, err := FindTwins(viewer, []*model.User{viewer, noBirthday}, TwinModeDayAndMonth)
	require.NoError(t, err)
	assert.Empty(t, twins)
}

func TestFindTwins_RequiresViewerBirthday(t *testing.T) {
	viewer := testUser("user:viewer")

	_, err := FindTwins(viewer, nil, TwinModeExact)
	assert.ErrorIs(t, err, ErrMissingBirthday)
}

func TestFindTwins_RejectsUnknownMode(t *testing.T) {
	viewer := testUser("user:viewer")
	viewer.Birthday = strPtr("1990-03-15")

	_, err := FindTwins(viewer, nil, TwinMode("zodiac"))
	assert.ErrorIs(t, err, ErrInvalidTwinMode)
}

func TestFindTwins_SortsByUsername(t *testing.T) {
	viewer := testUser("user:viewer")
	viewer.Birthday = strPtr("1990-03-15")

	zed := testUser("user:1")
	zed.Username = strPtr("zed")
	zed.Birthday = strPtr("1970-03-15")
	zed.PrivacySettings.AllowTwinSearch = true

	amy := testUser("user:2")
	amy.Username = strPtr("amy")
	amy.Birthday = strPtr("2000-03-15")
	amy.PrivacySettings.AllowTwinSearch = true

	twins, err := FindTwins(viewer, []*model.User{zed, amy}, TwinModeDayAndMonth)
	require.NoError(t, err)
	require.Len(t, twins, 2)
	assert.Equal(t, amy.ID, twins[0].ID)
	assert.Equal(t, zed.ID, twins[1].ID)
}

func TestTwinService_FindTwins(t *testing.T) {
	viewer := testUser("user:viewer")
	viewer.Birthday = strPtr("1990-03-15")

	twin := testUser("user:twin")
	twin.Birthday = strPtr("1988-03-15")
	twin.PrivacySettings.AllowTwinSearch = true

	svc := NewTwinService(TwinServiceConfig{Users: newMockUserRepo(viewer, twin)})

	twins, err := svc.FindTwins(context.Background(), viewer.ID, TwinModeDayAndMonth)
	require.NoError(t, err)
	require.Len(t, twins, 1)
	assert.Equal(t, twin.ID, twins[0].ID)
}

func TestTwinService_ViewerWithoutBirthday(t *testing.T) {
	viewer := testUser("user:viewer")
	svc := NewTwinService(TwinServiceConfig{Users: newMockUserRepo(viewer)})

	_, err := svc.FindTwins(context.Background(), viewer.ID, TwinModeExact)
	assert.ErrorIs(t, err, ErrMissingBirthday)
}

func TestTwinService_UnknownViewer(t *testing.T) {
	svc := NewTwinService(TwinServiceConfig{Users: newMockUserRepo()})

	_, err := svc.FindTwins(context.Background(), "user:ghost", TwinModeExact)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
