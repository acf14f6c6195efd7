package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/forgo/roam/api/internal/model"
	"github.com/sebdah/goldie/v2"
)

// TestVisibilityMatrix_Golden locks the full decision table of the
// visibility evaluator. Any rule change shows up as a golden diff that has
// to be reviewed deliberately (regenerate with `go test -update`).
func TestVisibilityMatrix_Golden(t *testing.T) {
	alice := testUser("user:alice")
	alice.Birthday = strPtr("1990-03-15")
	alice.Followers = model.NewIDSet("user:carol")

	bob := testUser("user:bob")
	bob.IsPrivate = true
	bob.Followers = model.NewIDSet("user:carol")

	carol := testUser("user:carol")
	carol.Following = model.NewIDSet("user:alice", "user:bob")

	dave := testUser("user:dave")
	dave.Birthday = strPtr("1985-03-15")

	viewers := []struct {
		name string
		user *model.User
	}{
		{"guest", nil},
		{"alice", alice},
		{"carol", carol},
		{"dave", dave},
	}

	adventures := []struct {
		name      string
		adventure *model.Adventure
		author    *model.User
	}{
		{"alice_public", testAdventure("adventure:1", alice.ID, model.AdventurePrivacyPublic), alice},
		{"alice_followers", testAdventure("adventure:2", alice.ID, model.AdventurePrivacyFollowers), alice},
		{"alice_twins", testAdventure("adventure:3", alice.ID, model.AdventurePrivacyTwins), alice},
		{"bob_public", testAdventure("adventure:4", bob.ID, model.AdventurePrivacyPublic), bob},
	}

	var b strings.Builder
	for _, v := range viewers {
		for _, a := range adventures {
			visible := IsVisible(v.user, a.adventure, a.author)
			fmt.Fprintf(&b, "viewer=%s adventure=%s visible=%v\n", v.name, a.name, visible)
		}
	}

	g := goldie.New(t)
	g.Assert(t, "visibility_matrix", []byte(b.String()))
}
