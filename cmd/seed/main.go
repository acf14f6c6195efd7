package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/forgo/roam/api/internal/config"
	"github.com/forgo/roam/api/internal/database"
	"github.com/forgo/roam/api/internal/model"
	"github.com/forgo/roam/api/internal/repository"
)

// seed populates a development database with a small social graph:
// a handful of users with varied privacy settings, follow edges, and
// adventures in every privacy scope.
func main() {
	yes := flag.Bool("yes", false, "Skip the confirmation prompt")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if !*yes {
		fmt.Printf("Seed database %s/%s at %s:%s? [y/N] ",
			cfg.Database.Namespace, cfg.Database.Database, cfg.Database.Host, cfg.Database.Port)
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("aborted")
			return
		}
	}

	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	users := repository.NewUserRepository(db)
	adventures := repository.NewAdventureRepository(db)

	alice := seedUser(ctx, users, "alice", "Alice", false, "1990-03-15", true)
	bob := seedUser(ctx, users, "bob", "Bob", true, "1985-03-15", true)
	carol := seedUser(ctx, users, "carol", "Carol", false, "1992-07-04", false)
	dave := seedUser(ctx, users, "dave", "Dave", false, "", false)

	// carol follows alice and bob
	must(users.AddFollowEdge(ctx, carol.ID, alice.ID))
	must(users.AddFollowEdge(ctx, carol.ID, bob.ID))
	// dave follows alice
	must(users.AddFollowEdge(ctx, dave.ID, alice.ID))

	lastWeek := time.Now().AddDate(0, 0, -7)
	nextWeek := time.Now().AddDate(0, 0, 7)

	seedAdventure(ctx, adventures, alice.ID, "Sunrise hike at Eagle Peak", model.AdventurePrivacyPublic, lastWeek)
	seedAdventure(ctx, adventures, alice.ID, "Followers-only climbing session", model.AdventurePrivacyFollowers, lastWeek)
	seedAdventure(ctx, adventures, alice.ID, "Birthday twins kayak trip", model.AdventurePrivacyTwins, nextWeek)
	seedAdventure(ctx, adventures, bob.ID, "Night market food crawl", model.AdventurePrivacyPublic, lastWeek)

	slog.Info("seed complete",
		slog.String("alice", alice.ID),
		slog.String("bob", bob.ID),
		slog.String("carol", carol.ID),
		slog.String("dave", dave.ID),
	)
}

func seedUser(ctx context.Context, repo *repository.UserRepository, username, displayName string, isPrivate bool, birthday string, allowTwins bool) *model.User {
	settings := model.DefaultPrivacySettings()
	settings.AllowTwinSearch = allowTwins

	user := &model.User{
		Username:        &username,
		DisplayName:     &displayName,
		IsPrivate:       isPrivate,
		PrivacySettings: settings,
		Following:       model.NewIDSet(),
		Followers:       model.NewIDSet(),
		ActivityLog:     make(model.ActivityLog),
	}
	if birthday != "" {
		user.Birthday = &birthday
	}

	must(repo.Create(ctx, user))
	slog.Info("created user", slog.String("id", user.ID), slog.String("username", username))
	return user
}

func seedAdventure(ctx context.Context, repo *repository.AdventureRepository, authorID, title string, privacy model.AdventurePrivacy, start time.Time) {
	adventure := &model.Adventure{
		AuthorID:        authorID,
		Title:           title,
		Privacy:         privacy,
		StartDate:       start,
		InterestedUsers: model.NewIDSet(),
	}
	must(repo.Create(ctx, adventure))
	slog.Info("created adventure", slog.String("id", adventure.ID), slog.String("title", title))
}

func must(err error) {
	if err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
