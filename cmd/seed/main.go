package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"bloghub/internal/auth"
	"bloghub/internal/config"
	"bloghub/internal/db"
	"bloghub/internal/model"
	"bloghub/internal/repository"
)

// seedUser is a demo account created for local development.
type seedUser struct {
	username string
	email    string
	password string
	posts    []seedPost
}

type seedPost struct {
	title   string
	content string
}

var seedUsers = []seedUser{
	{
		username: "alice",
		email:    "alice@example.com",
		password: "password1",
		posts: []seedPost{
			{title: "First Post", content: "Hello from alice. This is the first seeded post."},
			{title: "Another Day", content: "Some more content so the feed has something to page through."},
			{title: "Thoughts on Blogging", content: "Short posts keep the feed lively."},
		},
	},
	{
		username: "bob",
		email:    "bob@example.com",
		password: "password2",
		posts: []seedPost{
			{title: "Bob Checks In", content: "A second author keeps the per-user pages interesting."},
			{title: "Weekend Plans", content: "Mostly reading, maybe some writing."},
			{title: "On Pagination", content: "Five per page feels about right."},
			{title: "Yet Another Post", content: "Enough posts to spill onto a second page."},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	users := repository.NewUserRepository(gormDB)
	posts := repository.NewPostRepository(gormDB)

	ctx := context.Background()
	created, skipped := 0, 0
	for _, su := range seedUsers {
		user, err := seedOne(ctx, users, posts, su)
		if err != nil {
			log.Fatalf("Failed to seed %s: %v", su.username, err)
		}
		if user == nil {
			skipped++
			continue
		}
		created++
	}

	log.Printf("Seed complete: %d users created, %d already present", created, skipped)
}

// seedOne creates the user and their posts, skipping users that already
// exist so the script is safe to re-run.
func seedOne(ctx context.Context, users repository.UserRepository, posts repository.PostRepository, su seedUser) (*model.User, error) {
	if _, err := users.FindByUsername(ctx, su.username); err == nil {
		return nil, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user: %w", err)
	}

	hashed, err := auth.HashPassword(su.password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     su.username,
		Email:        su.email,
		PasswordHash: hashed,
		ImageFile:    model.DefaultImageFile,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	for _, sp := range su.posts {
		post := &model.Post{Title: sp.title, Content: sp.content, UserID: user.ID}
		if err := posts.Create(ctx, post); err != nil {
			return nil, fmt.Errorf("create post %q: %w", sp.title, err)
		}
	}
	return user, nil
}
