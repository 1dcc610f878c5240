package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"postboard/internal/auth"
	"postboard/internal/config"
	"postboard/internal/db"
	"postboard/internal/model"
	"postboard/internal/repository"
)

// seedPost holds fixture data for the posts table.
type seedPost struct {
	Title     string
	Content   string
	Published bool
}

var fixturePosts = []seedPost{
	{Title: "Welcome to Postboard", Content: "First post, seeded at startup.", Published: true},
	{Title: "Drafting in the open", Content: "Unpublished posts stay hidden from readers.", Published: false},
	{Title: "Release notes", Content: "CRUD for posts, registration, and a login check.", Published: true},
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.WaitForMySQL(cfg.MySQLDSN, cfg.DBConnectAttempts, cfg.DBConnectBackoff)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.Post{}, &model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	postRepo := repository.NewPostRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	hasher := auth.NewPasswordHasher()

	created, updated, err := seedPosts(ctx, postRepo, fixturePosts)
	if err != nil {
		log.Fatalf("Failed to seed posts: %v", err)
	}
	log.Printf("Posts seeded: %d created, %d refreshed", created, updated)

	users, err := seedUsers(ctx, userRepo, hasher)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Users seeded: %d created", users)

	log.Println("Seed completed successfully!")
}

// seedPosts creates fixture posts, refreshing any row that already carries the
// same title.
func seedPosts(ctx context.Context, repo repository.PostRepository, fixtures []seedPost) (created, updated int, err error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("list posts: %w", err)
	}
	byTitle := make(map[string]*model.Post, len(existing))
	for i := range existing {
		byTitle[existing[i].Title] = &existing[i]
	}

	for _, f := range fixtures {
		if prev, ok := byTitle[f.Title]; ok {
			prev.Content = f.Content
			prev.Published = f.Published
			if err := repo.Update(ctx, prev); err != nil {
				return created, updated, fmt.Errorf("update post %q: %w", f.Title, err)
			}
			updated++
			continue
		}
		post := &model.Post{Title: f.Title, Content: f.Content, Published: f.Published}
		if err := repo.Create(ctx, post); err != nil {
			return created, updated, fmt.Errorf("create post %q: %w", f.Title, err)
		}
		created++
	}
	return created, updated, nil
}

// seedUsers registers sample accounts. Emails carry a random suffix so
// repeated runs never collide with the unique index.
func seedUsers(ctx context.Context, repo repository.UserRepository, hasher *auth.PasswordHasher) (int, error) {
	created := 0
	for _, name := range []string{"alice", "bob"} {
		email := fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8])
		hash, err := hasher.Hash("password123")
		if err != nil {
			return created, fmt.Errorf("hash password: %w", err)
		}
		user := &model.User{Email: email, PasswordHash: hash}
		if err := repo.Create(ctx, user); err != nil {
			if err == gorm.ErrDuplicatedKey {
				continue
			}
			return created, fmt.Errorf("create user %s: %w", email, err)
		}
		log.Printf("  - seeded user %s (id=%d)", email, user.ID)
		created++
	}
	return created, nil
}
