// Command seed creates or promotes an admin account and optionally inserts
// sample approved places. Run it once after the first deployment:
//
//	go run ./cmd/seed -email admin@example.com -password <secret> -name "Site Admin"
package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"

	"tourismportal/internal/config"
	"tourismportal/internal/db"
	"tourismportal/internal/models"
)

func main() {
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required for new accounts)")
	name := flag.String("name", "Administrator", "admin display name")
	samples := flag.Bool("samples", false, "also insert sample approved places")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}

	ctx := context.Background()
	cfg := config.Load()

	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Promote an existing account, or create a fresh admin.
	existing, err := database.GetUserByEmail(ctx, *email)
	switch {
	case err == nil:
		if err := database.PromoteUser(ctx, existing.ID, models.RoleAdmin); err != nil {
			log.Fatalf("Failed to promote user: %v", err)
		}
		if err := database.SetUserStatus(ctx, existing.ID, models.StatusApproved, ""); err != nil && !errors.Is(err, db.ErrUserNotPending) {
			log.Fatalf("Failed to approve account: %v", err)
		}
		log.Printf("Promoted %s to admin", *email)
	case errors.Is(err, db.ErrUserNotFound):
		if *password == "" {
			log.Fatal("-password is required when the account does not exist yet")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), 10)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		user := &models.User{
			Name:         *name,
			Email:        *email,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		}
		if err := database.CreateUser(ctx, user); err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		if err := database.SetUserStatus(ctx, user.ID, models.StatusApproved, ""); err != nil {
			log.Fatalf("Failed to approve account: %v", err)
		}
		log.Printf("Created admin %s (%s)", *name, *email)
	default:
		log.Fatalf("Failed to look up user: %v", err)
	}

	if *samples {
		if err := database.SeedDevPlaces(ctx); err != nil {
			log.Fatalf("Failed to seed sample places: %v", err)
		}
		log.Println("Inserted sample approved places")
	}
}
