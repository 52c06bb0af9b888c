package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"todoapi/internal/config"
	"todoapi/internal/database"
	"todoapi/internal/domain"
	"todoapi/internal/pkg/hash"
	"todoapi/internal/repository"
)

// Seeds a demo account for local development. Safe to re-run: an existing
// demo user is left untouched.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	defer database.Close(db)

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)

	exists, err := users.ExistsByEmail(ctx, "admin@example.com")
	if err != nil {
		log.Fatal(err)
	}
	if exists {
		log.Println("Demo user already seeded, nothing to do")
		return
	}

	now := time.Now().Unix()
	admin := &domain.User{
		ID:           uuid.NewString(),
		Email:        "admin@example.com",
		PasswordHash: hash.Sum("admin", cfg.PasswordSecretKey),
		Name:         "Admin",
		Age:          30,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal(err)
	}

	log.Println("Seeded demo user admin@example.com (password: admin)")
}
