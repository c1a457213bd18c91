package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"flightwarehouse-service/internal/domain/entity"
	"flightwarehouse-service/internal/infrastructure/config"
	"flightwarehouse-service/internal/infrastructure/persistence"
	"flightwarehouse-service/internal/interface/repository"
)

// Seeds a local login account:
//
//	go run ./cmd/utils <email> <password>
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: seed_user <email> <password>")
		os.Exit(1)
	}
	email, password := os.Args[1], os.Args[2]

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	hashStr := string(hash)

	users := repository.NewMongoUserRepository(db)
	user := &entity.User{
		Email:        email,
		PasswordHash: &hashStr,
	}
	if err := users.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("Created user %s (%s)\n", user.Email, user.ID)
}
