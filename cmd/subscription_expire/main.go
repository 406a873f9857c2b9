package main

import (
	"context"
	"log"
	"time"

	"aidemoi/internal/config"
	"aidemoi/internal/database"
	"aidemoi/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := repository.NewUserRepository(db).ExpireSubscriptions(ctx, time.Now().UTC())
	if err != nil {
		log.Fatalf("expire subscriptions failed: %v", err)
	}

	log.Printf("subscription expiry completed: expired=%d", n)
}
