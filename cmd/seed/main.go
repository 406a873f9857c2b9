package main

import (
	"context"
	"log"
	"time"

	"aidemoi/internal/config"
	"aidemoi/internal/database"
	"aidemoi/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// children first so foreign keys hold
	log.Println("Cleaning old data...")
	for _, table := range []string{"reviews", "services", "users", "providers", "categories"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("clean %s: %v", table, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	res, err := seed.Run(ctx, db, time.Now().UTC())
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Printf("Seed completed: categories=%d providers=%d services=%d users=%d",
		len(res.Categories), len(res.Providers), len(res.Services), len(res.Users))
	log.Println("Subscribed account: sophie@example.com")
}
