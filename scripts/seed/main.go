package main

import (
	"fmt"
	"log"

	"github.com/blaisecz/habit-tracker/internal/config"
	"github.com/blaisecz/habit-tracker/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	fmt.Println("\nSample user IDs for testing:")
	for _, user := range seed.Users() {
		fmt.Printf("  %s (%s, %s intensity)\n", user.ID, user.Timezone, user.PreferredIntensity)
	}
}
