// Command main runs the database seeder for Blogly.
package main

import (
	"flag"
	"log"

	"blogly/internal/config"
	"blogly/internal/database"
	"blogly/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 0, "Number of extra generated users beyond the fixed samples")
	numPosts := flag.Int("posts", 0, "Number of extra generated posts beyond the fixed samples")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Blogly database seeder")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
