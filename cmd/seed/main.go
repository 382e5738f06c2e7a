// Command main runs the database seeder for DevConnector.
package main

import (
	"flag"
	"log"

	"devconnector/internal/config"
	"devconnector/internal/database"
	"devconnector/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	postsPerUser := flag.Int("posts", 3, "Posts to create per user")
	maxLikes := flag.Int("likes", 10, "Maximum likes per post")
	maxComments := flag.Int("comments", 5, "Maximum comments per post")
	maxDays := flag.Int("days", 90, "Spread dates over this many past days")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store the demo password unhashed (faster; seeded users cannot log in)")
	dryRun := flag.Bool("dry-run", false, "Generate records without writing them")
	randSeed := flag.Int64("seed", 0, "Random seed (0 picks one)")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d posts each, clean=%v\n", *numUsers, *postsPerUser, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sum, err := seed.Seed(db, seed.Options{
		NumUsers:     *numUsers,
		PostsPerUser: *postsPerUser,
		MaxLikes:     *maxLikes,
		MaxComments:  *maxComments,
		ShouldClean:  *shouldClean,
		SkipBcrypt:   *skipBcrypt,
		BcryptCost:   cfg.BcryptCost,
		DryRun:       *dryRun,
		MaxDays:      *maxDays,
		RandSeed:     *randSeed,
	})
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Printf("✨ Created %d users, %d profiles, %d posts, %d likes, %d comments\n",
		sum.Users, sum.Profiles, sum.Posts, sum.Likes, sum.Comments)
	log.Printf("📧 All seeded users have the password: %s\n", seed.DemoPassword)
}
