// Command seed fills the database with generated demo data.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"smapp/internal/cache"
	"smapp/internal/config"
	"smapp/internal/database"
	"smapp/internal/observability"
	"smapp/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	defaults := seed.DefaultOptions()

	numUsers := flag.Int("users", defaults.NumUsers, "Number of users to create")
	numPosts := flag.Int("posts", defaults.NumPosts, "Number of posts to create")
	numComments := flag.Int("comments", defaults.NumComments, "Number of comments to create")
	likeDensity := flag.Float64("likes", defaults.LikeDensity, "Probability that a user likes a given post")
	shouldClean := flag.Bool("clean", defaults.ShouldClean, "Clean database before seeding")
	seedValue := flag.Int64("seed", 0, "Random seed for reproducible data (0 = random)")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d users, %d posts, %d comments, like density %.2f, clean=%v\n",
		*numUsers, *numPosts, *numComments, *likeDensity, *shouldClean)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	observability.SetupLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.ApplySchema(ctx, db); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	c := cache.Connect(ctx, cfg.RedisURL, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	defer func() { _ = c.Close() }()

	sum, err := seed.NewSeeder(db, c).Run(ctx, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		NumComments: *numComments,
		LikeDensity: *likeDensity,
		ShouldClean: *shouldClean,
		Seed:        *seedValue,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Done: %d users, %d posts, %d comments, %d likes\n", sum.Users, sum.Posts, sum.Comments, sum.Likes)
}
