package seed

import (
	"context"
	"fmt"
	"log/slog"

	"smapp/internal/cache"
	"smapp/internal/database"
	"smapp/internal/observability"
	"smapp/internal/repository"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	NumComments int
	// LikeDensity is the probability that a given user likes a given post.
	LikeDensity float64
	ShouldClean bool
	// Seed makes the generated data reproducible. Zero picks a random seed.
	Seed int64
}

// DefaultOptions returns a small demo data set.
func DefaultOptions() Options {
	return Options{
		NumUsers:    20,
		NumPosts:    60,
		NumComments: 120,
		LikeDensity: 0.15,
		ShouldClean: true,
	}
}

// Summary counts what a Run created.
type Summary struct {
	Users    int
	Posts    int
	Comments int
	Likes    int
}

// Seeder writes demo data through the gateway.
type Seeder struct {
	db    *gorm.DB
	gw    repository.Gateway
	cache *cache.Cache
}

// NewSeeder creates a new Seeder. c may be nil.
func NewSeeder(db *gorm.DB, c *cache.Cache) *Seeder {
	return &Seeder{db: db, gw: repository.NewGateway(db), cache: c}
}

// Clean drops and recreates the schema and flushes cached reads.
func (s *Seeder) Clean(ctx context.Context) error {
	if err := database.ResetSchema(ctx, s.db); err != nil {
		return fmt.Errorf("reset schema: %w", err)
	}
	if err := s.cache.Flush(ctx); err != nil {
		return fmt.Errorf("flush cache: %w", err)
	}
	return nil
}

// Run seeds users, posts, comments and likes in one unit of work.
func (s *Seeder) Run(ctx context.Context, opts Options) (Summary, error) {
	if opts.NumUsers <= 0 && (opts.NumPosts > 0 || opts.NumComments > 0) {
		return Summary{}, fmt.Errorf("posts and comments need at least one user")
	}
	if opts.ShouldClean {
		if err := s.Clean(ctx); err != nil {
			return Summary{}, err
		}
	}

	f := NewFactory(opts.Seed)
	var sum Summary

	err := s.gw.WithSession(ctx, "seed", func(ctx context.Context, repos *repository.Repositories) error {
		userIDs := make([]uint, 0, opts.NumUsers)
		for i := 0; i < opts.NumUsers; i++ {
			id, err := repos.Users.Insert(ctx, f.User())
			if err != nil {
				return fmt.Errorf("seed user: %w", err)
			}
			userIDs = append(userIDs, id)
		}

		postIDs := make([]uint, 0, opts.NumPosts)
		for i := 0; i < opts.NumPosts; i++ {
			id, err := repos.Posts.Insert(ctx, f.Post(userIDs[f.Pick(len(userIDs))]))
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			postIDs = append(postIDs, id)
		}

		if len(postIDs) > 0 {
			for i := 0; i < opts.NumComments; i++ {
				author := userIDs[f.Pick(len(userIDs))]
				if _, err := repos.Comments.Insert(ctx, f.Comment(author, postIDs[f.Pick(len(postIDs))])); err != nil {
					return fmt.Errorf("seed comment: %w", err)
				}
				sum.Comments++
			}
		}

		for _, postID := range postIDs {
			for _, userID := range userIDs {
				if !f.Chance(opts.LikeDensity) {
					continue
				}
				if _, err := repos.Likes.Toggle(ctx, userID, postID); err != nil {
					return fmt.Errorf("seed like: %w", err)
				}
				sum.Likes++
			}
		}

		sum.Users = len(userIDs)
		sum.Posts = len(postIDs)
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	observability.Logger.InfoContext(ctx, "seed complete",
		slog.Int("users", sum.Users),
		slog.Int("posts", sum.Posts),
		slog.Int("comments", sum.Comments),
		slog.Int("likes", sum.Likes),
	)
	return sum, nil
}
