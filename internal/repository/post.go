package repository

import (
	"context"
	"errors"
	"strings"

	"smapp/internal/models"
	"smapp/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	// ListForUser returns the user's posts in insertion order with like counts.
	ListForUser(ctx context.Context, userID uint) ([]models.PostSummary, error)
	Insert(ctx context.Context, post *models.Post) (uint, error)
}

type postRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db, log: observability.NewRepoLogger("posts")}
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Take(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, dbError(err)
	}
	return &post, nil
}

func (r *postRepository) ListForUser(ctx context.Context, userID uint) ([]models.PostSummary, error) {
	posts := []models.PostSummary{}
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("posts.id, posts.title, posts.description, "+
			"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS like_count").
		Where("posts.user_id = ?", userID).
		Order("posts.id ASC").
		Scan(&posts).Error
	if err != nil {
		return nil, dbError(err)
	}
	if posts == nil {
		posts = []models.PostSummary{}
	}
	r.log.LogRead(ctx, map[string]interface{}{"user_id": userID, "count": len(posts)})
	return posts, nil
}

func (r *postRepository) Insert(ctx context.Context, post *models.Post) (uint, error) {
	if strings.TrimSpace(post.Title) == "" || strings.TrimSpace(post.Description) == "" {
		return 0, models.NewConstraintError("post title and description must not be empty", nil)
	}

	ok, err := rowExists(ctx, r.db, &models.User{}, post.UserID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, models.NewNotFoundError("User", post.UserID)
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error; err != nil {
		r.log.LogError(ctx, err, "insert")
		return 0, dbError(err)
	}
	r.log.LogCreate(ctx, map[string]interface{}{"id": post.ID, "user_id": post.UserID})
	return post.ID, nil
}
