package repository

import (
	"context"
	"strings"

	"smapp/internal/models"
	"smapp/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	// ListForPost returns the post's comments in insertion order. Comments
	// whose author was deleted carry models.DeletedAuthorName.
	ListForPost(ctx context.Context, postID uint) ([]models.CommentView, error)
	Insert(ctx context.Context, comment *models.Comment) (uint, error)
}

type commentRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db, log: observability.NewRepoLogger("comments")}
}

func (r *commentRepository) ListForPost(ctx context.Context, postID uint) ([]models.CommentView, error) {
	ok, err := rowExists(ctx, r.db, &models.Post{}, postID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewNotFoundError("Post", postID)
	}

	comments := []models.CommentView{}
	err = r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.post_id, COALESCE(users.name, ?) AS author, comments.comment, comments.created_at", models.DeletedAuthorName).
		Joins("LEFT JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.id ASC").
		Scan(&comments).Error
	if err != nil {
		return nil, dbError(err)
	}
	if comments == nil {
		comments = []models.CommentView{}
	}
	return comments, nil
}

func (r *commentRepository) Insert(ctx context.Context, comment *models.Comment) (uint, error) {
	if strings.TrimSpace(comment.Comment) == "" {
		return 0, models.NewConstraintError("comment text must not be empty", nil)
	}

	ok, err := rowExists(ctx, r.db, &models.Post{}, comment.PostID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, models.NewNotFoundError("Post", comment.PostID)
	}

	if comment.UserID != nil {
		ok, err := rowExists(ctx, r.db, &models.User{}, *comment.UserID)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, models.NewNotFoundError("User", *comment.UserID)
		}
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error; err != nil {
		r.log.LogError(ctx, err, "insert")
		return 0, dbError(err)
	}
	r.log.LogCreate(ctx, map[string]interface{}{"id": comment.ID, "post_id": comment.PostID})
	return comment.ID, nil
}
