package repository

import (
	"context"

	"smapp/internal/models"
	"smapp/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	// Toggle flips the (user, post) like and reports whether it now exists.
	Toggle(ctx context.Context, userID, postID uint) (bool, error)
	Exists(ctx context.Context, userID, postID uint) (bool, error)
	Count(ctx context.Context, postID uint) (int, error)
}

type likeRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db, log: observability.NewRepoLogger("likes")}
}

func (r *likeRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&n).Error
	if err != nil {
		return false, dbError(err)
	}
	return n > 0, nil
}

func (r *likeRepository) Count(ctx context.Context, postID uint) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Like{}).Where("post_id = ?", postID).Count(&n).Error; err != nil {
		return 0, dbError(err)
	}
	return int(n), nil
}

func (r *likeRepository) Toggle(ctx context.Context, userID, postID uint) (bool, error) {
	ok, err := rowExists(ctx, r.db, &models.User{}, userID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, models.NewNotFoundError("User", userID)
	}
	ok, err = rowExists(ctx, r.db, &models.Post{}, postID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, models.NewNotFoundError("Post", postID)
	}

	liked, err := r.Exists(ctx, userID, postID)
	if err != nil {
		return false, err
	}

	fields := map[string]interface{}{"user_id": userID, "post_id": postID}
	if liked {
		err := r.db.WithContext(ctx).
			Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&models.Like{}).Error
		if err != nil {
			r.log.LogError(ctx, err, "delete")
			return false, dbError(err)
		}
		r.log.LogDelete(ctx, fields)
		return false, nil
	}

	like := models.Like{UserID: userID, PostID: postID}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&like).Error; err != nil {
		r.log.LogError(ctx, err, "insert")
		return false, dbError(err)
	}
	r.log.LogCreate(ctx, fields)
	return true, nil
}
