package repository

import (
	"context"
	"errors"
	"strings"

	"smapp/internal/database"
	"smapp/internal/models"
	"smapp/internal/observability"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// FindByName returns (nil, nil) when no user has the name.
	FindByName(ctx context.Context, name string) (*models.UserProfile, error)
	GetByID(ctx context.Context, id uint) (*models.UserProfile, error)
	ListNames(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Insert(ctx context.Context, user *models.User) (uint, error)
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db  *gorm.DB
	log *observability.RepoLogger
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db, log: observability.NewRepoLogger("users")}
}

// ToProfile copies u into a detached UserProfile.
func ToProfile(u *models.User) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := copier.Copy(&profile, u); err != nil {
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *userRepository) FindByName(ctx context.Context, name string) (*models.UserProfile, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("name = ?", name).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, dbError(err)
	}
	return ToProfile(&user)
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.UserProfile, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Take(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, dbError(err)
	}
	return ToProfile(&user)
}

func (r *userRepository) ListNames(ctx context.Context) ([]string, error) {
	names := []string{}
	if err := r.db.WithContext(ctx).Model(&models.User{}).Order("name ASC").Pluck("name", &names).Error; err != nil {
		return nil, dbError(err)
	}
	return names, nil
}

func (r *userRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return rowExists(ctx, r.db, &models.User{}, id)
}

func (r *userRepository) Insert(ctx context.Context, user *models.User) (uint, error) {
	if strings.TrimSpace(user.Name) == "" {
		return 0, models.NewValidationError("name is required")
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return 0, models.NewDuplicateNameError(user.Name)
		}
		r.log.LogError(ctx, err, "insert")
		return 0, dbError(err)
	}
	r.log.LogCreate(ctx, map[string]interface{}{"id": user.ID, "name": user.Name})
	return user.ID, nil
}

// Delete removes the user. The schema cascades to the user's posts (and
// their comments and likes) and to the user's likes; the user's comments
// on other posts keep a NULL author.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		r.log.LogError(ctx, result.Error, "delete")
		return dbError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	r.log.LogDelete(ctx, map[string]interface{}{"id": id})
	return nil
}
