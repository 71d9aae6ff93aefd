package service

import (
	"context"

	"smapp/internal/models"
	"smapp/internal/repository"
)

// gatewayStub runs the session body directly against stub repositories.
type gatewayStub struct {
	repos *repository.Repositories
	ops   []string
}

func (g *gatewayStub) WithSession(ctx context.Context, op string, fn repository.SessionFunc) error {
	g.ops = append(g.ops, op)
	return fn(ctx, g.repos)
}

func newGatewayStub(users *userRepoStub, posts *postRepoStub, likes *likeRepoStub) *gatewayStub {
	return &gatewayStub{repos: &repository.Repositories{
		Users: users,
		Posts: posts,
		Likes: likes,
	}}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	findByNameFn func(context.Context, string) (*models.UserProfile, error)
	getByIDFn    func(context.Context, uint) (*models.UserProfile, error)
	listNamesFn  func(context.Context) ([]string, error)
	existsFn     func(context.Context, uint) (bool, error)
	insertFn     func(context.Context, *models.User) (uint, error)
	deleteFn     func(context.Context, uint) error
}

func (s *userRepoStub) FindByName(ctx context.Context, name string) (*models.UserProfile, error) {
	return s.findByNameFn(ctx, name)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.UserProfile, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) ListNames(ctx context.Context) ([]string, error) {
	return s.listNamesFn(ctx)
}
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *userRepoStub) Insert(ctx context.Context, user *models.User) (uint, error) {
	return s.insertFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		findByNameFn: func(_ context.Context, _ string) (*models.UserProfile, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.UserProfile, error) {
			return nil, models.NewNotFoundError("User", id)
		},
		listNamesFn: func(_ context.Context) ([]string, error) { return []string{}, nil },
		existsFn:    func(_ context.Context, _ uint) (bool, error) { return false, nil },
		insertFn: func(_ context.Context, u *models.User) (uint, error) {
			u.ID = 1
			return u.ID, nil
		},
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	getByIDFn     func(context.Context, uint) (*models.Post, error)
	listForUserFn func(context.Context, uint) ([]models.PostSummary, error)
	insertFn      func(context.Context, *models.Post) (uint, error)
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListForUser(ctx context.Context, userID uint) ([]models.PostSummary, error) {
	return s.listForUserFn(ctx, userID)
}
func (s *postRepoStub) Insert(ctx context.Context, post *models.Post) (uint, error) {
	return s.insertFn(ctx, post)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		},
		listForUserFn: func(_ context.Context, _ uint) ([]models.PostSummary, error) { return []models.PostSummary{}, nil },
		insertFn:      func(_ context.Context, _ *models.Post) (uint, error) { return 1, nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	toggleFn func(context.Context, uint, uint) (bool, error)
	existsFn func(context.Context, uint, uint) (bool, error)
	countFn  func(context.Context, uint) (int, error)
}

func (s *likeRepoStub) Toggle(ctx context.Context, userID, postID uint) (bool, error) {
	return s.toggleFn(ctx, userID, postID)
}
func (s *likeRepoStub) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	return s.existsFn(ctx, userID, postID)
}
func (s *likeRepoStub) Count(ctx context.Context, postID uint) (int, error) {
	return s.countFn(ctx, postID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		toggleFn: func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		existsFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		countFn:  func(_ context.Context, _ uint) (int, error) { return 0, nil },
	}
}
