package service

import (
	"context"
	"log/slog"
	"strings"

	"smapp/internal/cache"
	"smapp/internal/models"
	"smapp/internal/repository"
)

// CreateAccountInput carries the profile of a new account. Blank Gender and
// Nationality leave those fields unset.
type CreateAccountInput struct {
	Name        string
	Age         *int
	Gender      string
	Nationality string
}

func (in CreateAccountInput) toUser() (*models.User, error) {
	fields := accountFields{
		Name:        strings.TrimSpace(in.Name),
		Age:         in.Age,
		Nationality: strings.TrimSpace(in.Nationality),
	}
	if err := validateStruct(fields); err != nil {
		return nil, err
	}
	gender, err := models.ParseGender(in.Gender)
	if err != nil {
		return nil, err
	}

	user := &models.User{Name: fields.Name, Age: fields.Age}
	if gender != "" {
		user.Gender = &gender
	}
	if fields.Nationality != "" {
		user.Nationality = &fields.Nationality
	}
	return user, nil
}

// Login makes the named user current. An unknown name is not an error: it
// clears the current user and reports found == false.
func (c *Controller) Login(ctx context.Context, s *Session, name string) (bool, error) {
	ctx = s.context(ctx)
	name = strings.TrimSpace(name)

	var profile *models.UserProfile
	err := c.gw.WithSession(ctx, "login", func(ctx context.Context, repos *repository.Repositories) error {
		var err error
		profile, err = repos.Users.FindByName(ctx, name)
		return err
	})
	if err != nil {
		return false, err
	}

	if profile == nil {
		s.CurrentUserID = nil
		c.logger.InfoContext(ctx, "login failed: no such user", slog.String("name", name))
		return false, nil
	}

	s.CurrentUserID = uintPtr(profile.ID)
	c.logger.InfoContext(s.context(ctx), "user logged in", slog.String("name", profile.Name))
	return true, nil
}

// Logout clears the current and viewed users.
func (c *Controller) Logout(s *Session) {
	s.CurrentUserID = nil
	s.ViewingUserID = nil
}

// CreateAccount inserts a user and logs in as that user.
func (c *Controller) CreateAccount(ctx context.Context, s *Session, in CreateAccountInput) (*models.UserProfile, error) {
	ctx = s.context(ctx)
	user, err := in.toUser()
	if err != nil {
		return nil, err
	}

	var profile *models.UserProfile
	err = c.gw.WithSession(ctx, "create_account", func(ctx context.Context, repos *repository.Repositories) error {
		if _, err := repos.Users.Insert(ctx, user); err != nil {
			return err
		}
		var err error
		profile, err = repository.ToProfile(user)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.CurrentUserID = uintPtr(profile.ID)
	c.logger.InfoContext(s.context(ctx), "account created", slog.String("name", profile.Name))
	return profile, nil
}

// CurrentUserInfo returns the current user's profile, or ErrNoCurrentUser.
func (c *Controller) CurrentUserInfo(ctx context.Context, s *Session) (*models.UserProfile, error) {
	id, err := s.currentUser()
	if err != nil {
		return nil, err
	}
	return c.UserInfo(s.context(ctx), id)
}

// UserInfo returns the profile of user id.
func (c *Controller) UserInfo(ctx context.Context, id uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := c.gw.WithSession(ctx, "user_info", func(ctx context.Context, repos *repository.Repositories) error {
		return c.cache.Aside(ctx, cache.UserKey(id), &profile, func() error {
			p, err := repos.Users.GetByID(ctx, id)
			if err != nil {
				return err
			}
			profile = *p
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListUserNames returns every user name in ascending order.
func (c *Controller) ListUserNames(ctx context.Context) ([]string, error) {
	var names []string
	err := c.gw.WithSession(ctx, "list_user_names", func(ctx context.Context, repos *repository.Repositories) error {
		var err error
		names, err = repos.Users.ListNames(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
