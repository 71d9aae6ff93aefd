package service

import (
	"context"
	"log/slog"
	"strings"

	"smapp/internal/cache"
	"smapp/internal/models"
	"smapp/internal/repository"
)

// ListPosts returns the named user's posts in insertion order with their
// like counts. It does not touch any session.
func (c *Controller) ListPosts(ctx context.Context, userName string) ([]models.PostSummary, error) {
	userName = strings.TrimSpace(userName)

	var posts []models.PostSummary
	err := c.gw.WithSession(ctx, "list_posts", func(ctx context.Context, repos *repository.Repositories) error {
		user, err := repos.Users.FindByName(ctx, userName)
		if err != nil {
			return err
		}
		if user == nil {
			return models.NewNotFoundError("User", userName)
		}
		return c.cache.Aside(ctx, cache.UserPostsKey(user.ID), &posts, func() error {
			var err error
			posts, err = repos.Posts.ListForUser(ctx, user.ID)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// SetViewingUser records the named user as the one whose posts the session
// is looking at.
func (c *Controller) SetViewingUser(ctx context.Context, s *Session, userName string) error {
	ctx = s.context(ctx)
	userName = strings.TrimSpace(userName)

	var user *models.UserProfile
	err := c.gw.WithSession(ctx, "set_viewing_user", func(ctx context.Context, repos *repository.Repositories) error {
		var err error
		user, err = repos.Users.FindByName(ctx, userName)
		if err != nil {
			return err
		}
		if user == nil {
			return models.NewNotFoundError("User", userName)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.ViewingUserID = uintPtr(user.ID)
	return nil
}

// ViewingUserInfo returns the profile of the viewed user.
func (c *Controller) ViewingUserInfo(ctx context.Context, s *Session) (*models.UserProfile, error) {
	if s.ViewingUserID == nil {
		return nil, models.NewNotFoundError("Viewing user", "none")
	}
	return c.UserInfo(s.context(ctx), *s.ViewingUserID)
}

// AddPost publishes a post as the current user and returns its ID.
func (c *Controller) AddPost(ctx context.Context, s *Session, title, description string) (uint, error) {
	userID, err := s.currentUser()
	if err != nil {
		return 0, err
	}
	ctx = s.context(ctx)

	fields := postFields{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
	if err := validateStruct(fields); err != nil {
		return 0, err
	}

	var postID uint
	err = c.gw.WithSession(ctx, "add_post", func(ctx context.Context, repos *repository.Repositories) error {
		var err error
		postID, err = repos.Posts.Insert(ctx, &models.Post{
			Title:       fields.Title,
			Description: fields.Description,
			UserID:      userID,
		})
		return err
	})
	if err != nil {
		return 0, err
	}

	c.cache.InvalidateUserPosts(ctx, userID)
	c.logger.InfoContext(ctx, "post created", slog.Uint64("post_id", uint64(postID)))
	return postID, nil
}

// ToggleLike flips the current user's like on postID and returns the new
// state of the post.
func (c *Controller) ToggleLike(ctx context.Context, s *Session, postID uint) (models.LikeState, error) {
	userID, err := s.currentUser()
	if err != nil {
		return models.LikeState{}, err
	}
	ctx = s.context(ctx)

	var state models.LikeState
	var authorID uint
	err = c.gw.WithSession(ctx, "toggle_like", func(ctx context.Context, repos *repository.Repositories) error {
		post, err := repos.Posts.GetByID(ctx, postID)
		if err != nil {
			return err
		}
		authorID = post.UserID

		if state.Liked, err = repos.Likes.Toggle(ctx, userID, postID); err != nil {
			return err
		}
		state.LikeCount, err = repos.Likes.Count(ctx, postID)
		return err
	})
	if err != nil {
		return models.LikeState{}, err
	}

	c.cache.InvalidateUserPosts(ctx, authorID)
	c.logger.InfoContext(ctx, "like toggled",
		slog.Uint64("post_id", uint64(postID)),
		slog.Bool("liked", state.Liked),
		slog.Int("like_count", state.LikeCount),
	)
	return state, nil
}

// AddComment comments on postID as the current user and returns the
// comment's ID.
func (c *Controller) AddComment(ctx context.Context, s *Session, postID uint, text string) (uint, error) {
	userID, err := s.currentUser()
	if err != nil {
		return 0, err
	}
	ctx = s.context(ctx)

	fields := commentFields{Comment: strings.TrimSpace(text)}
	if err := validateStruct(fields); err != nil {
		return 0, err
	}

	var commentID uint
	err = c.gw.WithSession(ctx, "add_comment", func(ctx context.Context, repos *repository.Repositories) error {
		var err error
		commentID, err = repos.Comments.Insert(ctx, &models.Comment{
			UserID:  &userID,
			PostID:  postID,
			Comment: fields.Comment,
		})
		return err
	})
	if err != nil {
		return 0, err
	}

	c.logger.InfoContext(ctx, "comment added", slog.Uint64("post_id", uint64(postID)), slog.Uint64("comment_id", uint64(commentID)))
	return commentID, nil
}

// ListComments returns the comments on postID in insertion order.
func (c *Controller) ListComments(ctx context.Context, postID uint) ([]models.CommentView, error) {
	var comments []models.CommentView
	err := c.gw.WithSession(ctx, "list_comments", func(ctx context.Context, repos *repository.Repositories) error {
		var err error
		comments, err = repos.Comments.ListForPost(ctx, postID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}
