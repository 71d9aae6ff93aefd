package repository

import (
	"context"
	"regexp"
	"testing"

	"smapp/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepository_Count_SQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "likes" WHERE post_id = $1`)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.Count(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLikeRepository_ToggleIsInvolution(t *testing.T) {
	gw, _ := setupSQLite(t)
	var bob, postID uint

	session(t, gw, func(ctx context.Context, repos *Repositories) error {
		alice, err := repos.Users.Insert(ctx, &models.User{Name: "Alice"})
		require.NoError(t, err)
		bob, err = repos.Users.Insert(ctx, &models.User{Name: "Bob"})
		require.NoError(t, err)
		postID, err = repos.Posts.Insert(ctx, &models.Post{Title: "t", Description: "d", UserID: alice})
		return err
	})

	toggle := func() bool {
		var liked bool
		session(t, gw, func(ctx context.Context, repos *Repositories) error {
			var err error
			liked, err = repos.Likes.Toggle(ctx, bob, postID)
			return err
		})
		return liked
	}
	state := func() (bool, int) {
		var exists bool
		var count int
		session(t, gw, func(ctx context.Context, repos *Repositories) error {
			var err error
			if exists, err = repos.Likes.Exists(ctx, bob, postID); err != nil {
				return err
			}
			count, err = repos.Likes.Count(ctx, postID)
			return err
		})
		return exists, count
	}

	assert.True(t, toggle())
	exists, count := state()
	assert.True(t, exists)
	assert.Equal(t, 1, count)

	assert.False(t, toggle())
	exists, count = state()
	assert.False(t, exists)
	assert.Zero(t, count)
}

func TestLikeRepository_ToggleMissingRows(t *testing.T) {
	gw, _ := setupSQLite(t)
	ctx := context.Background()
	var userID, postID uint

	session(t, gw, func(ctx context.Context, repos *Repositories) error {
		var err error
		userID, err = repos.Users.Insert(ctx, &models.User{Name: "Alice"})
		require.NoError(t, err)
		postID, err = repos.Posts.Insert(ctx, &models.Post{Title: "t", Description: "d", UserID: userID})
		return err
	})

	err := gw.WithSession(ctx, "toggle_like", func(ctx context.Context, repos *Repositories) error {
		_, err := repos.Likes.Toggle(ctx, userID, postID+10)
		return err
	})
	assert.ErrorIs(t, err, models.ErrNotFound)

	err = gw.WithSession(ctx, "toggle_like", func(ctx context.Context, repos *Repositories) error {
		_, err := repos.Likes.Toggle(ctx, userID+10, postID)
		return err
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
}
