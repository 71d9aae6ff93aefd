package repository

import (
	"context"
	"regexp"
	"testing"

	"smapp/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_ListForUser_SQL(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT posts.id, posts.title, posts.description, (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS like_count FROM "posts" WHERE posts.user_id = $1 ORDER BY posts.id ASC`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "like_count"}).
			AddRow(1, "First", "one", 2).
			AddRow(3, "Second", "two", 0))

	posts, err := repo.ListForUser(context.Background(), 7)
	require.NoError(t, err)

	want := []models.PostSummary{
		{ID: 1, Title: "First", Description: "one", LikeCount: 2},
		{ID: 3, Title: "Second", Description: "two", LikeCount: 0},
	}
	if diff := cmp.Diff(want, posts); diff != "" {
		t.Errorf("ListForUser mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ListForUser_InsertionOrderAndCounts(t *testing.T) {
	gw, _ := setupSQLite(t)
	var alice, bob uint
	var postIDs []uint

	session(t, gw, func(ctx context.Context, repos *Repositories) error {
		var err error
		if alice, err = repos.Users.Insert(ctx, &models.User{Name: "Alice"}); err != nil {
			return err
		}
		if bob, err = repos.Users.Insert(ctx, &models.User{Name: "Bob"}); err != nil {
			return err
		}
		for _, title := range []string{"zeta", "alpha", "mid"} {
			id, err := repos.Posts.Insert(ctx, &models.Post{Title: title, Description: title + " body", UserID: alice})
			if err != nil {
				return err
			}
			postIDs = append(postIDs, id)
		}
		if _, err := repos.Likes.Toggle(ctx, bob, postIDs[1]); err != nil {
			return err
		}
		_, err = repos.Likes.Toggle(ctx, alice, postIDs[1])
		return err
	})

	session(t, gw, func(ctx context.Context, repos *Repositories) error {
		posts, err := repos.Posts.ListForUser(ctx, alice)
		require.NoError(t, err)

		want := []models.PostSummary{
			{ID: postIDs[0], Title: "zeta", Description: "zeta body", LikeCount: 0},
			{ID: postIDs[1], Title: "alpha", Description: "alpha body", LikeCount: 2},
			{ID: postIDs[2], Title: "mid", Description: "mid body", LikeCount: 0},
		}
		if diff := cmp.Diff(want, posts); diff != "" {
			t.Errorf("ListForUser mismatch (-want +got):\n%s", diff)
		}

		none, err := repos.Posts.ListForUser(ctx, bob)
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
		return nil
	})
}

func TestPostRepository_Insert_Errors(t *testing.T) {
	gw, _ := setupSQLite(t)
	ctx := context.Background()

	var author uint
	session(t, gw, func(ctx context.Context, repos *Repositories) error {
		var err error
		author, err = repos.Users.Insert(ctx, &models.User{Name: "Rayhan"})
		return err
	})

	tests := []struct {
		name string
		post models.Post
		want error
	}{
		{"missing author", models.Post{Title: "t", Description: "d", UserID: author + 100}, models.ErrNotFound},
		{"empty title", models.Post{Title: "", Description: "d", UserID: author}, models.ErrConstraint},
		{"empty description", models.Post{Title: "t", Description: " ", UserID: author}, models.ErrConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := tt.post
			err := gw.WithSession(ctx, "add_post", func(ctx context.Context, repos *Repositories) error {
				_, err := repos.Posts.Insert(ctx, &post)
				return err
			})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPostRepository_GetByID(t *testing.T) {
	gw, _ := setupSQLite(t)

	session(t, gw, func(ctx context.Context, repos *Repositories) error {
		author, err := repos.Users.Insert(ctx, &models.User{Name: "Rayhan"})
		require.NoError(t, err)
		id, err := repos.Posts.Insert(ctx, &models.Post{Title: "Hello", Description: "World", UserID: author})
		require.NoError(t, err)

		post, err := repos.Posts.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, author, post.UserID)
		assert.Equal(t, "Hello", post.Title)

		_, err = repos.Posts.GetByID(ctx, id+1)
		assert.ErrorIs(t, err, models.ErrNotFound)
		return nil
	})
}
