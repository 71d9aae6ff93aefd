package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"smapp/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByName(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT * FROM "users" WHERE name = $1 LIMIT $2`)

	tests := []struct {
		name         string
		lookup       string
		mockBehavior func()
		wantID       uint
		wantNil      bool
	}{
		{
			name:   "Found",
			lookup: "Rayhan",
			mockBehavior: func() {
				rows := sqlmock.NewRows([]string{"id", "name", "age", "gender", "nationality", "created_at"}).
					AddRow(1, "Rayhan", 30, "male", "Bangladeshi", time.Now())
				mock.ExpectQuery(query).WithArgs("Rayhan", 1).WillReturnRows(rows)
			},
			wantID: 1,
		},
		{
			name:   "Absent",
			lookup: "NoSuchUser",
			mockBehavior: func() {
				mock.ExpectQuery(query).WithArgs("NoSuchUser", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
			},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()
			profile, err := repo.FindByName(ctx, tt.lookup)

			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, profile)
			} else if assert.NotNil(t, profile) {
				assert.Equal(t, tt.wantID, profile.ID)
				assert.Equal(t, tt.lookup, profile.Name)
				require.NotNil(t, profile.Gender)
				assert.Equal(t, models.GenderMale, *profile.Gender)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 LIMIT $2`)).
		WithArgs(99, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	profile, err := repo.GetByID(context.Background(), 99)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Insert_RejectsBlankName(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	_, err := repo.Insert(context.Background(), &models.User{Name: "  "})
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_InsertAndLookup(t *testing.T) {
	gw, _ := setupSQLite(t)
	age := 30
	gender := models.GenderMale
	nationality := "Bangladeshi"

	var id uint
	session(t, gw, func(ctx context.Context, repos *Repositories) error {
		var err error
		id, err = repos.Users.Insert(ctx, &models.User{Name: "Rayhan", Age: &age, Gender: &gender, Nationality: &nationality})
		return err
	})
	assert.NotZero(t, id)

	session(t, gw, func(ctx context.Context, repos *Repositories) error {
		byName, err := repos.Users.FindByName(ctx, "Rayhan")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, id, byName.ID)
		assert.Equal(t, 30, *byName.Age)
		assert.Equal(t, models.GenderMale, *byName.Gender)
		assert.Equal(t, "Bangladeshi", *byName.Nationality)
		assert.False(t, byName.CreatedAt.IsZero())

		byID, err := repos.Users.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, byName.Name, byID.Name)

		missing, err := repos.Users.FindByName(ctx, "NoSuchUser")
		assert.NoError(t, err)
		assert.Nil(t, missing)
		return nil
	})
}

func TestUserRepository_DuplicateName(t *testing.T) {
	gw, _ := setupSQLite(t)
	ctx := context.Background()
	age := 30

	session(t, gw, func(ctx context.Context, repos *Repositories) error {
		_, err := repos.Users.Insert(ctx, &models.User{Name: "Rayhan", Age: &age})
		return err
	})

	err := gw.WithSession(ctx, "create_account", func(ctx context.Context, repos *Repositories) error {
		_, err := repos.Users.Insert(ctx, &models.User{Name: "Rayhan"})
		return err
	})
	require.ErrorIs(t, err, models.ErrDuplicateName)

	session(t, gw, func(ctx context.Context, repos *Repositories) error {
		names, err := repos.Users.ListNames(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Rayhan"}, names)

		first, err := repos.Users.FindByName(ctx, "Rayhan")
		require.NoError(t, err)
		require.NotNil(t, first.Age)
		assert.Equal(t, 30, *first.Age)
		return nil
	})
}

func TestUserRepository_ListNamesSorted(t *testing.T) {
	gw, _ := setupSQLite(t)

	session(t, gw, func(ctx context.Context, repos *Repositories) error {
		for _, name := range []string{"Eleonore", "Bob", "Rayhan", "Alice"} {
			if _, err := repos.Users.Insert(ctx, &models.User{Name: name}); err != nil {
				return err
			}
		}
		return nil
	})

	session(t, gw, func(ctx context.Context, repos *Repositories) error {
		names, err := repos.Users.ListNames(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Bob", "Eleonore", "Rayhan"}, names)
		return nil
	})
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	gw, _ := setupSQLite(t)

	err := gw.WithSession(context.Background(), "delete_user", func(ctx context.Context, repos *Repositories) error {
		return repos.Users.Delete(ctx, 12345)
	})
	assert.ErrorIs(t, err, models.ErrNotFound)
}
