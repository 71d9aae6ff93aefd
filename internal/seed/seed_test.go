package seed

import (
	"context"
	"testing"

	"smapp/internal/models"
	"smapp/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_UniqueNamesWithinLimits(t *testing.T) {
	f := NewFactory(42)
	seen := map[string]bool{}

	for i := 0; i < 200; i++ {
		u := f.User()
		assert.False(t, seen[u.Name], "duplicate name %q", u.Name)
		seen[u.Name] = true
		assert.LessOrEqual(t, len([]rune(u.Name)), models.MaxNameLen)
		if u.Age != nil {
			assert.GreaterOrEqual(t, *u.Age, models.MinAge)
			assert.LessOrEqual(t, *u.Age, models.MaxAge)
		}
	}

	p := f.Post(1)
	assert.NotEmpty(t, p.Title)
	assert.NotEmpty(t, p.Description)
	assert.LessOrEqual(t, len([]rune(p.Title)), models.MaxTitleLen)
}

func TestFactory_DeterministicForSeed(t *testing.T) {
	a, b := NewFactory(7), NewFactory(7)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.User().Name, b.User().Name)
	}
}

func TestSeeder_Run(t *testing.T) {
	db := testutil.NewTestDB(t)
	s := NewSeeder(db, nil)
	ctx := context.Background()

	opts := Options{NumUsers: 5, NumPosts: 10, NumComments: 15, LikeDensity: 1, Seed: 3}
	sum, err := s.Run(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, Summary{Users: 5, Posts: 10, Comments: 15, Likes: 50}, sum)

	var likes int64
	require.NoError(t, db.Model(&models.Like{}).Count(&likes).Error)
	assert.EqualValues(t, 50, likes)

	opts.ShouldClean = true
	opts.LikeDensity = 0
	sum, err = s.Run(ctx, opts)
	require.NoError(t, err)
	assert.Zero(t, sum.Likes)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.EqualValues(t, 5, users, "clean removes the first run")
}

func TestSeeder_RejectsPostsWithoutUsers(t *testing.T) {
	s := NewSeeder(testutil.NewTestDB(t), nil)
	_, err := s.Run(context.Background(), Options{NumPosts: 1})
	assert.Error(t, err)
}
