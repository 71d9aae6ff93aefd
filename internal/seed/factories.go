// Package seed creates demo data through the persistence gateway. It is
// intended for development and testing only.
package seed

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"smapp/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// Factory builds unsaved entities filled with fake data. A Factory built
// with the same seed yields the same sequence.
type Factory struct {
	faker *gofakeit.Faker
	names map[string]struct{}
}

// NewFactory returns a Factory. A zero seed picks a random one.
func NewFactory(seed int64) *Factory {
	return &Factory{
		faker: gofakeit.New(seed),
		names: make(map[string]struct{}),
	}
}

// User returns a user with a name not yet handed out by this Factory.
func (f *Factory) User() *models.User {
	name := truncate(f.faker.FirstName()+" "+f.faker.LastName(), models.MaxNameLen)
	for i := 2; ; i++ {
		if _, taken := f.names[name]; !taken {
			break
		}
		name = truncate(fmt.Sprintf("%s %s %d", f.faker.FirstName(), f.faker.LastName(), i), models.MaxNameLen)
	}
	f.names[name] = struct{}{}

	user := &models.User{Name: name}
	if f.faker.Number(0, 9) > 0 {
		age := f.faker.Number(13, 90)
		user.Age = &age
	}
	if f.faker.Number(0, 4) > 0 {
		gender := models.Genders[f.faker.Number(0, len(models.Genders)-1)]
		user.Gender = &gender
	}
	if f.faker.Bool() {
		nationality := truncate(f.faker.Country(), models.MaxNationalityLen)
		user.Nationality = &nationality
	}
	return user
}

// Post returns a post authored by userID.
func (f *Factory) Post(userID uint) *models.Post {
	return &models.Post{
		Title:       truncate(strings.TrimSuffix(f.faker.Sentence(f.faker.Number(2, 8)), "."), models.MaxTitleLen),
		Description: f.faker.Paragraph(1, 3, 12, "\n"),
		UserID:      userID,
	}
}

// Comment returns a comment by userID on postID.
func (f *Factory) Comment(userID, postID uint) *models.Comment {
	return &models.Comment{
		UserID:  &userID,
		PostID:  postID,
		Comment: f.faker.Sentence(f.faker.Number(3, 15)),
	}
}

// Chance reports true with probability p.
func (f *Factory) Chance(p float64) bool {
	return f.faker.Float64() < p
}

// Pick returns a random index in [0, n).
func (f *Factory) Pick(n int) int {
	return f.faker.Number(0, n-1)
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
