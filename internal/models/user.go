// Package models contains the entities of the social media data model and
// the detached views handed out by the persistence layer.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Field limits shared by the schema tags and input validation.
const (
	MaxNameLen        = 80
	MaxGenderLen      = 30
	MaxNationalityLen = 60
	MaxTitleLen       = 120
	MinAge            = 0
	MaxAge            = 150
)

// Gender is an optional profile attribute. The zero value means unset.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists the accepted values in menu order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// ParseGender accepts a case-insensitive gender or a blank string (unset).
func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	switch g {
	case "", GenderMale, GenderFemale, GenderOther:
		return g, nil
	}
	return "", NewValidationError(fmt.Sprintf("gender must be one of male, female, other (got %q)", s))
}

// User represents an account. Name is the human-facing lookup key.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:80;uniqueIndex;not null" json:"name"`
	Age         *int      `json:"age"`
	Gender      *Gender   `gorm:"size:30" json:"gender"`
	Nationality *string   `gorm:"size:60" json:"nationality"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
