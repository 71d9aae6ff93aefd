package models

import "time"

// Post is authored by exactly one User and removed with it.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:120;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
