package models

import "time"

// DeletedAuthorName is shown in place of the author of a comment whose
// user has been deleted.
const DeletedAuthorName = "[deleted]"

// Comment belongs to a Post. Its author reference is nulled, not cascaded,
// when the author is deleted.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;" json:"-"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;" json:"-"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
