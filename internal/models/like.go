package models

// Like is the association between a user and a post they liked.
// The (UserID, PostID) pair is the primary key, so it appears at most once.
type Like struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	PostID uint `gorm:"primaryKey;autoIncrement:false;index" json:"post_id"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;" json:"-"`
}
