package models

import "time"

// UserProfile is a detached copy of a User.
type UserProfile struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Age         *int      `json:"age"`
	Gender      *Gender   `json:"gender"`
	Nationality *string   `json:"nationality"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostSummary is one row of a user's post listing.
type PostSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	LikeCount   int    `json:"like_count"`
}

// CommentView is a comment with its author's name resolved.
type CommentView struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"post_id"`
	Author    string    `json:"author"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeState is the outcome of toggling a like.
type LikeState struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}
