package models

import "time"

// CommentLike and CommentDislike are mutually exclusive per (comment, user):
// the reaction engine never lets both rows exist at once.

// CommentLike represents a like on a comment
type CommentLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CommentID uint      `json:"comment_id" gorm:"index;uniqueIndex:idx_comment_user_like"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_comment_user_like"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentDislike represents a dislike on a comment
type CommentDislike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CommentID uint      `json:"comment_id" gorm:"index;uniqueIndex:idx_comment_user_dislike"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_comment_user_dislike"`
	CreatedAt time.Time `json:"created_at"`
}
