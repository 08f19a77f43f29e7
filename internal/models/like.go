package models

import "time"

// Like represents a like on a post, at most one per (post, user)
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_user_like"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_post_user_like"`
	CreatedAt time.Time `json:"created_at"`
}
