package models

import "time"

// View is an idempotent watch marker, at most one per (post, user).
// Unlike the other reactions it is never removed by a second toggle.
type View struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_user_view"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_post_user_view"`
	CreatedAt time.Time `json:"created_at"`
}
