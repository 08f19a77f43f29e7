package models

import "time"

// Repost represents a re-share of a post, optionally with commentary
type Repost struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_user_repost"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_post_user_repost"`
	Text      string    `json:"text,omitempty" gorm:"size:300"`
	CreatedAt time.Time `json:"created_at"`
}

// RepostRequest defines the optional commentary body for the repost toggle
type RepostRequest struct {
	Text string `json:"text,omitempty" validate:"omitempty,max=300"`
}
