package models

import "time"

// ReplyLike and ReplyDislike follow the same mutual-exclusion rule as the
// comment pair.

// ReplyLike represents a like on a reply
type ReplyLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ReplyID   uint      `json:"reply_id" gorm:"index;uniqueIndex:idx_reply_user_like"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_reply_user_like"`
	CreatedAt time.Time `json:"created_at"`
}

// ReplyDislike represents a dislike on a reply
type ReplyDislike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ReplyID   uint      `json:"reply_id" gorm:"index;uniqueIndex:idx_reply_user_dislike"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_reply_user_dislike"`
	CreatedAt time.Time `json:"created_at"`
}
