package models

import "time"

// Reply represents a reply to a comment. It carries both the comment and
// the post reference so post-level cascades do not have to walk comments.
type Reply struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index"`
	CommentID uint      `json:"comment_id" gorm:"index"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Text      string    `json:"text" gorm:"size:300"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateReplyRequest defines the request body for replying to a comment
type CreateReplyRequest struct {
	Text string `json:"text" validate:"required,min=1,max=300"`
}

// UpdateReplyRequest defines the request body for editing a reply
type UpdateReplyRequest struct {
	Text string `json:"text" validate:"required,min=1,max=300"`
}
