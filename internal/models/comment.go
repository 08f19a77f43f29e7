package models

import "time"

// Comment represents a comment on a post
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Text      string    `json:"text" gorm:"size:300"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=300"`
}

// UpdateCommentRequest defines the request body for editing a comment
type UpdateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=300"`
}
