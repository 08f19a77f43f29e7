package models

import "time"

// Notification types
const (
	NotificationTypeLike    = "like"
	NotificationTypeComment = "comment"
	NotificationTypeReply   = "reply"
	NotificationTypeFollow  = "follow"
)

// Notification is the durable record emitted by reaction-engine transitions.
// Only the read flag is ever updated after creation.
type Notification struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Type       string    `json:"type" gorm:"size:20;index"`
	SenderID   uint      `json:"sender_id" gorm:"index"`
	ReceiverID uint      `json:"receiver_id" gorm:"index"`
	PostID     *uint     `json:"post_id,omitempty" gorm:"index"`
	CommentID  *uint     `json:"comment_id,omitempty" gorm:"index"`
	ReplyID    *uint     `json:"reply_id,omitempty" gorm:"index"`
	IsRead     bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}
