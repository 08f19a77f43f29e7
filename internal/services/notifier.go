package services

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// Notifier centralizes the notification emission and cleanup rules. Every
// method takes the caller's transaction handle so the notification row
// commits (or rolls back) together with the state change that caused it.
//
// Rules:
//   - like on a post      -> notify the post owner
//   - follow              -> notify the target
//   - comment on a post   -> notify the post owner
//   - reply to a comment  -> notify the comment owner
//   - withdrawing a reaction retracts the exact notification it created,
//     matched by the full (sender, receiver, subject, type) tuple
//   - sender == receiver emits nothing (no self-notifications)
type Notifier struct{}

// NewNotifier creates a Notifier
func NewNotifier() *Notifier {
	return &Notifier{}
}

// LikeCreated records a like notification for the post owner
func (n *Notifier) LikeCreated(tx *gorm.DB, senderID, receiverID, postID uint) error {
	if senderID == receiverID {
		return nil
	}
	return tx.Create(&models.Notification{
		Type:       models.NotificationTypeLike,
		SenderID:   senderID,
		ReceiverID: receiverID,
		PostID:     &postID,
	}).Error
}

// LikeRemoved deletes the notification a like created, and only that one:
// the tuple match keeps other users' like notifications for the same post
// intact.
func (n *Notifier) LikeRemoved(tx *gorm.DB, senderID, receiverID, postID uint) error {
	return tx.Where(
		"type = ? AND sender_id = ? AND receiver_id = ? AND post_id = ?",
		models.NotificationTypeLike, senderID, receiverID, postID,
	).Delete(&models.Notification{}).Error
}

// FollowCreated records a follow notification for the target
func (n *Notifier) FollowCreated(tx *gorm.DB, senderID, receiverID uint) error {
	if senderID == receiverID {
		return nil
	}
	return tx.Create(&models.Notification{
		Type:       models.NotificationTypeFollow,
		SenderID:   senderID,
		ReceiverID: receiverID,
	}).Error
}

// FollowRemoved retracts the follow notification, the same rule unlike uses
func (n *Notifier) FollowRemoved(tx *gorm.DB, senderID, receiverID uint) error {
	return tx.Where(
		"type = ? AND sender_id = ? AND receiver_id = ?",
		models.NotificationTypeFollow, senderID, receiverID,
	).Delete(&models.Notification{}).Error
}

// CommentCreated records a comment notification for the post owner
func (n *Notifier) CommentCreated(tx *gorm.DB, senderID, receiverID, postID, commentID uint) error {
	if senderID == receiverID {
		return nil
	}
	return tx.Create(&models.Notification{
		Type:       models.NotificationTypeComment,
		SenderID:   senderID,
		ReceiverID: receiverID,
		PostID:     &postID,
		CommentID:  &commentID,
	}).Error
}

// ReplyCreated records a reply notification for the comment owner
func (n *Notifier) ReplyCreated(tx *gorm.DB, senderID, receiverID, postID, commentID, replyID uint) error {
	if senderID == receiverID {
		return nil
	}
	return tx.Create(&models.Notification{
		Type:       models.NotificationTypeReply,
		SenderID:   senderID,
		ReceiverID: receiverID,
		PostID:     &postID,
		CommentID:  &commentID,
		ReplyID:    &replyID,
	}).Error
}
