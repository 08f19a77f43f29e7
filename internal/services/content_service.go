package services

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// ContentService creates comments and replies. Creation lives here rather
// than in the repositories so the new row and its notification share one
// transaction.
type ContentService struct {
	db       *gorm.DB
	notifier *Notifier
}

// NewContentService creates a ContentService
func NewContentService(db *gorm.DB, notifier *Notifier) *ContentService {
	return &ContentService{db: db, notifier: notifier}
}

// CreateComment adds a comment to a post and notifies the post owner
func (s *ContentService) CreateComment(postID, userID uint, text string) (*models.Comment, error) {
	comment := &models.Comment{PostID: postID, UserID: userID, Text: text}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			return subjectErr(err)
		}
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return s.notifier.CommentCreated(tx, userID, post.UserID, postID, comment.ID)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateReply adds a reply under a comment and notifies the comment owner.
// The reply keeps a direct reference to the post so post-level cleanup and
// projections don't have to go through the comment.
func (s *ContentService) CreateReply(commentID, userID uint, text string) (*models.Reply, error) {
	var reply *models.Reply
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, commentID).Error; err != nil {
			return subjectErr(err)
		}
		reply = &models.Reply{PostID: comment.PostID, CommentID: commentID, UserID: userID, Text: text}
		if err := tx.Create(reply).Error; err != nil {
			return err
		}
		return s.notifier.ReplyCreated(tx, userID, comment.UserID, comment.PostID, commentID, reply.ID)
	})
	if err != nil {
		return nil, err
	}
	return reply, nil
}
