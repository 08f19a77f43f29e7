package repositories

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	GetCommentByID(id uint) (*models.Comment, error)
	GetCommentsByPostID(postID uint) ([]models.Comment, error)
	UpdateComment(comment *models.Comment) error
	DeleteComment(id uint) error
}

type postgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new comment repository.
// Comment creation goes through the content service so the post-owner
// notification commits in the same transaction.
func NewPostgresCommentRepository(db *gorm.DB) CommentRepository {
	return &postgresCommentRepository{db: db}
}

func (r *postgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPostID returns a post's comments oldest first
func (r *postgresCommentRepository) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

func (r *postgresCommentRepository) UpdateComment(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// DeleteComment deletes a comment, its reactions, its replies (and their
// reactions) and any notification that named the comment or those replies.
func (r *postgresCommentRepository) DeleteComment(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteCommentTx(tx, id)
	})
}

// deleteCommentTx runs the comment cascade inside the caller's transaction
// so user deletion can reuse it.
func deleteCommentTx(tx *gorm.DB, id uint) error {
	var replyIDs []uint
	if err := tx.Model(&models.Reply{}).Where("comment_id = ?", id).Pluck("id", &replyIDs).Error; err != nil {
		return err
	}
	if len(replyIDs) > 0 {
		if err := tx.Where("reply_id IN ?", replyIDs).Delete(&models.ReplyLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reply_id IN ?", replyIDs).Delete(&models.ReplyDislike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reply_id IN ?", replyIDs).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("comment_id = ?", id).Delete(&models.Reply{}).Error; err != nil {
		return err
	}
	if err := tx.Where("comment_id = ?", id).Delete(&models.CommentLike{}).Error; err != nil {
		return err
	}
	if err := tx.Where("comment_id = ?", id).Delete(&models.CommentDislike{}).Error; err != nil {
		return err
	}
	if err := tx.Where("comment_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Comment{}, id).Error
}
