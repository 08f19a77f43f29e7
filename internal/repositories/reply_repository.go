package repositories

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// ReplyRepository defines the interface for reply data operations
type ReplyRepository interface {
	GetReplyByID(id uint) (*models.Reply, error)
	GetRepliesByCommentID(commentID uint) ([]models.Reply, error)
	UpdateReply(reply *models.Reply) error
	DeleteReply(id uint) error
}

type postgresReplyRepository struct {
	db *gorm.DB
}

// NewPostgresReplyRepository creates a new reply repository. Reply creation
// goes through the content service, like comments.
func NewPostgresReplyRepository(db *gorm.DB) ReplyRepository {
	return &postgresReplyRepository{db: db}
}

func (r *postgresReplyRepository) GetReplyByID(id uint) (*models.Reply, error) {
	var reply models.Reply
	if err := r.db.First(&reply, id).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetRepliesByCommentID returns a comment's replies oldest first
func (r *postgresReplyRepository) GetRepliesByCommentID(commentID uint) ([]models.Reply, error) {
	var replies []models.Reply
	err := r.db.Where("comment_id = ?", commentID).Order("created_at ASC").Find(&replies).Error
	return replies, err
}

func (r *postgresReplyRepository) UpdateReply(reply *models.Reply) error {
	return r.db.Save(reply).Error
}

// DeleteReply deletes a reply, its reactions and notifications naming it
func (r *postgresReplyRepository) DeleteReply(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reply_id = ?", id).Delete(&models.ReplyLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reply_id = ?", id).Delete(&models.ReplyDislike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reply_id = ?", id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Reply{}, id).Error
	})
}
