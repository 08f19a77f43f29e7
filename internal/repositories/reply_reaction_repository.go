package repositories

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// ReplyReactionRepository mirrors CommentReactionRepository for replies
type ReplyReactionRepository interface {
	GetLikesCount(replyID uint) (int64, error)
	GetDislikesCount(replyID uint) (int64, error)
	HasUserLikedReply(replyID, userID uint) (bool, error)
	HasUserDislikedReply(replyID, userID uint) (bool, error)
}

type postgresReplyReactionRepository struct {
	db *gorm.DB
}

func NewPostgresReplyReactionRepository(db *gorm.DB) ReplyReactionRepository {
	return &postgresReplyReactionRepository{db: db}
}

func (r *postgresReplyReactionRepository) GetLikesCount(replyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ReplyLike{}).Where("reply_id = ?", replyID).Count(&count).Error
	return count, err
}

func (r *postgresReplyReactionRepository) GetDislikesCount(replyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ReplyDislike{}).Where("reply_id = ?", replyID).Count(&count).Error
	return count, err
}

func (r *postgresReplyReactionRepository) HasUserLikedReply(replyID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ReplyLike{}).Where("reply_id = ? AND user_id = ?", replyID, userID).Count(&count).Error
	return count > 0, err
}

func (r *postgresReplyReactionRepository) HasUserDislikedReply(replyID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ReplyDislike{}).Where("reply_id = ? AND user_id = ?", replyID, userID).Count(&count).Error
	return count > 0, err
}
