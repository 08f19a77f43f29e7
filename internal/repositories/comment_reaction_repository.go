package repositories

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// CommentReactionRepository exposes read-side queries over the mutually
// exclusive comment like/dislike pair. Mutation is the reaction engine's job.
type CommentReactionRepository interface {
	GetLikesCount(commentID uint) (int64, error)
	GetDislikesCount(commentID uint) (int64, error)
	HasUserLikedComment(commentID, userID uint) (bool, error)
	HasUserDislikedComment(commentID, userID uint) (bool, error)
}

type postgresCommentReactionRepository struct {
	db *gorm.DB
}

func NewPostgresCommentReactionRepository(db *gorm.DB) CommentReactionRepository {
	return &postgresCommentReactionRepository{db: db}
}

func (r *postgresCommentReactionRepository) GetLikesCount(commentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CommentLike{}).Where("comment_id = ?", commentID).Count(&count).Error
	return count, err
}

func (r *postgresCommentReactionRepository) GetDislikesCount(commentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CommentDislike{}).Where("comment_id = ?", commentID).Count(&count).Error
	return count, err
}

func (r *postgresCommentReactionRepository) HasUserLikedComment(commentID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.CommentLike{}).Where("comment_id = ? AND user_id = ?", commentID, userID).Count(&count).Error
	return count > 0, err
}

func (r *postgresCommentReactionRepository) HasUserDislikedComment(commentID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.CommentDislike{}).Where("comment_id = ? AND user_id = ?", commentID, userID).Count(&count).Error
	return count > 0, err
}
