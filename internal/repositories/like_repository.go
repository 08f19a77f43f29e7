package repositories

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository exposes read-side like queries. Creation and removal go
// through the reaction engine, which owns the toggle transaction.
type LikeRepository interface {
	GetLikesByPostID(postID uint) ([]models.Like, error)
	GetLikesCountByPostID(postID uint) (int64, error)
	HasUserLikedPost(postID, userID uint) (bool, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// GetLikesByPostID retrieves all likes for a specific post
func (r *PostgresLikeRepository) GetLikesByPostID(postID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.Where("post_id = ?", postID).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// GetLikesCountByPostID retrieves the count of likes for a specific post
func (r *PostgresLikeRepository) GetLikesCountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HasUserLikedPost checks if a user has liked a specific post
func (r *PostgresLikeRepository) HasUserLikedPost(postID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
