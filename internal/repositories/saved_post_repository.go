package repositories

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// SavedPostRepository exposes read-side saved-post queries
type SavedPostRepository interface {
	IsPostSaved(userID, postID uint) (bool, error)
	GetSavesCountByPostID(postID uint) (int64, error)
	GetSavedPostsByUser(userID uint) ([]models.SavedPost, error)
}

// PostgresSavedPostRepository implements SavedPostRepository
type PostgresSavedPostRepository struct {
	db *gorm.DB
}

func NewPostgresSavedPostRepository(db *gorm.DB) *PostgresSavedPostRepository {
	return &PostgresSavedPostRepository{db: db}
}

func (r *PostgresSavedPostRepository) IsPostSaved(userID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedPost{}).Where("user_id = ? AND post_id = ?", userID, postID).Count(&count).Error
	return count > 0, err
}

func (r *PostgresSavedPostRepository) GetSavesCountByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.SavedPost{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *PostgresSavedPostRepository) GetSavedPostsByUser(userID uint) ([]models.SavedPost, error) {
	var saved []models.SavedPost
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&saved).Error
	return saved, err
}
