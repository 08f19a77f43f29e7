package repositories

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// RepostRepository exposes read-side repost queries
type RepostRepository interface {
	HasUserReposted(postID, userID uint) (bool, error)
	GetRepostsCountByPostID(postID uint) (int64, error)
	GetRepostsByUser(userID uint) ([]models.Repost, error)
}

type postgresRepostRepository struct {
	db *gorm.DB
}

func NewPostgresRepostRepository(db *gorm.DB) RepostRepository {
	return &postgresRepostRepository{db: db}
}

func (r *postgresRepostRepository) HasUserReposted(postID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Repost{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error
	return count > 0, err
}

func (r *postgresRepostRepository) GetRepostsCountByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Repost{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *postgresRepostRepository) GetRepostsByUser(userID uint) ([]models.Repost, error) {
	var reposts []models.Repost
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reposts).Error
	return reposts, err
}
