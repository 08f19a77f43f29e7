package repositories

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// ViewRepository exposes read-side view queries
type ViewRepository interface {
	GetViewsCountByPostID(postID uint) (int64, error)
	HasUserViewedPost(postID, userID uint) (bool, error)
}

type postgresViewRepository struct {
	db *gorm.DB
}

func NewPostgresViewRepository(db *gorm.DB) ViewRepository {
	return &postgresViewRepository{db: db}
}

func (r *postgresViewRepository) GetViewsCountByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.View{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *postgresViewRepository) HasUserViewedPost(postID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.View{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error
	return count > 0, err
}
