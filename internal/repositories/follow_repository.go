package repositories

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository exposes read-side follow-graph queries. The follow
// toggle itself belongs to the reaction engine.
type FollowRepository interface {
	IsFollowing(followerID, followingID uint) (bool, error)
	GetFollowers(userID uint) ([]models.User, error)
	GetFollowing(userID uint) ([]models.User, error)
	GetFollowersCount(userID uint) (int64, error)
	GetFollowingCount(userID uint) (int64, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

func (r *PostgresFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND following_id = ?", followerID, followingID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresFollowRepository) GetFollowers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("follower_id").Where("following_id = ?", userID),
	).Find(&users).Error
	return users, err
}

func (r *PostgresFollowRepository) GetFollowing(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("following_id").Where("follower_id = ?", userID),
	).Find(&users).Error
	return users, err
}

func (r *PostgresFollowRepository) GetFollowersCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *PostgresFollowRepository) GetFollowingCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}
