package repositories

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// HashtagRepository defines the interface for hashtag operations
type HashtagRepository interface {
	CreateHashtag(hashtag *models.Hashtag) error
	GetHashtagByName(name string) (*models.Hashtag, error)
	ListHashtags() ([]models.Hashtag, error)
}

type postgresHashtagRepository struct {
	db *gorm.DB
}

func NewPostgresHashtagRepository(db *gorm.DB) HashtagRepository {
	return &postgresHashtagRepository{db: db}
}

func (r *postgresHashtagRepository) CreateHashtag(hashtag *models.Hashtag) error {
	return r.db.Create(hashtag).Error
}

func (r *postgresHashtagRepository) GetHashtagByName(name string) (*models.Hashtag, error) {
	var tag models.Hashtag
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *postgresHashtagRepository) ListHashtags() ([]models.Hashtag, error) {
	var tags []models.Hashtag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}
