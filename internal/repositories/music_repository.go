package repositories

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// MusicRepository defines the interface for music track operations
type MusicRepository interface {
	CreateMusic(music *models.Music) error
	GetMusicByID(id uint) (*models.Music, error)
	ListMusic() ([]models.Music, error)
}

type postgresMusicRepository struct {
	db *gorm.DB
}

func NewPostgresMusicRepository(db *gorm.DB) MusicRepository {
	return &postgresMusicRepository{db: db}
}

func (r *postgresMusicRepository) CreateMusic(music *models.Music) error {
	return r.db.Create(music).Error
}

func (r *postgresMusicRepository) GetMusicByID(id uint) (*models.Music, error) {
	var music models.Music
	if err := r.db.First(&music, id).Error; err != nil {
		return nil, err
	}
	return &music, nil
}

func (r *postgresMusicRepository) ListMusic() ([]models.Music, error) {
	var tracks []models.Music
	err := r.db.Order("created_at DESC").Find(&tracks).Error
	return tracks, err
}
