package models

import "time"

// Post represents a short video post (PostgreSQL)
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index"`
	VideoID     string    `json:"video_id"` // media store reference
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       string    `json:"genre,omitempty" gorm:"size:50"`
	MusicID     *uint     `json:"music_id,omitempty" gorm:"index"`
	Music       *Music    `json:"music,omitempty"`
	Hashtags    []Hashtag `json:"hashtags" gorm:"many2many:post_hashtags;"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	VideoID     string `json:"video_id" validate:"required"`
	Title       string `json:"title" validate:"required,min=1,max=150"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Genre       string `json:"genre,omitempty" validate:"omitempty,max=50"`
	MusicID     *uint  `json:"music_id,omitempty"`
	HashtagIDs  []uint `json:"hashtag_ids,omitempty"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=150"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Genre       *string `json:"genre,omitempty" validate:"omitempty,max=50"`
	MusicID     *uint   `json:"music_id,omitempty"`
	HashtagIDs  []uint  `json:"hashtag_ids,omitempty"`
}
