package models

import "time"

// Music represents a reusable audio track posts can attach
type Music struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Singer    string    `json:"singer" gorm:"size:100"`
	Name      string    `json:"name" gorm:"size:100;uniqueIndex"`
	FileID    string    `json:"file_id"` // media store reference
	CoverID   string    `json:"cover_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMusicRequest defines the request body for registering a track
type CreateMusicRequest struct {
	Singer  string `json:"singer" validate:"required,max=100"`
	Name    string `json:"name" validate:"required,max=100"`
	FileID  string `json:"file_id" validate:"required"`
	CoverID string `json:"cover_id,omitempty"`
}
