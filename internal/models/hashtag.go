package models

// Hashtag has a unique name and a many-to-many relation with posts
type Hashtag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;uniqueIndex"`
}

// CreateHashtagRequest defines the request body for creating a hashtag
type CreateHashtagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
