package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User represents a registered account (PostgreSQL)
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"uniqueIndex"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Bio         string    `json:"bio"`
	AvatarID    string    `json:"avatar_id,omitempty"` // media store reference
	Email       string    `json:"email" gorm:"uniqueIndex"`
	Password    string    `json:"-"` // bcrypt hash, never serialized
	FirebaseUID string    `json:"firebase_uid,omitempty" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UserCompact is the author shape embedded in projections
type UserCompact struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarID  string `json:"avatar_id,omitempty"`
}

// ToCompact strips a user down to the embeddable author shape
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarID:  u.AvatarID,
	}
}

// SignupRequest defines the request body for local registration
type SignupRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=30"`
	FirstName string `json:"first_name" validate:"omitempty,max=50"`
	LastName  string `json:"last_name" validate:"omitempty,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// SigninRequest defines the request body for local login
type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest defines the request body for profile updates
type UpdateUserRequest struct {
	Username  string  `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=300"`
	AvatarID  *string `json:"avatar_id,omitempty"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
