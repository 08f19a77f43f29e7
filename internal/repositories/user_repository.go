package repositories

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByFirebaseUID(firebaseUID string) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
	SearchUsers(query string) ([]models.User, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user in PostgreSQL
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByFirebaseUID retrieves a user by Firebase UID
func (r *PostgresUserRepository) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("firebase_uid = ?", firebaseUID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// DeleteUser deletes a user and everything the user produced: their posts
// (with the full post cascade), their comments and replies on other
// people's content, every reaction row they created, their follow edges
// and every notification they sent or received.
func (r *PostgresUserRepository) DeleteUser(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		for _, postID := range postIDs {
			if err := deletePostTx(tx, postID); err != nil {
				return err
			}
		}

		var commentIDs []uint
		if err := tx.Model(&models.Comment{}).Where("user_id = ?", id).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		for _, commentID := range commentIDs {
			if err := deleteCommentTx(tx, commentID); err != nil {
				return err
			}
		}

		var replyIDs []uint
		if err := tx.Model(&models.Reply{}).Where("user_id = ?", id).Pluck("id", &replyIDs).Error; err != nil {
			return err
		}
		if len(replyIDs) > 0 {
			if err := tx.Where("reply_id IN ?", replyIDs).Delete(&models.ReplyLike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("reply_id IN ?", replyIDs).Delete(&models.ReplyDislike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("reply_id IN ?", replyIDs).Delete(&models.Notification{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", replyIDs).Delete(&models.Reply{}).Error; err != nil {
				return err
			}
		}

		for _, m := range []interface{}{
			&models.Like{}, &models.SavedPost{}, &models.Repost{}, &models.View{},
			&models.CommentLike{}, &models.CommentDislike{},
			&models.ReplyLike{}, &models.ReplyDislike{},
		} {
			if err := tx.Where("user_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("follower_id = ? OR following_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_id = ? OR receiver_id = ?", id, id).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}

// SearchUsers searches for users by username or name (case-insensitive)
func (r *PostgresUserRepository) SearchUsers(query string) ([]models.User, error) {
	var users []models.User
	pattern := "%" + query + "%"
	err := r.db.Where(
		"LOWER(username) LIKE LOWER(?) OR LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?)",
		pattern, pattern, pattern,
	).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
