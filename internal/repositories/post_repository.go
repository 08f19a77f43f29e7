package repositories

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// PostFilter narrows post listings
type PostFilter struct {
	UserID    uint
	HashtagID uint
	MusicID   uint
	Search    string // matches title or hashtag name
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post, hashtagIDs []uint) error
	GetPostByID(id uint) (*models.Post, error)
	ListPosts(filter PostFilter, limit, offset int) ([]models.Post, error)
	UpdatePost(post *models.Post, hashtagIDs []uint) error
	DeletePost(id uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post and attaches its hashtags
func (r *PostgresPostRepository) CreatePost(post *models.Post, hashtagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return replaceHashtags(tx, post, hashtagIDs)
	})
}

// GetPostByID retrieves a post with its music and hashtags
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Music").Preload("Hashtags").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts retrieves posts newest first with pagination
func (r *PostgresPostRepository) ListPosts(filter PostFilter, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	query := r.db.Model(&models.Post{}).
		Preload("Music").Preload("Hashtags").
		Order("posts.created_at DESC").
		Limit(limit).Offset(offset)

	if filter.UserID != 0 {
		query = query.Where("posts.user_id = ?", filter.UserID)
	}
	if filter.MusicID != 0 {
		query = query.Where("posts.music_id = ?", filter.MusicID)
	}
	if filter.HashtagID != 0 {
		query = query.Joins("JOIN post_hashtags ph ON ph.post_id = posts.id").
			Where("ph.hashtag_id = ?", filter.HashtagID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.
			Joins("LEFT JOIN post_hashtags phs ON phs.post_id = posts.id").
			Joins("LEFT JOIN hashtags h ON h.id = phs.hashtag_id").
			Where("LOWER(posts.title) LIKE LOWER(?) OR LOWER(h.name) LIKE LOWER(?)", pattern, pattern).
			Distinct("posts.*")
	}

	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost updates an existing post; hashtagIDs of nil leaves tags alone
func (r *PostgresPostRepository) UpdatePost(post *models.Post, hashtagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(post).Error; err != nil {
			return err
		}
		if hashtagIDs == nil {
			return nil
		}
		return replaceHashtags(tx, post, hashtagIDs)
	})
}

// DeletePost deletes a post and everything referencing it: likes, saves,
// reposts, views, comments (with their reactions and replies) and any
// notification that named the post.
func (r *PostgresPostRepository) DeletePost(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deletePostTx(tx, id)
	})
}

// deletePostTx runs the post cascade inside the caller's transaction so
// user deletion can reuse it.
func deletePostTx(tx *gorm.DB, id uint) error {
	var commentIDs []uint
	if err := tx.Model(&models.Comment{}).Where("post_id = ?", id).Pluck("id", &commentIDs).Error; err != nil {
		return err
	}
	var replyIDs []uint
	if err := tx.Model(&models.Reply{}).Where("post_id = ?", id).Pluck("id", &replyIDs).Error; err != nil {
		return err
	}

	if len(replyIDs) > 0 {
		if err := tx.Where("reply_id IN ?", replyIDs).Delete(&models.ReplyLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reply_id IN ?", replyIDs).Delete(&models.ReplyDislike{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("post_id = ?", id).Delete(&models.Reply{}).Error; err != nil {
		return err
	}

	if len(commentIDs) > 0 {
		if err := tx.Where("comment_id IN ?", commentIDs).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id IN ?", commentIDs).Delete(&models.CommentDislike{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		return err
	}

	for _, m := range []interface{}{
		&models.Like{}, &models.SavedPost{}, &models.Repost{},
		&models.View{}, &models.Notification{},
	} {
		if err := tx.Where("post_id = ?", id).Delete(m).Error; err != nil {
			return err
		}
	}

	if err := tx.Exec("DELETE FROM post_hashtags WHERE post_id = ?", id).Error; err != nil {
		return err
	}

	return tx.Delete(&models.Post{}, id).Error
}

func replaceHashtags(tx *gorm.DB, post *models.Post, hashtagIDs []uint) error {
	var tags []models.Hashtag
	if len(hashtagIDs) > 0 {
		if err := tx.Where("id IN ?", hashtagIDs).Find(&tags).Error; err != nil {
			return err
		}
	}
	if err := tx.Model(post).Association("Hashtags").Replace(tags); err != nil {
		return err
	}
	post.Hashtags = tags
	return nil
}
