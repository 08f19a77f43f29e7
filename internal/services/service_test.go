package services

import (
	"testing"

	"github.com/klipp-app/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps the in-memory database alive
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Post{},
		&models.Music{},
		&models.Hashtag{},
		&models.Like{},
		&models.Comment{},
		&models.Reply{},
		&models.CommentLike{},
		&models.CommentDislike{},
		&models.ReplyLike{},
		&models.ReplyDislike{},
		&models.SavedPost{},
		&models.Repost{},
		&models.View{},
		&models.Notification{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, userID uint) *models.Post {
	t.Helper()
	post := &models.Post{UserID: userID, VideoID: "vid", Title: "test post"}
	require.NoError(t, db.Create(post).Error)
	return post
}

func createTestComment(t *testing.T, db *gorm.DB, postID, userID uint) *models.Comment {
	t.Helper()
	comment := &models.Comment{PostID: postID, UserID: userID, Text: "test comment"}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func createTestReply(t *testing.T, db *gorm.DB, postID, commentID, userID uint) *models.Reply {
	t.Helper()
	reply := &models.Reply{PostID: postID, CommentID: commentID, UserID: userID, Text: "test reply"}
	require.NoError(t, db.Create(reply).Error)
	return reply
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&count).Error)
	return count
}
