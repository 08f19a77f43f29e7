package services

import (
	"testing"

	"github.com/klipp-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentNotifiesPostOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db, NewNotifier())
	owner := createTestUser(t, db, "owner")
	commenter := createTestUser(t, db, "commenter")
	post := createTestPost(t, db, owner.ID)

	comment, err := svc.CreateComment(post.ID, commenter.ID, "nice video")
	require.NoError(t, err)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, "nice video", comment.Text)

	var notification models.Notification
	require.NoError(t, db.Where("type = ?", models.NotificationTypeComment).First(&notification).Error)
	assert.Equal(t, commenter.ID, notification.SenderID)
	assert.Equal(t, owner.ID, notification.ReceiverID)
	require.NotNil(t, notification.CommentID)
	assert.Equal(t, comment.ID, *notification.CommentID)
}

func TestCreateCommentOwnPostNoNotification(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db, NewNotifier())
	owner := createTestUser(t, db, "owner")
	post := createTestPost(t, db, owner.ID)

	_, err := svc.CreateComment(post.ID, owner.ID, "my own post")
	require.NoError(t, err)
	assert.EqualValues(t, 0, countRows(t, db, &models.Notification{}, "receiver_id = ?", owner.ID))
}

func TestCreateCommentMissingPost(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db, NewNotifier())
	user := createTestUser(t, db, "user")

	_, err := svc.CreateComment(999, user.ID, "hello")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 0, countRows(t, db, &models.Comment{}, "user_id = ?", user.ID))
}

func TestCreateReplyNotifiesCommentOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db, NewNotifier())
	postOwner := createTestUser(t, db, "postowner")
	commenter := createTestUser(t, db, "commenter")
	replier := createTestUser(t, db, "replier")
	post := createTestPost(t, db, postOwner.ID)
	comment := createTestComment(t, db, post.ID, commenter.ID)

	reply, err := svc.CreateReply(comment.ID, replier.ID, "agreed")
	require.NoError(t, err)
	assert.Equal(t, comment.ID, reply.CommentID)
	assert.Equal(t, post.ID, reply.PostID)

	// the comment owner gets the notification, not the post owner
	var notification models.Notification
	require.NoError(t, db.Where("type = ?", models.NotificationTypeReply).First(&notification).Error)
	assert.Equal(t, replier.ID, notification.SenderID)
	assert.Equal(t, commenter.ID, notification.ReceiverID)
	assert.EqualValues(t, 0, countRows(t, db, &models.Notification{}, "receiver_id = ?", postOwner.ID))
}

func TestCreateReplyMissingComment(t *testing.T) {
	db := newTestDB(t)
	svc := NewContentService(db, NewNotifier())
	user := createTestUser(t, db, "user")

	_, err := svc.CreateReply(999, user.ID, "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}
