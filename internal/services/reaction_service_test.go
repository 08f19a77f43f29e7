package services

import (
	"testing"

	"github.com/klipp-app/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTogglePostLikeRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(db, NewNotifier())
	owner := createTestUser(t, db, "owner")
	liker := createTestUser(t, db, "liker")
	post := createTestPost(t, db, owner.ID)

	res, err := svc.TogglePostLike(post.ID, liker.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.True(t, res.Created)
	assert.EqualValues(t, 1, countRows(t, db, &models.Like{}, "post_id = ?", post.ID))

	res, err = svc.TogglePostLike(post.ID, liker.ID)
	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.False(t, res.Created)
	assert.EqualValues(t, 0, countRows(t, db, &models.Like{}, "post_id = ?", post.ID))
}

func TestTogglePostLikeNotifications(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(db, NewNotifier())
	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, owner.ID)

	_, err := svc.TogglePostLike(post.ID, alice.ID)
	require.NoError(t, err)
	_, err = svc.TogglePostLike(post.ID, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, countRows(t, db, &models.Notification{}, "receiver_id = ? AND type = ?", owner.ID, models.NotificationTypeLike))

	// unliking removes only alice's notification
	_, err = svc.TogglePostLike(post.ID, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, countRows(t, db, &models.Notification{}, "sender_id = ?", alice.ID))
	assert.EqualValues(t, 1, countRows(t, db, &models.Notification{}, "sender_id = ?", bob.ID))
}

func TestTogglePostLikeOwnPostNoNotification(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(db, NewNotifier())
	owner := createTestUser(t, db, "owner")
	post := createTestPost(t, db, owner.ID)

	res, err := svc.TogglePostLike(post.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.EqualValues(t, 0, countRows(t, db, &models.Notification{}, "receiver_id = ?", owner.ID))
}

func TestTogglePostLikeMissingPost(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(db, NewNotifier())
	user := createTestUser(t, db, "user")

	_, err := svc.TogglePostLike(999, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTogglePostLikeDuplicateCreateAbsorbed(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(db, NewNotifier())
	owner := createTestUser(t, db, "owner")
	liker := createTestUser(t, db, "liker")
	post := createTestPost(t, db, owner.ID)

	// sneak a competing like in between the engine's delete check and its
	// insert, the way a concurrent toggle would win the race
	raced := false
	err := db.Callback().Create().Before("gorm:create").Register("test_conflicting_like", func(tx *gorm.DB) {
		if raced {
			return
		}
		if _, ok := tx.Statement.Dest.(*models.Like); !ok {
			return
		}
		raced = true
		if err := tx.Session(&gorm.Session{NewDB: true}).Create(&models.Like{PostID: post.ID, UserID: liker.ID}).Error; err != nil {
			t.Errorf("failed to insert competing like: %v", err)
		}
	})
	require.NoError(t, err)

	// the losing insert is absorbed as already active
	res, err := svc.TogglePostLike(post.ID, liker.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.False(t, res.Created)
	assert.True(t, raced)
	assert.EqualValues(t, 1, countRows(t, db, &models.Like{}, "post_id = ? AND user_id = ?", post.ID, liker.ID))
}

func TestToggleSaveDuplicateCreateAbsorbed(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(db, NewNotifier())
	owner := createTestUser(t, db, "owner")
	saver := createTestUser(t, db, "saver")
	post := createTestPost(t, db, owner.ID)

	raced := false
	err := db.Callback().Create().Before("gorm:create").Register("test_conflicting_save", func(tx *gorm.DB) {
		if raced {
			return
		}
		if _, ok := tx.Statement.Dest.(*models.SavedPost); !ok {
			return
		}
		raced = true
		if err := tx.Session(&gorm.Session{NewDB: true}).Create(&models.SavedPost{PostID: post.ID, UserID: saver.ID}).Error; err != nil {
			t.Errorf("failed to insert competing save: %v", err)
		}
	})
	require.NoError(t, err)

	res, err := svc.ToggleSave(post.ID, saver.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.False(t, res.Created)
	assert.EqualValues(t, 1, countRows(t, db, &models.SavedPost{}, "post_id = ?", post.ID))
}

func TestCommentReactionMutualExclusion(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(db, NewNotifier())
	owner := createTestUser(t, db, "owner")
	voter := createTestUser(t, db, "voter")
	post := createTestPost(t, db, owner.ID)
	comment := createTestComment(t, db, post.ID, owner.ID)

	res, err := svc.ToggleCommentLike(comment.ID, voter.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.False(t, res.Switched)

	// dislike replaces the like in one call
	res, err = svc.ToggleCommentDislike(comment.ID, voter.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.True(t, res.Switched)
	assert.EqualValues(t, 0, countRows(t, db, &models.CommentLike{}, "comment_id = ?", comment.ID))
	assert.EqualValues(t, 1, countRows(t, db, &models.CommentDislike{}, "comment_id = ?", comment.ID))

	// switching back
	res, err = svc.ToggleCommentLike(comment.ID, voter.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.True(t, res.Switched)
	assert.EqualValues(t, 1, countRows(t, db, &models.CommentLike{}, "comment_id = ?", comment.ID))
	assert.EqualValues(t, 0, countRows(t, db, &models.CommentDislike{}, "comment_id = ?", comment.ID))

	// repeating the active reaction removes it
	res, err = svc.ToggleCommentLike(comment.ID, voter.ID)
	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.False(t, res.Switched)
	assert.EqualValues(t, 0, countRows(t, db, &models.CommentLike{}, "comment_id = ?", comment.ID))
	assert.EqualValues(t, 0, countRows(t, db, &models.CommentDislike{}, "comment_id = ?", comment.ID))
}

func TestCommentReactionsIndependentAcrossUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(db, NewNotifier())
	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, owner.ID)
	comment := createTestComment(t, db, post.ID, owner.ID)

	_, err := svc.ToggleCommentLike(comment.ID, alice.ID)
	require.NoError(t, err)
	_, err = svc.ToggleCommentDislike(comment.ID, bob.ID)
	require.NoError(t, err)

	// bob's dislike does not touch alice's like
	assert.EqualValues(t, 1, countRows(t, db, &models.CommentLike{}, "comment_id = ? AND user_id = ?", comment.ID, alice.ID))
	assert.EqualValues(t, 1, countRows(t, db, &models.CommentDislike{}, "comment_id = ? AND user_id = ?", comment.ID, bob.ID))
}

func TestReplyReactionMutualExclusion(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(db, NewNotifier())
	owner := createTestUser(t, db, "owner")
	voter := createTestUser(t, db, "voter")
	post := createTestPost(t, db, owner.ID)
	comment := createTestComment(t, db, post.ID, owner.ID)
	reply := createTestReply(t, db, post.ID, comment.ID, owner.ID)

	res, err := svc.ToggleReplyDislike(reply.ID, voter.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)

	res, err = svc.ToggleReplyLike(reply.ID, voter.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.True(t, res.Switched)
	assert.EqualValues(t, 1, countRows(t, db, &models.ReplyLike{}, "reply_id = ?", reply.ID))
	assert.EqualValues(t, 0, countRows(t, db, &models.ReplyDislike{}, "reply_id = ?", reply.ID))

	res, err = svc.ToggleReplyLike(reply.ID, voter.ID)
	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.EqualValues(t, 0, countRows(t, db, &models.ReplyLike{}, "reply_id = ?", reply.ID))
}

func TestToggleSaveRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(db, NewNotifier())
	owner := createTestUser(t, db, "owner")
	saver := createTestUser(t, db, "saver")
	post := createTestPost(t, db, owner.ID)

	res, err := svc.ToggleSave(post.ID, saver.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.True(t, res.Created)

	res, err = svc.ToggleSave(post.ID, saver.ID)
	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.EqualValues(t, 0, countRows(t, db, &models.SavedPost{}, "post_id = ?", post.ID))

	// saving never notifies anyone
	assert.EqualValues(t, 0, countRows(t, db, &models.Notification{}, "receiver_id = ?", owner.ID))
}

func TestToggleRepostKeepsText(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(db, NewNotifier())
	owner := createTestUser(t, db, "owner")
	reposter := createTestUser(t, db, "reposter")
	post := createTestPost(t, db, owner.ID)

	res, err := svc.ToggleRepost(post.ID, reposter.ID, "check this out")
	require.NoError(t, err)
	assert.True(t, res.Active)

	var repost models.Repost
	require.NoError(t, db.Where("post_id = ? AND user_id = ?", post.ID, reposter.ID).First(&repost).Error)
	assert.Equal(t, "check this out", repost.Text)

	res, err = svc.ToggleRepost(post.ID, reposter.ID, "")
	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.EqualValues(t, 0, countRows(t, db, &models.Repost{}, "post_id = ?", post.ID))
}

func TestToggleViewIsCreateOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(db, NewNotifier())
	owner := createTestUser(t, db, "owner")
	viewer := createTestUser(t, db, "viewer")
	post := createTestPost(t, db, owner.ID)

	res, err := svc.ToggleView(post.ID, viewer.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.True(t, res.Created)

	// a second view succeeds without adding or removing anything
	res, err = svc.ToggleView(post.ID, viewer.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.False(t, res.Created)
	assert.EqualValues(t, 1, countRows(t, db, &models.View{}, "post_id = ?", post.ID))
}

func TestToggleFollowRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(db, NewNotifier())
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	res, err := svc.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.EqualValues(t, 1, countRows(t, db, &models.Follow{}, "follower_id = ? AND following_id = ?", alice.ID, bob.ID))
	assert.EqualValues(t, 1, countRows(t, db, &models.Notification{}, "receiver_id = ? AND type = ?", bob.ID, models.NotificationTypeFollow))

	// unfollow removes the edge and retracts the notification
	res, err = svc.ToggleFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.EqualValues(t, 0, countRows(t, db, &models.Follow{}, "follower_id = ?", alice.ID))
	assert.EqualValues(t, 0, countRows(t, db, &models.Notification{}, "receiver_id = ?", bob.ID))
}

func TestToggleFollowSelfRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(db, NewNotifier())
	alice := createTestUser(t, db, "alice")

	_, err := svc.ToggleFollow(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)
	assert.EqualValues(t, 0, countRows(t, db, &models.Follow{}, "follower_id = ?", alice.ID))
}

func TestToggleFollowMissingTarget(t *testing.T) {
	db := newTestDB(t)
	svc := NewReactionService(db, NewNotifier())
	alice := createTestUser(t, db, "alice")

	_, err := svc.ToggleFollow(alice.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
