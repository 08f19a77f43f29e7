package services

import (
	"testing"

	"github.com/klipp-app/backend/internal/models"
	"github.com/klipp-app/backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProjectionService(db *gorm.DB) *ProjectionService {
	return NewProjectionService(
		repositories.NewPostgresUserRepository(db),
		repositories.NewPostgresLikeRepository(db),
		repositories.NewPostgresSavedPostRepository(db),
		repositories.NewPostgresRepostRepository(db),
		repositories.NewPostgresViewRepository(db),
		repositories.NewPostgresCommentRepository(db),
		repositories.NewPostgresReplyRepository(db),
		repositories.NewPostgresCommentReactionRepository(db),
		repositories.NewPostgresReplyReactionRepository(db),
	)
}

func TestBuildPostCountsAndFlags(t *testing.T) {
	db := newTestDB(t)
	reactions := NewReactionService(db, NewNotifier())
	content := NewContentService(db, NewNotifier())
	projections := newProjectionService(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, owner.ID)

	_, err := reactions.TogglePostLike(post.ID, alice.ID)
	require.NoError(t, err)
	_, err = reactions.TogglePostLike(post.ID, bob.ID)
	require.NoError(t, err)
	_, err = reactions.ToggleSave(post.ID, alice.ID)
	require.NoError(t, err)
	_, err = reactions.ToggleView(post.ID, bob.ID)
	require.NoError(t, err)
	_, err = content.CreateComment(post.ID, bob.ID, "first")
	require.NoError(t, err)

	proj, err := projections.BuildPost(post, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, proj.LikesCount)
	assert.EqualValues(t, 1, proj.SavesCount)
	assert.EqualValues(t, 0, proj.RepostsCount)
	assert.EqualValues(t, 1, proj.ViewsCount)
	assert.EqualValues(t, 1, proj.CommentsCount)
	assert.True(t, proj.Liked)
	assert.True(t, proj.Saved)
	assert.False(t, proj.Reposted)
	assert.False(t, proj.Viewed) // bob viewed it, alice did not
	assert.Equal(t, owner.Username, proj.User.Username)
	require.Len(t, proj.Comments, 1)
	assert.Equal(t, "first", proj.Comments[0].Text)
}

func TestBuildPostAnonymousFlagsFalse(t *testing.T) {
	db := newTestDB(t)
	reactions := NewReactionService(db, NewNotifier())
	projections := newProjectionService(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, owner.ID)

	_, err := reactions.TogglePostLike(post.ID, alice.ID)
	require.NoError(t, err)
	_, err = reactions.ToggleSave(post.ID, alice.ID)
	require.NoError(t, err)

	proj, err := projections.BuildPost(post, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, proj.LikesCount)
	assert.False(t, proj.Liked)
	assert.False(t, proj.Saved)
	assert.False(t, proj.Reposted)
}

func TestBuildCommentsNestedRepliesInOrder(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db, NewNotifier())
	reactions := NewReactionService(db, NewNotifier())
	projections := newProjectionService(db)

	owner := createTestUser(t, db, "owner")
	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, owner.ID)

	comment, err := content.CreateComment(post.ID, alice.ID, "top level")
	require.NoError(t, err)
	first, err := content.CreateReply(comment.ID, owner.ID, "first reply")
	require.NoError(t, err)
	second, err := content.CreateReply(comment.ID, alice.ID, "second reply")
	require.NoError(t, err)

	_, err = reactions.ToggleCommentLike(comment.ID, owner.ID)
	require.NoError(t, err)
	_, err = reactions.ToggleReplyDislike(first.ID, alice.ID)
	require.NoError(t, err)

	comments, err := projections.BuildComments(post.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	top := comments[0]
	assert.EqualValues(t, 1, top.LikesCount)
	assert.False(t, top.Liked) // owner liked it, not alice
	require.Len(t, top.Replies, 2)
	assert.Equal(t, first.ID, top.Replies[0].ID)
	assert.Equal(t, second.ID, top.Replies[1].ID)
	assert.EqualValues(t, 1, top.Replies[0].DislikesCount)
	assert.True(t, top.Replies[0].Disliked)
	assert.False(t, top.Replies[1].Disliked)
}

func TestBuildPostListSkipsCommentTree(t *testing.T) {
	db := newTestDB(t)
	content := NewContentService(db, NewNotifier())
	projections := newProjectionService(db)

	owner := createTestUser(t, db, "owner")
	post := createTestPost(t, db, owner.ID)
	_, err := content.CreateComment(post.ID, owner.ID, "hello")
	require.NoError(t, err)

	post2 := createTestPost(t, db, owner.ID)

	list, err := projections.BuildPostList([]models.Post{*post, *post2}, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.EqualValues(t, 1, list[0].CommentsCount)
	assert.Nil(t, list[0].Comments)
	assert.EqualValues(t, 0, list[1].CommentsCount)
}
