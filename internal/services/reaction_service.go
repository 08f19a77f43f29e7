package services

import (
	"errors"

	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// ToggleResult is the state a toggle leaves behind. Active reports whether
// the reaction exists after the call; Switched is set when a like/dislike
// pair flipped polarity in one call; Created distinguishes a fresh row from
// an already-active one so handlers can pick 201 vs 200.
type ToggleResult struct {
	Active   bool `json:"active"`
	Switched bool `json:"switched,omitempty"`
	Created  bool `json:"-"`
}

// ReactionService is the reaction engine: one idempotent toggle per surface.
// Every toggle runs inside a single transaction so the existence check, the
// delete/create and the notification side effect commit or fail together.
// A duplicate-create race loses to the composite unique index and is
// absorbed as "already active" (gorm.ErrDuplicatedKey via TranslateError).
type ReactionService struct {
	db       *gorm.DB
	notifier *Notifier
}

// NewReactionService creates a ReactionService
func NewReactionService(db *gorm.DB, notifier *Notifier) *ReactionService {
	return &ReactionService{db: db, notifier: notifier}
}

// TogglePostLike creates or removes a like on a post. Creation notifies the
// post owner; removal retracts exactly that notification.
func (s *ReactionService) TogglePostLike(postID, userID uint) (ToggleResult, error) {
	var res ToggleResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			return subjectErr(err)
		}

		del := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected > 0 {
			res = ToggleResult{Active: false}
			return s.notifier.LikeRemoved(tx, userID, post.UserID, postID)
		}

		if err := tx.Create(&models.Like{PostID: postID, UserID: userID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				res = ToggleResult{Active: true}
				return nil
			}
			return err
		}
		res = ToggleResult{Active: true, Created: true}
		return s.notifier.LikeCreated(tx, userID, post.UserID, postID)
	})
	return res, err
}

// ToggleSave creates or removes a bookmark on a post
func (s *ReactionService) ToggleSave(postID, userID uint) (ToggleResult, error) {
	var res ToggleResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requirePost(tx, postID); err != nil {
			return err
		}

		del := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.SavedPost{})
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected > 0 {
			res = ToggleResult{Active: false}
			return nil
		}

		if err := tx.Create(&models.SavedPost{PostID: postID, UserID: userID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				res = ToggleResult{Active: true}
				return nil
			}
			return err
		}
		res = ToggleResult{Active: true, Created: true}
		return nil
	})
	return res, err
}

// ToggleRepost creates or removes a repost; text only applies on creation
func (s *ReactionService) ToggleRepost(postID, userID uint, text string) (ToggleResult, error) {
	var res ToggleResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requirePost(tx, postID); err != nil {
			return err
		}

		del := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Repost{})
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected > 0 {
			res = ToggleResult{Active: false}
			return nil
		}

		if err := tx.Create(&models.Repost{PostID: postID, UserID: userID, Text: text}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				res = ToggleResult{Active: true}
				return nil
			}
			return err
		}
		res = ToggleResult{Active: true, Created: true}
		return nil
	})
	return res, err
}

// ToggleView records a watch marker. Unlike the other toggles it is
// create-only: a second call is a no-op that still reports active.
func (s *ReactionService) ToggleView(postID, userID uint) (ToggleResult, error) {
	var res ToggleResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requirePost(tx, postID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.View{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			res = ToggleResult{Active: true}
			return nil
		}

		if err := tx.Create(&models.View{PostID: postID, UserID: userID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				res = ToggleResult{Active: true}
				return nil
			}
			return err
		}
		res = ToggleResult{Active: true, Created: true}
		return nil
	})
	return res, err
}

// ToggleFollow creates or removes a follow edge. Self-follow is rejected.
// Creation notifies the target; removal retracts that notification.
func (s *ReactionService) ToggleFollow(followerID, targetID uint) (ToggleResult, error) {
	if followerID == targetID {
		return ToggleResult{}, ErrSelfFollow
	}

	var res ToggleResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var target models.User
		if err := tx.First(&target, targetID).Error; err != nil {
			return subjectErr(err)
		}

		del := tx.Where("follower_id = ? AND following_id = ?", followerID, targetID).Delete(&models.Follow{})
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected > 0 {
			res = ToggleResult{Active: false}
			return s.notifier.FollowRemoved(tx, followerID, targetID)
		}

		if err := tx.Create(&models.Follow{FollowerID: followerID, FollowingID: targetID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				res = ToggleResult{Active: true}
				return nil
			}
			return err
		}
		res = ToggleResult{Active: true, Created: true}
		return s.notifier.FollowCreated(tx, followerID, targetID)
	})
	return res, err
}

// ToggleCommentLike flips the (comment, user) reaction toward like. The
// three branches keep the like/dislike mutual exclusion without the caller
// knowing prior state:
//  1. a dislike exists: delete it, create the like  -> switched, active
//  2. a like exists:    delete it                   -> inactive
//  3. neither exists:   create the like             -> active
func (s *ReactionService) ToggleCommentLike(commentID, userID uint) (ToggleResult, error) {
	var res ToggleResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireComment(tx, commentID); err != nil {
			return err
		}

		opposite := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).Delete(&models.CommentDislike{})
		if opposite.Error != nil {
			return opposite.Error
		}
		if opposite.RowsAffected > 0 {
			if err := tx.Create(&models.CommentLike{CommentID: commentID, UserID: userID}).Error; err != nil {
				return err
			}
			res = ToggleResult{Active: true, Switched: true, Created: true}
			return nil
		}

		same := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).Delete(&models.CommentLike{})
		if same.Error != nil {
			return same.Error
		}
		if same.RowsAffected > 0 {
			res = ToggleResult{Active: false}
			return nil
		}

		if err := tx.Create(&models.CommentLike{CommentID: commentID, UserID: userID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				res = ToggleResult{Active: true}
				return nil
			}
			return err
		}
		res = ToggleResult{Active: true, Created: true}
		return nil
	})
	return res, err
}

// ToggleCommentDislike mirrors ToggleCommentLike toward dislike
func (s *ReactionService) ToggleCommentDislike(commentID, userID uint) (ToggleResult, error) {
	var res ToggleResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireComment(tx, commentID); err != nil {
			return err
		}

		opposite := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).Delete(&models.CommentLike{})
		if opposite.Error != nil {
			return opposite.Error
		}
		if opposite.RowsAffected > 0 {
			if err := tx.Create(&models.CommentDislike{CommentID: commentID, UserID: userID}).Error; err != nil {
				return err
			}
			res = ToggleResult{Active: true, Switched: true, Created: true}
			return nil
		}

		same := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).Delete(&models.CommentDislike{})
		if same.Error != nil {
			return same.Error
		}
		if same.RowsAffected > 0 {
			res = ToggleResult{Active: false}
			return nil
		}

		if err := tx.Create(&models.CommentDislike{CommentID: commentID, UserID: userID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				res = ToggleResult{Active: true}
				return nil
			}
			return err
		}
		res = ToggleResult{Active: true, Created: true}
		return nil
	})
	return res, err
}

// ToggleReplyLike applies the three-branch flip to a reply's like/dislike pair
func (s *ReactionService) ToggleReplyLike(replyID, userID uint) (ToggleResult, error) {
	var res ToggleResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireReply(tx, replyID); err != nil {
			return err
		}

		opposite := tx.Where("reply_id = ? AND user_id = ?", replyID, userID).Delete(&models.ReplyDislike{})
		if opposite.Error != nil {
			return opposite.Error
		}
		if opposite.RowsAffected > 0 {
			if err := tx.Create(&models.ReplyLike{ReplyID: replyID, UserID: userID}).Error; err != nil {
				return err
			}
			res = ToggleResult{Active: true, Switched: true, Created: true}
			return nil
		}

		same := tx.Where("reply_id = ? AND user_id = ?", replyID, userID).Delete(&models.ReplyLike{})
		if same.Error != nil {
			return same.Error
		}
		if same.RowsAffected > 0 {
			res = ToggleResult{Active: false}
			return nil
		}

		if err := tx.Create(&models.ReplyLike{ReplyID: replyID, UserID: userID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				res = ToggleResult{Active: true}
				return nil
			}
			return err
		}
		res = ToggleResult{Active: true, Created: true}
		return nil
	})
	return res, err
}

// ToggleReplyDislike mirrors ToggleReplyLike toward dislike
func (s *ReactionService) ToggleReplyDislike(replyID, userID uint) (ToggleResult, error) {
	var res ToggleResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireReply(tx, replyID); err != nil {
			return err
		}

		opposite := tx.Where("reply_id = ? AND user_id = ?", replyID, userID).Delete(&models.ReplyLike{})
		if opposite.Error != nil {
			return opposite.Error
		}
		if opposite.RowsAffected > 0 {
			if err := tx.Create(&models.ReplyDislike{ReplyID: replyID, UserID: userID}).Error; err != nil {
				return err
			}
			res = ToggleResult{Active: true, Switched: true, Created: true}
			return nil
		}

		same := tx.Where("reply_id = ? AND user_id = ?", replyID, userID).Delete(&models.ReplyDislike{})
		if same.Error != nil {
			return same.Error
		}
		if same.RowsAffected > 0 {
			res = ToggleResult{Active: false}
			return nil
		}

		if err := tx.Create(&models.ReplyDislike{ReplyID: replyID, UserID: userID}).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				res = ToggleResult{Active: true}
				return nil
			}
			return err
		}
		res = ToggleResult{Active: true, Created: true}
		return nil
	})
	return res, err
}

func requirePost(tx *gorm.DB, postID uint) error {
	var post models.Post
	return subjectErr(tx.Select("id").First(&post, postID).Error)
}

func requireComment(tx *gorm.DB, commentID uint) error {
	var comment models.Comment
	return subjectErr(tx.Select("id").First(&comment, commentID).Error)
}

func requireReply(tx *gorm.DB, replyID uint) error {
	var reply models.Reply
	return subjectErr(tx.Select("id").First(&reply, replyID).Error)
}

func subjectErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
