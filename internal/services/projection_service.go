package services

import (
	"time"

	"github.com/klipp-app/backend/internal/models"
	"github.com/klipp-app/backend/internal/repositories"
)

// PostProjection is a post decorated with aggregate counts and the viewer's
// own reaction flags. Flags stay false for anonymous viewers (viewerID 0).
type PostProjection struct {
	models.Post
	User          models.UserCompact  `json:"user"`
	LikesCount    int64               `json:"likes_count"`
	CommentsCount int64               `json:"comments_count"`
	SavesCount    int64               `json:"saves_count"`
	RepostsCount  int64               `json:"reposts_count"`
	ViewsCount    int64               `json:"views_count"`
	Liked         bool                `json:"liked"`
	Saved         bool                `json:"saved"`
	Reposted      bool                `json:"reposted"`
	Viewed        bool                `json:"viewed"`
	Comments      []CommentProjection `json:"comments,omitempty"`
}

// CommentProjection carries a comment, its like/dislike tallies, the
// viewer's flags and the replies nested one level deep in creation order.
type CommentProjection struct {
	ID            uint               `json:"id"`
	PostID        uint               `json:"post_id"`
	Text          string             `json:"text"`
	User          models.UserCompact `json:"user"`
	LikesCount    int64              `json:"likes_count"`
	DislikesCount int64              `json:"dislikes_count"`
	Liked         bool               `json:"liked"`
	Disliked      bool               `json:"disliked"`
	Replies       []ReplyProjection  `json:"replies"`
	CreatedAt     time.Time          `json:"created_at"`
}

// ReplyProjection is the reply counterpart of CommentProjection. Replies do
// not nest further.
type ReplyProjection struct {
	ID            uint               `json:"id"`
	CommentID     uint               `json:"comment_id"`
	Text          string             `json:"text"`
	User          models.UserCompact `json:"user"`
	LikesCount    int64              `json:"likes_count"`
	DislikesCount int64              `json:"dislikes_count"`
	Liked         bool               `json:"liked"`
	Disliked      bool               `json:"disliked"`
	CreatedAt     time.Time          `json:"created_at"`
}

// ProjectionService assembles read views from the per-surface repositories.
// It never mutates state.
type ProjectionService struct {
	users            repositories.UserRepository
	likes            repositories.LikeRepository
	saves            repositories.SavedPostRepository
	reposts          repositories.RepostRepository
	views            repositories.ViewRepository
	comments         repositories.CommentRepository
	replies          repositories.ReplyRepository
	commentReactions repositories.CommentReactionRepository
	replyReactions   repositories.ReplyReactionRepository
}

// NewProjectionService creates a ProjectionService
func NewProjectionService(
	users repositories.UserRepository,
	likes repositories.LikeRepository,
	saves repositories.SavedPostRepository,
	reposts repositories.RepostRepository,
	views repositories.ViewRepository,
	comments repositories.CommentRepository,
	replies repositories.ReplyRepository,
	commentReactions repositories.CommentReactionRepository,
	replyReactions repositories.ReplyReactionRepository,
) *ProjectionService {
	return &ProjectionService{
		users:            users,
		likes:            likes,
		saves:            saves,
		reposts:          reposts,
		views:            views,
		comments:         comments,
		replies:          replies,
		commentReactions: commentReactions,
		replyReactions:   replyReactions,
	}
}

// BuildPost assembles the full detail view of a post, comments included
func (s *ProjectionService) BuildPost(post *models.Post, viewerID uint) (*PostProjection, error) {
	proj, err := s.buildPostSummary(post, viewerID)
	if err != nil {
		return nil, err
	}
	comments, err := s.BuildComments(post.ID, viewerID)
	if err != nil {
		return nil, err
	}
	proj.Comments = comments
	return proj, nil
}

// BuildPostList assembles summary views without the comment tree
func (s *ProjectionService) BuildPostList(posts []models.Post, viewerID uint) ([]PostProjection, error) {
	projections := make([]PostProjection, 0, len(posts))
	for i := range posts {
		proj, err := s.buildPostSummary(&posts[i], viewerID)
		if err != nil {
			return nil, err
		}
		projections = append(projections, *proj)
	}
	return projections, nil
}

func (s *ProjectionService) buildPostSummary(post *models.Post, viewerID uint) (*PostProjection, error) {
	author, err := s.users.GetUserByID(post.UserID)
	if err != nil {
		return nil, err
	}

	proj := &PostProjection{Post: *post, User: author.ToCompact()}

	if proj.LikesCount, err = s.likes.GetLikesCountByPostID(post.ID); err != nil {
		return nil, err
	}
	if proj.SavesCount, err = s.saves.GetSavesCountByPostID(post.ID); err != nil {
		return nil, err
	}
	if proj.RepostsCount, err = s.reposts.GetRepostsCountByPostID(post.ID); err != nil {
		return nil, err
	}
	if proj.ViewsCount, err = s.views.GetViewsCountByPostID(post.ID); err != nil {
		return nil, err
	}
	comments, err := s.comments.GetCommentsByPostID(post.ID)
	if err != nil {
		return nil, err
	}
	proj.CommentsCount = int64(len(comments))

	if viewerID == 0 {
		return proj, nil
	}
	if proj.Liked, err = s.likes.HasUserLikedPost(post.ID, viewerID); err != nil {
		return nil, err
	}
	if proj.Saved, err = s.saves.IsPostSaved(viewerID, post.ID); err != nil {
		return nil, err
	}
	if proj.Reposted, err = s.reposts.HasUserReposted(post.ID, viewerID); err != nil {
		return nil, err
	}
	if proj.Viewed, err = s.views.HasUserViewedPost(post.ID, viewerID); err != nil {
		return nil, err
	}
	return proj, nil
}

// BuildComments assembles the comment tree of a post in creation order,
// each comment carrying its replies
func (s *ProjectionService) BuildComments(postID, viewerID uint) ([]CommentProjection, error) {
	comments, err := s.comments.GetCommentsByPostID(postID)
	if err != nil {
		return nil, err
	}

	projections := make([]CommentProjection, 0, len(comments))
	for i := range comments {
		proj, err := s.buildComment(&comments[i], viewerID)
		if err != nil {
			return nil, err
		}
		projections = append(projections, *proj)
	}
	return projections, nil
}

func (s *ProjectionService) buildComment(comment *models.Comment, viewerID uint) (*CommentProjection, error) {
	author, err := s.users.GetUserByID(comment.UserID)
	if err != nil {
		return nil, err
	}

	proj := &CommentProjection{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Text:      comment.Text,
		User:      author.ToCompact(),
		CreatedAt: comment.CreatedAt,
	}

	if proj.LikesCount, err = s.commentReactions.GetLikesCount(comment.ID); err != nil {
		return nil, err
	}
	if proj.DislikesCount, err = s.commentReactions.GetDislikesCount(comment.ID); err != nil {
		return nil, err
	}
	if viewerID != 0 {
		if proj.Liked, err = s.commentReactions.HasUserLikedComment(comment.ID, viewerID); err != nil {
			return nil, err
		}
		if proj.Disliked, err = s.commentReactions.HasUserDislikedComment(comment.ID, viewerID); err != nil {
			return nil, err
		}
	}

	replies, err := s.replies.GetRepliesByCommentID(comment.ID)
	if err != nil {
		return nil, err
	}
	proj.Replies = make([]ReplyProjection, 0, len(replies))
	for i := range replies {
		rp, err := s.BuildReply(&replies[i], viewerID)
		if err != nil {
			return nil, err
		}
		proj.Replies = append(proj.Replies, *rp)
	}
	return proj, nil
}

// BuildReply assembles the view of a single reply
func (s *ProjectionService) BuildReply(reply *models.Reply, viewerID uint) (*ReplyProjection, error) {
	author, err := s.users.GetUserByID(reply.UserID)
	if err != nil {
		return nil, err
	}

	proj := &ReplyProjection{
		ID:        reply.ID,
		CommentID: reply.CommentID,
		Text:      reply.Text,
		User:      author.ToCompact(),
		CreatedAt: reply.CreatedAt,
	}

	if proj.LikesCount, err = s.replyReactions.GetLikesCount(reply.ID); err != nil {
		return nil, err
	}
	if proj.DislikesCount, err = s.replyReactions.GetDislikesCount(reply.ID); err != nil {
		return nil, err
	}
	if viewerID != 0 {
		if proj.Liked, err = s.replyReactions.HasUserLikedReply(reply.ID, viewerID); err != nil {
			return nil, err
		}
		if proj.Disliked, err = s.replyReactions.HasUserDislikedReply(reply.ID, viewerID); err != nil {
			return nil, err
		}
	}
	return proj, nil
}
