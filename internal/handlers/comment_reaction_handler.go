package handlers

import (
	"github.com/klipp-app/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentReactionHandler serves the comment like and dislike toggles
type CommentReactionHandler struct {
	reactions *services.ReactionService
}

// NewCommentReactionHandler creates a CommentReactionHandler
func NewCommentReactionHandler(reactions *services.ReactionService) *CommentReactionHandler {
	return &CommentReactionHandler{reactions: reactions}
}

// ToggleLike flips the caller's reaction toward like. An existing dislike
// is replaced in the same call.
func (h *CommentReactionHandler) ToggleLike(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	res, err := h.reactions.ToggleCommentLike(commentID, userID)
	if err != nil {
		return serviceError(err)
	}
	return toggleResponse(c, res)
}

// ToggleDislike flips the caller's reaction toward dislike
func (h *CommentReactionHandler) ToggleDislike(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	res, err := h.reactions.ToggleCommentDislike(commentID, userID)
	if err != nil {
		return serviceError(err)
	}
	return toggleResponse(c, res)
}

// RegisterCommentReactionRoutes mounts the toggles under comments
func RegisterCommentReactionRoutes(commentsPrivate *echo.Group, h *CommentReactionHandler) {
	commentsPrivate.POST("/:id/likes", h.ToggleLike)
	commentsPrivate.POST("/:id/dislikes", h.ToggleDislike)
}
