package handlers

import (
	"github.com/klipp-app/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// ReplyReactionHandler serves the reply like and dislike toggles
type ReplyReactionHandler struct {
	reactions *services.ReactionService
}

// NewReplyReactionHandler creates a ReplyReactionHandler
func NewReplyReactionHandler(reactions *services.ReactionService) *ReplyReactionHandler {
	return &ReplyReactionHandler{reactions: reactions}
}

// ToggleLike flips the caller's reaction toward like
func (h *ReplyReactionHandler) ToggleLike(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	replyID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	res, err := h.reactions.ToggleReplyLike(replyID, userID)
	if err != nil {
		return serviceError(err)
	}
	return toggleResponse(c, res)
}

// ToggleDislike flips the caller's reaction toward dislike
func (h *ReplyReactionHandler) ToggleDislike(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	replyID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	res, err := h.reactions.ToggleReplyDislike(replyID, userID)
	if err != nil {
		return serviceError(err)
	}
	return toggleResponse(c, res)
}

// RegisterReplyReactionRoutes mounts the toggles under replies
func RegisterReplyReactionRoutes(repliesPrivate *echo.Group, h *ReplyReactionHandler) {
	repliesPrivate.POST("/:id/likes", h.ToggleLike)
	repliesPrivate.POST("/:id/dislikes", h.ToggleDislike)
}
