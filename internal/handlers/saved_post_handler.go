package handlers

import (
	"github.com/klipp-app/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// SavedPostHandler serves the bookmark toggle
type SavedPostHandler struct {
	reactions *services.ReactionService
}

// NewSavedPostHandler creates a SavedPostHandler
func NewSavedPostHandler(reactions *services.ReactionService) *SavedPostHandler {
	return &SavedPostHandler{reactions: reactions}
}

// ToggleSave flips the caller's bookmark on a post
func (h *SavedPostHandler) ToggleSave(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	res, err := h.reactions.ToggleSave(postID, userID)
	if err != nil {
		return serviceError(err)
	}
	return toggleResponse(c, res)
}

// RegisterSavedPostRoutes mounts the save endpoint under posts
func RegisterSavedPostRoutes(postsPrivate *echo.Group, h *SavedPostHandler) {
	postsPrivate.POST("/:id/save", h.ToggleSave)
}
