package handlers

import (
	"github.com/klipp-app/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler serves the follow toggle
type FollowHandler struct {
	reactions *services.ReactionService
}

// NewFollowHandler creates a FollowHandler
func NewFollowHandler(reactions *services.ReactionService) *FollowHandler {
	return &FollowHandler{reactions: reactions}
}

// ToggleFollow flips the caller's follow edge toward :id
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	res, err := h.reactions.ToggleFollow(userID, targetID)
	if err != nil {
		return serviceError(err)
	}
	return toggleResponse(c, res)
}

// RegisterFollowRoutes mounts the follow endpoint under users
func RegisterFollowRoutes(usersPrivate *echo.Group, h *FollowHandler) {
	usersPrivate.POST("/:id/follow", h.ToggleFollow)
}
