package handlers

import (
	"github.com/klipp-app/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// ViewHandler records watch markers
type ViewHandler struct {
	reactions *services.ReactionService
}

// NewViewHandler creates a ViewHandler
func NewViewHandler(reactions *services.ReactionService) *ViewHandler {
	return &ViewHandler{reactions: reactions}
}

// RecordView marks a post as viewed by the caller. Repeat calls succeed
// without creating another marker.
func (h *ViewHandler) RecordView(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	res, err := h.reactions.ToggleView(postID, userID)
	if err != nil {
		return serviceError(err)
	}
	return toggleResponse(c, res)
}

// RegisterViewRoutes mounts the view endpoint under posts
func RegisterViewRoutes(postsPrivate *echo.Group, h *ViewHandler) {
	postsPrivate.POST("/:id/view", h.RecordView)
}
