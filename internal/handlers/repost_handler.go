package handlers

import (
	"net/http"

	"github.com/klipp-app/backend/internal/models"
	"github.com/klipp-app/backend/internal/repositories"
	"github.com/klipp-app/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// RepostHandler serves the repost toggle and a user's repost list
type RepostHandler struct {
	repostRepo repositories.RepostRepository
	reactions  *services.ReactionService
}

// NewRepostHandler creates a RepostHandler
func NewRepostHandler(repostRepo repositories.RepostRepository, reactions *services.ReactionService) *RepostHandler {
	return &RepostHandler{repostRepo: repostRepo, reactions: reactions}
}

// ToggleRepost flips the caller's repost on a post. The optional body text
// is kept on creation and ignored on removal.
func (h *RepostHandler) ToggleRepost(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.RepostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.reactions.ToggleRepost(postID, userID, req.Text)
	if err != nil {
		return serviceError(err)
	}
	return toggleResponse(c, res)
}

// GetUserReposts lists a user's reposts, newest first
func (h *RepostHandler) GetUserReposts(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	reposts, err := h.repostRepo.GetRepostsByUser(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch reposts")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": reposts})
}

// RegisterRepostRoutes mounts the repost endpoints
func RegisterRepostRoutes(usersRead, postsPrivate *echo.Group, h *RepostHandler) {
	usersRead.GET("/:id/reposts", h.GetUserReposts)
	postsPrivate.POST("/:id/repost", h.ToggleRepost)
}
