package handlers

import (
	"net/http"

	"github.com/klipp-app/backend/internal/models"
	"github.com/klipp-app/backend/internal/repositories"
	"github.com/klipp-app/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler serves the post like toggle and the likers list
type LikeHandler struct {
	likeRepo  repositories.LikeRepository
	userRepo  repositories.UserRepository
	reactions *services.ReactionService
}

// NewLikeHandler creates a LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, userRepo repositories.UserRepository, reactions *services.ReactionService) *LikeHandler {
	return &LikeHandler{likeRepo: likeRepo, userRepo: userRepo, reactions: reactions}
}

// ToggleLike flips the caller's like on a post
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	res, err := h.reactions.TogglePostLike(postID, userID)
	if err != nil {
		return serviceError(err)
	}
	return toggleResponse(c, res)
}

// GetLikes lists the users who liked a post
func (h *LikeHandler) GetLikes(c echo.Context) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	likes, err := h.likeRepo.GetLikesByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch likes")
	}

	users := make([]models.UserCompact, 0, len(likes))
	for _, like := range likes {
		user, err := h.userRepo.GetUserByID(like.UserID)
		if err != nil {
			continue
		}
		users = append(users, user.ToCompact())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": users})
}

// RegisterLikeRoutes mounts the like endpoints under posts
func RegisterLikeRoutes(postsRead, postsPrivate *echo.Group, h *LikeHandler) {
	postsRead.GET("/:id/likes", h.GetLikes)
	postsPrivate.POST("/:id/likes", h.ToggleLike)
}
