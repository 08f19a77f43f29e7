package handlers

import (
	"errors"
	"net/http"

	"github.com/klipp-app/backend/internal/models"
	"github.com/klipp-app/backend/internal/repositories"
	"github.com/klipp-app/backend/internal/services"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler serves profiles and profile management
type UserHandler struct {
	userRepo    repositories.UserRepository
	followRepo  repositories.FollowRepository
	postRepo    repositories.PostRepository
	projections *services.ProjectionService
}

// NewUserHandler creates a UserHandler
func NewUserHandler(userRepo repositories.UserRepository, followRepo repositories.FollowRepository, postRepo repositories.PostRepository, projections *services.ProjectionService) *UserHandler {
	return &UserHandler{userRepo: userRepo, followRepo: followRepo, postRepo: postRepo, projections: projections}
}

type userProfile struct {
	models.User
	FollowersCount int64 `json:"followers_count"`
	FollowingCount int64 `json:"following_count"`
	Following      bool  `json:"following"`
}

func (h *UserHandler) buildProfile(user *models.User, viewerID uint) (*userProfile, error) {
	profile := &userProfile{User: *user}

	var err error
	if profile.FollowersCount, err = h.followRepo.GetFollowersCount(user.ID); err != nil {
		return nil, err
	}
	if profile.FollowingCount, err = h.followRepo.GetFollowingCount(user.ID); err != nil {
		return nil, err
	}
	if viewerID != 0 && viewerID != user.ID {
		if profile.Following, err = h.followRepo.IsFollowing(viewerID, user.ID); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

// GetMe returns the authenticated user's own profile with their posts
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	user, err := h.userRepo.GetUserByID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	profile, err := h.buildProfile(user, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build profile")
	}

	limit, offset := parsePaging(c)
	posts, err := h.postRepo.ListPosts(repositories.PostFilter{UserID: userID}, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch posts")
	}
	projections, err := h.projections.BuildPostList(posts, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build posts")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{
		"profile": profile,
		"posts":   projections,
	}})
}

// GetUser returns a public profile with follower counts
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userRepo.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch user")
	}
	profile, err := h.buildProfile(user, optionalUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build profile")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": profile})
}

// GetUserPosts lists a user's posts as projections
func (h *UserHandler) GetUserPosts(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	limit, offset := parsePaging(c)
	posts, err := h.postRepo.ListPosts(repositories.PostFilter{UserID: id}, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch posts")
	}
	projections, err := h.projections.BuildPostList(posts, optionalUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build posts")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": projections})
}

// SearchUsers finds users by username or name fragment
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing search query")
	}
	users, err := h.userRepo.SearchUsers(query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to search users")
	}
	results := make([]models.UserCompact, 0, len(users))
	for i := range users {
		results = append(results, users[i].ToCompact())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": results})
}

// GetFollowers lists the users following :id
func (h *UserHandler) GetFollowers(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	users, err := h.followRepo.GetFollowers(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch followers")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": compactUsers(users)})
}

// GetFollowing lists the users :id follows
func (h *UserHandler) GetFollowing(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	users, err := h.followRepo.GetFollowing(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch following")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": compactUsers(users)})
}

func compactUsers(users []models.User) []models.UserCompact {
	compact := make([]models.UserCompact, 0, len(users))
	for i := range users {
		compact = append(compact, users[i].ToCompact())
	}
	return compact
}

// UpdateMe applies partial profile updates
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepo.GetUserByID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := h.userRepo.GetUserByUsername(req.Username); err == nil {
			return echo.NewHTTPError(http.StatusConflict, "Username already taken")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check username")
		}
		user.Username = req.Username
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarID != nil {
		user.AvatarID = *req.AvatarID
	}

	if err := h.userRepo.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update user")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": user})
}

// DeleteMe removes the account and its social edges
func (h *UserHandler) DeleteMe(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	if err := h.userRepo.DeleteUser(userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete user")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": "User deleted"})
}

// RegisterUserRoutes mounts the profile endpoints. read carries optional
// auth, private requires it.
func RegisterUserRoutes(read, private *echo.Group, h *UserHandler) {
	read.GET("/search", h.SearchUsers)
	read.GET("/:id", h.GetUser)
	read.GET("/:id/posts", h.GetUserPosts)
	read.GET("/:id/followers", h.GetFollowers)
	read.GET("/:id/following", h.GetFollowing)

	private.GET("/me", h.GetMe)
	private.PUT("/me", h.UpdateMe)
	private.DELETE("/me", h.DeleteMe)
}
