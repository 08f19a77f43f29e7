package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/klipp-app/backend/internal/models"
	"github.com/klipp-app/backend/internal/repositories"
	"github.com/klipp-app/backend/internal/services"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// PostHandler serves post CRUD and feeds
type PostHandler struct {
	postRepo    repositories.PostRepository
	savedRepo   repositories.SavedPostRepository
	projections *services.ProjectionService
}

// NewPostHandler creates a PostHandler
func NewPostHandler(postRepo repositories.PostRepository, savedRepo repositories.SavedPostRepository, projections *services.ProjectionService) *PostHandler {
	return &PostHandler{postRepo: postRepo, savedRepo: savedRepo, projections: projections}
}

// CreatePost publishes a post referencing an already uploaded video
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		UserID:      userID,
		VideoID:     req.VideoID,
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		MusicID:     req.MusicID,
	}
	if err := h.postRepo.CreatePost(post, req.HashtagIDs); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create post")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": post})
}

// GetPost returns the full detail view, comments and replies included
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	post, err := h.postRepo.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch post")
	}
	projection, err := h.projections.BuildPost(post, optionalUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build post")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": projection})
}

// ListPosts returns the feed, newest first, with optional filters:
// ?user_id= ?hashtag_id= ?music_id= ?search= ?page= ?limit=
func (h *PostHandler) ListPosts(c echo.Context) error {
	filter := repositories.PostFilter{Search: c.QueryParam("search")}
	if v, err := strconv.ParseUint(c.QueryParam("user_id"), 10, 32); err == nil {
		filter.UserID = uint(v)
	}
	if v, err := strconv.ParseUint(c.QueryParam("hashtag_id"), 10, 32); err == nil {
		filter.HashtagID = uint(v)
	}
	if v, err := strconv.ParseUint(c.QueryParam("music_id"), 10, 32); err == nil {
		filter.MusicID = uint(v)
	}

	limit, offset := parsePaging(c)
	posts, err := h.postRepo.ListPosts(filter, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch posts")
	}
	projections, err := h.projections.BuildPostList(posts, optionalUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build posts")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": projections})
}

// UpdatePost applies partial edits, owner only
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepo.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch post")
	}
	if post.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the post owner")
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Genre != nil {
		post.Genre = *req.Genre
	}
	if req.MusicID != nil {
		post.MusicID = req.MusicID
	}

	if err := h.postRepo.UpdatePost(post, req.HashtagIDs); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update post")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": post})
}

// DeletePost removes a post and everything hanging off it, owner only
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepo.GetPostByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch post")
	}
	if post.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the post owner")
	}

	if err := h.postRepo.DeletePost(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete post")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": "Post deleted"})
}

// GetSavedPosts lists the authenticated user's bookmarks
func (h *PostHandler) GetSavedPosts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	saved, err := h.savedRepo.GetSavedPostsByUser(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch saved posts")
	}

	posts := make([]models.Post, 0, len(saved))
	for _, s := range saved {
		post, err := h.postRepo.GetPostByID(s.PostID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch saved posts")
		}
		posts = append(posts, *post)
	}

	projections, err := h.projections.BuildPostList(posts, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build posts")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": projections})
}

// RegisterPostRoutes mounts the post endpoints
func RegisterPostRoutes(read, private *echo.Group, h *PostHandler) {
	read.GET("", h.ListPosts)
	read.GET("/:id", h.GetPost)

	private.POST("", h.CreatePost)
	private.GET("/saved", h.GetSavedPosts)
	private.PUT("/:id", h.UpdatePost)
	private.DELETE("/:id", h.DeletePost)
}
