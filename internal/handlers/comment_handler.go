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

// CommentHandler serves comment creation, edits and listing
type CommentHandler struct {
	commentRepo repositories.CommentRepository
	content     *services.ContentService
	projections *services.ProjectionService
}

// NewCommentHandler creates a CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, content *services.ContentService, projections *services.ProjectionService) *CommentHandler {
	return &CommentHandler{commentRepo: commentRepo, content: content, projections: projections}
}

// CreateComment adds a comment to a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.content.CreateComment(postID, userID, req.Text)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": comment})
}

// GetComments lists a post's comments with replies nested
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	comments, err := h.projections.BuildComments(postID, optionalUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch comments")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": comments})
}

// UpdateComment edits a comment, author only
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentRepo.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch comment")
	}
	if comment.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the comment author")
	}

	comment.Text = req.Text
	if err := h.commentRepo.UpdateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update comment")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": comment})
}

// DeleteComment removes a comment and its replies, author only
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	comment, err := h.commentRepo.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch comment")
	}
	if comment.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the comment author")
	}

	if err := h.commentRepo.DeleteComment(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete comment")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": "Comment deleted"})
}

// RegisterCommentRoutes mounts comment endpoints under posts and comments
func RegisterCommentRoutes(postsRead, postsPrivate, commentsPrivate *echo.Group, h *CommentHandler) {
	postsRead.GET("/:id/comments", h.GetComments)
	postsPrivate.POST("/:id/comments", h.CreateComment)
	commentsPrivate.PUT("/:id", h.UpdateComment)
	commentsPrivate.DELETE("/:id", h.DeleteComment)
}
