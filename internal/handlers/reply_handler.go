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

// ReplyHandler serves reply creation, edits and listing
type ReplyHandler struct {
	replyRepo   repositories.ReplyRepository
	content     *services.ContentService
	projections *services.ProjectionService
}

// NewReplyHandler creates a ReplyHandler
func NewReplyHandler(replyRepo repositories.ReplyRepository, content *services.ContentService, projections *services.ProjectionService) *ReplyHandler {
	return &ReplyHandler{replyRepo: replyRepo, content: content, projections: projections}
}

// CreateReply adds a reply under a comment
func (h *ReplyHandler) CreateReply(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reply, err := h.content.CreateReply(commentID, userID, req.Text)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": reply})
}

// GetReplies lists a comment's replies in creation order
func (h *ReplyHandler) GetReplies(c echo.Context) error {
	commentID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	replies, err := h.replyRepo.GetRepliesByCommentID(commentID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch replies")
	}

	viewerID := optionalUserID(c)
	projections := make([]services.ReplyProjection, 0, len(replies))
	for i := range replies {
		proj, err := h.projections.BuildReply(&replies[i], viewerID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build replies")
		}
		projections = append(projections, *proj)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": projections})
}

// UpdateReply edits a reply, author only
func (h *ReplyHandler) UpdateReply(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reply, err := h.replyRepo.GetReplyByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Reply not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch reply")
	}
	if reply.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the reply author")
	}

	reply.Text = req.Text
	if err := h.replyRepo.UpdateReply(reply); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update reply")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": reply})
}

// DeleteReply removes a reply, author only
func (h *ReplyHandler) DeleteReply(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	reply, err := h.replyRepo.GetReplyByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Reply not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch reply")
	}
	if reply.UserID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the reply author")
	}

	if err := h.replyRepo.DeleteReply(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete reply")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": "Reply deleted"})
}

// RegisterReplyRoutes mounts reply endpoints under comments and replies
func RegisterReplyRoutes(commentsRead, commentsPrivate, repliesPrivate *echo.Group, h *ReplyHandler) {
	commentsRead.GET("/:id/replies", h.GetReplies)
	commentsPrivate.POST("/:id/replies", h.CreateReply)
	repliesPrivate.PUT("/:id", h.UpdateReply)
	repliesPrivate.DELETE("/:id", h.DeleteReply)
}
