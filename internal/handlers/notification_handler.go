package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/klipp-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// NotificationHandler serves the notification inbox
type NotificationHandler struct {
	notificationRepo repositories.NotificationRepository
}

// NewNotificationHandler creates a NotificationHandler
func NewNotificationHandler(notificationRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepo: notificationRepo}
}

// GetNotifications returns the caller's notifications, newest first, paged
// via ?page= and ?limit=
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notifications, total, err := h.notificationRepo.GetByReceiverID(userID, page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch notifications")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{
		"notifications": notifications,
		"total":         total,
		"page":          page,
		"limit":         limit,
	}})
}

// GetUnreadCount returns the caller's unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	count, err := h.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to count notifications")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"unread": count}})
}

// MarkAsRead marks one of the caller's notifications as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	notification, err := h.notificationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch notification")
	}
	if notification.ReceiverID != userID {
		return echo.NewHTTPError(http.StatusForbidden, "Not the notification recipient")
	}

	if err := h.notificationRepo.MarkAsRead(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to mark as read")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": "Notification marked as read"})
}

// MarkAllAsRead marks every notification of the caller as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return err
	}
	if err := h.notificationRepo.MarkAllAsRead(userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to mark all as read")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": "All notifications marked as read"})
}

// RegisterNotificationRoutes mounts the notification endpoints
func RegisterNotificationRoutes(private *echo.Group, h *NotificationHandler) {
	private.GET("", h.GetNotifications)
	private.GET("/unread-count", h.GetUnreadCount)
	private.PUT("/:id/read", h.MarkAsRead)
	private.PUT("/read-all", h.MarkAllAsRead)
}
