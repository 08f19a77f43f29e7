package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler reports service liveness and database reachability
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a HealthHandler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health responds 200 when the relational store answers a ping
func (h *HealthHandler) Health(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"success": false, "data": "database unreachable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": "ok"})
}

// RegisterHealthRoutes mounts the health endpoint
func RegisterHealthRoutes(e *echo.Echo, h *HealthHandler) {
	e.GET("/health", h.Health)
}
