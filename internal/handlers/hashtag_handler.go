package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/klipp-app/backend/internal/models"
	"github.com/klipp-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HashtagHandler serves hashtag creation and listing
type HashtagHandler struct {
	hashtagRepo repositories.HashtagRepository
}

// NewHashtagHandler creates a HashtagHandler
func NewHashtagHandler(hashtagRepo repositories.HashtagRepository) *HashtagHandler {
	return &HashtagHandler{hashtagRepo: hashtagRepo}
}

// CreateHashtag creates a hashtag, returning the existing row when the
// normalized name is already taken
func (h *HashtagHandler) CreateHashtag(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return err
	}

	var req models.CreateHashtagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(req.Name), "#"))
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid hashtag name")
	}

	hashtag := &models.Hashtag{Name: name}
	if err := h.hashtagRepo.CreateHashtag(hashtag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, err := h.hashtagRepo.GetHashtagByName(name)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch hashtag")
			}
			return c.JSON(http.StatusOK, echo.Map{"success": true, "data": existing})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create hashtag")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": hashtag})
}

// ListHashtags returns all hashtags
func (h *HashtagHandler) ListHashtags(c echo.Context) error {
	hashtags, err := h.hashtagRepo.ListHashtags()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch hashtags")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": hashtags})
}

// RegisterHashtagRoutes mounts the hashtag endpoints
func RegisterHashtagRoutes(read, private *echo.Group, h *HashtagHandler) {
	read.GET("", h.ListHashtags)
	private.POST("", h.CreateHashtag)
}
