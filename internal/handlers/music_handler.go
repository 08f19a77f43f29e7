package handlers

import (
	"errors"
	"net/http"

	"github.com/klipp-app/backend/internal/models"
	"github.com/klipp-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// MusicHandler serves the track catalog
type MusicHandler struct {
	musicRepo repositories.MusicRepository
}

// NewMusicHandler creates a MusicHandler
func NewMusicHandler(musicRepo repositories.MusicRepository) *MusicHandler {
	return &MusicHandler{musicRepo: musicRepo}
}

// CreateMusic registers a track referencing already uploaded media
func (h *MusicHandler) CreateMusic(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return err
	}

	var req models.CreateMusicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	music := &models.Music{
		Singer:  req.Singer,
		Name:    req.Name,
		FileID:  req.FileID,
		CoverID: req.CoverID,
	}
	if err := h.musicRepo.CreateMusic(music); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return echo.NewHTTPError(http.StatusConflict, "Track name already registered")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create track")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": music})
}

// GetMusic returns one track
func (h *MusicHandler) GetMusic(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	music, err := h.musicRepo.GetMusicByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Track not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch track")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": music})
}

// ListMusic returns the catalog
func (h *MusicHandler) ListMusic(c echo.Context) error {
	music, err := h.musicRepo.ListMusic()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch tracks")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": music})
}

// RegisterMusicRoutes mounts the track endpoints
func RegisterMusicRoutes(read, private *echo.Group, h *MusicHandler) {
	read.GET("", h.ListMusic)
	read.GET("/:id", h.GetMusic)
	private.POST("", h.CreateMusic)
}
