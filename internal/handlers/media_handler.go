package handlers

import (
	"net/http"

	"github.com/klipp-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// MediaHandler uploads and streams binary blobs from the media store
type MediaHandler struct {
	mediaRepo repositories.MediaRepository
}

// NewMediaHandler creates a MediaHandler
func NewMediaHandler(mediaRepo repositories.MediaRepository) *MediaHandler {
	return &MediaHandler{mediaRepo: mediaRepo}
}

// Upload stores a multipart file and returns its reference ID
func (h *MediaHandler) Upload(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing file")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to open file")
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	id, err := h.mediaRepo.Upload(fileHeader.Filename, contentType, src)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store file")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"id": id}})
}

// Download streams a stored blob with its original content type
func (h *MediaHandler) Download(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing media ID")
	}

	stream, contentType, err := h.mediaRepo.Open(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Media not found")
	}
	defer stream.Close()

	return c.Stream(http.StatusOK, contentType, stream)
}

// Delete removes a stored blob
func (h *MediaHandler) Delete(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return err
	}
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing media ID")
	}
	if err := h.mediaRepo.Delete(id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Media not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": "Media deleted"})
}

// RegisterMediaRoutes mounts the media endpoints
func RegisterMediaRoutes(read, private *echo.Group, h *MediaHandler) {
	read.GET("/:id", h.Download)
	private.POST("", h.Upload)
	private.DELETE("/:id", h.Delete)
}
