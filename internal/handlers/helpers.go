package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/klipp-app/backend/internal/models"
	"github.com/klipp-app/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext extracts the authenticated user's ID from the JWT
// claims placed on the context by the auth middleware
func getUserIDFromContext(c echo.Context) (uint, error) {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Missing or invalid token")
	}
	return claims.UserID, nil
}

// optionalUserID returns the viewer's ID, or 0 for anonymous requests
func optionalUserID(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return 0
	}
	return claims.UserID
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// parsePaging reads page and limit query parameters, returning the
// limit and the matching offset
func parsePaging(c echo.Context) (limit, offset int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return limit, (page - 1) * limit
}

// serviceError maps service-level failures to HTTP errors
func serviceError(err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Subject not found")
	case errors.Is(err, services.ErrSelfFollow):
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// toggleResponse renders a toggle outcome: 201 when a row was created,
// 200 when it already existed or was removed
func toggleResponse(c echo.Context, res services.ToggleResult) error {
	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	return c.JSON(status, echo.Map{"success": true, "data": res})
}
