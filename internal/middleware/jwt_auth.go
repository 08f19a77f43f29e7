package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/klipp-app/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// JWTAuth checks for a valid JWT and stores the claims in the context.
func JWTAuth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := parseAuthorizationHeader(c, jwtSecret)
			if err != nil {
				return err
			}
			c.Set("user", claims)
			return next(c)
		}
	}
}

// OptionalJWTAuth parses claims when an Authorization header is present but
// lets anonymous requests through. Read-side projections use it so
// current-user flags default to false for unauthenticated callers.
func OptionalJWTAuth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				return next(c)
			}
			claims, err := parseAuthorizationHeader(c, jwtSecret)
			if err != nil {
				return err
			}
			c.Set("user", claims)
			return next(c)
		}
	}
}

func parseAuthorizationHeader(c echo.Context, jwtSecret string) (*models.JwtCustomClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
	}

	// Expecting "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
	}
	tokenString := parts[1]

	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		if err == jwt.ErrSignatureInvalid {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token signature")
		}
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	if !token.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return claims, nil
}
