package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/klipp-app/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, userID uint) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func runMiddleware(mw echo.MiddlewareFunc, authHeader string) (int, *models.JwtCustomClaims) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var claims *models.JwtCustomClaims
	handler := mw(func(c echo.Context) error {
		claims, _ = c.Get("user").(*models.JwtCustomClaims)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		if httpErr, ok := err.(*echo.HTTPError); ok {
			return httpErr.Code, claims
		}
		return http.StatusInternalServerError, claims
	}
	return rec.Code, claims
}

func TestJWTAuthValidToken(t *testing.T) {
	token := signToken(t, testSecret, 42)
	code, claims := runMiddleware(JWTAuth(testSecret), "Bearer "+token)
	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, claims)
	assert.EqualValues(t, 42, claims.UserID)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	code, _ := runMiddleware(JWTAuth(testSecret), "")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", 42)
	code, _ := runMiddleware(JWTAuth(testSecret), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestOptionalJWTAuthAnonymous(t *testing.T) {
	code, claims := runMiddleware(OptionalJWTAuth(testSecret), "")
	assert.Equal(t, http.StatusOK, code)
	assert.Nil(t, claims)
}

func TestOptionalJWTAuthBadTokenRejected(t *testing.T) {
	code, _ := runMiddleware(OptionalJWTAuth(testSecret), "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, code)
}
