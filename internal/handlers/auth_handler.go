package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v4"
	"github.com/klipp-app/backend/internal/models"
	"github.com/klipp-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler handles registration and login, both local (bcrypt) and via
// Firebase ID tokens. Either path ends with the same signed JWT.
type AuthHandler struct {
	userRepo   repositories.UserRepository
	authClient *auth.Client
	jwtSecret  string
}

// NewAuthHandler creates an AuthHandler. authClient may be nil when
// Firebase credentials are not configured; the firebase-login route then
// reports the feature as unavailable.
func NewAuthHandler(userRepo repositories.UserRepository, authClient *auth.Client, jwtSecret string) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, authClient: authClient, jwtSecret: jwtSecret}
}

// Signup registers a local account
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.userRepo.GetUserByUsername(req.Username); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check username")
	}
	if _, err := h.userRepo.GetUserByEmail(req.Email); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
	}
	if err := h.userRepo.CreateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "data": echo.Map{"token": token, "user": user}})
}

// Signin logs in a local account
func (h *AuthHandler) Signin(c echo.Context) error {
	var req models.SigninRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepo.GetUserByUsername(req.Username)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"token": token, "user": user}})
}

// FirebaseLogin exchanges a verified Firebase ID token for a service JWT,
// registering the account on first login
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	if h.authClient == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Firebase login is not configured")
	}

	idToken := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
	if idToken == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing Firebase ID token")
	}

	decoded, err := h.authClient.VerifyIDToken(c.Request().Context(), idToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Firebase ID token")
	}

	user, err := h.userRepo.GetUserByFirebaseUID(decoded.UID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = h.registerFirebaseUser(decoded)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve user")
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"token": token, "user": user}})
}

func (h *AuthHandler) registerFirebaseUser(decoded *auth.Token) (*models.User, error) {
	email, _ := decoded.Claims["email"].(string)
	name, _ := decoded.Claims["name"].(string)

	short := decoded.UID
	if len(short) > 8 {
		short = short[:8]
	}

	user := &models.User{
		FirstName:   name,
		Email:       email,
		FirebaseUID: decoded.UID,
	}
	// the short username can collide; the full UID is unique per account
	for _, candidate := range []string{"user_" + short, "user_" + decoded.UID} {
		user.Username = candidate
		err := h.userRepo.CreateUser(user)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("no free username for firebase account %s", decoded.UID)
}

func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}

// RegisterAuthRoutes mounts the auth endpoints
func RegisterAuthRoutes(g *echo.Group, h *AuthHandler) {
	g.POST("/signup", h.Signup)
	g.POST("/signin", h.Signin)
	g.POST("/firebase-login", h.FirebaseLogin)
}
