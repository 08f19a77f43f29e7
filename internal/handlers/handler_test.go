package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/klipp-app/backend/internal/middleware"
	"github.com/klipp-app/backend/internal/models"
	"github.com/klipp-app/backend/internal/repositories"
	"github.com/klipp-app/backend/internal/services"
	"github.com/klipp-app/backend/pkg/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret"

type testEnv struct {
	echo *echo.Echo
	db   *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Follow{}, &models.Post{}, &models.Music{},
		&models.Hashtag{}, &models.Like{}, &models.Comment{}, &models.Reply{},
		&models.CommentLike{}, &models.CommentDislike{}, &models.ReplyLike{},
		&models.ReplyDislike{}, &models.SavedPost{}, &models.Repost{},
		&models.View{}, &models.Notification{},
	))

	e := echo.New()
	e.Validator = validators.NewCustomValidator()

	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	replyRepo := repositories.NewPostgresReplyRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	commentReactionRepo := repositories.NewPostgresCommentReactionRepository(db)
	replyReactionRepo := repositories.NewPostgresReplyReactionRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	savedRepo := repositories.NewPostgresSavedPostRepository(db)
	repostRepo := repositories.NewPostgresRepostRepository(db)
	viewRepo := repositories.NewPostgresViewRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)

	notifier := services.NewNotifier()
	reactions := services.NewReactionService(db, notifier)
	content := services.NewContentService(db, notifier)
	projections := services.NewProjectionService(
		userRepo, likeRepo, savedRepo, repostRepo, viewRepo,
		commentRepo, replyRepo, commentReactionRepo, replyReactionRepo,
	)

	api := e.Group("/api/v1")
	optionalAuth := middleware.OptionalJWTAuth(testJWTSecret)
	requireAuth := middleware.JWTAuth(testJWTSecret)

	RegisterAuthRoutes(api.Group("/auth"), NewAuthHandler(userRepo, nil, testJWTSecret))

	usersRead := api.Group("/users", optionalAuth)
	usersPrivate := api.Group("/users", requireAuth)
	RegisterUserRoutes(usersRead, usersPrivate, NewUserHandler(userRepo, followRepo, postRepo, projections))
	RegisterFollowRoutes(usersPrivate, NewFollowHandler(reactions))

	postsRead := api.Group("/posts", optionalAuth)
	postsPrivate := api.Group("/posts", requireAuth)
	RegisterPostRoutes(postsRead, postsPrivate, NewPostHandler(postRepo, savedRepo, projections))
	RegisterLikeRoutes(postsRead, postsPrivate, NewLikeHandler(likeRepo, userRepo, reactions))
	RegisterSavedPostRoutes(postsPrivate, NewSavedPostHandler(reactions))
	RegisterRepostRoutes(usersRead, postsPrivate, NewRepostHandler(repostRepo, reactions))
	RegisterViewRoutes(postsPrivate, NewViewHandler(reactions))

	commentsRead := api.Group("/comments", optionalAuth)
	commentsPrivate := api.Group("/comments", requireAuth)
	repliesPrivate := api.Group("/replies", requireAuth)
	RegisterCommentRoutes(postsRead, postsPrivate, commentsPrivate, NewCommentHandler(commentRepo, content, projections))
	RegisterReplyRoutes(commentsRead, commentsPrivate, repliesPrivate, NewReplyHandler(replyRepo, content, projections))
	RegisterCommentReactionRoutes(commentsPrivate, NewCommentReactionHandler(reactions))
	RegisterReplyReactionRoutes(repliesPrivate, NewReplyReactionHandler(reactions))

	RegisterNotificationRoutes(api.Group("/notifications", requireAuth), NewNotificationHandler(notificationRepo))

	return &testEnv{echo: e, db: db}
}

func (env *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) createPost(t *testing.T, userID uint) *models.Post {
	t.Helper()
	post := &models.Post{UserID: userID, VideoID: "vid", Title: "test post"}
	require.NoError(t, env.db.Create(post).Error)
	return post
}

func (env *testEnv) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func (env *testEnv) request(method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}
