package router

import (
	"log"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/klipp-app/backend/internal/handlers"
	"github.com/klipp-app/backend/internal/middleware"
	"github.com/klipp-app/backend/internal/models"
	"github.com/klipp-app/backend/internal/repositories"
	"github.com/klipp-app/backend/internal/services"
	"github.com/klipp-app/backend/pkg/config"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Setup migrates the schema, wires repositories, services and handlers,
// and mounts every route under /api/v1. authClient may be nil when
// Firebase is not configured.
func Setup(e *echo.Echo, db *config.DB, authClient *firebaseauth.Client, cfg *config.Config) error {
	if err := db.Postgres.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Post{},
		&models.Music{},
		&models.Hashtag{},
		&models.Like{},
		&models.Comment{},
		&models.Reply{},
		&models.CommentLike{},
		&models.CommentDislike{},
		&models.ReplyLike{},
		&models.ReplyDislike{},
		&models.SavedPost{},
		&models.Repost{},
		&models.View{},
		&models.Notification{},
	); err != nil {
		return err
	}
	log.Println("Database migration completed.")

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())

	// Repositories
	userRepo := repositories.NewPostgresUserRepository(db.Postgres)
	postRepo := repositories.NewPostgresPostRepository(db.Postgres)
	commentRepo := repositories.NewPostgresCommentRepository(db.Postgres)
	replyRepo := repositories.NewPostgresReplyRepository(db.Postgres)
	likeRepo := repositories.NewPostgresLikeRepository(db.Postgres)
	commentReactionRepo := repositories.NewPostgresCommentReactionRepository(db.Postgres)
	replyReactionRepo := repositories.NewPostgresReplyReactionRepository(db.Postgres)
	followRepo := repositories.NewPostgresFollowRepository(db.Postgres)
	savedRepo := repositories.NewPostgresSavedPostRepository(db.Postgres)
	repostRepo := repositories.NewPostgresRepostRepository(db.Postgres)
	viewRepo := repositories.NewPostgresViewRepository(db.Postgres)
	notificationRepo := repositories.NewPostgresNotificationRepository(db.Postgres)
	musicRepo := repositories.NewPostgresMusicRepository(db.Postgres)
	hashtagRepo := repositories.NewPostgresHashtagRepository(db.Postgres)

	mediaRepo, err := repositories.NewGridFSMediaRepository(db.Mongo.Database(cfg.MongoDatabase))
	if err != nil {
		return err
	}

	// Services
	notifier := services.NewNotifier()
	reactions := services.NewReactionService(db.Postgres, notifier)
	content := services.NewContentService(db.Postgres, notifier)
	projections := services.NewProjectionService(
		userRepo, likeRepo, savedRepo, repostRepo, viewRepo,
		commentRepo, replyRepo, commentReactionRepo, replyReactionRepo,
	)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, authClient, cfg.JWTSecret)
	userHandler := handlers.NewUserHandler(userRepo, followRepo, postRepo, projections)
	postHandler := handlers.NewPostHandler(postRepo, savedRepo, projections)
	commentHandler := handlers.NewCommentHandler(commentRepo, content, projections)
	replyHandler := handlers.NewReplyHandler(replyRepo, content, projections)
	likeHandler := handlers.NewLikeHandler(likeRepo, userRepo, reactions)
	commentReactionHandler := handlers.NewCommentReactionHandler(reactions)
	replyReactionHandler := handlers.NewReplyReactionHandler(reactions)
	followHandler := handlers.NewFollowHandler(reactions)
	savedHandler := handlers.NewSavedPostHandler(reactions)
	repostHandler := handlers.NewRepostHandler(repostRepo, reactions)
	viewHandler := handlers.NewViewHandler(reactions)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	musicHandler := handlers.NewMusicHandler(musicRepo)
	hashtagHandler := handlers.NewHashtagHandler(hashtagRepo)
	mediaHandler := handlers.NewMediaHandler(mediaRepo)
	healthHandler := handlers.NewHealthHandler(db.Postgres)

	handlers.RegisterHealthRoutes(e, healthHandler)

	api := e.Group("/api/v1")
	optionalAuth := middleware.OptionalJWTAuth(cfg.JWTSecret)
	requireAuth := middleware.JWTAuth(cfg.JWTSecret)

	handlers.RegisterAuthRoutes(api.Group("/auth"), authHandler)

	usersRead := api.Group("/users", optionalAuth)
	usersPrivate := api.Group("/users", requireAuth)
	handlers.RegisterUserRoutes(usersRead, usersPrivate, userHandler)
	handlers.RegisterFollowRoutes(usersPrivate, followHandler)

	postsRead := api.Group("/posts", optionalAuth)
	postsPrivate := api.Group("/posts", requireAuth)
	handlers.RegisterPostRoutes(postsRead, postsPrivate, postHandler)
	handlers.RegisterLikeRoutes(postsRead, postsPrivate, likeHandler)
	handlers.RegisterSavedPostRoutes(postsPrivate, savedHandler)
	handlers.RegisterRepostRoutes(usersRead, postsPrivate, repostHandler)
	handlers.RegisterViewRoutes(postsPrivate, viewHandler)

	commentsRead := api.Group("/comments", optionalAuth)
	commentsPrivate := api.Group("/comments", requireAuth)
	repliesPrivate := api.Group("/replies", requireAuth)
	handlers.RegisterCommentRoutes(postsRead, postsPrivate, commentsPrivate, commentHandler)
	handlers.RegisterReplyRoutes(commentsRead, commentsPrivate, repliesPrivate, replyHandler)
	handlers.RegisterCommentReactionRoutes(commentsPrivate, commentReactionHandler)
	handlers.RegisterReplyReactionRoutes(repliesPrivate, replyReactionHandler)

	handlers.RegisterNotificationRoutes(api.Group("/notifications", requireAuth), notificationHandler)
	handlers.RegisterMusicRoutes(api.Group("/music", optionalAuth), api.Group("/music", requireAuth), musicHandler)
	handlers.RegisterHashtagRoutes(api.Group("/hashtags", optionalAuth), api.Group("/hashtags", requireAuth), hashtagHandler)
	handlers.RegisterMediaRoutes(api.Group("/media", optionalAuth), api.Group("/media", requireAuth), mediaHandler)

	return nil
}
