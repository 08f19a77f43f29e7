package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/klipp-app/backend/internal/router"
	"github.com/klipp-app/backend/pkg/config"
	"github.com/klipp-app/backend/pkg/firebase"
	"github.com/klipp-app/backend/pkg/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB()

	var authClient *firebaseauth.Client
	if cfg.FirebaseCredentialsPath != "" {
		app, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			log.Printf("Firebase disabled: %v", err)
		} else {
			authClient = app.AuthClient
		}
	} else {
		log.Println("Firebase credentials not configured, firebase-login disabled.")
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewCustomValidator()

	if err := router.Setup(e, db, authClient, cfg); err != nil {
		log.Fatalf("Failed to set up router: %v", err)
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
