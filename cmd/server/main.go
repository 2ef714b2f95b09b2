package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"bloghub/internal/auth"
	"bloghub/internal/config"
	"bloghub/internal/db"
	"bloghub/internal/handler"
	"bloghub/internal/mail"
	"bloghub/internal/media"
	"bloghub/internal/model"
	"bloghub/internal/render"
	"bloghub/internal/repository"
	"bloghub/internal/router"
	"bloghub/internal/service"
)

func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	renderer, err := render.New(cfg.TemplateDir)
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}
	e.Renderer = renderer

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)

	// Initialize collaborators
	tokens := auth.NewTokenService(cfg.TokenSecret)
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	pictures := media.NewStore(cfg.UploadDir)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens, mailer, cfg.BaseURL)
	postService := service.NewPostService(postRepo, userRepo)
	accountService := service.NewAccountService(userRepo, pictures)

	// Initialize handlers
	homeHandler := handler.NewHomeHandler(postService)
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	postHandler := handler.NewPostHandler(postService)

	// Register routes
	router.Register(e, cfg, userRepo, homeHandler, authHandler, accountHandler, postHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
