package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lifecal/backend/internal/config"
	"github.com/lifecal/backend/internal/db"
	"github.com/lifecal/backend/internal/handler"
	"github.com/lifecal/backend/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogger(cfg.Log)

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	repo := &db.Postgres{Pool: pool}
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	// Missing signing secrets are fatal here, never a per-request error.
	tokens, err := service.NewTokenManager(cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("token manager setup failed")
	}

	authSvc := service.NewAuthService(repo, tokens)
	calendarSvc := service.NewCalendarService(repo)

	if err := calendarSvc.SeedTemplates(ctx); err != nil {
		log.Fatal().Err(err).Msg("template seeding failed")
	}

	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestLogger(), handler.CORSMiddleware())

	router.GET("/", handler.Root)

	authHandler := handler.NewAuthHandler(authSvc)
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	calendarHandler := handler.NewCalendarHandler(calendarSvc)
	calendar := router.Group("/api/calendar")
	calendar.Use(handler.AuthMiddleware(tokens))
	{
		calendar.GET("/events", calendarHandler.GetEvents)
		calendar.POST("/events", calendarHandler.CreateEvent)
		calendar.PUT("/events/:id", calendarHandler.UpdateEvent)
		calendar.DELETE("/events/:id", calendarHandler.DeleteEvent)
		calendar.GET("/templates", calendarHandler.GetTemplates)
		calendar.GET("/event-types", calendarHandler.GetEventTypes)
	}

	log.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
