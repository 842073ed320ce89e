package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"activities-service/internal/config"
	"activities-service/internal/handler"
	"activities-service/internal/logger"
	"activities-service/internal/middleware"
	"activities-service/internal/roster"
	"activities-service/internal/session"
	"activities-service/internal/teacher"
)

func setupHTTP(_ context.Context, cfg config.Config) (*gin.Engine, error) {

	// ----------------------------
	// Dependencies
	// ----------------------------

	seed, err := roster.LoadSeed(cfg.ActivitiesFile)
	if err != nil {
		return nil, err
	}

	teacherService := teacher.NewService(cfg.TeachersFile)

	// Fail fast on a broken credential file; logins re-read it anyway.
	creds, err := teacherService.Load()
	if err != nil {
		return nil, err
	}
	if len(creds) == 0 {
		return nil, fmt.Errorf("no teacher credentials in %s", cfg.TeachersFile)
	}

	rosterStore := roster.NewStore(seed)
	sessionStore := session.NewMemoryStore()

	activityHandler := handler.NewHandler(
		teacherService,
		sessionStore,
		rosterStore,
	)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore)

	logger.Info("catalog loaded", map[string]any{
		"activities": len(seed),
		"teachers":   len(creds),
	})

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	// The client UI sends credentialed fetches; mirror the origin back
	// instead of "*" so cookies survive CORS.
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	// ----------------------------
	// Routes
	// ----------------------------

	activityHandler.RegisterRoutes(router, authMiddleware)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.Static("/static", cfg.StaticDir)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/static/index.html")
	})

	return router, nil
}
