package handler

import (
	"github.com/gin-gonic/gin"

	"activities-service/internal/middleware"
	"activities-service/internal/roster"
	"activities-service/internal/session"
	"activities-service/internal/teacher"
)

type Handler struct {
	teachers     *teacher.Service
	sessionStore session.Store
	roster       *roster.Store
}

func NewHandler(
	teachers *teacher.Service,
	sessionStore session.Store,
	rosterStore *roster.Store,
) *Handler {
	return &Handler{
		teachers:     teachers,
		sessionStore: sessionStore,
		roster:       rosterStore,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, auth *middleware.AuthMiddleware) {
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/status", h.Status)

	r.GET("/activities", h.ListActivities)

	gated := middleware.GinRequireAuth(auth)
	r.POST("/activities/:name/signup", gated, h.Signup)
	r.DELETE("/activities/:name/unregister", gated, h.Unregister)
}

// detail mirrors the error body shape the frontend expects.
func detail(msg string) gin.H {
	return gin.H{"detail": msg}
}
