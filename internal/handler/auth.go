package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"activities-service/internal/logger"
	"activities-service/internal/session"
	"activities-service/internal/teacher"
)

// Login authenticates a teacher and creates a session. Credentials
// arrive as query parameters or form fields.
func (h *Handler) Login(c *gin.Context) {
	username := param(c, "username")
	password := param(c, "password")

	matched, err := h.teachers.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, teacher.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, detail("Invalid credentials"))
			return
		}
		logger.Error("credential check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, detail("Unable to verify credentials"))
		return
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, detail("Session error"))
		return
	}

	if err := h.sessionStore.Create(c.Request.Context(), session.Session{
		SessionID: sessionID,
		Username:  matched,
		CreatedAt: time.Now(),
	}); err != nil {
		c.JSON(http.StatusInternalServerError, detail("Session error"))
		return
	}

	session.SetCookie(c.Writer, sessionID, session.CookieOptions{
		SameSite: http.SameSiteLaxMode,
	})

	logger.Info("teacher logged in", map[string]any{
		"username": matched,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"username": matched,
	})
}

// Logout destroys the session if one exists. Idempotent: an unknown or
// missing token still clears the cookie and succeeds.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		_ = h.sessionStore.Delete(c.Request.Context(), cookie.Value)
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		SameSite: http.SameSiteLaxMode,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Status reports whether the request carries a live session.
func (h *Handler) Status(c *gin.Context) {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	sess, err := h.sessionStore.Get(c.Request.Context(), cookie.Value)
	if err != nil || sess == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"username":      sess.Username,
	})
}

// param reads a request parameter from the query string first, then
// from the form body.
func param(c *gin.Context, key string) string {
	if v := c.Query(key); v != "" {
		return v
	}
	return c.PostForm(key)
}
