package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"activities-service/internal/roster"
)

// ListActivities returns the whole catalog. No pagination or filtering;
// the set is small and fixed.
func (h *Handler) ListActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.roster.List())
}

// Signup enrolls a student email in an activity. Auth is enforced by
// the route middleware before this runs.
func (h *Handler) Signup(c *gin.Context) {
	name := c.Param("name")
	email := param(c, "email")

	if email == "" {
		c.JSON(http.StatusBadRequest, detail("Email is required"))
		return
	}

	if err := h.roster.Signup(name, email); err != nil {
		writeRosterError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// Unregister removes a student email from an activity.
func (h *Handler) Unregister(c *gin.Context) {
	name := c.Param("name")
	email := param(c, "email")

	if email == "" {
		c.JSON(http.StatusBadRequest, detail("Email is required"))
		return
	}

	if err := h.roster.Unregister(name, email); err != nil {
		writeRosterError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

func writeRosterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, roster.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, detail("Activity not found"))
	case errors.Is(err, roster.ErrAlreadyEnrolled):
		c.JSON(http.StatusBadRequest, detail("Student is already signed up"))
	case errors.Is(err, roster.ErrNotEnrolled):
		c.JSON(http.StatusBadRequest, detail("Student is not signed up for this activity"))
	default:
		c.JSON(http.StatusInternalServerError, detail("Unexpected error"))
	}
}
