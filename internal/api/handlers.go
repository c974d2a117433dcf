package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"newsquiz/internal/pipeline"
)

// Trigger starts a pipeline run in the background. Satisfied by
// *pipeline.Runner.
type Trigger interface {
	TriggerAsync() bool
}

// GET /
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Daily AI News Quiz Generation API is running",
	})
}

// POST /generate-quiz
func triggerHandler(trigger Trigger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !trigger.TriggerAsync() {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "already running",
				"message": "A quiz generation run is already in progress",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "Quiz generation initiated",
			"message": "Quiz will be generated and pushed to database",
		})
	}
}

// GET /generate-quiz/status
func statusHandler(tracker pipeline.Tracker, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, err := tracker.Status(c.Request.Context())
		if err != nil {
			log.WithError(err).Error("[API] failed to read job status")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read job status"})
			return
		}
		c.JSON(http.StatusOK, status)
	}
}
