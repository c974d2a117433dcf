package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"newsquiz/internal/pipeline"
)

func SetupRouter(trigger Trigger, tracker pipeline.Tracker, log *logrus.Logger) *gin.Engine {
	r := gin.Default()

	r.GET("/", healthHandler)
	r.POST("/generate-quiz", triggerHandler(trigger))
	r.GET("/generate-quiz/status", statusHandler(tracker, log))

	return r
}
