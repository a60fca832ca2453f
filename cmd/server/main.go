package main

import (
	"whatsapp-template-linter/internal/api"
	"whatsapp-template-linter/internal/config"
	"whatsapp-template-linter/internal/database"
	"whatsapp-template-linter/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.LoadConfig()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	database.InitGorm(cfg)

	r := gin.Default()

	// CORS Middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	hub := ws.NewHub()
	go hub.Run()

	lintHandler := api.NewLintHandler(hub)
	runHandler := api.NewRunHandler()
	draftHandler := api.NewDraftHandler()

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/lint", lintHandler.Lint)
		apiGroup.POST("/validate", lintHandler.Validate)
		apiGroup.POST("/stats", lintHandler.Stats)

		apiGroup.GET("/runs", runHandler.GetRuns)
		apiGroup.GET("/runs/:id", runHandler.GetRun)

		apiGroup.PUT("/drafts", draftHandler.SaveDraft)
		apiGroup.GET("/drafts", draftHandler.GetDrafts)
		apiGroup.GET("/drafts/:name", draftHandler.GetDraft)
		apiGroup.DELETE("/drafts/:name", draftHandler.DeleteDraft)
	}

	r.GET("/ws", func(c *gin.Context) {
		hub.ServeWs(c.Writer, c.Request)
	})

	logrus.Infof("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to run server: %v", err)
	}
}
