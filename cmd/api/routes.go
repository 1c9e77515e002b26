package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *app) routes() http.Handler {
	g := gin.New()
	g.Use(gin.Recovery())
	g.Use(corsMiddleware())
	g.Use(requestIDMiddleware())

	health := g.Group("/health")
	{
		health.GET("", healthHandler)
	}

	g.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "OK. News at /api/news\n")
	})

	timeout := app.config.Server.HandlerTimeout

	apiGroup := g.Group("/api")
	{
		apiGroup.GET("/news", app.handlers.GetNews)
		apiGroup.POST("/summarize", withTimeout(timeout, app.handlers.Summarize))
		apiGroup.POST("/tts", withTimeout(timeout, app.handlers.TTS))
		apiGroup.POST("/clear-cache", app.handlers.ClearCache)
		apiGroup.POST("/fetch-now", app.handlers.FetchNow)
	}

	return g
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func withTimeout(d time.Duration, fn gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		fn(c)
	}
}
