package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/manthan161203/Leetcode-agent/internal/config"
)

func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	// Single-operator tool: default to the permissive setup the frontend
	// shipped with, pin to FRONTEND_URL when one is configured.
	if config.AppConfig != nil && config.AppConfig.FrontendURL != "" {
		cfg.AllowOrigins = []string{config.AppConfig.FrontendURL, "http://localhost:5173"}
	} else {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	}

	return cors.New(cfg)
}
