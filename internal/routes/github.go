package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/manthan161203/Leetcode-agent/internal/handlers"
)

func RegisterGithubRoutes(r gin.IRouter) {
	r.POST("/configure-github", handlers.ConfigureGithub)
	r.GET("/github-status", handlers.GithubStatus)
}
