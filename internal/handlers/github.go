package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manthan161203/Leetcode-agent/internal/models"
	"github.com/manthan161203/Leetcode-agent/internal/services"
	"github.com/manthan161203/Leetcode-agent/pkg/logger"
)

// Pipeline is wired in from main before the router starts serving.
var Pipeline *services.Pipeline

// ConfigureGithub handles POST /api/configure-github
func ConfigureGithub(c *gin.Context) {
	var input models.GithubConfig
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "github_token and github_username are required"})
		return
	}

	user, err := Pipeline.Configure(c.Request.Context(), input)
	if err != nil {
		logger.Error().Err(err).Msg("GitHub configuration failed")
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"user":    user,
		"message": fmt.Sprintf("Connected as %s", user),
	})
}

// GithubStatus handles GET /api/github-status
func GithubStatus(c *gin.Context) {
	configured, username, repo := Pipeline.Status()
	if !configured {
		c.JSON(http.StatusOK, gin.H{
			"configured": false,
			"message":    "GitHub not configured yet",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"configured": true,
		"username":   username,
		"repo":       repo,
	})
}
