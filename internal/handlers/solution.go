package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/manthan161203/Leetcode-agent/internal/config"
	"github.com/manthan161203/Leetcode-agent/internal/models"
	"github.com/manthan161203/Leetcode-agent/pkg/logger"
)

// SaveSolution handles POST /api/save-solution. Accepts form data (the
// frontend posts a form) or JSON.
func SaveSolution(c *gin.Context) {
	var submission models.SolutionSubmission
	if err := c.ShouldBind(&submission); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "problem_statement and code are required"})
		return
	}

	result, err := Pipeline.Process(c.Request.Context(), submission)
	if err != nil {
		logger.Error().Err(err).Msg("Submission failed")
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "success",
		"problem":          result.Problem,
		"files_pushed":     result.FilesPushed,
		"folder_structure": result.FolderStructure,
	})
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "LeetCode GitHub Agent API is running",
		"model":   config.AppConfig.GeminiModel,
	})
}
