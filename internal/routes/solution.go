package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/manthan161203/Leetcode-agent/internal/handlers"
	"github.com/manthan161203/Leetcode-agent/internal/middleware"
)

func RegisterSolutionRoutes(r gin.IRouter) {
	// Submission hits two LLM calls plus GitHub writes, so it gets the
	// strict limiter on top of the general one.
	r.POST("/save-solution", middleware.SolutionRateLimit(), handlers.SaveSolution)
}
