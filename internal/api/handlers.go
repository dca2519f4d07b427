package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/promptchef/backend/internal/middleware"
	"github.com/pageza/promptchef/backend/internal/types"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "PromptChef API is running",
	})
}

// RegisterRateLimitRoutes exposes the caller's remaining generation budget
func RegisterRateLimitRoutes(router *gin.RouterGroup, limiter *middleware.RateLimiter, limit int) {
	router.GET("/rate-limit", func(c *gin.Context) {
		remaining, resetTime, err := limiter.GetRemainingRequests(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "failed to check rate limit"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"limit":      limit,
			"remaining":  remaining,
			"reset_time": resetTime.Unix(),
			"window":     "1h",
		})
	})
}
