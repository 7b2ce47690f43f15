package http

import (
	"github.com/gin-gonic/gin"

	"study-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every
// route runs behind the session resolver and the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Session(), mw.RateLimit())

	rg.POST("/estimate", h.Estimate)
	rg.POST("/prioritize", h.Prioritize)

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("/calibrate", h.Calibrate)
		tasks.POST("/clear", h.Clear)
	}

	rg.GET("/schedule", h.Schedule)
}
