package http

import (
	"github.com/gin-gonic/gin"

	"schedule-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware by convention.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sched := rg.Group("/schedule")
	{
		sched.POST("/extract", mw.Auth(), mw.RateLimit(), h.Extract)
		sched.POST("/apply", mw.Auth(), mw.RateLimit(), h.Apply)
		sched.GET("/items", mw.Auth(), h.List)
		sched.GET("/summary", mw.Auth(), h.Summary)
	}
}
