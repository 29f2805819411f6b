package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "bug-tracker.com/bug-tracker/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/healthz", h.Health)

	e.POST("/bugs", h.CreateBug)
	e.GET("/bugs", h.ListBugs)
	e.GET("/bugs/:id", h.GetBug)
	e.PATCH("/bugs/:id", h.UpdateBug)
	e.DELETE("/bugs/:id", h.DeleteBug)
}
