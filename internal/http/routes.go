package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "checklist.com/daily-checklist/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/state", h.GetState)
	e.GET("/stats", h.GetStats)

	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout)
	e.POST("/auth/role", h.SwitchRole)

	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/active", h.ListActiveTasks)
	e.GET("/tasks/:id/can-complete", h.CanCompleteTask)
	e.POST("/tasks/:id/complete", h.CompleteTask)

	e.GET("/assignments/:date", h.GetAssignment)
	e.GET("/history", h.ListHistory)
	e.GET("/users", h.ListUsers)

	adminOnly := middleware.RequireAdmin(h.state.CurrentUser)
	e.POST("/tasks", h.CreateTask, adminOnly)
	e.PATCH("/tasks/:id", h.UpdateTask, adminOnly)
	e.DELETE("/tasks/:id", h.DeleteTask, adminOnly)
	e.PUT("/assignments", h.SetAssignment, adminOnly)
	e.POST("/users", h.CreateUser, adminOnly)
	e.PATCH("/users/:id", h.UpdateUser, adminOnly)
	e.DELETE("/users/:id", h.DeleteUser, adminOnly)
	e.POST("/admin/wipe", h.WipeData, adminOnly)
}
