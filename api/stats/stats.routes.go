package stats

import (
	"fitstack.dev/api/api/user"
	"fitstack.dev/api/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App) {
	controller := NewStatsController()

	group := app.Group("/api/stats",
		middleware.RequireRoles(user.RoleUser, user.RoleAdmin, user.RoleOwner))
	group.Get("/streak", controller.GetStreak)
	group.Get("/achievements", controller.ListAchievements)
	group.Get("/summary", controller.GetSummary)
}
