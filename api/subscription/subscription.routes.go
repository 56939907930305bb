package subscription

import (
	"fitstack.dev/api/api/user"
	"fitstack.dev/api/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App) {
	controller := NewSubscriptionController()

	app.Get("/api/plans", controller.ListPlans)

	group := app.Group("/api/subscriptions",
		middleware.RequireRoles(user.RoleUser, user.RoleAdmin, user.RoleOwner))
	group.Get("/me", controller.MySubscription)
	group.Post("/", controller.Subscribe)
	group.Post("/cancel", controller.Cancel)
}
