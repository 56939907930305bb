package workout

import (
	"fitstack.dev/api/api/user"
	"fitstack.dev/api/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App) {
	controller := NewWorkoutController()

	workouts := app.Group("/api/workouts",
		middleware.RequireRoles(user.RoleUser, user.RoleAdmin, user.RoleOwner))
	workouts.Post("/", controller.CreateLog)
	workouts.Get("/", controller.ListLogs)
	workouts.Get("/:id", controller.GetLog)
	workouts.Patch("/:id", controller.UpdateLog)
	workouts.Delete("/:id", controller.DeleteLog)
}
