package exercise

import (
	"fitstack.dev/api/api/user"
	"fitstack.dev/api/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App) {
	controller := NewExerciseController()

	public := app.Group("/api/exercises")
	public.Get("/", controller.ListExercises)
	public.Get("/:id", controller.GetExercise)

	admin := app.Group("/api/exercises", middleware.RequireRoles(user.RoleAdmin, user.RoleOwner))
	admin.Post("/", controller.CreateExercise)
	admin.Patch("/:id", controller.UpdateExercise)
	admin.Delete("/:id", controller.ArchiveExercise)
}
