package program

import (
	"fitstack.dev/api/api/user"
	"fitstack.dev/api/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App) {
	controller := NewProgramController()

	public := app.Group("/api/programs")
	public.Get("/", controller.ListPrograms)
	public.Get("/:id", controller.GetProgram)

	authed := middleware.RequireRoles(user.RoleUser, user.RoleAdmin, user.RoleOwner)
	app.Post("/api/programs/:id/enroll", authed, controller.Enroll)

	enrollments := app.Group("/api/enrollments", authed)
	enrollments.Get("/", controller.MyEnrollments)
	enrollments.Post("/:id/advance", controller.AdvanceEnrollment)
	enrollments.Delete("/:id", controller.AbandonEnrollment)

	admin := app.Group("/api/programs", middleware.RequireRoles(user.RoleAdmin, user.RoleOwner))
	admin.Post("/", controller.CreateProgram)
	admin.Patch("/:id", controller.UpdateProgram)
	admin.Delete("/:id", controller.ArchiveProgram)
}
