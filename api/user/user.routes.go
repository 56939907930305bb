package user

import (
	"fitstack.dev/api/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App) {
	controller := NewUserController()

	// Any authenticated user can manage their own profile
	userGroup := app.Group("/api/users", middleware.RequireRoles(RoleUser, RoleAdmin, RoleOwner))
	userGroup.Get("/me", controller.LoggedUser)
	userGroup.Patch("/me", controller.UpdateProfile)
	userGroup.Put("/me/password", controller.ChangePassword)

	// Admin/Owner routes
	protectedGroup := app.Group("/api/users", middleware.RequireRoles(RoleAdmin, RoleOwner))
	protectedGroup.Get("/", controller.GetAllUsers)
	protectedGroup.Get("/email", controller.GetUserByEmail)
	protectedGroup.Get("/:id", controller.GetUserByID)
	protectedGroup.Delete("/:id", controller.DeleteUser)
}
