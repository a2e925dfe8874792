package routes

import (
	"cargoflow/config"
	"cargoflow/controllers"
	"cargoflow/middleware"
	"cargoflow/models"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {

	userController := &controllers.UserController{}

	api := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(userController))

	api.Get("/", userController.GetAllUsers)
	api.Get("/:id", userController.GetUserByID)

	// Account management stays with the admin.
	admin := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware, middleware.RequireRole(models.RoleAdmin))
	admin.Use(middleware.InjectDBMiddleware(userController))
	admin.Post("/", userController.CreateUser)
	admin.Put("/:id/role", userController.SetRole)
	admin.Delete("/:id", userController.DeleteUser)
}
