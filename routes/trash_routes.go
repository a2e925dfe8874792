package routes

import (
	"cargoflow/config"
	"cargoflow/controllers"
	"cargoflow/middleware"
	"cargoflow/models"

	"github.com/gofiber/fiber/v2"
)

func SetupTrashRoutes(app *fiber.App) {

	trashController := &controllers.TrashController{}

	api := app.Group(config.MAIN_ROUTES+"/trash", middleware.AuthMiddleware, middleware.RequireRole(models.RoleAdmin))
	api.Use(middleware.InjectDBMiddleware(trashController))

	api.Get("/:table", trashController.GetTrash)
	api.Put("/:table/:id/restore", trashController.RestoreItem)
	api.Delete("/:table/:id", trashController.PurgeItem)
}
