package routes

import (
	"cargoflow/config"
	"cargoflow/controllers"
	"cargoflow/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupContainerRoutes(app *fiber.App) {

	containerController := &controllers.ContainerController{}

	api := app.Group(config.MAIN_ROUTES+"/containers", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(containerController))

	api.Post("/", containerController.CreateContainer)
	api.Post("/check-compatibility", containerController.CheckCompatibility)
	api.Get("/:id/candidates", containerController.GetCandidateOrders)
	api.Post("/:id/orders", containerController.AssignOrder)
	api.Delete("/:id/orders/:order_id", containerController.UnassignOrder)
	api.Get("/:id", containerController.GetContainerByID)
	api.Put("/:id", containerController.UpdateContainer)
	api.Get("/", containerController.GetAllContainers)
	api.Delete("/:id", containerController.DeleteContainer)
}
