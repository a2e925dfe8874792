package routes

import (
	"cargoflow/config"
	"cargoflow/controllers"
	"cargoflow/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(app *fiber.App) {

	orderController := &controllers.OrderController{}

	api := app.Group(config.MAIN_ROUTES+"/orders", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(orderController))

	api.Post("/", orderController.CreateOrder)
	api.Get("/export", orderController.ExportOrders)
	api.Get("/:id", orderController.GetOrderByID)
	api.Put("/:id", orderController.UpdateOrder)
	api.Put("/:id/receive", orderController.ReceiveOrder)
	api.Get("/", orderController.GetAllOrders)
	api.Delete("/:id", orderController.DeleteOrder)
}
