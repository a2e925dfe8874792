package routes

import (
	"cargoflow/config"
	"cargoflow/controllers"
	"cargoflow/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupGroupageRoutes(app *fiber.App) {

	groupageController := &controllers.GroupageController{}

	api := app.Group(config.MAIN_ROUTES+"/groupages", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(groupageController))

	api.Post("/", groupageController.CreateGroupage)
	api.Post("/:id/bookings", groupageController.CreateBooking)
	api.Get("/:id/bookings", groupageController.GetBookings)
	api.Put("/:id/bookings/:booking_id/confirm", groupageController.ConfirmBooking)
	api.Put("/:id/bookings/:booking_id/cancel", groupageController.CancelBooking)
	api.Get("/:id", groupageController.GetGroupageByID)
	api.Put("/:id", groupageController.UpdateGroupage)
	api.Get("/", groupageController.GetAllGroupages)
	api.Delete("/:id", groupageController.DeleteGroupage)
}
