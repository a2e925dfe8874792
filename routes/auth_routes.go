package routes

import (
	"cargoflow/config"
	"cargoflow/controllers"
	"cargoflow/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {

	authController := &controllers.AuthController{}

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Use(middleware.InjectDBMiddleware(authController))
	api.Post("/login", authController.Login)

	apiMe := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	apiMe.Use(middleware.InjectDBMiddleware(authController))
	apiMe.Get("/me", authController.Me)
}
