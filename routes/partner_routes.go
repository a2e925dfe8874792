package routes

import (
	"cargoflow/config"
	"cargoflow/controllers"
	"cargoflow/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupSupplierRoutes(app *fiber.App) {

	supplierController := &controllers.SupplierController{}

	api := app.Group(config.MAIN_ROUTES+"/suppliers", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(supplierController))

	api.Post("/", supplierController.CreateSupplier)
	api.Get("/:id", supplierController.GetSupplierByID)
	api.Put("/:id", supplierController.UpdateSupplier)
	api.Get("/", supplierController.GetAllSuppliers)
	api.Delete("/:id", supplierController.DeleteSupplier)
}

func SetupClientRoutes(app *fiber.App) {

	clientController := &controllers.ClientController{}

	api := app.Group(config.MAIN_ROUTES+"/clients", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(clientController))

	api.Post("/", clientController.CreateClient)
	api.Get("/:id", clientController.GetClientByID)
	api.Put("/:id", clientController.UpdateClient)
	api.Get("/", clientController.GetAllClients)
	api.Delete("/:id", clientController.DeleteClient)
}

func SetupTransitaireRoutes(app *fiber.App) {

	transitaireController := &controllers.TransitaireController{}

	api := app.Group(config.MAIN_ROUTES+"/transitaires", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(transitaireController))

	api.Post("/", transitaireController.CreateTransitaire)
	api.Get("/:id", transitaireController.GetTransitaireByID)
	api.Put("/:id", transitaireController.UpdateTransitaire)
	api.Get("/", transitaireController.GetAllTransitaires)
	api.Delete("/:id", transitaireController.DeleteTransitaire)
}
