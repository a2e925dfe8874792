package routes

import (
	"cargoflow/config"
	"cargoflow/controllers"
	"cargoflow/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupProductRoutes(app *fiber.App) {

	productController := &controllers.ProductController{}

	api := app.Group(config.MAIN_ROUTES+"/products", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(productController))

	api.Post("/", productController.CreateProduct)
	api.Post("/upload", productController.CreateProductFromExcel)
	api.Get("/export", productController.ExportProducts)
	api.Get("/imdg-classes", productController.GetImdgClasses)
	api.Get("/:id", productController.GetProductByID)
	api.Put("/:id", productController.UpdateProduct)
	api.Get("/", productController.GetAllProducts)
	api.Delete("/:id", productController.DeleteProduct)
}
