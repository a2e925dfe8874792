package routes

import (
	"cargoflow/config"
	"cargoflow/controllers"
	"cargoflow/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupProjectRoutes(app *fiber.App) {

	projectController := &controllers.ProjectController{}

	api := app.Group(config.MAIN_ROUTES+"/projects", middleware.AuthMiddleware)
	api.Use(middleware.InjectDBMiddleware(projectController))

	api.Post("/", projectController.CreateProject)
	api.Post("/:id/tasks", projectController.CreateTask)
	api.Put("/:id/tasks/:task_id/toggle", projectController.ToggleTask)
	api.Delete("/:id/tasks/:task_id", projectController.DeleteTask)
	api.Get("/:id", projectController.GetProjectByID)
	api.Put("/:id", projectController.UpdateProject)
	api.Get("/", projectController.GetAllProjects)
	api.Delete("/:id", projectController.DeleteProject)
}
