package main

import (
	"log"

	"cargoflow/config"
	"cargoflow/controllers/idgen"
	"cargoflow/database"
	"cargoflow/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	if err := database.EnsureDatabaseExists(config.DBName); err != nil {
		log.Printf("Warning: could not ensure database exists: %v", err)
	}

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupProductRoutes(app)
	routes.SetupOrderRoutes(app)
	routes.SetupContainerRoutes(app)
	routes.SetupGroupageRoutes(app)
	routes.SetupSupplierRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupTransitaireRoutes(app)
	routes.SetupProjectRoutes(app)
	routes.SetupTrashRoutes(app)

	log.Fatal(app.Listen(":" + config.APP_PORT))
}
