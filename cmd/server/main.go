package main

import (
	"log"

	"github.com/DevangDixit02/thoughtMemo/internal/router"
	"github.com/DevangDixit02/thoughtMemo/internal/view"
	"github.com/DevangDixit02/thoughtMemo/pkg/config"
	"github.com/DevangDixit02/thoughtMemo/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// View renderer
	renderer, err := view.NewTemplateRenderer(cfg.TemplateDir)
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}
	e.Renderer = renderer

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Mongo, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
