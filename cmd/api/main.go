package main

import (
	"log"

	"github.com/daniiloleshchuk/checkbox-api/internal/application/service"
	"github.com/daniiloleshchuk/checkbox-api/internal/config"
	"github.com/daniiloleshchuk/checkbox-api/internal/infrastructure/database"
	"github.com/daniiloleshchuk/checkbox-api/internal/infrastructure/repository"
	"github.com/daniiloleshchuk/checkbox-api/internal/presentation/http/dto/request"
	"github.com/daniiloleshchuk/checkbox-api/internal/presentation/http/handler"
	"github.com/daniiloleshchuk/checkbox-api/internal/presentation/http/routes"
	"github.com/daniiloleshchuk/checkbox-api/pkg/printer"
	"github.com/daniiloleshchuk/checkbox-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	receiptService := service.NewReceiptService(receiptRepo, productService)
	printerService := service.NewPrinterService(thermalPrinter, receiptRepo, cfg.Printer.Type, cfg.Receipt.LineWidth)

	// Register custom request validations
	request.RegisterValidations()

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Receipt: handler.NewReceiptHandler(receiptService, printerService, cfg.Receipt.LineWidth),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Start server
	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
