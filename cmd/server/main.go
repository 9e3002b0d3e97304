package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/reachjvc/daygame-coach-api/internal/catalog"
	"github.com/reachjvc/daygame-coach-api/internal/config"
	"github.com/reachjvc/daygame-coach-api/internal/database"
	"github.com/reachjvc/daygame-coach-api/internal/logger"
	"github.com/reachjvc/daygame-coach-api/internal/middleware"
	"github.com/reachjvc/daygame-coach-api/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	appLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	middleware.Init(cfg.JWTSecret)

	if err := database.Connect(cfg); err != nil {
		appLogger.Fatal("failed to connect to database", "error", err)
	}
	if err := database.Migrate(); err != nil {
		appLogger.Fatal("failed to run migrations", "error", err)
	}

	app := fiber.New()
	app.Use(middleware.RequestLogger(appLogger))

	routes.Setup(app, catalog.Default())

	appLogger.Info("server starting", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		appLogger.Fatal("server stopped", "error", err)
	}
}
