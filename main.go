package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"wealthtracker.com/controllers"
	"wealthtracker.com/cron"
	"wealthtracker.com/db"
	"wealthtracker.com/routes"
	"wealthtracker.com/services"
	"wealthtracker.com/types"

	_ "wealthtracker.com/docs"
)

//	@title			Portfolio Tracking Service
//	@version		1.0
//	@description	Personal portfolio tracking API: assets, properties, market data and return metrics.

// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	db.Init()

	market := services.NewMarketDataService(db.DB, services.NewFinnhubClient(os.Getenv("FINNHUB_API_KEY")))

	cron.StartScheduler(db.DB, market)

	app := fiber.New()

	app.Use(func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", "*")
		c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
		c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		return c.Next()
	})

	assetController := controllers.NewAssetController(db.DB, market)
	propertyController := controllers.NewPropertyController(db.DB)
	netWorthController := controllers.NewNetWorthController(db.DB)
	uploadController := controllers.NewUploadController(db.DB, market)

	routes.SetupRoutes(app, assetController, propertyController, netWorthController, uploadController)

	controllers.RunSnapshotCronJob(netWorthController)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})

	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Static frontend with a .html fallback for page paths.
	staticDir := filepath.Join("frontend", "public")
	if _, err := os.Stat(staticDir); err == nil {
		app.Static("/", staticDir)
	}
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return c.SendStatus(404)
		}
		page := strings.TrimPrefix(c.Path(), "/") + ".html"
		if _, err := os.Stat(filepath.Join(staticDir, page)); err == nil {
			return c.SendFile(filepath.Join(staticDir, page))
		}
		return c.Status(404).JSON(types.Response{
			Success: false,
			Error:   "Not found",
		})
	})

	port := os.Getenv("LISTEN_PATH")
	if port == "" {
		port = ":5000"
	}
	log.Fatal(app.Listen(port))
}
