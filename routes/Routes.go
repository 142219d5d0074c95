package routes

import (
	"github.com/gofiber/fiber/v2"

	"wealthtracker.com/controllers"
)

func SetupRoutes(
	app *fiber.App,
	assetController *controllers.AssetController,
	propertyController *controllers.PropertyController,
	netWorthController *controllers.NetWorthController,
	uploadController *controllers.UploadController,
) {
	api := app.Group("/api")

	controllers.InitAssetRoutes(api, assetController)
	controllers.InitPropertyRoutes(api, propertyController)
	controllers.InitNetWorthRoutes(api, netWorthController)
	controllers.InitUploadRoutes(api, uploadController)
}
