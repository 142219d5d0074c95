package controllers

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"wealthtracker.com/dto"
	"wealthtracker.com/middlewares"
	"wealthtracker.com/services"
	"wealthtracker.com/types"
)

var validate = validator.New()

type AssetController struct {
	db     *gorm.DB
	market *services.MarketDataService
}

func NewAssetController(database *gorm.DB, market *services.MarketDataService) *AssetController {
	return &AssetController{db: database, market: market}
}

// GetAssets godoc
//
//	@Summary		List assets with performance metrics
//	@Description	Returns every asset with its current price, recomputed value and USD gain decomposition. Stock quotes and the forex table come from the provider through the cache.
//	@Tags			Assets
//	@Produce		json
//	@Success		200	{object}	types.Response{data=[]dto.AssetPerformance}
//	@Failure		500	{object}	types.Response
//	@Router			/assets [get]
func (ac *AssetController) GetAssets(c *fiber.Ctx) error {
	var assets []types.Asset
	if err := ac.db.Preload("Dividends").Find(&assets).Error; err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to fetch assets: " + err.Error(),
		})
	}

	fxRates, fxAvailable := ac.market.GetForexRates()

	results := make([]dto.AssetPerformance, 0, len(assets))
	for _, asset := range assets {
		var quote dto.StockQuote
		if strings.EqualFold(asset.Type, "stock") && asset.Symbol != nil {
			_, quote = ac.market.GetStockData(*asset.Symbol)
		}

		performance := services.ProcessAssetPerformance(asset, quote, fxRates, fxAvailable)

		// Derived value, overwritten on every pass.
		if performance.CurrentValue != asset.CurrentValue {
			err := ac.db.Model(&types.Asset{}).
				Where("id = ?", asset.ID).
				Update("current_value", performance.CurrentValue).Error
			if err != nil {
				log.Warnf("Failed to persist current value for asset %d: %v", asset.ID, err)
			}
		}

		results = append(results, performance)
	}

	return c.JSON(types.Response{
		Success: true,
		Data:    results,
	})
}

// CreateAsset godoc
//
//	@Summary		Create an asset
//	@Tags			Assets
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.CreateAssetRequest	true	"Asset to create"
//	@Success		201		{object}	types.Response{data=uint}
//	@Failure		400		{object}	types.Response
//	@Failure		500		{object}	types.Response
//	@Router			/assets [post]
func (ac *AssetController) CreateAsset(c *fiber.Ctx) error {
	var req dto.CreateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Validation failed: " + err.Error(),
		})
	}

	asset := types.Asset{
		Type:           req.Type,
		Name:           req.Name,
		Quantity:       req.Quantity,
		PurchasePrice:  req.PurchasePrice,
		Currency:       "USD",
		PurchaseFxRate: 1.0,
		CurrentValue:   req.CurrentValue,
	}
	if req.Currency != "" {
		asset.Currency = strings.ToUpper(req.Currency)
	}
	if req.PurchaseFxRate != 0 {
		asset.PurchaseFxRate = req.PurchaseFxRate
	}
	if req.Symbol != "" {
		symbol := strings.ToUpper(req.Symbol)
		asset.Symbol = &symbol
	}
	if req.PurchaseDate != "" {
		date, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return c.Status(400).JSON(types.Response{
				Success: false,
				Error:   "Invalid purchase_date",
			})
		}
		asset.PurchaseDate = &date
	}

	if err := ac.db.Create(&asset).Error; err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to create asset: " + err.Error(),
		})
	}

	return c.Status(201).JSON(types.Response{
		Success: true,
		Data:    asset.ID,
	})
}

// DeleteAsset godoc
//
//	@Summary		Delete an asset
//	@Description	Removes an asset together with its dividends.
//	@Tags			Assets
//	@Produce		json
//	@Param			id	path		int	true	"Asset ID"
//	@Success		200	{object}	types.Response{data=string}
//	@Failure		404	{object}	types.Response
//	@Failure		500	{object}	types.Response
//	@Router			/assets/{id} [delete]
func (ac *AssetController) DeleteAsset(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Invalid asset ID",
		})
	}

	var asset types.Asset
	if err := ac.db.First(&asset, id).Error; err != nil {
		return c.Status(404).JSON(types.Response{
			Success: false,
			Error:   "Asset not found",
		})
	}

	err = ac.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_id = ?", asset.ID).Delete(&types.Dividend{}).Error; err != nil {
			return err
		}
		return tx.Delete(&asset).Error
	})
	if err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to delete asset: " + err.Error(),
		})
	}

	return c.JSON(types.Response{
		Success: true,
		Data:    "Asset deleted",
	})
}

// AddDividend godoc
//
//	@Summary		Record a dividend for an asset
//	@Tags			Assets
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Asset ID"
//	@Param			body	body		dto.CreateDividendRequest	true	"Dividend to record"
//	@Success		201		{object}	types.Response{data=uint}
//	@Failure		400		{object}	types.Response
//	@Failure		404		{object}	types.Response
//	@Router			/assets/{id}/dividends [post]
func (ac *AssetController) AddDividend(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Invalid asset ID",
		})
	}

	var req dto.CreateDividendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Validation failed: " + err.Error(),
		})
	}

	var asset types.Asset
	if err := ac.db.First(&asset, id).Error; err != nil {
		return c.Status(404).JSON(types.Response{
			Success: false,
			Error:   "Asset not found",
		})
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	dividend := types.Dividend{
		AssetID:   asset.ID,
		Amount:    req.Amount,
		Date:      date,
		Projected: req.Projected,
	}
	if err := ac.db.Create(&dividend).Error; err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to record dividend: " + err.Error(),
		})
	}

	return c.Status(201).JSON(types.Response{
		Success: true,
		Data:    dividend.ID,
	})
}

func InitAssetRoutes(api fiber.Router, ac *AssetController) {
	api.Get("/assets", ac.GetAssets)
	api.Post("/assets", middlewares.Auth, ac.CreateAsset)
	api.Delete("/assets/:id", middlewares.Auth, ac.DeleteAsset)
	api.Post("/assets/:id/dividends", middlewares.Auth, ac.AddDividend)
}
