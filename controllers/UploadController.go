package controllers

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wealthtracker.com/middlewares"
	"wealthtracker.com/services"
	"wealthtracker.com/types"
)

type UploadController struct {
	db     *gorm.DB
	market *services.MarketDataService
}

func NewUploadController(database *gorm.DB, market *services.MarketDataService) *UploadController {
	return &UploadController{db: database, market: market}
}

var requiredCSVColumns = []string{"ticker", "quantity", "purchase_date", "purchase_price"}

// UploadStocks godoc
//
//	@Summary		Import stock assets from a CSV file
//	@Description	Expects columns ticker, quantity, purchase_date, purchase_price and optionally currency and purchase_fx_rate. The company name and current price are looked up per ticker. All rows are imported in one transaction.
//	@Tags			Upload
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"CSV file"
//	@Success		201		{object}	types.Response{data=string}
//	@Failure		400		{object}	types.Response
//	@Failure		500		{object}	types.Response
//	@Router			/upload/stocks [post]
func (uc *UploadController) UploadStocks(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "No file part in the request",
		})
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Invalid file type. Please upload a .csv file.",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Failed to open uploaded file",
		})
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil || len(records) < 1 {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Failed to parse CSV file",
		})
	}

	columns := map[string]int{}
	for i, name := range records[0] {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range requiredCSVColumns {
		if _, ok := columns[required]; !ok {
			return c.Status(400).JSON(types.Response{
				Success: false,
				Error:   fmt.Sprintf("CSV must have columns: %v", requiredCSVColumns),
			})
		}
	}

	count := 0
	err = uc.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range records[1:] {
			ticker := strings.ToUpper(strings.TrimSpace(row[columns["ticker"]]))
			quantity, err := strconv.ParseFloat(row[columns["quantity"]], 64)
			if err != nil {
				return fmt.Errorf("invalid quantity for %s: %w", ticker, err)
			}
			purchaseDate, err := time.Parse("2006-01-02", row[columns["purchase_date"]])
			if err != nil {
				return fmt.Errorf("invalid purchase_date for %s: %w", ticker, err)
			}
			purchasePrice, err := strconv.ParseFloat(row[columns["purchase_price"]], 64)
			if err != nil {
				return fmt.Errorf("invalid purchase_price for %s: %w", ticker, err)
			}

			currency := "USD"
			if i, ok := columns["currency"]; ok && row[i] != "" {
				currency = strings.ToUpper(strings.TrimSpace(row[i]))
			}
			purchaseFxRate := 1.0
			if i, ok := columns["purchase_fx_rate"]; ok && row[i] != "" {
				purchaseFxRate, err = strconv.ParseFloat(row[i], 64)
				if err != nil {
					return fmt.Errorf("invalid purchase_fx_rate for %s: %w", ticker, err)
				}
			}

			profile, quote := uc.market.GetStockData(ticker)
			name := ticker
			if profile.Name != "" {
				name = profile.Name
			}

			symbol := ticker
			asset := types.Asset{
				Type:           "stock",
				Symbol:         &symbol,
				Name:           name,
				Quantity:       quantity,
				PurchasePrice:  &purchasePrice,
				Currency:       currency,
				PurchaseFxRate: purchaseFxRate,
				PurchaseDate:   &purchaseDate,
				CurrentValue:   quote.C * quantity,
			}
			if err := tx.Create(&asset).Error; err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "An error occurred: " + err.Error(),
		})
	}

	return c.Status(201).JSON(types.Response{
		Success: true,
		Data:    fmt.Sprintf("%d assets processed successfully.", count),
	})
}

func InitUploadRoutes(api fiber.Router, uc *UploadController) {
	api.Post("/upload/stocks", middlewares.Auth, uc.UploadStocks)
}
