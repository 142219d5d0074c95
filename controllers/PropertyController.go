package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wealthtracker.com/dto"
	"wealthtracker.com/middlewares"
	"wealthtracker.com/services"
	"wealthtracker.com/types"
)

type PropertyController struct {
	db *gorm.DB
}

func NewPropertyController(database *gorm.DB) *PropertyController {
	return &PropertyController{db: database}
}

// GetProperties godoc
//
//	@Summary		List properties with annualized ROI
//	@Tags			Properties
//	@Produce		json
//	@Success		200	{object}	types.Response{data=[]dto.PropertyResponse}
//	@Failure		500	{object}	types.Response
//	@Router			/properties [get]
func (pc *PropertyController) GetProperties(c *fiber.Ctx) error {
	var properties []types.Property
	if err := pc.db.Find(&properties).Error; err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to fetch properties: " + err.Error(),
		})
	}

	now := time.Now()
	results := make([]dto.PropertyResponse, 0, len(properties))
	for _, property := range properties {
		response := dto.PropertyResponse{
			ID:            property.ID,
			Address:       property.Address,
			PurchasePrice: property.PurchasePrice,
			CurrentValue:  property.CurrentValue,
			RentalIncome:  property.RentalIncome,
			Expenses:      property.Expenses,
		}
		if property.PurchaseDate != nil {
			date := property.PurchaseDate.Format("2006-01-02")
			response.PurchaseDate = &date
			response.ROI = services.CalculateAnnualizedROI(
				property.PurchasePrice, property.CurrentValue, *property.PurchaseDate, now)
		} else {
			response.ROI = services.CalculateTotalROI(property.PurchasePrice, property.CurrentValue)
		}
		results = append(results, response)
	}

	return c.JSON(types.Response{
		Success: true,
		Data:    results,
	})
}

// CreateProperty godoc
//
//	@Summary		Create a property
//	@Tags			Properties
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.CreatePropertyRequest	true	"Property to create"
//	@Success		201		{object}	types.Response{data=uint}
//	@Failure		400		{object}	types.Response
//	@Failure		500		{object}	types.Response
//	@Router			/properties [post]
func (pc *PropertyController) CreateProperty(c *fiber.Ctx) error {
	var req dto.CreatePropertyRequest
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

	property := types.Property{
		Address:       req.Address,
		PurchasePrice: req.PurchasePrice,
		CurrentValue:  req.CurrentValue,
		RentalIncome:  req.RentalIncome,
		Expenses:      req.Expenses,
	}
	if req.PurchaseDate != "" {
		date, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return c.Status(400).JSON(types.Response{
				Success: false,
				Error:   "Invalid purchase_date",
			})
		}
		property.PurchaseDate = &date
	}

	if err := pc.db.Create(&property).Error; err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to create property: " + err.Error(),
		})
	}

	return c.Status(201).JSON(types.Response{
		Success: true,
		Data:    property.ID,
	})
}

// DeleteProperty godoc
//
//	@Summary		Delete a property
//	@Tags			Properties
//	@Produce		json
//	@Param			id	path		int	true	"Property ID"
//	@Success		200	{object}	types.Response{data=string}
//	@Failure		404	{object}	types.Response
//	@Router			/properties/{id} [delete]
func (pc *PropertyController) DeleteProperty(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(types.Response{
			Success: false,
			Error:   "Invalid property ID",
		})
	}

	var property types.Property
	if err := pc.db.First(&property, id).Error; err != nil {
		return c.Status(404).JSON(types.Response{
			Success: false,
			Error:   "Property not found",
		})
	}

	if err := pc.db.Delete(&property).Error; err != nil {
		return c.Status(500).JSON(types.Response{
			Success: false,
			Error:   "Failed to delete property: " + err.Error(),
		})
	}

	return c.JSON(types.Response{
		Success: true,
		Data:    "Property deleted",
	})
}

func InitPropertyRoutes(api fiber.Router, pc *PropertyController) {
	api.Get("/properties", pc.GetProperties)
	api.Post("/properties", middlewares.Auth, pc.CreateProperty)
	api.Delete("/properties/:id", middlewares.Auth, pc.DeleteProperty)
}
