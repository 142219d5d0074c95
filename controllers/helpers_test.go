package controllers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wealthtracker.com/db"
	"wealthtracker.com/dto"
	"wealthtracker.com/services"
)

type stubMarketAPI struct {
	quote        dto.StockQuote
	profile      dto.StockProfile
	rates        map[string]float64
	quoteErr     error
	profileErr   error
	forexErr     error
	quoteCalls   int
	profileCalls int
	forexCalls   int
}

func (s *stubMarketAPI) Quote(symbol string) (dto.StockQuote, error) {
	s.quoteCalls++
	if s.quoteErr != nil {
		return dto.StockQuote{}, s.quoteErr
	}
	return s.quote, nil
}

func (s *stubMarketAPI) CompanyProfile(symbol string) (dto.StockProfile, error) {
	s.profileCalls++
	if s.profileErr != nil {
		return dto.StockProfile{}, s.profileErr
	}
	return s.profile, nil
}

func (s *stubMarketAPI) ForexRates(base string) (map[string]float64, error) {
	s.forexCalls++
	if s.forexErr != nil {
		return nil, s.forexErr
	}
	return s.rates, nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	if err := db.Migrate(testDB); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return testDB
}

func setupTestApp(t *testing.T, api *stubMarketAPI) (*fiber.App, *gorm.DB) {
	t.Setenv("JWT_SECRET", "")

	testDB := setupTestDB(t)
	market := services.NewMarketDataService(testDB, api)

	app := fiber.New()
	group := app.Group("/api")
	InitAssetRoutes(group, NewAssetController(testDB, market))
	InitPropertyRoutes(group, NewPropertyController(testDB))
	InitNetWorthRoutes(group, NewNetWorthController(testDB))
	InitUploadRoutes(group, NewUploadController(testDB, market))
	return app, testDB
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
