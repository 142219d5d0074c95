package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wealthtracker.com/dto"
	"wealthtracker.com/types"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestCalculateTotalROI(t *testing.T) {
	assert.Equal(t, 50.0, CalculateTotalROI(100, 150))
	assert.Equal(t, 50.0, CalculateTotalROI(40, 60))
	assert.Equal(t, -25.0, CalculateTotalROI(200, 150))
	assert.Equal(t, 0.0, CalculateTotalROI(0, 12345))
}

func TestCalculateAnnualizedROI(t *testing.T) {
	purchase := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	now := purchase.AddDate(0, 0, 730)

	// 21% over 730 days compounds to 10% per year.
	roi := CalculateAnnualizedROI(100, 121, purchase, now)
	assert.InDelta(t, 10.0, roi, 0.0001)

	assert.Equal(t, 0.0, CalculateAnnualizedROI(0, 121, purchase, now))
}

func TestCalculateAnnualizedROIShortHolding(t *testing.T) {
	now := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	// Same-day purchase falls back to total ROI.
	roi := CalculateAnnualizedROI(100, 150, now.Add(-2*time.Hour), now)
	assert.Equal(t, CalculateTotalROI(100, 150), roi)

	// Future-dated purchase is treated the same way, not a fault.
	roi = CalculateAnnualizedROI(100, 150, now.AddDate(0, 0, 30), now)
	assert.Equal(t, CalculateTotalROI(100, 150), roi)
}

func TestProcessAssetPerformanceStockUSD(t *testing.T) {
	asset := types.Asset{
		ID:             1,
		Type:           "stock",
		Symbol:         strPtr("AAPL"),
		Name:           "Apple Inc.",
		Quantity:       10,
		PurchasePrice:  floatPtr(100),
		Currency:       "USD",
		PurchaseFxRate: 1.0,
	}
	quote := dto.StockQuote{C: 150}

	result := ProcessAssetPerformance(asset, quote, map[string]float64{}, true)

	assert.Equal(t, 150.0, result.CurrentPrice)
	assert.Equal(t, 1500.0, result.CurrentValue)
	assert.Equal(t, 500.0, result.AssetGrowthUSD)
	assert.Equal(t, 0.0, result.CurrencyGainUSD)
	assert.Equal(t, 0.0, result.DividendIncomeUSD)
	assert.Equal(t, 500.0, result.TotalGainUSD)
}

func TestProcessAssetPerformanceUSDIgnoresForexTable(t *testing.T) {
	asset := types.Asset{
		Type:           "stock",
		Symbol:         strPtr("AAPL"),
		Quantity:       10,
		PurchasePrice:  floatPtr(100),
		Currency:       "USD",
		PurchaseFxRate: 1.0,
	}
	quote := dto.StockQuote{C: 150}

	// A bogus USD entry in the table must never be looked up.
	result := ProcessAssetPerformance(asset, quote, map[string]float64{"USD": 2.5}, true)

	assert.Equal(t, 500.0, result.AssetGrowthUSD)
	assert.Equal(t, 0.0, result.CurrencyGainUSD)
}

func TestProcessAssetPerformanceCurrencyDecomposition(t *testing.T) {
	asset := types.Asset{
		Type:           "Stock",
		Symbol:         strPtr("SAP"),
		Quantity:       10,
		PurchasePrice:  floatPtr(100),
		Currency:       "EUR",
		PurchaseFxRate: 1.0,
		Dividends: []types.Dividend{
			{Amount: 20, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			{Amount: 30, Date: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), Projected: true},
		},
	}
	quote := dto.StockQuote{C: 150}
	rates := map[string]float64{"EUR": 1.2}

	result := ProcessAssetPerformance(asset, quote, rates, true)

	assert.InDelta(t, 600.0, result.AssetGrowthUSD, 0.0001)
	assert.InDelta(t, 200.0, result.CurrencyGainUSD, 0.0001)
	// Projected dividends count the same as realized ones.
	assert.InDelta(t, 60.0, result.DividendIncomeUSD, 0.0001)
	assert.InDelta(t, 860.0, result.TotalGainUSD, 0.0001)
	assert.Len(t, result.Dividends, 2)
	assert.True(t, result.Dividends[1].Projected)
}

func TestProcessAssetPerformanceUnlistedCurrencyDefaultsToIdentity(t *testing.T) {
	asset := types.Asset{
		Type:           "stock",
		Quantity:       10,
		PurchasePrice:  floatPtr(100),
		Currency:       "CHF",
		PurchaseFxRate: 1.0,
	}
	quote := dto.StockQuote{C: 150}

	result := ProcessAssetPerformance(asset, quote, map[string]float64{"EUR": 1.2}, true)

	assert.Equal(t, 500.0, result.AssetGrowthUSD)
	assert.Equal(t, 0.0, result.CurrencyGainUSD)
}

func TestProcessAssetPerformanceNonStock(t *testing.T) {
	asset := types.Asset{
		Type:          "bond",
		Name:          "Savings bond",
		PurchasePrice: floatPtr(500),
		Currency:      "USD",
		CurrentValue:  750,
	}

	result := ProcessAssetPerformance(asset, dto.StockQuote{C: 999}, map[string]float64{"EUR": 1.1}, true)

	// Non-stock types keep their stored value; nothing is live-priced.
	assert.Equal(t, 750.0, result.CurrentValue)
	assert.Equal(t, 0.0, result.CurrentPrice)
	assert.Equal(t, 0.0, result.AssetGrowthUSD)
	assert.Equal(t, 0.0, result.CurrencyGainUSD)
	assert.Equal(t, 0.0, result.DividendIncomeUSD)
	assert.Equal(t, 0.0, result.TotalGainUSD)
}

func TestProcessAssetPerformanceMissingPrerequisites(t *testing.T) {
	quote := dto.StockQuote{C: 150}
	rates := map[string]float64{"EUR": 1.2}

	noPrice := types.Asset{Type: "stock", Quantity: 10, Currency: "USD"}
	result := ProcessAssetPerformance(noPrice, quote, rates, true)
	assert.Equal(t, 1500.0, result.CurrentValue)
	assert.Equal(t, 0.0, result.TotalGainUSD)

	zeroPrice := types.Asset{Type: "stock", Quantity: 10, Currency: "USD", PurchasePrice: floatPtr(0)}
	result = ProcessAssetPerformance(zeroPrice, quote, rates, true)
	assert.Equal(t, 0.0, result.TotalGainUSD)

	noForex := types.Asset{Type: "stock", Quantity: 10, Currency: "USD", PurchasePrice: floatPtr(100)}
	result = ProcessAssetPerformance(noForex, quote, nil, false)
	assert.Equal(t, 1500.0, result.CurrentValue)
	assert.Equal(t, 0.0, result.AssetGrowthUSD)
	assert.Equal(t, 0.0, result.TotalGainUSD)
}

func TestProcessAssetPerformanceMissingQuote(t *testing.T) {
	asset := types.Asset{
		Type:          "stock",
		Quantity:      10,
		PurchasePrice: floatPtr(100),
		Currency:      "USD",
		CurrentValue:  1234,
	}

	result := ProcessAssetPerformance(asset, dto.StockQuote{}, map[string]float64{}, true)

	assert.Equal(t, 0.0, result.CurrentPrice)
	assert.Equal(t, 0.0, result.CurrentValue)
	assert.Equal(t, -1000.0, result.AssetGrowthUSD)
}
