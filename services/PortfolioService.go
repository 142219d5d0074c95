package services

import (
	"math"
	"strings"
	"time"

	"wealthtracker.com/dto"
	"wealthtracker.com/types"
)

// CalculateTotalROI returns the total return in percent. A zero purchase
// price yields 0 rather than dividing by zero.
func CalculateTotalROI(purchasePrice, currentValue float64) float64 {
	if purchasePrice == 0 {
		return 0
	}
	return (currentValue/purchasePrice - 1) * 100
}

// CalculateAnnualizedROI annualizes the return over whole calendar days held.
// Holdings under one day (including future-dated purchases) fall back to the
// total ROI, since annualization is undefined there.
func CalculateAnnualizedROI(purchasePrice, currentValue float64, purchaseDate, now time.Time) float64 {
	if purchasePrice == 0 {
		return 0
	}
	daysHeld := int(now.Sub(purchaseDate).Hours() / 24)
	if daysHeld < 1 {
		return CalculateTotalROI(purchasePrice, currentValue)
	}
	return (math.Pow(currentValue/purchasePrice, 365.0/float64(daysHeld)) - 1) * 100
}

// ProcessAssetPerformance computes the valuation result for one asset given a
// quote and the current forex table. It never touches the asset or the
// database; the caller decides whether to persist the recomputed value.
//
// Only stocks are live-priced. The gain decomposition needs a positive
// purchase price and an available forex table (fxAvailable); otherwise the
// gain fields stay zero and only the current price and value are populated.
func ProcessAssetPerformance(asset types.Asset, quote dto.StockQuote, fxRates map[string]float64, fxAvailable bool) dto.AssetPerformance {
	result := dto.AssetPerformance{
		ID:            asset.ID,
		Type:          asset.Type,
		Symbol:        asset.Symbol,
		Name:          asset.Name,
		Quantity:      asset.Quantity,
		PurchasePrice: asset.PurchasePrice,
		Currency:      asset.Currency,
		CurrentValue:  asset.CurrentValue,
		Dividends:     make([]dto.DividendResponse, 0, len(asset.Dividends)),
	}
	if asset.PurchaseDate != nil {
		date := asset.PurchaseDate.Format("2006-01-02")
		result.PurchaseDate = &date
	}
	for _, dividend := range asset.Dividends {
		result.Dividends = append(result.Dividends, dto.DividendResponse{
			Amount:    dividend.Amount,
			Date:      dividend.Date.Format("2006-01-02"),
			Projected: dividend.Projected,
		})
	}

	if !strings.EqualFold(asset.Type, "stock") {
		return result
	}

	currentPrice := quote.C
	result.CurrentPrice = currentPrice
	result.CurrentValue = currentPrice * asset.Quantity

	if asset.PurchasePrice != nil && *asset.PurchasePrice > 0 && fxAvailable {
		purchasePrice := *asset.PurchasePrice

		// USD is the identity rate and is never looked up in the table.
		fxRateNow := 1.0
		if asset.Currency != "USD" {
			if rate, ok := fxRates[asset.Currency]; ok {
				fxRateNow = rate
			}
		}

		purchaseFxRate := asset.PurchaseFxRate
		if purchaseFxRate == 0 {
			purchaseFxRate = 1.0
		}

		// Price appreciation converted at today's rate; the next term
		// isolates the pure exchange-rate contribution against the
		// original cost basis.
		result.AssetGrowthUSD = (currentPrice - purchasePrice) * asset.Quantity * fxRateNow
		result.CurrencyGainUSD = (fxRateNow - purchaseFxRate) * asset.Quantity * purchasePrice

		var dividendSum float64
		for _, dividend := range asset.Dividends {
			dividendSum += dividend.Amount
		}
		result.DividendIncomeUSD = dividendSum * fxRateNow
	}

	result.TotalGainUSD = result.AssetGrowthUSD + result.CurrencyGainUSD + result.DividendIncomeUSD
	return result
}
