package cron

import (
	"github.com/gofiber/fiber/v2/log"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"wealthtracker.com/services"
	"wealthtracker.com/types"
)

// StartScheduler warms the market data cache once at startup and then every
// hour. Fresh entries are served from cache, so the warm-up only hits the
// provider for symbols past their staleness window.
func StartScheduler(database *gorm.DB, market *services.MarketDataService) {
	WarmCache(database, market)

	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		WarmCache(database, market)
	})
	if err != nil {
		log.Errorf("Failed to schedule cache warm-up: %v", err)
		return
	}

	c.Start()
}

func WarmCache(database *gorm.DB, market *services.MarketDataService) {
	log.Info("Starting market data warm-up...")

	if _, ok := market.GetForexRates(); !ok {
		log.Warn("Forex rates unavailable, keeping previous table")
	}

	var symbols []string
	err := database.Model(&types.Asset{}).
		Where("LOWER(type) = ? AND symbol IS NOT NULL", "stock").
		Pluck("symbol", &symbols).Error
	if err != nil {
		log.Warnf("Failed to list stock symbols: %v", err)
		return
	}

	for _, symbol := range symbols {
		market.GetStockData(symbol)
	}

	log.Infof("Market data warm-up completed for %d symbols", len(symbols))
}
