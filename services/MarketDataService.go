package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"wealthtracker.com/dto"
	"wealthtracker.com/types"
)

// ForexCacheKey is the reserved cache row for the forex-rate table. Real
// tickers never collide with it.
const ForexCacheKey = "FX_RATES"

const (
	quoteCacheTTL = 15 * time.Minute
	forexCacheTTL = 60 * time.Minute
)

// MarketDataService fetches quotes, company profiles and forex rates from the
// external provider through a time-bounded per-symbol cache. Provider
// failures degrade to empty payloads; they never propagate to callers.
type MarketDataService struct {
	db       *gorm.DB
	api      MarketDataAPI
	quoteTTL time.Duration
	forexTTL time.Duration
}

func NewMarketDataService(database *gorm.DB, api MarketDataAPI) *MarketDataService {
	return &MarketDataService{
		db:       database,
		api:      api,
		quoteTTL: quoteCacheTTL,
		forexTTL: forexCacheTTL,
	}
}

// lookup returns the cache row for a symbol and its age, or nil on a miss.
func (s *MarketDataService) lookup(symbol string) (*types.ApiCache, time.Duration) {
	var entry types.ApiCache
	err := s.db.Where("symbol = ?", symbol).First(&entry).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warnf("Cache lookup failed for %s: %v", symbol, err)
		}
		return nil, 0
	}
	return &entry, time.Since(entry.Timestamp)
}

// upsert replaces the payload and timestamp for a symbol, creating the row on
// first fetch. Rows are never deleted.
func (s *MarketDataService) upsert(symbol string, payload []byte) {
	var entry types.ApiCache
	err := s.db.Where("symbol = ?", symbol).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = types.ApiCache{Symbol: symbol, Data: payload, Timestamp: time.Now()}
		if err := s.db.Create(&entry).Error; err != nil {
			log.Warnf("Failed to create cache entry for %s: %v", symbol, err)
		}
		return
	}
	if err != nil {
		log.Warnf("Cache lookup failed for %s: %v", symbol, err)
		return
	}
	updates := map[string]interface{}{"data": payload, "timestamp": time.Now()}
	if err := s.db.Model(&entry).Updates(updates).Error; err != nil {
		log.Warnf("Failed to update cache entry for %s: %v", symbol, err)
	}
}

// GetStockData returns the company profile and quote for a symbol, serving
// from cache while the entry is under 15 minutes old. The two sub-fetches are
// independent: a failed one is logged and left empty, and whatever was
// retrieved is cached.
func (s *MarketDataService) GetStockData(symbol string) (dto.StockProfile, dto.StockQuote) {
	if entry, age := s.lookup(symbol); entry != nil && age < s.quoteTTL {
		var cached dto.StockData
		if err := json.Unmarshal(entry.Data, &cached); err == nil {
			return cached.Profile, cached.Quote
		}
		log.Warnf("Discarding unreadable cache payload for %s", symbol)
	}

	var data dto.StockData

	profile, err := s.api.CompanyProfile(symbol)
	if err != nil {
		log.Warnf("Failed to fetch company profile for %s: %v", symbol, err)
	} else {
		data.Profile = profile
	}

	quote, err := s.api.Quote(symbol)
	if err != nil {
		log.Warnf("Failed to fetch quote for %s: %v", symbol, err)
	} else {
		data.Quote = quote
	}

	payload, err := json.Marshal(data)
	if err != nil {
		log.Errorf("Failed to encode cache payload for %s: %v", symbol, err)
		return data.Profile, data.Quote
	}
	s.upsert(symbol, payload)

	return data.Profile, data.Quote
}

// GetForexRates returns the USD-based forex table, cached for 60 minutes.
// The second return value is false when no table is available, which callers
// must treat differently from an empty table. A failed refresh leaves the
// previously cached row untouched.
func (s *MarketDataService) GetForexRates() (map[string]float64, bool) {
	if entry, age := s.lookup(ForexCacheKey); entry != nil && age < s.forexTTL {
		var rates map[string]float64
		if err := json.Unmarshal(entry.Data, &rates); err == nil {
			return rates, true
		}
		log.Warnf("Discarding unreadable forex cache payload")
	}

	rates, err := s.api.ForexRates("USD")
	if err != nil {
		log.Warnf("Failed to fetch forex rates: %v", err)
		return nil, false
	}

	payload, err := json.Marshal(rates)
	if err != nil {
		log.Errorf("Failed to encode forex cache payload: %v", err)
		return rates, true
	}
	s.upsert(ForexCacheKey, payload)

	return rates, true
}
