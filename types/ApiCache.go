package types

import "time"

// ApiCache holds the last fetched market data payload per symbol. One row per
// symbol, overwritten in place; rows are never deleted so a stale payload
// outlives a failed refresh. The forex table lives under the reserved
// "FX_RATES" key.
type ApiCache struct {
	ID        uint   `gorm:"primaryKey"`
	Symbol    string `gorm:"size:20;unique;not null"`
	Data      []byte `gorm:"not null"`
	Timestamp time.Time
}

func (ApiCache) TableName() string {
	return "api_cache"
}
