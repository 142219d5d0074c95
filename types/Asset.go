package types

import "time"

// Asset is a single holding. For stocks the current value is recomputed from
// live quotes on every performance pass; for every other type the stored
// value is authoritative.
type Asset struct {
	ID             uint    `gorm:"primaryKey"`
	Type           string  `gorm:"size:50;not null"`
	Name           string  `gorm:"size:100;not null"`
	Symbol         *string `gorm:"size:20;unique"`
	Quantity       float64
	PurchasePrice  *float64
	Currency       string  `gorm:"size:10;not null;default:USD"`
	PurchaseFxRate float64 `gorm:"not null;default:1.0"`
	CurrentValue   float64
	PurchaseDate   *time.Time
	Dividends      []Dividend `gorm:"constraint:OnDelete:CASCADE"`
}

func (Asset) TableName() string {
	return "assets"
}

type Dividend struct {
	ID        uint    `gorm:"primaryKey"`
	AssetID   uint    `gorm:"not null;index"`
	Amount    float64 `gorm:"not null"`
	Date      time.Time
	Projected bool `gorm:"not null;default:false"`
}

func (Dividend) TableName() string {
	return "dividends"
}
