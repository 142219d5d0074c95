package types

import "time"

type Property struct {
	ID            uint    `gorm:"primaryKey"`
	Address       string  `gorm:"size:200;not null"`
	PurchasePrice float64 `gorm:"not null"`
	CurrentValue  float64
	PurchaseDate  *time.Time
	RentalIncome  float64
	Expenses      float64
}

func (Property) TableName() string {
	return "properties"
}
