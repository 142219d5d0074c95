package types

import "time"

// NetWorthSnapshot is one end-of-day record of total portfolio value.
type NetWorthSnapshot struct {
	ID              uint      `gorm:"primaryKey"`
	SnapshotDate    time.Time `gorm:"uniqueIndex;not null"`
	TotalAssets     float64   `gorm:"not null"`
	TotalProperties float64   `gorm:"not null"`
	NetWorth        float64   `gorm:"not null"`
}

func (NetWorthSnapshot) TableName() string {
	return "net_worth_snapshots"
}
